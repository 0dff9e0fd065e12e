// Package pianoroll encodes notes as a time-by-pitch matrix with one
// row per tick and 128 pitch columns, holding either occupancy or
// velocity.
package pianoroll

import (
	"github.com/salu133445/musecodec/model"
)

// NumPitches is the width of every roll row.
const NumPitches = 128

type Roll = [][NumPitches]int

type Codec struct {
	// EncodeVelocity stores the note velocity per cell; otherwise
	// occupied cells hold 1.
	EncodeVelocity  bool
	DefaultVelocity int
}

func New() *Codec {
	return &Codec{
		EncodeVelocity:  true,
		DefaultVelocity: model.DefaultVelocity,
	}
}

// Encode fills cells [onset, end) per note. Overlapping notes of the
// same pitch merge into one span since a cell can't hold two notes.
func (c *Codec) Encode(notes []model.Note) Roll {
	sorted := model.SortedNotes(notes)

	length := 0
	for _, n := range sorted {
		if n.End() > length {
			length = n.End()
		}
	}

	roll := make(Roll, length+1)
	for _, n := range sorted {
		val := 1
		if c.EncodeVelocity {
			val = int(uint8(n.Velocity))
		}
		p := int(uint8(n.Pitch))
		for t := n.Onset; t < n.End(); t++ {
			roll[t][p] = val
		}
	}
	return roll
}

// Decode emits one note per contiguous nonzero run in each pitch
// column, reading velocity from the run's first cell, then re-sorts
// globally.
func (c *Codec) Decode(roll Roll) []model.Note {
	var notes []model.Note
	for p := 0; p < NumPitches; p++ {
		runStart := -1
		for t := 0; t <= len(roll); t++ {
			on := t < len(roll) && roll[t][p] != 0
			if on && runStart < 0 {
				runStart = t
			}
			if !on && runStart >= 0 {
				vel := c.DefaultVelocity
				if c.EncodeVelocity {
					vel = roll[runStart][p]
				}
				notes = append(notes, model.Note{
					Onset:    runStart,
					Duration: t - runStart,
					Pitch:    p,
					Velocity: vel,
				})
				runStart = -1
			}
		}
	}
	model.SortNotes(notes)
	return notes
}
