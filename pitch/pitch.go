// Package pitch encodes a monophonic note sequence as one token per
// tick: a sounding pitch (0-127), a rest (128), or, when hold state is
// enabled, a hold token (129) for every tick of a note past its onset.
package pitch

import (
	"github.com/salu133445/musecodec/model"
)

const (
	Rest = 128
	Hold = 129
)

type Codec struct {
	UseHoldState    bool
	DefaultVelocity int
}

func New() *Codec {
	return &Codec{DefaultVelocity: model.DefaultVelocity}
}

// Encode writes notes onto a tick axis in onset order; overlapping
// notes overwrite earlier ticks, so only monophonic input round-trips.
// Empty input yields a single rest tick.
func (c *Codec) Encode(notes []model.Note) []int {
	sorted := model.SortedNotes(notes)

	length := 0
	for _, n := range sorted {
		if n.End() > length {
			length = n.End()
		}
	}
	if length == 0 {
		length = 1
	}

	arr := make([]int, length)
	for i := range arr {
		arr[i] = Rest
	}
	for _, n := range sorted {
		if n.Duration < 1 {
			continue
		}
		p := int(uint8(n.Pitch))
		if c.UseHoldState {
			arr[n.Onset] = p
			for t := n.Onset + 1; t < n.End(); t++ {
				arr[t] = Hold
			}
		} else {
			for t := n.Onset; t < n.End(); t++ {
				arr[t] = p
			}
		}
	}
	return arr
}

// Decode scans for maximal runs. A hold token that doesn't follow a
// sounding pitch (i.e. comes right after a rest) is dropped rather
// than reported as an error.
func (c *Codec) Decode(arr []int) []model.Note {
	var notes []model.Note

	onset := -1
	pitch := 0
	flush := func(end int) {
		if onset < 0 {
			return
		}
		dur := end - onset
		if dur < 1 {
			dur = 1
		}
		notes = append(notes, model.Note{
			Onset:    onset,
			Duration: dur,
			Pitch:    pitch,
			Velocity: c.DefaultVelocity,
		})
		onset = -1
	}

	for t, v := range arr {
		switch {
		case c.UseHoldState && v == Hold:
			// extends the open note; orphaned holds are discarded
		case v >= Rest:
			flush(t)
		case !c.UseHoldState && onset >= 0 && v == pitch:
			// same run continues
		default:
			flush(t)
			onset = t
			pitch = v
		}
	}
	flush(len(arr))

	model.SortNotes(notes)
	return notes
}
