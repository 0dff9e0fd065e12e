// Package notetuple encodes notes as rows of integer tuples, one row
// per note: (pitch, onset, duration[, velocity]) or, with UseStartEnd,
// (pitch, start, end[, velocity]).
package notetuple

import (
	"github.com/pkg/errors"

	"github.com/salu133445/musecodec/model"
)

type Codec struct {
	// UseStartEnd stores (start, end) in columns 1-2 instead of
	// (onset, duration).
	UseStartEnd bool
	// EncodeVelocity adds a fourth column; without it rows have three
	// columns and DefaultVelocity is used on decode.
	EncodeVelocity  bool
	DefaultVelocity int
}

func New() *Codec {
	return &Codec{
		EncodeVelocity:  true,
		DefaultVelocity: model.DefaultVelocity,
	}
}

// Encode sorts the input by (onset, pitch, duration, velocity) and
// emits one row per note. Pitch and velocity are truncated to 8 bits,
// matching the fixed-width tables consumers train on.
func (c *Codec) Encode(notes []model.Note) [][]int {
	sorted := model.SortedNotes(notes)
	rows := make([][]int, 0, len(sorted))
	for _, n := range sorted {
		third := n.Duration
		if c.UseStartEnd {
			third = n.End()
		}
		row := []int{int(uint8(n.Pitch)), n.Onset, third}
		if c.EncodeVelocity {
			row = append(row, int(uint8(n.Velocity)))
		}
		rows = append(rows, row)
	}
	return rows
}

func (c *Codec) Decode(rows [][]int) ([]model.Note, error) {
	notes := make([]model.Note, 0, len(rows))
	for i, row := range rows {
		if len(row) < 3 {
			return nil, errors.Errorf("row %v has %v columns, want at least 3", i, len(row))
		}
		n := model.Note{
			Pitch:    row[0],
			Onset:    row[1],
			Velocity: c.DefaultVelocity,
		}
		if c.UseStartEnd {
			n.Duration = row[2] - row[1]
		} else {
			n.Duration = row[2]
		}
		if n.Duration < 1 {
			n.Duration = 1
		}
		if len(row) > 3 {
			n.Velocity = row[3]
		}
		notes = append(notes, n)
	}
	return notes, nil
}
