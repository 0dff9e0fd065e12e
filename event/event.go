// Package event implements the classic single-track MIDI-like token
// stream. Ids are laid out in four fixed ranges: note-on [0,128),
// note-off [128,256), time-shift [256,256+MaxTimeShift) where code k
// shifts time by k-255 ticks, and velocity
// [256+MaxTimeShift, 256+MaxTimeShift+VelocityBins).
//
// It is a restriction of the multitrack codec to one virtual track,
// which assigns exactly these ids; note-offs against several open notes
// of one pitch resolve through the same configurable queue policy.
package event

import (
	"go.uber.org/zap"

	"github.com/salu133445/musecodec/model"
	"github.com/salu133445/musecodec/multitrack"
)

type Config struct {
	MaxTimeShift    int
	VelocityBins    int
	DefaultVelocity int
	// DuplicateNoteMode defaults to closing the oldest open note.
	DuplicateNoteMode multitrack.DuplicateNoteMode
	Logger            *zap.Logger
}

func DefaultConfig() Config {
	return Config{
		MaxTimeShift:    100,
		VelocityBins:    32,
		DefaultVelocity: model.DefaultVelocity,
	}
}

type Codec struct {
	inner *multitrack.Codec
}

// New validates the configuration; VelocityBins above 128 is rejected.
func New(cfg Config) (*Codec, error) {
	inner, err := multitrack.New(multitrack.Config{
		EncodeVelocity:    true,
		VelocityBins:      cfg.VelocityBins,
		DefaultVelocity:   cfg.DefaultVelocity,
		MaxTimeShift:      cfg.MaxTimeShift,
		Resolution:        model.DefaultResolution,
		DuplicateNoteMode: cfg.DuplicateNoteMode,
		Logger:            cfg.Logger,
	})
	if err != nil {
		return nil, err
	}
	return &Codec{inner: inner}, nil
}

func (c *Codec) VocabSize() int {
	return c.inner.Vocab().Len()
}

func (c *Codec) Encode(notes []model.Note) ([]int, error) {
	m := &model.Music{
		Resolution: model.DefaultResolution,
		Tracks:     []model.Track{{Notes: notes}},
	}
	return c.inner.Encode(m)
}

func (c *Codec) Decode(ids []int) ([]model.Note, error) {
	m, err := c.inner.Decode(ids)
	if err != nil {
		return nil, err
	}
	if len(m.Tracks) == 0 {
		return nil, nil
	}
	return m.Tracks[0].Notes, nil
}
