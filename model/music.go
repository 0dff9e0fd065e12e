package model

import "sort"

// DefaultResolution is the assumed ticks-per-quarter-note when a source
// doesn't carry one.
const DefaultResolution = 24

// DefaultVelocity is used whenever a representation doesn't encode
// velocity.
const DefaultVelocity = 64

// Note is a single note event in integer tick units. Notes are plain
// values; codecs never mutate their inputs.
type Note struct {
	Onset    int `json:"onset" yaml:"onset"`
	Duration int `json:"duration" yaml:"duration"`
	Pitch    int `json:"pitch" yaml:"pitch"`
	Velocity int `json:"velocity" yaml:"velocity"`
}

func (n Note) End() int {
	return n.Onset + n.Duration
}

type Track struct {
	Program int    `json:"program" yaml:"program"`
	IsDrum  bool   `json:"is_drum" yaml:"is_drum"`
	Notes   []Note `json:"notes" yaml:"notes"`
}

type Music struct {
	Resolution int     `json:"resolution" yaml:"resolution"`
	Tracks     []Track `json:"tracks" yaml:"tracks"`
}

// NoteLess is the canonical note ordering every codec sorts by before
// encoding: onset, then pitch, duration, velocity.
func NoteLess(a, b Note) bool {
	if a.Onset != b.Onset {
		return a.Onset < b.Onset
	}
	if a.Pitch != b.Pitch {
		return a.Pitch < b.Pitch
	}
	if a.Duration != b.Duration {
		return a.Duration < b.Duration
	}
	return a.Velocity < b.Velocity
}

func SortNotes(notes []Note) {
	sort.SliceStable(notes, func(i, j int) bool {
		return NoteLess(notes[i], notes[j])
	})
}

// SortedNotes returns a sorted copy, leaving the input alone.
func SortedNotes(notes []Note) []Note {
	res := make([]Note, len(notes))
	copy(res, notes)
	SortNotes(res)
	return res
}

// AllNotes flattens every track into one sorted sequence.
func (m *Music) AllNotes() []Note {
	var res []Note
	for _, t := range m.Tracks {
		res = append(res, t.Notes...)
	}
	SortNotes(res)
	return res
}
