package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortNotesUsesCanonicalOrder(t *testing.T) {
	notes := []Note{
		{Onset: 2, Duration: 1, Pitch: 60, Velocity: 64},
		{Onset: 0, Duration: 2, Pitch: 64, Velocity: 64},
		{Onset: 0, Duration: 2, Pitch: 60, Velocity: 80},
		{Onset: 0, Duration: 2, Pitch: 60, Velocity: 64},
		{Onset: 0, Duration: 1, Pitch: 60, Velocity: 64},
	}
	SortNotes(notes)

	assert := assert.New(t)
	assert.Equal([]Note{
		{Onset: 0, Duration: 1, Pitch: 60, Velocity: 64},
		{Onset: 0, Duration: 2, Pitch: 60, Velocity: 64},
		{Onset: 0, Duration: 2, Pitch: 60, Velocity: 80},
		{Onset: 0, Duration: 2, Pitch: 64, Velocity: 64},
		{Onset: 2, Duration: 1, Pitch: 60, Velocity: 64},
	}, notes)
}

func TestSortedNotesLeavesInputAlone(t *testing.T) {
	notes := []Note{
		{Onset: 4, Duration: 1, Pitch: 60},
		{Onset: 0, Duration: 1, Pitch: 60},
	}
	sorted := SortedNotes(notes)

	assert := assert.New(t)
	assert.Equal(4, notes[0].Onset)
	assert.Equal(0, sorted[0].Onset)
}

func TestAllNotesFlattensTracks(t *testing.T) {
	m := Music{
		Tracks: []Track{
			{Notes: []Note{{Onset: 4, Duration: 1, Pitch: 60, Velocity: 64}}},
			{Notes: []Note{{Onset: 0, Duration: 1, Pitch: 72, Velocity: 64}}},
		},
	}
	notes := m.AllNotes()

	assert := assert.New(t)
	assert.Equal(2, len(notes))
	assert.Equal(0, notes[0].Onset)
	assert.Equal(4, notes[1].Onset)
}

func TestNoteEnd(t *testing.T) {
	n := Note{Onset: 3, Duration: 4}
	assert.Equal(t, 7, n.End())
}
