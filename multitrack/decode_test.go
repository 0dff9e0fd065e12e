package multitrack

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/salu133445/musecodec/model"
)

func overlappingPitchEvents() []Event {
	return []Event{
		{Type: NoteOn, Track: 0, Value: 60},
		{Type: TimeShift, Value: 2},
		{Type: NoteOn, Track: 0, Value: 60},
		{Type: TimeShift, Value: 8},
		{Type: NoteOff, Track: 0, Value: 60},
		{Type: TimeShift, Value: 2},
		{Type: NoteOff, Track: 0, Value: 60},
	}
}

func TestDuplicateNoteModes(t *testing.T) {
	cases := []struct {
		mode     DuplicateNoteMode
		expected []model.Note
	}{
		{DuplicateFIFO, []model.Note{
			{Onset: 0, Duration: 10, Pitch: 60, Velocity: 64},
			{Onset: 2, Duration: 10, Pitch: 60, Velocity: 64},
		}},
		{DuplicateLIFO, []model.Note{
			{Onset: 0, Duration: 12, Pitch: 60, Velocity: 64},
			{Onset: 2, Duration: 8, Pitch: 60, Velocity: 64},
		}},
		{DuplicateCloseAll, []model.Note{
			{Onset: 0, Duration: 10, Pitch: 60, Velocity: 64},
			{Onset: 2, Duration: 8, Pitch: 60, Velocity: 64},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.mode.String(), func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.DuplicateNoteMode = tc.mode
			c := mustNew(t, cfg)

			decoded, err := c.DecodeEvents(overlappingPitchEvents())

			assert := assert.New(t)
			assert.NoError(err)
			assert.Equal(tc.expected, decoded.Tracks[0].Notes)
		})
	}
}

func TestAllNotesOffClosesEveryOpenNote(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UseSingleNoteOffEvent = true
	c := mustNew(t, cfg)

	decoded, err := c.DecodeEvents([]Event{
		{Type: NoteOn, Track: 0, Value: 60},
		{Type: NoteOn, Track: 0, Value: 64},
		{Type: TimeShift, Value: 4},
		{Type: NoteOff, Track: 0, Value: AllNotes},
	})

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]model.Note{
		{Onset: 0, Duration: 4, Pitch: 60, Velocity: 64},
		{Onset: 0, Duration: 4, Pitch: 64, Velocity: 64},
	}, decoded.Tracks[0].Notes)
}

func TestEOSHaltsDecoding(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UseEndOfSequenceEvent = true
	c := mustNew(t, cfg)

	decoded, err := c.DecodeEvents([]Event{
		{Type: NoteOn, Track: 0, Value: 60},
		{Type: TimeShift, Value: 2},
		{Type: NoteOff, Track: 0, Value: 60},
		{Type: EOS},
		{Type: NoteOn, Track: 0, Value: 64},
		{Type: TimeShift, Value: 2},
		{Type: NoteOff, Track: 0, Value: 64},
	})

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(1, len(decoded.Tracks[0].Notes))
}

func TestProgramLatchesAndDrumSticks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumTracks = 1
	cfg.EncodeInstrument = true
	c := mustNew(t, cfg)

	decoded, err := c.DecodeEvents([]Event{
		{Type: Program, Track: 0, Value: 5},
		{Type: Program, Track: 0, Value: 9},
		{Type: Drum, Track: 0},
		{Type: NoteOn, Track: 0, Value: 36},
		{Type: TimeShift, Value: 2},
		{Type: NoteOff, Track: 0, Value: 36},
	})

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(5, decoded.Tracks[0].Program)
	assert.True(decoded.Tracks[0].IsDrum)
}

func TestZeroDurationNotesAreClamped(t *testing.T) {
	c := mustNew(t, DefaultConfig())
	decoded, err := c.DecodeEvents([]Event{
		{Type: NoteOn, Track: 0, Value: 60},
		{Type: NoteOff, Track: 0, Value: 60},
	})

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(1, decoded.Tracks[0].Notes[0].Duration)
}

func TestUnknownEventTupleRaises(t *testing.T) {
	c := mustNew(t, DefaultConfig())
	_, err := c.DecodeEvents([]Event{{Type: NoteOn, Track: 5, Value: 60}})
	assert.Error(t, err)
}

func TestUnknownIdsAndStringsAreSkipped(t *testing.T) {
	c := mustNew(t, DefaultConfig())

	decoded, err := c.Decode([]int{-1, 60, c.Vocab().Len() + 7, 256 + 1, 128 + 60})
	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]model.Note{
		{Onset: 0, Duration: 2, Pitch: 60, Velocity: 64},
	}, decoded.Tracks[0].Notes)

	decoded, err = c.DecodeStrings([]string{
		"bogus", "note_on:0:60", "time_shift:2", "note_on:5:60", "note_off:0:60",
	})
	assert.NoError(err)
	assert.Equal([]model.Note{
		{Onset: 0, Duration: 2, Pitch: 60, Velocity: 64},
	}, decoded.Tracks[0].Notes)
}

func TestStringRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumTracks = 2
	cfg.EncodeInstrument = true
	cfg.UseEndOfSequenceEvent = true
	c := mustNew(t, cfg)

	m := twoTrackMusic()
	tokens, err := c.EncodeStrings(m)
	assert := assert.New(t)
	assert.NoError(err)

	decoded, err := c.DecodeStrings(tokens)
	assert.NoError(err)
	assert.Equal(len(m.Tracks), len(decoded.Tracks))
	for i := range m.Tracks {
		assert.Equal(m.Tracks[i].Notes, decoded.Tracks[i].Notes)
	}
}

func TestParseEvent(t *testing.T) {
	cases := []Event{
		{Type: NoteOn, Track: 1, Value: 60},
		{Type: NoteOff, Track: 0, Value: AllNotes},
		{Type: TimeShift, Value: 42},
		{Type: Velocity, Track: 1, Value: 7},
		{Type: Program, Track: 0, Value: 25},
		{Type: Drum, Track: 1},
		{Type: EOS},
	}
	for _, e := range cases {
		parsed, err := ParseEvent(e.String())
		assert := assert.New(t)
		assert.NoError(err)
		assert.Equal(e, parsed)
	}

	for _, bad := range []string{"", "nope", "note_on:1", "time_shift:x", "eos:1"} {
		_, err := ParseEvent(bad)
		assert.Error(t, err, bad)
	}
}
