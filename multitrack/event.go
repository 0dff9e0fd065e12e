// Package multitrack implements the multi-track event representation:
// notes from up to NumTracks tracks become a single stream of note-on,
// note-off, time-shift, velocity, program, drum and end-of-sequence
// tokens, available as event tuples, colon-joined strings, or dense
// integer ids through a fixed vocabulary.
package multitrack

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type EventType int

const (
	NoteOn EventType = iota
	NoteOff
	TimeShift
	Velocity
	Program
	Drum
	EOS
)

func (t EventType) String() string {
	switch t {
	case NoteOn:
		return "note_on"
	case NoteOff:
		return "note_off"
	case TimeShift:
		return "time_shift"
	case Velocity:
		return "velocity"
	case Program:
		return "program"
	case Drum:
		return "drum"
	case EOS:
		return "eos"
	}
	return fmt.Sprintf("unknown(%d)", int(t))
}

// AllNotes is the pitch of a note-off that closes every open note on
// its track, used when UseSingleNoteOffEvent is set.
const AllNotes = 128

// Event is one vocabulary entry. Track is meaningful for note, velocity,
// program and drum events; Value holds the pitch, velocity bin, program
// number, or shift size depending on Type. Unused fields are zero so
// events compare equal structurally.
type Event struct {
	Type  EventType
	Track int
	Value int
}

func (e Event) String() string {
	switch e.Type {
	case TimeShift:
		return fmt.Sprintf("time_shift:%d", e.Value)
	case Drum:
		return fmt.Sprintf("drum:%d", e.Track)
	case EOS:
		return "eos"
	}
	return fmt.Sprintf("%s:%d:%d", e.Type, e.Track, e.Value)
}

// ParseEvent is the inverse of Event.String.
func ParseEvent(token string) (Event, error) {
	parts := strings.Split(token, ":")
	var e Event
	switch parts[0] {
	case "note_on":
		e.Type = NoteOn
	case "note_off":
		e.Type = NoteOff
	case "time_shift":
		e.Type = TimeShift
	case "velocity":
		e.Type = Velocity
	case "program":
		e.Type = Program
	case "drum":
		e.Type = Drum
	case "eos":
		e.Type = EOS
	default:
		return e, errors.Errorf("unknown event type %q", parts[0])
	}

	var wantArgs int
	switch e.Type {
	case EOS:
		wantArgs = 0
	case TimeShift, Drum:
		wantArgs = 1
	default:
		wantArgs = 2
	}
	if len(parts)-1 != wantArgs {
		return Event{}, errors.Errorf("token %q has %v args, want %v", token, len(parts)-1, wantArgs)
	}

	args := make([]int, 0, wantArgs)
	for _, p := range parts[1:] {
		v, err := strconv.Atoi(p)
		if err != nil {
			return Event{}, errors.Wrapf(err, "token %q has a non-integer arg", token)
		}
		args = append(args, v)
	}

	switch e.Type {
	case TimeShift:
		e.Value = args[0]
	case Drum:
		e.Track = args[0]
	case EOS:
	default:
		e.Track = args[0]
		e.Value = args[1]
	}
	return e, nil
}
