// Package midi converts between standard MIDI files and the in-memory
// music model. The real parsing is gomidi's job; this is glue.
package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/salu133445/musecodec/model"
	"github.com/salu133445/musecodec/util"
)

// ReadMidi parses raw MIDI bytes.
func ReadMidi(dat []byte) (s *smf.SMF, e error) {
	var blank smf.SMF

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			s, e = &blank, errors.New(r)
		}
	}()

	res, err := smf.ReadFrom(bytes.NewReader(dat))

	if err != nil {
		errText := fmt.Sprintf("Error parsing midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}

	return res, nil
}

func ReadMidiFile(filepath string) (*smf.SMF, error) {
	dat, err := os.ReadFile(filepath)

	if err != nil {
		errText := fmt.Sprintf("Error reading midi file... %s", err.Error())
		return &smf.SMF{}, errors.New(errText)
	}

	return ReadMidi(dat)
}

type noteKey struct {
	channel uint8
	key     uint8
}

// ToMusic extracts notes from an SMF, pairing note-ons with the oldest
// matching note-off per (channel, key). Tracks without notes are
// dropped; channel 10 marks a track as drums.
func ToMusic(s *smf.SMF) *model.Music {
	resolution := model.DefaultResolution
	if mt, ok := s.TimeFormat.(smf.MetricTicks); ok {
		resolution = int(mt.Resolution())
	}
	music := &model.Music{Resolution: resolution}

	for _, events := range s.Tracks {
		var tr model.Track
		var programSet bool
		open := make(map[noteKey][]model.Note)

		closeNote := func(k noteKey, absTicks int64) {
			q := open[k]
			if len(q) == 0 {
				return
			}
			n := q[0]
			open[k] = q[1:]
			n.Duration = int(absTicks) - n.Onset
			if n.Duration < 1 {
				n.Duration = 1
			}
			tr.Notes = append(tr.Notes, n)
		}

		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			var channel uint8
			var key uint8
			var velocity uint8
			var program uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				k := noteKey{channel, key}
				if velocity == 0 {
					closeNote(k, absTicks)
					break
				}
				if channel == 9 {
					tr.IsDrum = true
				}
				open[k] = append(open[k], model.Note{
					Onset:    int(absTicks),
					Pitch:    int(key),
					Velocity: int(velocity),
				})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				closeNote(noteKey{channel, key}, absTicks)
			case event.Message.GetProgramChange(&channel, &program):
				if !programSet {
					tr.Program = int(program)
					programSet = true
				}
			}
		}
		// note-ons that never closed are dropped

		if len(tr.Notes) == 0 {
			continue
		}
		model.SortNotes(tr.Notes)
		music.Tracks = append(music.Tracks, tr)
	}
	return music
}

// trackChannel cycles non-drum tracks over channels 0-15 skipping the
// drum channel, which drum tracks always get.
func trackChannel(i int, drum bool) uint8 {
	if drum {
		return 9
	}
	ch := i % 15
	if ch >= 9 {
		ch++
	}
	return uint8(ch)
}

// FromMusic renders the model back to an SMF, one MIDI track per model
// track with a leading program change.
func FromMusic(m *model.Music) *smf.SMF {
	res := smf.New()
	resolution := m.Resolution
	if resolution < 1 {
		resolution = model.DefaultResolution
	}
	res.TimeFormat = smf.MetricTicks(uint16(resolution))

	for i, tr := range m.Tracks {
		ch := trackChannel(i, tr.IsDrum)

		type timedMsg struct {
			tick int
			msg  midi.Message
		}
		msgs := []timedMsg{{0, midi.ProgramChange(ch, uint8(tr.Program))}}
		for _, n := range model.SortedNotes(tr.Notes) {
			// velocity 0 would read back as a note-off
			vel := uint8(util.Clamp(n.Velocity, 1, 127))
			msgs = append(msgs,
				timedMsg{n.Onset, midi.NoteOn(ch, uint8(n.Pitch), vel)},
				timedMsg{n.End(), midi.NoteOff(ch, uint8(n.Pitch))})
		}
		sort.SliceStable(msgs, func(a, b int) bool {
			return msgs[a].tick < msgs[b].tick
		})

		var track smf.Track
		last := 0
		for _, tm := range msgs {
			track.Add(uint32(tm.tick-last), tm.msg)
			last = tm.tick
		}
		track.Close(0)
		res.Add(track)
	}
	return res
}

func WriteMidiFile(filepath string, m *model.Music) error {
	f, err := os.Create(filepath)
	if err != nil {
		return fmt.Errorf("could not create midi file: %w", err)
	}
	defer f.Close()
	_, err = FromMusic(m).WriteTo(f)
	return err
}
