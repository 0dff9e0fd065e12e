package multitrack

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/salu133445/musecodec/model"
)

type openNote struct {
	onset    int
	velocity int
}

type trackState struct {
	velocity   int
	program    int
	programSet bool
	isDrum     bool
	open       map[int][]openNote
	notes      []model.Note
}

// Decode replays an integer id sequence. Ids outside the vocabulary
// are skipped with a warning rather than failing the whole decode.
func (c *Codec) Decode(ids []int) (*model.Music, error) {
	events := make([]Event, 0, len(ids))
	for _, id := range ids {
		e, ok := c.vocab.EventAt(id)
		if !ok {
			c.log.Warn("skipping token id outside the vocabulary", zap.Int("id", id))
			continue
		}
		events = append(events, e)
	}
	return c.replay(events), nil
}

// DecodeStrings replays token strings, skipping anything unparsable or
// outside the vocabulary.
func (c *Codec) DecodeStrings(tokens []string) (*model.Music, error) {
	events := make([]Event, 0, len(tokens))
	for _, token := range tokens {
		e, err := ParseEvent(token)
		if err != nil {
			c.log.Warn("skipping malformed token", zap.String("token", token), zap.Error(err))
			continue
		}
		if _, ok := c.vocab.ID(e); !ok {
			c.log.Warn("skipping token outside the vocabulary", zap.String("token", token))
			continue
		}
		events = append(events, e)
	}
	return c.replay(events), nil
}

// DecodeEvents replays event tuples. Unlike the id and string forms,
// an event missing from the vocabulary is an error.
func (c *Codec) DecodeEvents(events []Event) (*model.Music, error) {
	for _, e := range events {
		if _, ok := c.vocab.ID(e); !ok {
			return nil, errors.Errorf("event %v is not in the vocabulary", e)
		}
	}
	return c.replay(events), nil
}

func (c *Codec) replay(events []Event) *model.Music {
	states := make(map[int]*trackState)
	maxTrack := -1
	st := func(id int) *trackState {
		if s, ok := states[id]; ok {
			return s
		}
		s := &trackState{
			velocity: c.cfg.DefaultVelocity,
			program:  c.cfg.DefaultProgram,
			isDrum:   c.cfg.DefaultIsDrum,
			open:     make(map[int][]openNote),
		}
		states[id] = s
		if id > maxTrack {
			maxTrack = id
		}
		return s
	}

	now := 0
loop:
	for _, e := range events {
		switch e.Type {
		case TimeShift:
			now += e.Value
		case NoteOn:
			s := st(e.Track)
			s.open[e.Value] = append(s.open[e.Value], openNote{onset: now, velocity: s.velocity})
		case NoteOff:
			c.closeNotes(st(e.Track), e.Value, now)
		case Velocity:
			st(e.Track).velocity = e.Value * 128 / c.cfg.VelocityBins
		case Program:
			s := st(e.Track)
			if !s.programSet {
				s.program = e.Value
				s.programSet = true
			}
		case Drum:
			st(e.Track).isDrum = true
		case EOS:
			break loop
		}
	}
	// open notes with no note-off are dropped, like every other
	// recoverable decode condition

	music := &model.Music{Resolution: c.cfg.Resolution}
	if c.cfg.NumTracks == 0 {
		tr := model.Track{Program: c.cfg.DefaultProgram, IsDrum: c.cfg.DefaultIsDrum}
		if s, ok := states[0]; ok {
			model.SortNotes(s.notes)
			tr.Notes = s.notes
		}
		music.Tracks = []model.Track{tr}
		return music
	}

	for id := 0; id <= maxTrack; id++ {
		tr := model.Track{Program: c.cfg.DefaultProgram, IsDrum: c.cfg.DefaultIsDrum}
		if s, ok := states[id]; ok {
			tr.Program = s.program
			tr.IsDrum = s.isDrum
			model.SortNotes(s.notes)
			tr.Notes = s.notes
		}
		if c.cfg.IgnoreEmptyTracks && len(tr.Notes) == 0 {
			continue
		}
		music.Tracks = append(music.Tracks, tr)
	}
	return music
}

// closeNotes resolves a note-off against the track's open-note queues.
// A note-off with nothing open is ignored.
func (c *Codec) closeNotes(s *trackState, pitch int, now int) {
	finish := func(p int, o openNote) {
		dur := now - o.onset
		if dur < 1 {
			dur = 1
		}
		s.notes = append(s.notes, model.Note{
			Onset:    o.onset,
			Duration: dur,
			Pitch:    p,
			Velocity: o.velocity,
		})
	}

	if pitch == AllNotes {
		for p, q := range s.open {
			for _, o := range q {
				finish(p, o)
			}
			delete(s.open, p)
		}
		return
	}

	q := s.open[pitch]
	if len(q) == 0 {
		c.log.Debug("ignoring note-off with no open note", zap.Int("pitch", pitch))
		return
	}
	switch c.cfg.DuplicateNoteMode {
	case DuplicateFIFO:
		finish(pitch, q[0])
		s.open[pitch] = q[1:]
	case DuplicateLIFO:
		finish(pitch, q[len(q)-1])
		s.open[pitch] = q[:len(q)-1]
	case DuplicateCloseAll:
		for _, o := range q {
			finish(pitch, o)
		}
		delete(s.open, pitch)
	}
}
