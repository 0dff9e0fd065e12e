package multitrack

import (
	"sort"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/salu133445/musecodec/model"
	"github.com/salu133445/musecodec/util"
)

type Codec struct {
	cfg   Config
	vocab *Vocab
	log   *zap.Logger
}

func New(cfg Config) (*Codec, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Codec{cfg: cfg, vocab: newVocab(cfg), log: log}, nil
}

func (c *Codec) Config() Config {
	return c.cfg
}

func (c *Codec) Vocab() *Vocab {
	return c.vocab
}

// keepTracks picks which source tracks get encoded. In single virtual
// track mode everything merges into track 0; otherwise up to NumTracks
// tracks are kept and the excess is dropped with a warning.
func (c *Codec) keepTracks(m *model.Music) []model.Track {
	if c.cfg.NumTracks == 0 {
		return []model.Track{{Notes: m.AllNotes()}}
	}
	tracks := m.Tracks
	if c.cfg.IgnoreEmptyTracks {
		kept := make([]model.Track, 0, len(tracks))
		for _, tr := range tracks {
			if len(tr.Notes) > 0 {
				kept = append(kept, tr)
			}
		}
		tracks = kept
	}
	if len(tracks) > c.cfg.NumTracks {
		c.log.Warn("dropping tracks beyond the codec's capacity",
			zap.Int("tracks", len(tracks)),
			zap.Int("num_tracks", c.cfg.NumTracks))
		tracks = tracks[:c.cfg.NumTracks]
	}
	return tracks
}

type timedEvent struct {
	time   int
	events []Event
}

// EncodeEvents turns the music into the event tuple sequence. Encode
// and EncodeStrings are pure re-encodings of the same sequence.
func (c *Codec) EncodeEvents(m *model.Music) ([]Event, error) {
	if c.cfg.CheckResolution && m.Resolution != c.cfg.Resolution {
		return nil, errors.Errorf(
			"resolution mismatch: music has %v, codec expects %v",
			m.Resolution, c.cfg.Resolution)
	}
	tracks := c.keepTracks(m)

	var out []Event
	if c.cfg.NumTracks != 0 && c.cfg.EncodeInstrument {
		for i, tr := range tracks {
			out = append(out, Event{Type: Program, Track: i, Value: int(uint8(tr.Program))})
			if tr.IsDrum {
				out = append(out, Event{Type: Drum, Track: i})
			}
		}
	}

	type noteRef struct {
		note  model.Note
		track int
	}
	var refs []noteRef
	for i, tr := range tracks {
		for _, n := range tr.Notes {
			refs = append(refs, noteRef{n, i})
		}
	}
	sort.SliceStable(refs, func(i, j int) bool {
		if refs[i].note != refs[j].note {
			return model.NoteLess(refs[i].note, refs[j].note)
		}
		return refs[i].track < refs[j].track
	})

	lastBin := make([]int, len(tracks))
	for i := range lastBin {
		lastBin[i] = -1
	}

	// Note-ons carry their velocity token; note-offs are collected
	// separately and merged back in by stable time sort, so equal-time
	// note-ons come first.
	var ons, offs []timedEvent
	for _, r := range refs {
		var evs []Event
		if c.cfg.EncodeVelocity {
			bin := util.Clamp(r.note.Velocity, 0, 127) * c.cfg.VelocityBins / 128
			if c.cfg.ForceVelocityEvent || bin != lastBin[r.track] {
				evs = append(evs, Event{Type: Velocity, Track: r.track, Value: bin})
				lastBin[r.track] = bin
			}
		}
		evs = append(evs, Event{Type: NoteOn, Track: r.track, Value: int(uint8(r.note.Pitch))})
		ons = append(ons, timedEvent{r.note.Onset, evs})

		offPitch := int(uint8(r.note.Pitch))
		if c.cfg.UseSingleNoteOffEvent {
			offPitch = AllNotes
		}
		offs = append(offs, timedEvent{r.note.End(), []Event{{Type: NoteOff, Track: r.track, Value: offPitch}}})
	}

	all := append(ons, offs...)
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].time < all[j].time
	})

	cursor := 0
	for _, te := range all {
		gap := te.time - cursor
		for gap > 0 {
			shift := util.Min(gap, c.cfg.MaxTimeShift)
			out = append(out, Event{Type: TimeShift, Value: shift})
			gap -= shift
		}
		cursor = te.time
		out = append(out, te.events...)
	}

	if c.cfg.UseEndOfSequenceEvent {
		out = append(out, Event{Type: EOS})
	}
	return out, nil
}

// Encode returns the integer id sequence.
func (c *Codec) Encode(m *model.Music) ([]int, error) {
	events, err := c.EncodeEvents(m)
	if err != nil {
		return nil, err
	}
	ids := make([]int, 0, len(events))
	for _, e := range events {
		id, ok := c.vocab.ID(e)
		if !ok {
			return nil, errors.Errorf("event %v is not in the vocabulary", e)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// EncodeStrings returns the colon-joined token strings.
func (c *Codec) EncodeStrings(m *model.Music) ([]string, error) {
	events, err := c.EncodeEvents(m)
	if err != nil {
		return nil, err
	}
	tokens := make([]string, 0, len(events))
	for _, e := range events {
		tokens = append(tokens, e.String())
	}
	return tokens, nil
}
