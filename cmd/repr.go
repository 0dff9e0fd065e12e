package cmd

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/salu133445/musecodec/event"
	"github.com/salu133445/musecodec/model"
	"github.com/salu133445/musecodec/multitrack"
	"github.com/salu133445/musecodec/notetuple"
	"github.com/salu133445/musecodec/pianoroll"
	"github.com/salu133445/musecodec/pitch"
)

// Flags shared by every command that runs a codec.
var (
	reprName      string
	numTracks     int
	instrument    bool
	velocityBins  int
	maxTimeShift  int
	duplicateMode string
	useHold       bool
	useStartEnd   bool
)

func addReprFlags(c *cobra.Command) {
	c.Flags().StringVar(&reprName, "repr", "events", "representation: events, multitrack, tuples, pitch or pianoroll")
	c.Flags().IntVar(&numTracks, "tracks", 0, "number of tracks for the multitrack codec, 0 for a single merged track")
	c.Flags().BoolVar(&instrument, "instrument", false, "emit program/drum tokens (multitrack only, needs --tracks)")
	c.Flags().IntVar(&velocityBins, "velocity-bins", 32, "number of velocity bins")
	c.Flags().IntVar(&maxTimeShift, "max-shift", 100, "largest single time-shift token, in ticks")
	c.Flags().StringVar(&duplicateMode, "duplicate-mode", "fifo", "note-off resolution: fifo, lifo or close_all")
	c.Flags().BoolVar(&useHold, "hold", false, "use hold tokens in the pitch representation")
	c.Flags().BoolVar(&useStartEnd, "start-end", false, "store (start, end) instead of (onset, duration) tuples")
}

func newMultitrackCodec() (*multitrack.Codec, error) {
	mode, err := multitrack.ParseDuplicateNoteMode(duplicateMode)
	if err != nil {
		return nil, err
	}
	cfg := multitrack.DefaultConfig()
	cfg.NumTracks = numTracks
	cfg.EncodeInstrument = instrument
	cfg.VelocityBins = velocityBins
	cfg.MaxTimeShift = maxTimeShift
	cfg.DuplicateNoteMode = mode
	cfg.Logger = logger
	return multitrack.New(cfg)
}

func newEventCodec() (*event.Codec, error) {
	mode, err := multitrack.ParseDuplicateNoteMode(duplicateMode)
	if err != nil {
		return nil, err
	}
	cfg := event.DefaultConfig()
	cfg.VelocityBins = velocityBins
	cfg.MaxTimeShift = maxTimeShift
	cfg.DuplicateNoteMode = mode
	cfg.Logger = logger
	return event.New(cfg)
}

// encodeMusic runs the selected representation and returns whatever
// array shape it produces, ready for JSON.
func encodeMusic(m *model.Music) (any, error) {
	switch reprName {
	case "tuples":
		c := notetuple.New()
		c.UseStartEnd = useStartEnd
		return c.Encode(m.AllNotes()), nil
	case "pitch":
		c := pitch.New()
		c.UseHoldState = useHold
		return c.Encode(m.AllNotes()), nil
	case "pianoroll":
		return pianoroll.New().Encode(m.AllNotes()), nil
	case "events":
		c, err := newEventCodec()
		if err != nil {
			return nil, err
		}
		return c.Encode(m.AllNotes())
	case "multitrack":
		c, err := newMultitrackCodec()
		if err != nil {
			return nil, err
		}
		return c.Encode(m)
	}
	return nil, errors.Errorf("unknown representation %q", reprName)
}

// decodeTokens is the inverse of encodeMusic over the JSON form.
func decodeTokens(dat []byte) (*model.Music, error) {
	singleTrack := func(notes []model.Note) *model.Music {
		return &model.Music{
			Resolution: model.DefaultResolution,
			Tracks:     []model.Track{{Notes: notes}},
		}
	}
	switch reprName {
	case "tuples":
		var rows [][]int
		if err := json.Unmarshal(dat, &rows); err != nil {
			return nil, errors.Wrap(err, "could not parse tuple rows")
		}
		c := notetuple.New()
		c.UseStartEnd = useStartEnd
		notes, err := c.Decode(rows)
		if err != nil {
			return nil, err
		}
		return singleTrack(notes), nil
	case "pitch":
		var arr []int
		if err := json.Unmarshal(dat, &arr); err != nil {
			return nil, errors.Wrap(err, "could not parse pitch array")
		}
		c := pitch.New()
		c.UseHoldState = useHold
		return singleTrack(c.Decode(arr)), nil
	case "pianoroll":
		var roll pianoroll.Roll
		if err := json.Unmarshal(dat, &roll); err != nil {
			return nil, errors.Wrap(err, "could not parse piano roll")
		}
		return singleTrack(pianoroll.New().Decode(roll)), nil
	case "events":
		var ids []int
		if err := json.Unmarshal(dat, &ids); err != nil {
			return nil, errors.Wrap(err, "could not parse token ids")
		}
		c, err := newEventCodec()
		if err != nil {
			return nil, err
		}
		notes, err := c.Decode(ids)
		if err != nil {
			return nil, err
		}
		return singleTrack(notes), nil
	case "multitrack":
		var ids []int
		if err := json.Unmarshal(dat, &ids); err != nil {
			return nil, errors.Wrap(err, "could not parse token ids")
		}
		c, err := newMultitrackCodec()
		if err != nil {
			return nil, err
		}
		return c.Decode(ids)
	}
	return nil, errors.Errorf("unknown representation %q", reprName)
}
