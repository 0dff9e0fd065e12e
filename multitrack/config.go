package multitrack

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/salu133445/musecodec/model"
)

// DuplicateNoteMode says which open note a note-off closes when several
// notes of the same pitch are sounding on one track.
type DuplicateNoteMode int

const (
	// DuplicateFIFO closes the oldest open note.
	DuplicateFIFO DuplicateNoteMode = iota
	// DuplicateLIFO closes the newest open note.
	DuplicateLIFO
	// DuplicateCloseAll closes every open note of that pitch.
	DuplicateCloseAll
)

func (m DuplicateNoteMode) String() string {
	switch m {
	case DuplicateFIFO:
		return "fifo"
	case DuplicateLIFO:
		return "lifo"
	case DuplicateCloseAll:
		return "close_all"
	}
	return "invalid"
}

func ParseDuplicateNoteMode(s string) (DuplicateNoteMode, error) {
	switch s {
	case "fifo":
		return DuplicateFIFO, nil
	case "lifo":
		return DuplicateLIFO, nil
	case "close_all":
		return DuplicateCloseAll, nil
	}
	return 0, errors.Errorf("unknown duplicate note mode %q", s)
}

// Config fixes a codec's vocabulary and policies. It is read once at
// construction; changing fields afterwards has no effect on the codec.
type Config struct {
	// NumTracks bounds the track tokens in the vocabulary. Zero means
	// single virtual track mode: all input tracks merge into one and
	// instrument tokens are never emitted.
	NumTracks int

	// UseSingleNoteOffEvent replaces per-pitch note-offs with one
	// all-notes-off event per track.
	UseSingleNoteOffEvent bool
	UseEndOfSequenceEvent bool

	EncodeVelocity bool
	// ForceVelocityEvent emits a velocity token before every note-on
	// instead of only when the track's velocity bin changes.
	ForceVelocityEvent bool
	VelocityBins       int
	DefaultVelocity    int

	// EncodeInstrument adds program and drum tokens; requires a bounded
	// NumTracks.
	EncodeInstrument bool
	DefaultProgram   int
	DefaultIsDrum    bool

	MaxTimeShift int

	// IgnoreEmptyTracks drops noteless tracks before counting against
	// NumTracks on encode and omits them from decoded output.
	IgnoreEmptyTracks bool

	// Resolution is the tick resolution decoded Music is stamped with.
	// With CheckResolution, encode rejects input at any other
	// resolution instead of silently rescaling.
	Resolution      int
	CheckResolution bool

	DuplicateNoteMode DuplicateNoteMode

	// Logger is the sink for non-fatal warnings (track truncation,
	// skipped tokens). Defaults to a nop logger.
	Logger *zap.Logger
}

func DefaultConfig() Config {
	return Config{
		EncodeVelocity:    true,
		VelocityBins:      32,
		DefaultVelocity:   model.DefaultVelocity,
		MaxTimeShift:      100,
		Resolution:        model.DefaultResolution,
		DuplicateNoteMode: DuplicateFIFO,
	}
}

func (c Config) validate() error {
	if c.NumTracks < 0 {
		return errors.Errorf("num_tracks must not be negative, got %v", c.NumTracks)
	}
	if c.MaxTimeShift < 1 {
		return errors.Errorf("max_time_shift must be at least 1, got %v", c.MaxTimeShift)
	}
	if c.VelocityBins > 128 {
		return errors.Errorf("velocity_bins must not exceed 128, got %v", c.VelocityBins)
	}
	if c.EncodeVelocity && c.VelocityBins < 1 {
		return errors.Errorf("velocity_bins must be at least 1, got %v", c.VelocityBins)
	}
	if c.EncodeInstrument && c.NumTracks == 0 {
		return errors.New("encode_instrument requires a bounded num_tracks")
	}
	switch c.DuplicateNoteMode {
	case DuplicateFIFO, DuplicateLIFO, DuplicateCloseAll:
	default:
		return errors.Errorf("invalid duplicate note mode %v", int(c.DuplicateNoteMode))
	}
	return nil
}

// trackCount is the number of track ids in the vocabulary.
func (c Config) trackCount() int {
	if c.NumTracks == 0 {
		return 1
	}
	return c.NumTracks
}
