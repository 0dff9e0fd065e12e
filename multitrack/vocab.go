package multitrack

// Vocab is the bijective event<->id mapping. It is built once from a
// Config and never mutated, so two codecs constructed with the same
// configuration assign identical ids and may be shared across
// goroutines freely.
type Vocab struct {
	ids    map[Event]int
	events []Event
}

// The enumeration order below defines the integer ids and must stay
// put: token streams are only portable between codecs that enumerate
// identically.
func newVocab(cfg Config) *Vocab {
	v := &Vocab{ids: make(map[Event]int)}
	add := func(e Event) {
		v.ids[e] = len(v.events)
		v.events = append(v.events, e)
	}

	ntracks := cfg.trackCount()
	for tr := 0; tr < ntracks; tr++ {
		for p := 0; p < 128; p++ {
			add(Event{Type: NoteOn, Track: tr, Value: p})
		}
	}
	for tr := 0; tr < ntracks; tr++ {
		if cfg.UseSingleNoteOffEvent {
			add(Event{Type: NoteOff, Track: tr, Value: AllNotes})
			continue
		}
		for p := 0; p < 128; p++ {
			add(Event{Type: NoteOff, Track: tr, Value: p})
		}
	}
	for t := 1; t <= cfg.MaxTimeShift; t++ {
		add(Event{Type: TimeShift, Value: t})
	}
	if cfg.EncodeVelocity {
		for tr := 0; tr < ntracks; tr++ {
			for b := 0; b < cfg.VelocityBins; b++ {
				add(Event{Type: Velocity, Track: tr, Value: b})
			}
		}
	}
	if cfg.EncodeInstrument {
		for tr := 0; tr < ntracks; tr++ {
			for p := 0; p < 128; p++ {
				add(Event{Type: Program, Track: tr, Value: p})
			}
		}
		for tr := 0; tr < ntracks; tr++ {
			add(Event{Type: Drum, Track: tr})
		}
	}
	if cfg.UseEndOfSequenceEvent {
		add(Event{Type: EOS})
	}
	return v
}

func (v *Vocab) ID(e Event) (int, bool) {
	id, ok := v.ids[e]
	return id, ok
}

func (v *Vocab) EventAt(id int) (Event, bool) {
	if id < 0 || id >= len(v.events) {
		return Event{}, false
	}
	return v.events[id], true
}

func (v *Vocab) Len() int {
	return len(v.events)
}

// Events returns the id-ordered entries as a copy.
func (v *Vocab) Events() []Event {
	res := make([]Event, len(v.events))
	copy(res, v.events)
	return res
}
