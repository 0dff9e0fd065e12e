package midi

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/salu133445/musecodec/model"
)

func TestRoundTripThroughSMF(t *testing.T) {
	m := &model.Music{
		Resolution: 480,
		Tracks: []model.Track{
			{Program: 0, Notes: []model.Note{
				{Onset: 0, Duration: 240, Pitch: 60, Velocity: 100},
				{Onset: 240, Duration: 240, Pitch: 64, Velocity: 100},
			}},
			{Program: 25, Notes: []model.Note{
				{Onset: 0, Duration: 480, Pitch: 48, Velocity: 80},
			}},
			{IsDrum: true, Notes: []model.Note{
				{Onset: 0, Duration: 120, Pitch: 36, Velocity: 110},
			}},
		},
	}

	decoded := ToMusic(FromMusic(m))

	assert := assert.New(t)
	assert.Equal(m.Resolution, decoded.Resolution)
	assert.Equal(len(m.Tracks), len(decoded.Tracks))
	for i := range m.Tracks {
		assert.Equal(m.Tracks[i].Program, decoded.Tracks[i].Program)
		assert.Equal(m.Tracks[i].IsDrum, decoded.Tracks[i].IsDrum)
		assert.Equal(m.Tracks[i].Notes, decoded.Tracks[i].Notes)
	}
}

func TestTrackChannelSkipsDrumChannel(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(uint8(9), trackChannel(3, true))
	for i := 0; i < 30; i++ {
		ch := trackChannel(i, false)
		assert.NotEqual(uint8(9), ch)
		assert.Less(ch, uint8(16))
	}
}

func TestReadMidiRejectsGarbage(t *testing.T) {
	_, err := ReadMidi([]byte("not a midi file"))
	assert.Error(t, err)
}
