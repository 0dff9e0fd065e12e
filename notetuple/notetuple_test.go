package notetuple

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/salu133445/musecodec/model"
)

func TestEncodesSimplePair(t *testing.T) {
	notes := []model.Note{
		{Onset: 0, Duration: 2, Pitch: 76, Velocity: 64},
		{Onset: 2, Duration: 2, Pitch: 75, Velocity: 64},
	}

	rows := New().Encode(notes)

	assert := assert.New(t)
	assert.Equal([][]int{{76, 0, 2, 64}, {75, 2, 2, 64}}, rows)
}

func TestEncodesStartEnd(t *testing.T) {
	c := New()
	c.UseStartEnd = true
	rows := c.Encode([]model.Note{{Onset: 2, Duration: 3, Pitch: 76, Velocity: 64}})

	assert := assert.New(t)
	assert.Equal([][]int{{76, 2, 5, 64}}, rows)
}

func TestRoundTrip(t *testing.T) {
	notes := []model.Note{
		{Onset: 0, Duration: 4, Pitch: 60, Velocity: 100},
		{Onset: 2, Duration: 2, Pitch: 64, Velocity: 80},
		{Onset: 6, Duration: 1, Pitch: 72, Velocity: 127},
	}

	for _, useStartEnd := range []bool{false, true} {
		c := New()
		c.UseStartEnd = useStartEnd
		decoded, err := c.Decode(c.Encode(notes))

		assert := assert.New(t)
		assert.NoError(err)
		assert.Equal(notes, decoded)
	}
}

func TestDecodeUsesDefaultVelocity(t *testing.T) {
	c := New()
	c.EncodeVelocity = false
	rows := c.Encode([]model.Note{{Onset: 0, Duration: 2, Pitch: 60, Velocity: 99}})

	assert := assert.New(t)
	assert.Equal([][]int{{60, 0, 2}}, rows)

	decoded, err := c.Decode(rows)
	assert.NoError(err)
	assert.Equal(model.DefaultVelocity, decoded[0].Velocity)
}

func TestDecodeRejectsShortRows(t *testing.T) {
	_, err := New().Decode([][]int{{60, 0}})
	assert.Error(t, err)
}

func TestDecodeClampsDuration(t *testing.T) {
	c := New()
	c.UseStartEnd = true
	decoded, err := c.Decode([][]int{{60, 4, 4, 64}})

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(1, decoded[0].Duration)
}
