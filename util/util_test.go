package util

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetKeys(t *testing.T) {
	m := map[string]int{"b": 2, "a": 1}
	keys := GetKeys(m)
	sort.Strings(keys)
	assert.Equal(t, []string{"a", "b"}, keys)
}

func TestMinAndClamp(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(3, Min(3, 7))
	assert.Equal(3, Min(7, 3))
	assert.Equal(0, Clamp(-5, 0, 127))
	assert.Equal(127, Clamp(300, 0, 127))
	assert.Equal(64, Clamp(64, 0, 127))
}

func TestBinaryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.dat")
	data := map[string]string{"a.json": "/tmp/a.mid", "b.json": "/tmp/b.mid"}

	CreateBinary(path, data)
	loaded := ReadBinaryOrPanic[map[string]string](path)

	assert.Equal(t, data, loaded)
}

func TestGatherAllMidiPaths(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.mid", "b.midi", "c.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0666); err != nil {
			t.Fatal(err)
		}
	}

	assert := assert.New(t)
	assert.Equal(2, len(GatherAllMidiPaths(dir, 0)))
	assert.Equal(1, len(GatherAllMidiPaths(dir, 1)))
}
