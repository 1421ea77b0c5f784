package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsMidiPath(t *testing.T) {
	assert := assert.New(t)
	assert.True(IsMidiPath("a.mid"))
	assert.True(IsMidiPath("dir/B.MIDI"))
	assert.False(IsMidiPath("a.mid.txt"))
	assert.False(IsMidiPath("midi"))
}

func TestGatherAllMidiPaths(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.mid", "a.midi", "skip.wav"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0666))
	}

	all, err := GatherAllMidiPaths(dir, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.midi"), filepath.Join(dir, "b.mid")}, all)

	one, err := GatherAllMidiPaths(dir, 1)
	require.NoError(t, err)
	assert.Len(t, one, 1)
}

func TestGatherAllMidiPathsMissingDir(t *testing.T) {
	_, err := GatherAllMidiPaths(filepath.Join(t.TempDir(), "nope"), 0)
	assert.Error(t, err)
}

func TestCreateFileNumMap(t *testing.T) {
	m := CreateFileNumMap([]string{"x.mid", "y.mid"})
	assert.Equal(t, "x.mid", m[0])
	assert.Equal(t, "y.mid", m[1])
}
