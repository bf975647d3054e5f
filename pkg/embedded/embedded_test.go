package embedded

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/gameplay.yaml":       {Data: []byte("player: {speed: 3}\n")},
		"data/levels/sandbox.yaml": {Data: []byte("name: sandbox\n")},
		"data/levels/cells.yaml":   {Data: []byte("name: cells\n")},
	}
}

func reset(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		dataFS = nil
		initialized = false
	})
}

func TestNotInitialized(t *testing.T) {
	reset(t)
	Init(nil)
	assert.False(t, IsInitialized())

	_, err := ReadFile("data/gameplay.yaml")
	assert.ErrorIs(t, err, ErrNotInitialized)
	_, err = Glob("data/*.yaml")
	assert.ErrorIs(t, err, ErrNotInitialized)
	assert.False(t, Exists("data/gameplay.yaml"))
}

func TestReadFile(t *testing.T) {
	reset(t)
	Init(testFS())
	require.True(t, IsInitialized())

	data, err := ReadFile("./data/gameplay.yaml")
	require.NoError(t, err)
	assert.Equal(t, "player: {speed: 3}\n", string(data))

	_, err = ReadFile("assets/pistol.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must start with 'data/'")

	_, err = ReadFile("data/missing.yaml")
	assert.Error(t, err)
}

func TestExistsAndGlob(t *testing.T) {
	reset(t)
	Init(testFS())

	assert.True(t, Exists("data/levels/sandbox.yaml"))
	assert.False(t, Exists("data/levels/yard.yaml"))

	matches, err := Glob("data/levels/*.yaml")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"data/levels/sandbox.yaml", "data/levels/cells.yaml"}, matches)
}
