package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testLevelYAML = `
name: test
width: 10
height: 8
playerSpawn: {x: 1, y: 2}
colliders:
  - {x: 0, y: 0, width: 10, height: 0.5}
props:
  - {type: barrel, position: {x: 2, y: 2}}
  - {type: locker, position: {x: 3, y: 2}}
enemies:
  - {type: prisoner, position: {x: 5, y: 5}}
  - {type: policeman, position: {x: 6, y: 5}, size: 1.5}
`

func TestParseLevelConfig(t *testing.T) {
	cfg, err := ParseLevelConfig([]byte(testLevelYAML))
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Name)
	assert.Equal(t, Vec2{X: 1, Y: 2}, cfg.PlayerSpawn)
	assert.Len(t, cfg.Colliders, 1)
	assert.Len(t, cfg.Props, 2)
	require.Len(t, cfg.Enemies, 2)
	assert.Equal(t, 1.0, cfg.Enemies[0].Size, "size defaults to 1")
	assert.Equal(t, 1.5, cfg.Enemies[1].Size)
}

func TestLoadLevelConfig(t *testing.T) {
	path := writeTempConfig(t, "level.yaml", testLevelYAML)
	cfg, err := LoadLevelConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "test", cfg.Name)
}

func TestParseLevelConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing name", "width: 1"},
		{"flat collider", "name: a\ncolliders: [{x: 0, y: 0, width: 0, height: 1}]"},
		{"unknown prop", "name: a\nprops: [{type: crate}]"},
		{"unknown enemy", "name: a\nenemies: [{type: warden}]"},
		{"negative size", "name: a\nenemies: [{type: prisoner, size: -1}]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLevelConfig([]byte(tt.yaml))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
