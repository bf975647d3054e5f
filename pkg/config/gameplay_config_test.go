package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultGameplayConfig(t *testing.T) {
	cfg := DefaultGameplayConfig()
	require.NoError(t, cfg.Validate())

	assert.InDelta(t, 1.0/60.0, cfg.Physics.StepDelta, 1e-12)
	assert.Equal(t, 5, cfg.Physics.MaxStepsPerFrame)
	assert.Equal(t, 3.0, cfg.Player.Speed)
	assert.Equal(t, 0.4, cfg.Enemy.MeleeRange)
	assert.Equal(t, 25.0, cfg.Enemy.MeleeDamage)
	assert.Equal(t, 0.6, cfg.Enemy.AttackCooldown)
	assert.Equal(t, 5.0, cfg.Enemy.DetectRadius)
	assert.Equal(t, 5.0, cfg.Camera.FollowSpeed)
}

func TestParseGameplayConfig_PartialOverride(t *testing.T) {
	cfg, err := ParseGameplayConfig([]byte(`
enemy:
  detectRadius: 8
camera:
  followSpeed: 2
`))
	require.NoError(t, err)

	assert.Equal(t, 8.0, cfg.Enemy.DetectRadius)
	assert.Equal(t, 2.0, cfg.Camera.FollowSpeed)
	// 未写的字段保留默认值
	assert.Equal(t, 0.6, cfg.Enemy.AttackCooldown)
	assert.Equal(t, "prisoner", cfg.Player.Archetype)
}

func TestParseGameplayConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero step", "physics: {stepDelta: 0}"},
		{"zero max steps", "physics: {maxStepsPerFrame: 0}"},
		{"negative speed", "player: {speed: -1}"},
		{"zero health", "enemy: {health: 0}"},
		{"negative melee range", "enemy: {meleeRange: -0.1}"},
		{"negative cooldown", "enemy: {attackCooldown: -1}"},
		{"zero viewport", "camera: {viewportWidth: 0}"},
		{"missing archetype", "player: {archetype: \"\"}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGameplayConfig([]byte(tt.yaml))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestParseGameplayConfig_BadYAML(t *testing.T) {
	_, err := ParseGameplayConfig([]byte("physics: ["))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse gameplay config YAML")
}

func TestLoadGameplayConfig(t *testing.T) {
	path := writeTempConfig(t, "gameplay.yaml", "player: {speed: 4}\n")
	cfg, err := LoadGameplayConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 4.0, cfg.Player.Speed)

	_, err = LoadGameplayConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
