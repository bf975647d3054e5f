package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWeaponsConfig(t *testing.T) {
	cfg := DefaultWeaponsConfig()
	require.NoError(t, cfg.Validate())
	require.Len(t, cfg.Weapons, 2)

	pistol := cfg.Weapons[0]
	assert.Equal(t, "pistol", pistol.Name)
	assert.Equal(t, Vec2{X: 0.2, Y: 0.02}, pistol.Muzzle)
	assert.Equal(t, 5.0, pistol.Bullet.Damage)
	assert.Equal(t, 10.0, pistol.Bullet.Speed)
	assert.Equal(t, DefaultBulletPoolSize, pistol.PoolSize)

	rifle := cfg.Weapons[1]
	assert.Equal(t, 10.0, rifle.Bullet.Damage)
	assert.Equal(t, 16.0, rifle.Bullet.Speed)
	assert.Equal(t, 8.0, rifle.Bullet.TimeToLive)

	idx, ok := cfg.Index("rifle")
	assert.True(t, ok)
	assert.Equal(t, 1, idx)
	_, ok = cfg.Index("laser")
	assert.False(t, ok)
}

func TestParseWeaponsConfig_AppliesDefaults(t *testing.T) {
	cfg, err := ParseWeaponsConfig([]byte(`
weapons:
  - name: shotgun
    cooldown: 0.5
    bullet: {size: {x: 0.1, y: 0.1}, speed: 8, damage: 3, timeToLive: 1}
`))
	require.NoError(t, err)
	require.Len(t, cfg.Weapons, 1)
	assert.Equal(t, DefaultBulletPoolSize, cfg.Weapons[0].PoolSize)
	assert.Equal(t, "shotgun", cfg.Weapons[0].Region)
	assert.Equal(t, "shotgun_bullet", cfg.Weapons[0].Bullet.Region)
}

func TestParseWeaponsConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty list", "weapons: []"},
		{"missing name", "weapons: [{bullet: {size: {x: 1, y: 1}, timeToLive: 1}}]"},
		{"negative pool", "weapons: [{name: a, poolSize: -1, bullet: {size: {x: 1, y: 1}, timeToLive: 1}}]"},
		{"zero ttl", "weapons: [{name: a, bullet: {size: {x: 1, y: 1}, timeToLive: 0}}]"},
		{"zero bullet size", "weapons: [{name: a, bullet: {timeToLive: 1}}]"},
		{"duplicate", "weapons: [{name: a, bullet: {size: {x: 1, y: 1}, timeToLive: 1}}, {name: a, bullet: {size: {x: 1, y: 1}, timeToLive: 1}}]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseWeaponsConfig([]byte(tt.yaml))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
