package systems

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gonewx/prison/pkg/components"
	"github.com/gonewx/prison/pkg/config"
	"github.com/gonewx/prison/pkg/ecs"
)

// recordingSpawner 记录每次发射请求
type recordingSpawner struct {
	pools     []int
	positions []cp.Vector
	angles    []float64
}

func (r *recordingSpawner) Spawn(pool int, position cp.Vector, angle float64) (ecs.EntityID, bool) {
	r.pools = append(r.pools, pool)
	r.positions = append(r.positions, position)
	r.angles = append(r.angles, angle)
	return ecs.EntityID(len(r.pools)), true
}

// armed 装备第 slot 把武器，瞄准 target 并按住开火
func (h *harness) armed(slot int, target cp.Vector) {
	h.playerSystem.Equip(h.player, slot)
	aim, _ := ecs.GetComponent[*components.AimComponent](h.em, h.aim)
	aim.Firing = true
	h.transform(h.aim).Position = target
}

func TestWeapon_DoubleFireWithinCooldownSpawnsOneBullet(t *testing.T) {
	h := newHarness(t, cp.Vector{})
	h.playerSystem.Equip(h.player, 0)
	h.input.Aim = cp.Vector{X: 5, Y: 0}
	h.input.Fire = true

	h.run(2)
	assert.Equal(t, 1, h.pool(0).ActiveCount())

	// 冷却 0.25 秒后才能再次开火
	h.run(10)
	assert.Equal(t, 1, h.pool(0).ActiveCount())
	h.run(10)
	assert.Equal(t, 2, h.pool(0).ActiveCount())
	assert.Equal(t, 0, h.pool(1).ActiveCount())
}

func TestWeapon_SpawnGeometry(t *testing.T) {
	pistol := config.DefaultWeaponsConfig().Weapons[0]

	tests := []struct {
		name     string
		target   cp.Vector
		position cp.Vector
		angle    float64
		flipY    bool
	}{
		{
			name:     "aiming right",
			target:   cp.Vector{X: 5, Y: 0},
			position: cp.Vector{X: pistol.Muzzle.X, Y: pistol.Muzzle.Y + pistol.Offset.Y},
			angle:    0,
		},
		{
			name:     "aiming left mirrors the muzzle",
			target:   cp.Vector{X: -5, Y: 0},
			position: cp.Vector{X: -pistol.Muzzle.X, Y: pistol.Muzzle.Y + pistol.Offset.Y},
			angle:    math.Pi,
			flipY:    true,
		},
		{
			name:     "aiming up",
			target:   cp.Vector{X: 0, Y: 5},
			position: cp.Vector{X: -pistol.Muzzle.Y, Y: pistol.Muzzle.X + pistol.Offset.Y},
			angle:    math.Pi / 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, cp.Vector{})
			spawner := &recordingSpawner{}
			system := NewWeaponSystem(h.em, spawner, nil)
			h.armed(0, tt.target)

			system.Update(frame)

			require.Len(t, spawner.positions, 1)
			assert.Equal(t, 0, spawner.pools[0])
			assert.InDelta(t, tt.position.X, spawner.positions[0].X, 1e-9)
			assert.InDelta(t, tt.position.Y, spawner.positions[0].Y, 1e-9)
			assert.InDelta(t, tt.angle, spawner.angles[0], 1e-9)

			weaponSprite, _ := ecs.GetComponent[*components.SpriteComponent](h.em, h.weapons[0])
			assert.Equal(t, tt.flipY, weaponSprite.FlipY)
			assert.InDelta(t, tt.angle*180/math.Pi, h.transform(h.weapons[0]).Rotation, 1e-9)
			assert.Equal(t, pistol.Offset.Vector(), h.transform(h.weapons[0]).Position)
		})
	}
}

func TestWeapon_FiringTriggersRumble(t *testing.T) {
	h := newHarness(t, cp.Vector{})
	rifle := config.DefaultWeaponsConfig().Weapons[1]
	h.armed(1, cp.Vector{X: 3, Y: 3})

	h.weaponSystem.Update(frame)

	camera, _ := ecs.GetComponent[*components.CameraComponent](h.em, h.camera)
	assert.Equal(t, rifle.Rumble.Duration, camera.RumbleDuration)
	assert.Equal(t, rifle.Rumble.Power, camera.RumblePower)
	assert.True(t, camera.IsRumbling())
	assert.Equal(t, 1, h.pool(1).ActiveCount())

	weapon, _ := ecs.GetComponent[*components.WeaponComponent](h.em, h.weapons[1])
	assert.Zero(t, weapon.CooldownTimer)
}

func TestWeapon_NoOpCases(t *testing.T) {
	t.Run("no weapon equipped", func(t *testing.T) {
		h := newHarness(t, cp.Vector{})
		spawner := &recordingSpawner{}
		aim, _ := ecs.GetComponent[*components.AimComponent](h.em, h.aim)
		aim.Firing = true
		h.transform(h.aim).Position = cp.Vector{X: 1}

		NewWeaponSystem(h.em, spawner, nil).Update(frame)
		assert.Empty(t, spawner.pools)
	})

	t.Run("aim on top of the player", func(t *testing.T) {
		h := newHarness(t, cp.Vector{X: 2, Y: 2})
		spawner := &recordingSpawner{}
		h.armed(0, cp.Vector{X: 2, Y: 2})
		weapon, _ := ecs.GetComponent[*components.WeaponComponent](h.em, h.weapons[0])
		weapon.CooldownTimer = 0
		rotation := h.transform(h.weapons[0]).Rotation

		assert.NotPanics(t, func() {
			NewWeaponSystem(h.em, spawner, nil).Update(frame)
		})
		assert.Empty(t, spawner.pools)
		assert.Equal(t, rotation, h.transform(h.weapons[0]).Rotation)
		assert.InDelta(t, frame, weapon.CooldownTimer, 1e-9, "cooldown keeps running without a direction")
	})

	t.Run("fire not held", func(t *testing.T) {
		h := newHarness(t, cp.Vector{})
		spawner := &recordingSpawner{}
		h.armed(0, cp.Vector{X: 1})
		aim, _ := ecs.GetComponent[*components.AimComponent](h.em, h.aim)
		aim.Firing = false

		system := NewWeaponSystem(h.em, spawner, nil)
		for i := 0; i < 30; i++ {
			system.Update(frame)
		}
		assert.Empty(t, spawner.pools)
	})
}

func TestWeapon_UnequippedWeaponsStayHidden(t *testing.T) {
	h := newHarness(t, cp.Vector{})
	h.playerSystem.Equip(h.player, 1)
	h.run(1)

	pistolSprite, _ := ecs.GetComponent[*components.SpriteComponent](h.em, h.weapons[0])
	rifleSprite, _ := ecs.GetComponent[*components.SpriteComponent](h.em, h.weapons[1])
	assert.True(t, pistolSprite.Hidden)
	assert.False(t, rifleSprite.Hidden)
}
