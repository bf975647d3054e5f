package systems

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gonewx/prison/pkg/components"
	"github.com/gonewx/prison/pkg/config"
	"github.com/gonewx/prison/pkg/ecs"
)

func TestRenderQueue_SortedByZIndex(t *testing.T) {
	em := ecs.NewEntityManager()
	add := func(region string, z int, hidden bool) {
		id := em.CreateEntity()
		sprite := &components.SpriteComponent{}
		sprite.Reset()
		sprite.Region = region
		sprite.ZIndex = z
		sprite.Hidden = hidden
		em.AddComponent(id, sprite)
		transform := &components.TransformComponent{}
		transform.Reset()
		em.AddComponent(id, transform)
	}
	add("aim", 10, false)
	add("bullet", 3, false)
	add("hidden", 0, true)
	add("barrel", 0, false)
	add("prisoner", 1, false)

	system := NewRenderQueueSystem(em)
	system.Update(frame)

	items := system.Items()
	require.Len(t, items, 4)
	regions := make([]string, 0, len(items))
	for i, item := range items {
		regions = append(regions, item.Region)
		if i > 0 {
			assert.LessOrEqual(t, items[i-1].ZIndex, item.ZIndex)
		}
	}
	assert.Equal(t, []string{"barrel", "prisoner", "bullet", "aim"}, regions)

	// 每帧重建
	system.Update(frame)
	assert.Len(t, system.Items(), 4)
}

func TestRenderQueue_GameEntities(t *testing.T) {
	h := newHarness(t, cp.Vector{X: 1, Y: 1})
	h.playerSystem.Equip(h.player, 0)
	h.run(1)

	items := h.renderQueue.Items()
	zs := map[int]bool{}
	for _, item := range items {
		zs[item.ZIndex] = true
	}
	assert.True(t, zs[config.ZIndexCharacter])
	assert.True(t, zs[config.ZIndexWeapon])
	assert.True(t, zs[config.ZIndexAim])
	assert.False(t, zs[config.ZIndexBullet], "idle bullets are hidden")
}

func TestAnimationSystem_WritesKeyFrame(t *testing.T) {
	em := ecs.NewEntityManager()
	id := em.CreateEntity()
	animation := &components.AnimationComponent{}
	animation.Reset()
	animation.Clips[components.StateIdle] = &components.AnimationClip{
		Frames:        []string{"a", "b"},
		FrameDuration: 0.2,
		Mode:          components.PlayLoop,
	}
	sprite := &components.SpriteComponent{}
	sprite.Reset()
	em.AddComponent(id, animation)
	em.AddComponent(id, sprite)

	system := NewAnimationSystem(em)
	system.Update(0.1)
	assert.Equal(t, "a", sprite.Region)
	system.Update(0.15)
	assert.Equal(t, "b", sprite.Region)
	system.Update(0.2)
	assert.Equal(t, "a", sprite.Region, "loop wraps around")
}

func TestAnimationSystem_KeepsRegionWithoutClip(t *testing.T) {
	em := ecs.NewEntityManager()
	id := em.CreateEntity()
	animation := &components.AnimationComponent{}
	animation.Reset()
	sprite := &components.SpriteComponent{}
	sprite.Reset()
	sprite.Region = "static"
	em.AddComponent(id, animation)
	em.AddComponent(id, sprite)

	NewAnimationSystem(em).Update(1)
	assert.Equal(t, "static", sprite.Region)
}
