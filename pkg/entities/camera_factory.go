package entities

import (
	"github.com/jakecoffman/cp"

	"github.com/gonewx/prison/pkg/components"
	"github.com/gonewx/prison/pkg/config"
	"github.com/gonewx/prison/pkg/ecs"
)

// NewCamera 创建镜头实体，初始对准 position
func NewCamera(em *ecs.EntityManager, cfg config.CameraConfig, position cp.Vector) (ecs.EntityID, error) {
	if em == nil {
		return ecs.InvalidEntity, ErrNilManager
	}
	id := em.CreateEntity()

	camera := &components.CameraComponent{}
	camera.Reset()
	camera.FollowSpeed = cfg.FollowSpeed
	camera.ViewportWidth = cfg.ViewportWidth
	camera.ViewportHeight = cfg.ViewportHeight
	camera.Position = position
	camera.UpdateMatrices()
	em.AddComponent(id, camera)
	return id, nil
}

// NewAim 创建瞄准点实体（准星精灵，尺寸 0.5）
func NewAim(em *ecs.EntityManager) (ecs.EntityID, error) {
	if em == nil {
		return ecs.InvalidEntity, ErrNilManager
	}
	id := em.CreateEntity()

	if _, err := obtain[components.TransformComponent](em, id); err != nil {
		em.RemoveEntity(id)
		return ecs.InvalidEntity, err
	}
	sprite, err := obtain[components.SpriteComponent](em, id)
	if err != nil {
		em.RemoveEntity(id)
		return ecs.InvalidEntity, err
	}
	sprite.Region = "aim_open"
	sprite.Size = cp.Vector{X: 0.5, Y: 0.5}
	sprite.Origin = cp.Vector{X: 0.25, Y: 0.25}
	sprite.ZIndex = config.ZIndexAim

	ecs.AddComponent(em, id, &components.AimComponent{})
	return id, nil
}
