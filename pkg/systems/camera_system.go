package systems

import (
	"math/rand"

	"github.com/gonewx/prison/pkg/components"
	"github.com/gonewx/prison/pkg/config"
	"github.com/gonewx/prison/pkg/ecs"
)

// CameraSystem 镜头震动与平滑跟随
//
// 震动进行中时，每个轴叠加 [-1, 1] 均匀随机偏移 * 强度 * 剩余比例（线性衰减到零）；
// 之后镜头以 FollowSpeed * dt 为插值系数向玩家位置靠近，最后重算变换矩阵。
type CameraSystem struct {
	entityManager *ecs.EntityManager
	rng           *rand.Rand
}

// NewCameraSystem 创建镜头系统
// rng 为 nil 时使用固定种子，测试可注入自己的随机源
func NewCameraSystem(em *ecs.EntityManager, rng *rand.Rand) *CameraSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &CameraSystem{entityManager: em, rng: rng}
}

// Priority 实现 ecs.System
func (s *CameraSystem) Priority() int {
	return config.PriorityCamera
}

// Update 实现 ecs.System
func (s *CameraSystem) Update(deltaTime float64) {
	camera, ok := findCamera(s.entityManager)
	if !ok {
		return
	}

	if camera.IsRumbling() {
		remaining := (camera.RumbleDuration - camera.RumbleTime) / camera.RumbleDuration
		amplitude := camera.RumblePower * remaining
		camera.Position.X += (s.rng.Float64()*2 - 1) * amplitude
		camera.Position.Y += (s.rng.Float64()*2 - 1) * amplitude
		camera.RumbleTime += deltaTime
	}

	if playerID := findPlayer(s.entityManager); playerID != ecs.InvalidEntity {
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, playerID)
		alpha := camera.FollowSpeed * deltaTime
		alpha = min(max(alpha, 0), 1)
		camera.Position = camera.Position.Lerp(transform.Position, alpha)
	}

	camera.UpdateMatrices()
}
