// Package entities 提供创建游戏实体的工厂
//
// 工厂负责组装组件和物理刚体，返回 (ecs.EntityID, error)。
// 池化组件通过 ecs.Obtain 获取，实体移除时自动归还，刚体随 PhysicsComponent 一起销毁。
package entities

import (
	"errors"

	"github.com/gonewx/prison/pkg/ecs"
)

// ErrNilManager 工厂缺少实体管理器或物理世界
var ErrNilManager = errors.New("entity manager and physics world are required")

// obtain 从对象池（如有）取得中性状态的组件
func obtain[T any, PT interface {
	*T
	ecs.Poolable
}](em *ecs.EntityManager, id ecs.EntityID) (PT, error) {
	comp, err := ecs.Obtain[T, PT](em)
	if err != nil {
		var zero PT
		return zero, err
	}
	em.AddComponent(id, comp)
	return comp, nil
}
