package ecs

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testVelocityComponent struct {
	VX, VY float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// ID 从 1 开始且唯一
	assert.Equal(t, EntityID(1), id1)
	assert.Equal(t, EntityID(2), id2)
	assert.True(t, em.Exists(id1))
	assert.Equal(t, 2, em.EntityCount())

	// 新实体不含任何组件
	assert.False(t, HasComponent[*testPositionComponent](em, id1))
}

func TestAddComponentReplacesSameKind(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testPositionComponent{X: 1, Y: 2})
	AddComponent(em, id, &testPositionComponent{X: 3, Y: 4})

	pos, ok := GetComponent[*testPositionComponent](em, id)
	require.True(t, ok)
	assert.Equal(t, 3.0, pos.X)
	assert.Equal(t, 4.0, pos.Y)
	assert.Len(t, GetEntitiesWith1[*testPositionComponent](em), 1)
}

func TestAddComponentToUnknownEntity(t *testing.T) {
	em := NewEntityManager()
	em.AddComponent(EntityID(42), &testPositionComponent{})
	assert.False(t, em.HasComponent(EntityID(42), reflect.TypeOf(&testPositionComponent{})))
}

func TestRemoveEntityImmediate(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testPositionComponent{})

	em.RemoveEntity(id)

	assert.False(t, em.Exists(id))
	assert.False(t, HasComponent[*testPositionComponent](em, id))
	assert.Empty(t, GetEntitiesWith1[*testPositionComponent](em))

	// 重复移除是空操作
	em.RemoveEntity(id)
	assert.Equal(t, 0, em.EntityCount())
}

func TestDestroyEntityDeferred(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()
	AddComponent(em, id1, &testPositionComponent{})
	AddComponent(em, id2, &testPositionComponent{})

	em.DestroyEntity(id1)

	// 清理前实体仍存在
	assert.True(t, HasComponent[*testPositionComponent](em, id1))

	em.RemoveMarkedEntities()
	assert.False(t, HasComponent[*testPositionComponent](em, id1))
	assert.True(t, HasComponent[*testPositionComponent](em, id2))
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	// 创建不同组件组合的实体
	id1 := em.CreateEntity()
	AddComponent(em, id1, &testPositionComponent{})
	AddComponent(em, id1, &testVelocityComponent{})

	id2 := em.CreateEntity()
	AddComponent(em, id2, &testPositionComponent{})

	id3 := em.CreateEntity()
	AddComponent(em, id3, &testVelocityComponent{})

	both := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em)
	assert.Equal(t, []EntityID{id1}, both)

	// 结果按 ID 升序
	assert.Equal(t, []EntityID{id1, id2}, GetEntitiesWith1[*testPositionComponent](em))
	assert.Equal(t, []EntityID{id1, id3}, GetEntitiesWith1[*testVelocityComponent](em))
}

func TestQuerySnapshotDuringIteration(t *testing.T) {
	em := NewEntityManager()
	for i := 0; i < 3; i++ {
		AddComponent(em, em.CreateEntity(), &testPositionComponent{X: float64(i)})
	}

	visited := 0
	for id := range em.Query(TypeOf[*testPositionComponent]()) {
		visited++
		// 遍历中新增的实体本轮不可见
		AddComponent(em, em.CreateEntity(), &testPositionComponent{})
		// 遍历中移除后续实体不会破坏迭代，系统通过 GetComponent 跳过它
		if id == 1 {
			em.RemoveEntity(3)
		}
	}
	assert.Equal(t, 3, visited)

	// 下一次查询才看到变更：3 被移除，新增 3 个
	assert.Len(t, GetEntitiesWith1[*testPositionComponent](em), 5)
}

func TestQueryEarlyBreak(t *testing.T) {
	em := NewEntityManager()
	for i := 0; i < 5; i++ {
		AddComponent(em, em.CreateEntity(), &testPositionComponent{})
	}

	count := 0
	for range em.Query(TypeOf[*testPositionComponent]()) {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestFamilyMatches(t *testing.T) {
	em := NewEntityManager()
	family := NewFamily(TypeOf[*testPositionComponent](), TypeOf[*testVelocityComponent]())

	id := em.CreateEntity()
	AddComponent(em, id, &testPositionComponent{})
	assert.False(t, family.Matches(em, id))

	AddComponent(em, id, &testVelocityComponent{})
	assert.True(t, family.Matches(em, id))

	var ids []EntityID
	for e := range family.Entities(em) {
		ids = append(ids, e)
	}
	assert.Equal(t, []EntityID{id}, ids)
}

func TestRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testPositionComponent{})
	AddComponent(em, id, &testVelocityComponent{})

	RemoveComponent[*testPositionComponent](em, id)

	assert.False(t, HasComponent[*testPositionComponent](em, id))
	assert.True(t, HasComponent[*testVelocityComponent](em, id))
}

func TestClear(t *testing.T) {
	em := NewEntityManager()
	for i := 0; i < 4; i++ {
		AddComponent(em, em.CreateEntity(), &testPositionComponent{})
	}
	em.Clear()
	assert.Equal(t, 0, em.EntityCount())

	// ID 不回绕
	assert.Equal(t, EntityID(5), em.CreateEntity())
}
