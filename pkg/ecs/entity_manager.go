package ecs

import (
	"iter"
	"reflect"
)

// EntityID 是实体的唯一标识符
type EntityID uint64

// InvalidEntity 表示"没有实体"，ID 从 1 开始分配
const InvalidEntity EntityID = 0

// EntityManager 管理所有实体和组件
//
// 组件按动态类型区分种类（通常是 *components.XxxComponent），每个实体每种组件最多一个。
// 注册过对象池的组件种类在实体移除或组件被替换时自动归还到池中。
type EntityManager struct {
	nextID uint64
	// 实体-组件映射: EntityID -> ComponentType -> Component实例
	components map[EntityID]map[reflect.Type]interface{}
	// 存活实体，按创建顺序（即 ID 升序）排列，决定查询结果的顺序
	order []EntityID
	// 组件对象池: ComponentType -> pool
	pools map[reflect.Type]componentPool
	// 待删除的实体ID列表
	entitiesToDestroy []EntityID
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1, // ID从1开始,0保留为无效ID
		components:        make(map[EntityID]map[reflect.Type]interface{}),
		order:             make([]EntityID, 0, 256),
		pools:             make(map[reflect.Type]componentPool),
		entitiesToDestroy: make([]EntityID, 0),
	}
}

// CreateEntity 创建新实体并返回唯一ID，新实体不含任何组件
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]interface{})
	em.order = append(em.order, id)
	return id
}

// Exists 检查实体是否存活
func (em *EntityManager) Exists(id EntityID) bool {
	_, ok := em.components[id]
	return ok
}

// EntityCount 返回存活实体数量
func (em *EntityManager) EntityCount() int {
	return len(em.order)
}

// DestroyEntity 标记实体待删除(不立即删除)
func (em *EntityManager) DestroyEntity(id EntityID) {
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// RemoveEntity 立即移除实体及其所有组件
// Disposable 组件先释放资源，池化组件再归还到各自的对象池
func (em *EntityManager) RemoveEntity(id EntityID) {
	compMap, exists := em.components[id]
	if !exists {
		return
	}
	for componentType, component := range compMap {
		em.release(componentType, component)
	}
	delete(em.components, id)

	for i, e := range em.order {
		if e == id {
			em.order = append(em.order[:i], em.order[i+1:]...)
			break
		}
	}
}

// AddComponent 为实体添加组件
// 同种组件重复添加时替换旧实例，旧实例若来自对象池则归还
func (em *EntityManager) AddComponent(id EntityID, component interface{}) {
	componentType := reflect.TypeOf(component)
	compMap, exists := em.components[id]
	if !exists {
		return
	}
	if old, found := compMap[componentType]; found && old != component {
		em.release(componentType, old)
	}
	compMap[componentType] = component
}

// RemoveComponent 从实体移除指定类型的组件
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if compMap, exists := em.components[id]; exists {
		if old, found := compMap[componentType]; found {
			em.release(componentType, old)
			delete(compMap, componentType)
		}
	}
}

// GetComponent 获取实体的特定类型组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (interface{}, bool) {
	if compMap, exists := em.components[id]; exists {
		if comp, found := compMap[componentType]; found {
			return comp, true
		}
	}
	return nil, false
}

// HasComponent 检查实体是否拥有特定类型组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	if compMap, exists := em.components[id]; exists {
		_, found := compMap[componentType]
		return found
	}
	return false
}

// RemoveMarkedEntities 清理所有标记删除的实体
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.entitiesToDestroy {
		em.RemoveEntity(id)
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0] // 清空切片
}

// GetEntitiesWith 查询拥有指定组件类型组合的所有实体
// 参数: componentTypes ...reflect.Type - 需要的组件类型列表
// 返回: []EntityID - 满足条件的实体ID快照，按 ID 升序
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	for _, id := range em.order {
		compMap := em.components[id]
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}

	return result
}

// Query 返回拥有全部指定组件的实体序列
//
// 结果在开始遍历时取快照：遍历过程中新增或移除的实体只对下一次查询可见，
// 系统在遍历中修改实体不会破坏迭代。
func (em *EntityManager) Query(componentTypes ...reflect.Type) iter.Seq[EntityID] {
	return func(yield func(EntityID) bool) {
		for _, id := range em.GetEntitiesWith(componentTypes...) {
			if !yield(id) {
				return
			}
		}
	}
}

// Clear 移除所有实体，池化组件全部归还
func (em *EntityManager) Clear() {
	for len(em.order) > 0 {
		em.RemoveEntity(em.order[len(em.order)-1])
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0]
}

// release 释放组件持有的资源，再归还到对应的对象池（没有注册池的组件直接丢弃）
func (em *EntityManager) release(componentType reflect.Type, component interface{}) {
	if d, ok := component.(Disposable); ok {
		d.Dispose()
	}
	if pool, ok := em.pools[componentType]; ok {
		pool.release(component)
	}
}
