package ecs

import (
	"iter"
	"reflect"
)

// TypeOf 返回组件类型参数对应的 reflect.Type
// 用法: ecs.TypeOf[*components.TransformComponent]()
func TypeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// AddComponent 泛型版本的 AddComponent
func AddComponent[T any](em *EntityManager, id EntityID, component T) {
	em.AddComponent(id, component)
}

// GetComponent 泛型版本的 GetComponent，省去调用方的类型断言
//
// 示例:
//
//	transform, ok := ecs.GetComponent[*components.TransformComponent](em, id)
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	comp, ok := em.GetComponent(id, reflect.TypeFor[T]())
	if !ok {
		return zero, false
	}
	typed, ok := comp.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// HasComponent 泛型版本的 HasComponent
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	return em.HasComponent(id, reflect.TypeFor[T]())
}

// RemoveComponent 泛型版本的 RemoveComponent
func RemoveComponent[T any](em *EntityManager, id EntityID) {
	em.RemoveComponent(id, reflect.TypeFor[T]())
}

// GetEntitiesWith1 查询拥有 T1 组件的实体
func GetEntitiesWith1[T1 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(reflect.TypeFor[T1]())
}

// GetEntitiesWith2 查询同时拥有 T1、T2 组件的实体
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(reflect.TypeFor[T1](), reflect.TypeFor[T2]())
}

// GetEntitiesWith3 查询同时拥有 T1、T2、T3 组件的实体
func GetEntitiesWith3[T1, T2, T3 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(reflect.TypeFor[T1](), reflect.TypeFor[T2](), reflect.TypeFor[T3]())
}

// GetEntitiesWith4 查询同时拥有 T1~T4 组件的实体
func GetEntitiesWith4[T1, T2, T3, T4 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(
		reflect.TypeFor[T1](),
		reflect.TypeFor[T2](),
		reflect.TypeFor[T3](),
		reflect.TypeFor[T4](),
	)
}

// Family 是系统声明的组件组合（"需要哪些组件"）
type Family []reflect.Type

// NewFamily 由组件类型列表构造 Family
func NewFamily(types ...reflect.Type) Family {
	return Family(types)
}

// Matches 检查实体是否属于该 Family
func (f Family) Matches(em *EntityManager, id EntityID) bool {
	for _, t := range f {
		if !em.HasComponent(id, t) {
			return false
		}
	}
	return true
}

// Entities 按 Family 查询实体（惰性快照，见 EntityManager.Query）
func (f Family) Entities(em *EntityManager) iter.Seq[EntityID] {
	return em.Query(f...)
}
