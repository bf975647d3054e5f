package ecs

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrPoolExhausted 对象池中已没有空闲槽位
	ErrPoolExhausted = errors.New("component pool exhausted")
	// ErrPoolCapacity 对象池容量非法
	ErrPoolCapacity = errors.New("invalid component pool capacity")
)

// Poolable 可池化组件必须实现 Reset，将自身恢复到中性状态
// 对象池在分配前和归还时都会调用 Reset，不依赖任何终结器
type Poolable interface {
	Reset()
}

// Disposable 持有外部资源（如物理刚体）的组件
// 组件离开实体（实体移除或被同类组件替换）时先调用 Dispose，再归还对象池
type Disposable interface {
	Dispose()
}

// componentPool 是 EntityManager 持有的类型擦除池接口
type componentPool interface {
	release(component interface{})
}

// ComponentPool 固定容量的组件对象池
//
// 预先分配 capacity 个组件，用空闲下标栈管理复用（后进先出）。
// 槽位复用完全由池决定，组件代码只负责 Reset。
type ComponentPool[T any, PT interface {
	*T
	Poolable
}] struct {
	items []T
	free  []int
	inUse []bool
	slots map[PT]int
}

// NewComponentPool 创建容量为 capacity 的组件对象池
func NewComponentPool[T any, PT interface {
	*T
	Poolable
}](capacity int) (*ComponentPool[T, PT], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrPoolCapacity, capacity)
	}

	p := &ComponentPool[T, PT]{
		items: make([]T, capacity),
		free:  make([]int, 0, capacity),
		inUse: make([]bool, capacity),
		slots: make(map[PT]int, capacity),
	}

	// 逆序压栈，使第一次 Obtain 拿到槽位 0
	for i := capacity - 1; i >= 0; i-- {
		item := PT(&p.items[i])
		item.Reset()
		p.slots[item] = i
		p.free = append(p.free, i)
	}
	return p, nil
}

// Obtain 取出一个处于中性状态的组件
func (p *ComponentPool[T, PT]) Obtain() (PT, error) {
	if len(p.free) == 0 {
		var zero PT
		return zero, fmt.Errorf("%w: %s (capacity %d)", ErrPoolExhausted, reflect.TypeFor[PT](), len(p.items))
	}
	idx := p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]
	p.inUse[idx] = true
	return PT(&p.items[idx]), nil
}

// Free 归还组件；非本池对象或重复归还会被忽略
func (p *ComponentPool[T, PT]) Free(item PT) {
	idx, ok := p.slots[item]
	if !ok || !p.inUse[idx] {
		return
	}
	item.Reset()
	p.inUse[idx] = false
	p.free = append(p.free, idx)
}

// Capacity 返回池容量
func (p *ComponentPool[T, PT]) Capacity() int {
	return len(p.items)
}

// Available 返回空闲槽位数
func (p *ComponentPool[T, PT]) Available() int {
	return len(p.free)
}

// InUse 返回已分配的组件数
func (p *ComponentPool[T, PT]) InUse() int {
	return len(p.items) - len(p.free)
}

func (p *ComponentPool[T, PT]) release(component interface{}) {
	if item, ok := component.(PT); ok {
		p.Free(item)
	}
}

// RegisterPool 为组件类型 *T 注册固定容量的对象池
//
// 注册后 Obtain[T] 从池中分配，实体移除或组件被替换时自动归还。
// 重复注册会替换旧池（旧池中已分配的组件不再回收）。
func RegisterPool[T any, PT interface {
	*T
	Poolable
}](em *EntityManager, capacity int) (*ComponentPool[T, PT], error) {
	pool, err := NewComponentPool[T, PT](capacity)
	if err != nil {
		return nil, err
	}
	em.pools[reflect.TypeFor[PT]()] = pool
	return pool, nil
}

// PoolFor 返回组件类型 *T 已注册的对象池
func PoolFor[T any, PT interface {
	*T
	Poolable
}](em *EntityManager) (*ComponentPool[T, PT], bool) {
	pool, ok := em.pools[reflect.TypeFor[PT]()]
	if !ok {
		return nil, false
	}
	typed, ok := pool.(*ComponentPool[T, PT])
	return typed, ok
}

// Obtain 创建一个中性状态的 *T 组件
// 有对象池时从池中分配，池耗尽返回 ErrPoolExhausted；没有对象池时直接分配
func Obtain[T any, PT interface {
	*T
	Poolable
}](em *EntityManager) (PT, error) {
	if pool, ok := PoolFor[T, PT](em); ok {
		return pool.Obtain()
	}
	item := PT(new(T))
	item.Reset()
	return item, nil
}
