package ecs

import "sort"

// System 是每帧运行一次的处理过程
type System interface {
	// Priority 越小越先执行
	Priority() int
	// Update 以本帧的真实时间增量（秒）运行一次
	Update(deltaTime float64)
}

// Scheduler 按优先级升序保存系统列表并逐帧依次运行
//
// 单线程协作式调度：一帧内所有系统顺序执行完毕，系统之间不并发，不需要加锁。
type Scheduler struct {
	systems []System
}

// NewScheduler 创建空调度器
func NewScheduler() *Scheduler {
	return &Scheduler{systems: make([]System, 0, 16)}
}

// AddSystem 添加系统并保持优先级升序（同优先级按加入顺序）
func (s *Scheduler) AddSystem(system System) {
	s.systems = append(s.systems, system)
	sort.SliceStable(s.systems, func(i, j int) bool {
		return s.systems[i].Priority() < s.systems[j].Priority()
	})
}

// RemoveSystem 移除系统，返回是否找到
func (s *Scheduler) RemoveSystem(system System) bool {
	for i, sys := range s.systems {
		if sys == system {
			s.systems = append(s.systems[:i], s.systems[i+1:]...)
			return true
		}
	}
	return false
}

// Systems 返回按执行顺序排列的系统列表副本
func (s *Scheduler) Systems() []System {
	result := make([]System, len(s.systems))
	copy(result, s.systems)
	return result
}

// Update 按优先级顺序运行每个系统恰好一次
func (s *Scheduler) Update(deltaTime float64) {
	for _, sys := range s.systems {
		sys.Update(deltaTime)
	}
}
