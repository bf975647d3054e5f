package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// recordingSystem 记录执行顺序的测试系统
type recordingSystem struct {
	name     string
	priority int
	log      *[]string
	deltas   []float64
}

func (s *recordingSystem) Priority() int { return s.priority }

func (s *recordingSystem) Update(deltaTime float64) {
	*s.log = append(*s.log, s.name)
	s.deltas = append(s.deltas, deltaTime)
}

func TestSchedulerRunsInPriorityOrder(t *testing.T) {
	var log []string
	s := NewScheduler()
	camera := &recordingSystem{name: "camera", priority: 2002, log: &log}
	physics := &recordingSystem{name: "physics", priority: 2001, log: &log}
	player := &recordingSystem{name: "player", priority: 101, log: &log}
	aim := &recordingSystem{name: "aim", priority: 100, log: &log}

	s.AddSystem(camera)
	s.AddSystem(physics)
	s.AddSystem(player)
	s.AddSystem(aim)

	s.Update(0.016)

	assert.Equal(t, []string{"aim", "player", "physics", "camera"}, log)
	assert.Equal(t, []float64{0.016}, camera.deltas)
}

func TestSchedulerStableForEqualPriority(t *testing.T) {
	var log []string
	s := NewScheduler()
	s.AddSystem(&recordingSystem{name: "a", priority: 1, log: &log})
	s.AddSystem(&recordingSystem{name: "b", priority: 1, log: &log})
	s.AddSystem(&recordingSystem{name: "c", priority: 0, log: &log})

	s.Update(1)
	assert.Equal(t, []string{"c", "a", "b"}, log)
}

func TestSchedulerRemoveSystem(t *testing.T) {
	var log []string
	s := NewScheduler()
	a := &recordingSystem{name: "a", priority: 1, log: &log}
	b := &recordingSystem{name: "b", priority: 2, log: &log}
	s.AddSystem(a)
	s.AddSystem(b)

	assert.True(t, s.RemoveSystem(a))
	assert.False(t, s.RemoveSystem(a))
	assert.Len(t, s.Systems(), 1)

	s.Update(1)
	s.Update(1)
	assert.Equal(t, []string{"b", "b"}, log)
}
