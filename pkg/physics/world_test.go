package physics

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gonewx/prison/pkg/ecs"
)

func newTestWorld(t *testing.T) *World {
	t.Helper()
	w, err := NewWorld(DefaultConfig(), nil)
	require.NoError(t, err)
	t.Cleanup(w.Close)
	return w
}

func TestNewWorld_InvalidConfig(t *testing.T) {
	_, err := NewWorld(Config{Step: 0, MaxSteps: 5}, nil)
	assert.ErrorIs(t, err, ErrInvalidWorldConfig)

	_, err = NewWorld(Config{Step: DefaultStep, MaxSteps: 0}, nil)
	assert.ErrorIs(t, err, ErrInvalidWorldConfig)
}

func TestWorld_AdvanceStepCounts(t *testing.T) {
	tests := []struct {
		name   string
		frames []float64
		want   int
	}{
		{"steady 60Hz is one step per frame", repeat(DefaultStep, 60), 60},
		{"zero delta does nothing", []float64{0}, 0},
		{"half step banks time", []float64{DefaultStep / 2}, 0},
		{"two half steps make one", []float64{DefaultStep / 2, DefaultStep / 2}, 1},
		{"long frame is capped", []float64{1.0}, DefaultMaxSteps},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			total := 0
			for _, dt := range tt.frames {
				total += w.Advance(dt, nil)
			}
			assert.Equal(t, tt.want, total)
		})
	}
}

func TestWorld_AdvanceDropsBacklog(t *testing.T) {
	w := newTestWorld(t)
	w.Advance(1.0, nil)
	assert.Zero(t, w.Accumulator())
	assert.Equal(t, 1, w.Advance(DefaultStep, nil))
}

func TestWorld_AdvanceCallsSyncPerStep(t *testing.T) {
	w := newTestWorld(t)
	calls := 0
	steps := w.Advance(3*DefaultStep, func() { calls++ })
	assert.Equal(t, 3, steps)
	assert.Equal(t, steps, calls)
}

func TestWorld_ConstantVelocityIntegration(t *testing.T) {
	w := newTestWorld(t)
	body := w.CreateBody(BodyDef{
		Type:          BodyDynamic,
		Position:      cp.Vector{X: 1, Y: 2},
		HalfSize:      cp.Vector{X: 0.15, Y: 0.1},
		Density:       1,
		FixedRotation: true,
		Filter:        PlayerBodyFilter,
		Owner:         1,
	})

	const n = 30
	for i := 0; i < n; i++ {
		body.SetLinearVelocity(cp.Vector{X: 3, Y: 0})
		w.Advance(DefaultStep, nil)
	}

	assert.InDelta(t, 1+3*n*DefaultStep, body.Position().X, 1e-6)
	assert.InDelta(t, 2, body.Position().Y, 1e-6)
	assert.InDelta(t, 0, body.Angle(), 1e-9)
}

func TestBody_SetActive(t *testing.T) {
	w := newTestWorld(t)
	body := w.CreateBody(BodyDef{
		Type:     BodyDynamic,
		HalfSize: cp.Vector{X: 0.05, Y: 0.025},
		Sensor:   true,
		Filter:   BulletFilter,
		Inactive: true,
	})
	assert.False(t, body.IsActive())

	body.SetActive(true)
	assert.True(t, body.IsActive())
	body.SetActive(true)
	assert.True(t, body.IsActive(), "activating twice is a no-op")

	body.SetActive(false)
	assert.False(t, body.IsActive())

	body.Destroy()
	assert.NotContains(t, w.Bodies(), body)
	body.SetActive(true)
	assert.False(t, body.IsActive(), "destroyed bodies stay out of the world")
}

func TestBody_SetTransform(t *testing.T) {
	w := newTestWorld(t)
	body := w.CreateBody(BodyDef{Type: BodyKinematic, HalfSize: cp.Vector{X: 0.15, Y: 0.25}, Filter: EnemyHitBoxFilter})
	body.SetTransform(cp.Vector{X: 4, Y: -1}, 0.5)

	assert.Equal(t, cp.Vector{X: 4, Y: -1}, body.Position())
	assert.InDelta(t, 0.5, body.Angle(), 1e-9)
	assert.Equal(t, BodyKinematic, body.Type())
	assert.False(t, body.IsStatic())
}

func TestWorld_Close(t *testing.T) {
	w, err := NewWorld(DefaultConfig(), nil)
	require.NoError(t, err)
	w.CreateBody(BodyDef{Type: BodyStatic, HalfSize: cp.Vector{X: 1, Y: 1}, Filter: WallFilter})
	w.CreateBody(BodyDef{Type: BodyDynamic, HalfSize: cp.Vector{X: 1, Y: 1}, Filter: PlayerBodyFilter, Owner: ecs.EntityID(3)})

	w.Close()
	assert.Empty(t, w.Bodies())
}

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
