package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestGdata 在临时 HOME 下打开 gdata 存储
func newTestGdata(t *testing.T) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "")

	manager, err := gdata.Open(gdata.Config{AppName: "test_settings"})
	require.NoError(t, err)
	return manager
}

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()
	require.NotNil(t, settings)
	assert.False(t, settings.DebugPhysics)
	assert.Equal(t, "info", settings.LogLevel)
	assert.False(t, settings.Fullscreen)
	assert.Equal(t, 3, settings.WindowScale)
}

func TestSettingsManager_NilGdata(t *testing.T) {
	sm := NewSettingsManager(nil, nil)
	assert.Equal(t, DefaultSettings(), sm.GetSettings())

	sm.SetDebugPhysics(true)
	assert.NoError(t, sm.Save(), "degraded mode never fails to save")
	assert.True(t, sm.GetSettings().DebugPhysics)
}

func TestSettingsManager_SaveAndLoad(t *testing.T) {
	manager := newTestGdata(t)

	sm := NewSettingsManager(manager, nil)
	sm.SetDebugPhysics(true)
	sm.SetFullscreen(true)
	sm.SetWindowScale(3)
	require.NoError(t, sm.SetLogLevel("debug"))
	require.NoError(t, sm.Save())

	reloaded := NewSettingsManager(manager, nil)
	assert.Equal(t, &GameSettings{
		DebugPhysics: true,
		LogLevel:     "debug",
		Fullscreen:   true,
		WindowScale:  3,
	}, reloaded.GetSettings())
}

func TestSettingsManager_CorruptedFileFallsBack(t *testing.T) {
	manager := newTestGdata(t)
	require.NoError(t, manager.SaveObjectProp(settingsObject, settingsProperty, []byte("windowScale: [oops")))

	sm := NewSettingsManager(manager, nil)
	assert.Equal(t, DefaultSettings(), sm.GetSettings())
	assert.Error(t, sm.Load())
}

func TestSettingsManager_PartialFileKeepsDefaults(t *testing.T) {
	manager := newTestGdata(t)
	require.NoError(t, manager.SaveObjectProp(settingsObject, settingsProperty, []byte("windowScale: 9\n")))

	sm := NewSettingsManager(manager, nil)
	assert.Equal(t, MaxWindowScale, sm.GetSettings().WindowScale)
	assert.Equal(t, "info", sm.GetSettings().LogLevel)
}

func TestSettingsManager_Setters(t *testing.T) {
	sm := NewSettingsManager(nil, nil)

	tests := []struct {
		scale    int
		expected int
	}{
		{-1, MinWindowScale},
		{0, MinWindowScale},
		{2, 2},
		{4, 4},
		{10, MaxWindowScale},
	}
	for _, tt := range tests {
		sm.SetWindowScale(tt.scale)
		assert.Equal(t, tt.expected, sm.GetSettings().WindowScale, "scale %d", tt.scale)
	}

	assert.Error(t, sm.SetLogLevel("loud"))
	assert.Equal(t, "info", sm.GetSettings().LogLevel, "invalid level leaves the setting alone")
	assert.NoError(t, sm.SetLogLevel("warn"))
	assert.Equal(t, "warn", sm.GetSettings().LogLevel)
}
