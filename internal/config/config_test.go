package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	require.Len(t, cfg.Devices, 1)
	assert.NotEmpty(t, cfg.Devices[0].ID)
	assert.Equal(t, cfg.Devices[0].ID, cfg.DefaultDevice)
	assert.Equal(t, defaultKeywords, cfg.Devices[0].Keywords)
}

func TestSaveAndReload(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	cfg.Devices[0].Port = "SmartPad 24:0"
	cfg.Devices[0].Name = "Studio Pad"
	require.NoError(t, cfg.Save())

	reloaded, err := Load()
	require.NoError(t, err)
	require.Len(t, reloaded.Devices, 1)
	assert.Equal(t, "Studio Pad", reloaded.Devices[0].Name)
	assert.Equal(t, "SmartPad 24:0", reloaded.Devices[0].Port)
	assert.Equal(t, cfg.DefaultDevice, reloaded.DefaultDevice)
}

func TestDeviceLookup(t *testing.T) {
	cfg := &Config{Devices: []DeviceProfile{
		NewDeviceProfile("a"),
		NewDeviceProfile("b"),
	}}
	cfg.DefaultDevice = cfg.Devices[1].ID

	assert.Equal(t, "b", cfg.DefaultProfile().Name)
	assert.Nil(t, cfg.Device("missing"))
	assert.Equal(t, "a", cfg.Device(cfg.Devices[0].ID).Name)
}

func TestDefaultProfileFallsBackToFirst(t *testing.T) {
	cfg := &Config{Devices: []DeviceProfile{NewDeviceProfile("only")}}
	cfg.DefaultDevice = "stale-id"
	assert.Equal(t, "only", cfg.DefaultProfile().Name)
}
