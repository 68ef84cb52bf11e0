package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, defaultScrollStep, cfg.App.ScrollStep)
	assert.Equal(t, defaultSmoothStep, cfg.App.SmoothStep)
	assert.Equal(t, defaultWatchInterval, cfg.App.WatchInterval)
	assert.False(t, cfg.App.RTL)
	assert.False(t, cfg.Logging.Trace)
	assert.Empty(t, cfg.App.FixturePath)
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	env := []string{
		envFixture + "=/env/data.yaml",
		envWidth + "=80",
		envTrace + "=true",
		envWatchInterval + "=2s",
	}
	cfg, err := LoadArgs([]string{"--fixture", "/flag/data.yaml", "--rtl", "--smooth-step=4"}, env)
	require.NoError(t, err)
	assert.Equal(t, "/flag/data.yaml", cfg.App.FixturePath)
	assert.Equal(t, 80, cfg.App.Width)
	assert.True(t, cfg.App.RTL)
	assert.Equal(t, 4, cfg.App.SmoothStep)
	assert.Equal(t, 2*time.Second, cfg.App.WatchInterval)
	assert.True(t, cfg.Logging.Trace)
	assert.Equal(t, "/flag/data.yaml", cfg.Flags["fixture"])
	assert.Equal(t, "true", cfg.Flags["rtl"])
}

func TestLoadArgsIgnoresMalformedEnvironment(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{envHeight + "=tall", envNoSticky + "=maybe", "garbage"})
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.App.Height)
	assert.False(t, cfg.App.NoSticky)
}

func TestLoadArgsKeepsPositionalArgs(t *testing.T) {
	cfg, err := LoadArgs([]string{"--height", "20", "extra"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"extra"}, cfg.Args)
}

func TestLoadArgsRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{name: "negative width", args: []string{"--width", "-1"}},
		{name: "negative height", args: []string{"--height=-3"}},
		{name: "zero scroll step", args: []string{"--scroll-step", "0"}},
		{name: "huge smooth step", args: []string{"--smooth-step", "5000"}},
		{name: "negative interval", args: []string{"--watch-interval", "-1s"}},
		{name: "unknown flag", args: []string{"--socket", "x"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadArgs(tc.args, nil)
			require.Error(t, err)
		})
	}
}
