package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedMatchesDefaults(t *testing.T) {
	var embedded SpeedballConfig
	require.NoError(t, yaml.Unmarshal(defaultSpeedballYAML, &embedded))
	assert.Equal(t, DefaultSpeedballConfig(), embedded)
}

func TestDefaultsValidate(t *testing.T) {
	assert.NoError(t, DefaultSpeedballConfig().Validate())
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := DefaultSpeedballConfig()
	cfg.Ball.Radius = 0
	cfg.Paddle.Speed = -1
	cfg.Bricks.Tiers[0].Color = "plaid"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ball.radius")
	assert.Contains(t, err.Error(), "paddle.speed")
	assert.Contains(t, err.Error(), "plaid")
}

func TestLoadCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gameplay:\n  lives: 7\n"), 0o644))

	cfg, err := LoadSpeedball(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Gameplay.Lives)
	assert.Equal(t, 800.0, cfg.Field.Width, "unset keys keep their defaults")
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, err := LoadSpeedball(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ball:\n  radius: -3\n"), 0o644))
	_, err = LoadSpeedball(path)
	assert.ErrorContains(t, err, "ball.radius")
}

func TestApplyPreset(t *testing.T) {
	easy := DefaultSpeedballConfig()
	ApplyPreset(&easy, DifficultyEasy)
	assert.Equal(t, 5, easy.Gameplay.Lives)

	normal := DefaultSpeedballConfig()
	ApplyPreset(&normal, DifficultyNormal)
	assert.Equal(t, DefaultSpeedballConfig(), normal)

	_, ok := ParsePreset("nightmare")
	assert.False(t, ok)
}

func TestProgression(t *testing.T) {
	cfg := DefaultSpeedballConfig()
	p := NewProgression(cfg)

	assert.InDelta(t, 5.0, p.BallSpeed(1), 1e-9)
	assert.InDelta(t, 5.4, p.BallSpeed(3), 1e-9)
	assert.InDelta(t, 8.2, p.PaddleSpeed(2), 1e-9)

	cfg.Gameplay.MaxBallSpeed = 5.3
	assert.InDelta(t, 5.3, NewProgression(cfg).BallSpeed(10), 1e-9)
}

func TestDurations(t *testing.T) {
	cfg := DefaultSpeedballConfig()
	assert.Equal(t, "16ms", cfg.PowerUps.FrameStep().String())
	assert.Equal(t, "1s", cfg.Gameplay.RespawnDelay().String())
	assert.InDelta(t, 10.0, cfg.Sprint.Multiplier(), 1e-9)
}
