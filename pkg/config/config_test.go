package config

import (
	"testing"
	"time"

	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string {
		return m[k]
	}
}

func TestDefault_isValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, 33*time.Millisecond, c.TickInterval)
	assert.Equal(t, input.DefaultBindings, c.Bindings)
	assert.Contains(t, c.ProfileURL, "sqlite://")
}

func TestConfig_ApplyEnv(t *testing.T) {
	c := Default()
	err := c.ApplyEnv(envMap(map[string]string{
		EnvAuthorityURL:    "https://puzzle.example.com",
		EnvTickInterval:    "50ms",
		EnvTickTimeout:     "1s",
		EnvStartTimeout:    "3s",
		EnvProfileURL:      "memory://",
		EnvProfile:         "Player One!",
		EnvAssetsDir:       "/opt/puzzle/assets",
		EnvP1Keys:          "KeyJ, KeyL, KeyI",
		EnvMaxLevel:        "3",
		EnvMaxTickFailures: "10",
		EnvLogLevel:        "debug",
	}))
	require.NoError(t, err)

	assert.Equal(t, "https://puzzle.example.com", c.AuthorityURL)
	assert.Equal(t, 50*time.Millisecond, c.TickInterval)
	assert.Equal(t, time.Second, c.TickTimeout)
	assert.Equal(t, 3*time.Second, c.StartTimeout)
	assert.Equal(t, "memory://", c.ProfileURL)
	assert.Equal(t, "player_one", c.Profile)
	assert.Equal(t, "/opt/puzzle/assets", c.AssetsDir)
	assert.Equal(t, input.Binding{Left: "KeyJ", Right: "KeyL", Jump: "KeyI"}, c.Bindings.P1)
	assert.Equal(t, input.DefaultBindings.P2, c.Bindings.P2)
	assert.Equal(t, 3, c.MaxLevel)
	assert.Equal(t, 10, c.MaxTickFailures)
	assert.Equal(t, "debug", c.LogLevel)
	assert.NoError(t, c.Validate())
}

func TestConfig_ApplyEnv_errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "bad duration", env: map[string]string{EnvTickInterval: "fast"}},
		{name: "bad int", env: map[string]string{EnvMaxLevel: "two"}},
		{name: "short binding", env: map[string]string{EnvP2Keys: "KeyA,KeyD"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			assert.Error(t, c.ApplyEnv(envMap(tt.env)))
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{name: "relative authority url", modify: func(c *Config) { c.AuthorityURL = "localhost:8080" }},
		{name: "websocket authority url", modify: func(c *Config) { c.AuthorityURL = "ws://localhost:8080" }},
		{name: "zero interval", modify: func(c *Config) { c.TickInterval = 0 }},
		{name: "zero tick timeout", modify: func(c *Config) { c.TickTimeout = 0 }},
		{name: "zero start timeout", modify: func(c *Config) { c.StartTimeout = 0 }},
		{name: "no profile url", modify: func(c *Config) { c.ProfileURL = "" }},
		{name: "max level zero", modify: func(c *Config) { c.MaxLevel = 0 }},
		{name: "negative failures", modify: func(c *Config) { c.MaxTickFailures = -1 }},
		{name: "three players", modify: func(c *Config) { c.Mode = 3 }},
		{name: "auto start level zero", modify: func(c *Config) { c.Mode = 1; c.Level = 0 }},
		{name: "overlapping bindings", modify: func(c *Config) { c.Bindings.P2.Jump = input.KeyArrowUp }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.modify(&c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestSanitizeProfile(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"dev", "dev"},
		{"  Speed Run  ", "speed_run"},
		{"../../etc", "....etc"},
		{"!!!", "default"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeProfile(tt.in))
	}
}
