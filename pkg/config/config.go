package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/authority"
	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/input"
	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/repositories"
	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/session"
	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/tick"
)

const (
	EnvAuthorityURL    = "PUZZLE_AUTHORITY_URL"
	EnvTickInterval    = "PUZZLE_TICK_INTERVAL"
	EnvTickTimeout     = "PUZZLE_TICK_TIMEOUT"
	EnvStartTimeout    = "PUZZLE_START_TIMEOUT"
	EnvProfileURL      = "PUZZLE_PROFILE_URL"
	EnvProfile         = "PUZZLE_PROFILE"
	EnvAssetsDir       = "PUZZLE_ASSETS_DIR"
	EnvP1Keys          = "PUZZLE_P1_KEYS"
	EnvP2Keys          = "PUZZLE_P2_KEYS"
	EnvMaxLevel        = "PUZZLE_MAX_LEVEL"
	EnvMaxTickFailures = "PUZZLE_MAX_TICK_FAILURES"
	EnvLogLevel        = "PUZZLE_LOG_LEVEL"

	DefaultMaxLevel  = 2
	DefaultAssetsDir = "assets"
	DefaultLogLevel  = "info"

	appDirName = "PuzzlePlatformer"
)

// Config holds everything the client needs to run.
type Config struct {
	AuthorityURL string
	TickInterval time.Duration
	TickTimeout  time.Duration
	StartTimeout time.Duration

	// ProfileURL selects the profile repository, e.g. sqlite:///path/profile.db.
	ProfileURL string
	Profile    string

	AssetsDir string
	Bindings  input.Bindings

	// MaxLevel is the last level offered by "Next Level".
	MaxLevel int
	// MaxTickFailures ends the session after that many consecutive failed
	// ticks. Zero keeps retrying forever.
	MaxTickFailures int

	// Mode and Level start a game right away when Mode is non-zero.
	Mode  int
	Level int

	Debug    bool
	Mute     bool
	LogLevel string
	LogFile  string
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		AuthorityURL: authority.DefaultAuthorityURL,
		TickInterval: tick.DefaultInterval,
		TickTimeout:  tick.DefaultTimeout,
		StartTimeout: session.DefaultStartTimeout,
		ProfileURL:   DefaultProfileURL(),
		Profile:      repositories.DefaultProfile,
		AssetsDir:    DefaultAssetsDir,
		Bindings:     input.DefaultBindings,
		MaxLevel:     DefaultMaxLevel,
		Level:        1,
		LogLevel:     DefaultLogLevel,
	}
}

// DefaultProfileURL points at a SQLite file in the user's config directory.
func DefaultProfileURL() string {
	return "sqlite://" + filepath.ToSlash(filepath.Join(ConfigDir(), "profile.db"))
}

// ConfigDir is the per-user directory for local client state. It is not created.
func ConfigDir() string {
	root, _ := os.UserConfigDir()
	if root == "" {
		home, _ := os.UserHomeDir()
		root = filepath.Join(home, ".config")
	}
	return filepath.Join(root, appDirName)
}

// ApplyEnv overrides c with any variables set in getenv, usually os.Getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvAuthorityURL); v != "" {
		c.AuthorityURL = v
	}
	if v := getenv(EnvProfileURL); v != "" {
		c.ProfileURL = v
	}
	if v := getenv(EnvProfile); v != "" {
		c.Profile = SanitizeProfile(v)
	}
	if v := getenv(EnvAssetsDir); v != "" {
		c.AssetsDir = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{EnvTickInterval, &c.TickInterval},
		{EnvTickTimeout, &c.TickTimeout},
		{EnvStartTimeout, &c.StartTimeout},
	}
	for _, d := range durations {
		v := getenv(d.key)
		if v == "" {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %v", d.key, err)
		}
		*d.dst = parsed
	}

	ints := []struct {
		key string
		dst *int
	}{
		{EnvMaxLevel, &c.MaxLevel},
		{EnvMaxTickFailures, &c.MaxTickFailures},
	}
	for _, i := range ints {
		v := getenv(i.key)
		if v == "" {
			continue
		}
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %v", i.key, err)
		}
		*i.dst = parsed
	}

	if v := getenv(EnvP1Keys); v != "" {
		b, err := ParseBinding(v)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %v", EnvP1Keys, err)
		}
		c.Bindings.P1 = b
	}
	if v := getenv(EnvP2Keys); v != "" {
		b, err := ParseBinding(v)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %v", EnvP2Keys, err)
		}
		c.Bindings.P2 = b
	}

	return nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	u, err := url.Parse(c.AuthorityURL)
	if err != nil {
		return fmt.Errorf("invalid authority url: %v", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid authority url %q: expected http(s)://host", c.AuthorityURL)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive")
	}
	if c.TickTimeout <= 0 {
		return fmt.Errorf("tick timeout must be positive")
	}
	if c.StartTimeout <= 0 {
		return fmt.Errorf("start timeout must be positive")
	}
	if c.ProfileURL == "" {
		return fmt.Errorf("profile url must be set")
	}
	if c.MaxLevel < 1 {
		return fmt.Errorf("max level must be at least 1")
	}
	if c.MaxTickFailures < 0 {
		return fmt.Errorf("max tick failures must not be negative")
	}
	if c.Mode != 0 && c.Mode != 1 && c.Mode != 2 {
		return fmt.Errorf("mode must be 1 or 2")
	}
	if c.Mode != 0 && c.Level < 1 {
		return fmt.Errorf("level must be positive")
	}
	if err := c.Bindings.Validate(); err != nil {
		return fmt.Errorf("invalid key bindings: %v", err)
	}
	return nil
}

// ParseBinding reads "left,right,jump" key codes, e.g. "KeyA,KeyD,KeyW".
func ParseBinding(s string) (input.Binding, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return input.Binding{}, fmt.Errorf("expected 3 keys, got %d", len(parts))
	}
	keys := make([]input.Key, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return input.Binding{}, fmt.Errorf("key %d is empty", i+1)
		}
		keys[i] = input.Key(p)
	}
	return input.Binding{Left: keys[0], Right: keys[1], Jump: keys[2]}, nil
}

var profileChars = regexp.MustCompile(`[^a-z0-9._-]`)

// SanitizeProfile lowercases name and strips characters unsafe in file names.
func SanitizeProfile(name string) string {
	s := strings.TrimSpace(strings.ToLower(name))
	s = strings.ReplaceAll(s, " ", "_")
	s = profileChars.ReplaceAllString(s, "")
	if s == "" {
		s = repositories.DefaultProfile
	}
	return s
}
