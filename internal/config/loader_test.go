package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

// isolatedLoader returns a loader that never touches the real home directory.
func isolatedLoader(t *testing.T) Loader {
	t.Helper()
	return Loader{
		HomeDir:  t.TempDir(),
		LocalDir: t.TempDir(),
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestEmbeddedDefaultsMatchBuiltins(t *testing.T) {
	l := isolatedLoader(t)

	runner, err := l.Runner("")
	if err != nil {
		t.Fatalf("Runner() failed: %v", err)
	}
	if runner != DefaultRunnerConfig() {
		t.Errorf("embedded runner.yaml differs from DefaultRunnerConfig():\n%+v\n%+v", runner, DefaultRunnerConfig())
	}

	typing, err := l.Typing("")
	if err != nil {
		t.Fatalf("Typing() failed: %v", err)
	}
	want := DefaultTypingConfig()
	if typing.RoundSeconds != want.RoundSeconds {
		t.Errorf("RoundSeconds = %d, expected %d", typing.RoundSeconds, want.RoundSeconds)
	}
	if len(typing.Words) != len(want.Words) {
		t.Fatalf("len(Words) = %d, expected %d", len(typing.Words), len(want.Words))
	}
	for i := range want.Words {
		if typing.Words[i] != want.Words[i] {
			t.Errorf("Words[%d] = %q, expected %q", i, typing.Words[i], want.Words[i])
		}
	}
}

func TestCustomPath(t *testing.T) {
	l := isolatedLoader(t)
	path := filepath.Join(t.TempDir(), "typing.yaml")
	writeFile(t, path, "round_seconds: 5\nwords: [GO, RUST]\n")

	cfg, err := l.Typing(path)
	if err != nil {
		t.Fatalf("Typing() failed: %v", err)
	}
	if cfg.RoundSeconds != 5 || len(cfg.Words) != 2 || cfg.Words[0] != "GO" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestCustomPathErrors(t *testing.T) {
	l := isolatedLoader(t)

	if _, err := l.Runner(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom path should be an error")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "world: [not, a, map]\n")
	if _, err := l.Runner(bad); err == nil {
		t.Error("malformed custom config should be an error")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	writeFile(t, invalid, "round_seconds: 0\nwords: [GO]\n")
	_, err := l.Typing(invalid)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestUserConfigTakesPrecedence(t *testing.T) {
	l := isolatedLoader(t)
	writeFile(t, filepath.Join(l.HomeDir, ".arcade", "configs", "typing.yaml"), "round_seconds: 7\nwords: [HOME]\n")
	writeFile(t, filepath.Join(l.LocalDir, "typing.yaml"), "round_seconds: 3\nwords: [LOCAL]\n")

	cfg, err := l.Typing("")
	if err != nil {
		t.Fatalf("Typing() failed: %v", err)
	}
	if cfg.Words[0] != "HOME" {
		t.Errorf("expected user config to win, got %+v", cfg)
	}
}

func TestInvalidSearchPathFallsThrough(t *testing.T) {
	var logs bytes.Buffer
	l := isolatedLoader(t)
	l.Logger = log.New(&logs)
	writeFile(t, filepath.Join(l.HomeDir, ".arcade", "configs", "typing.yaml"), "round_seconds: 7\nwords: []\n")
	writeFile(t, filepath.Join(l.LocalDir, "typing.yaml"), "round_seconds: 3\nwords: [LOCAL]\n")

	cfg, err := l.Typing("")
	if err != nil {
		t.Fatalf("Typing() failed: %v", err)
	}
	if cfg.Words[0] != "LOCAL" {
		t.Errorf("invalid user config should be skipped, got %+v", cfg)
	}
	if !strings.Contains(logs.String(), "ignoring config") {
		t.Errorf("expected a warning for the skipped file, got %q", logs.String())
	}
}

func TestSetLogger(t *testing.T) {
	var logs bytes.Buffer
	SetLogger(log.New(&logs))
	t.Cleanup(func() { SetLogger(nil) })

	if got := defaultLoader().Logger; got == nil {
		t.Fatal("default loader should use the configured logger")
	}
	SetLogger(nil)
	if got := defaultLoader().Logger; got != nil {
		t.Error("nil logger should be restored")
	}
}

func TestRunnerValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RunnerConfig)
	}{
		{"zero width", func(c *RunnerConfig) { c.World.Width = 0 }},
		{"ground above top", func(c *RunnerConfig) { c.World.GroundHeight = c.World.Height }},
		{"upward gravity", func(c *RunnerConfig) { c.Physics.Gravity = -1 }},
		{"downward jump", func(c *RunnerConfig) { c.Physics.JumpImpulse = 3 }},
		{"no spawn interval", func(c *RunnerConfig) { c.Obstacles.SpawnInterval = 0 }},
		{"flat small class", func(c *RunnerConfig) { c.Obstacles.Small.Height = 0 }},
		{"negative cooldown", func(c *RunnerConfig) { c.Projectile.Cooldown = -1 }},
		{"no passive interval", func(c *RunnerConfig) { c.Scoring.PassiveEvery = 0 }},
	}

	if err := DefaultRunnerConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestGroundY(t *testing.T) {
	w := DefaultRunnerConfig().World
	if w.GroundY() != 250 {
		t.Errorf("GroundY() = %v, expected 250", w.GroundY())
	}
}

func TestLoadOrDefaultLogsAndFallsBack(t *testing.T) {
	var logs bytes.Buffer
	SetLogger(log.New(&logs))
	t.Cleanup(func() { SetLogger(nil) })

	missing := filepath.Join(t.TempDir(), "missing.yaml")

	if got := LoadRunnerOrDefault(missing); got != DefaultRunnerConfig() {
		t.Errorf("LoadRunnerOrDefault() = %+v, want defaults", got)
	}
	typing := LoadTypingOrDefault(missing)
	if typing.RoundSeconds != DefaultTypingConfig().RoundSeconds || len(typing.Words) != len(DefaultTypingConfig().Words) {
		t.Errorf("LoadTypingOrDefault() = %+v, want defaults", typing)
	}

	out := logs.String()
	if strings.Count(out, "using built-in defaults") != 2 {
		t.Errorf("expected one warning per game, got %q", out)
	}
	if !strings.Contains(out, "missing.yaml") {
		t.Errorf("warning should name the failing file, got %q", out)
	}
}

func TestLoadOrDefaultCustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typing.yaml")
	writeFile(t, path, "round_seconds: 4\nwords: [GO]\n")

	cfg := LoadTypingOrDefault(path)
	if cfg.RoundSeconds != 4 || len(cfg.Words) != 1 || cfg.Words[0] != "GO" {
		t.Errorf("LoadTypingOrDefault() = %+v, want custom file", cfg)
	}
}
