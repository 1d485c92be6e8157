package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestPortOf(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{":23234", "23234"},
		{"0.0.0.0:2222", "2222"},
		{"bogus", "bogus"},
	}
	for _, tt := range tests {
		if got := portOf(tt.addr); got != tt.want {
			t.Errorf("portOf(%q) = %q, want %q", tt.addr, got, tt.want)
		}
	}
}

func TestValidateFPS(t *testing.T) {
	tests := []struct {
		fps     int
		wantErr bool
	}{
		{60, false},
		{1, false},
		{0, true},
		{-30, true},
	}
	for _, tt := range tests {
		if err := validateFPS(tt.fps); (err != nil) != tt.wantErr {
			t.Errorf("validateFPS(%d) error = %v, wantErr %v", tt.fps, err, tt.wantErr)
		}
	}
}

func TestRootRejectsZeroFPS(t *testing.T) {
	t.Cleanup(func() { flagFPS = 60 })
	rootCmd.SetArgs([]string{"list", "--fps", "0"})
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	if err := rootCmd.Execute(); err == nil {
		t.Error("expected --fps 0 to be rejected")
	}
}

func TestApplyServeEnv(t *testing.T) {
	flagSSHAddr, flagHostKey, flagIdleTimeout = ":23234", "", 30
	t.Setenv("ARCADE_SSH_ADDR", ":2200")
	t.Setenv("ARCADE_HOST_KEY", "/tmp/key")
	t.Setenv("ARCADE_IDLE_TIMEOUT", "5")

	if err := applyServeEnv(serveCmd); err != nil {
		t.Fatalf("applyServeEnv() error = %v", err)
	}
	if flagSSHAddr != ":2200" || flagHostKey != "/tmp/key" || flagIdleTimeout != 5 {
		t.Errorf("flags = (%q, %q, %d), want env values", flagSSHAddr, flagHostKey, flagIdleTimeout)
	}
}

func TestApplyServeEnvBadTimeout(t *testing.T) {
	t.Setenv("ARCADE_IDLE_TIMEOUT", "soon")
	if err := applyServeEnv(serveCmd); err == nil {
		t.Error("expected error for non-numeric timeout")
	}
}

func TestApplyConfigPath(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("world: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		game    string
		path    string
		wantErr bool
	}{
		{"no path", "runner", "", false},
		{"missing runner file", "runner", filepath.Join(dir, "missing.yaml"), true},
		{"broken typing file", "typing", bad, true},
		{"unknown game", "pong", bad, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := applyConfigPath(tt.game, tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("applyConfigPath(%q, %q) error = %v, wantErr %v", tt.game, tt.path, err, tt.wantErr)
			}
		})
	}
}
