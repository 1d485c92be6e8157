package main

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/rush-arcade/internal/config"
	"github.com/vovakirdan/rush-arcade/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the arcade SSH server",
	Long: `Start an SSH server that allows users to connect and play games.

Each SSH connection gets its own isolated session with a game picker menu.

Settings can also come from the environment or a .env file in the working
directory; explicit flags take precedence:
  ARCADE_SSH_ADDR       - listen address
  ARCADE_HOST_KEY       - host key path
  ARCADE_IDLE_TIMEOUT   - idle timeout in minutes

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Examples:
  arcade serve                           # Listen on :23234 with auto-generated key
  arcade serve --ssh :2222               # Listen on port 2222
  arcade serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade-ssh",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("ignoring .env", "error", err)
	}
	if err := applyServeEnv(cmd); err != nil {
		fail("%v", err)
	}

	config.SetLogger(logger)

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		fail("creating server: %v", err)
	}

	logger.Info("press Ctrl+C to stop", "connect", "ssh localhost -p "+portOf(cfg.Address))

	if err := server.ListenAndServe(); err != nil {
		fail("server: %v", err)
	}
}

// portOf extracts the port from a listen address for the connect hint.
func portOf(addr string) string {
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return port
}

// applyServeEnv fills flags the user did not set from ARCADE_* variables.
func applyServeEnv(cmd *cobra.Command) error {
	flags := cmd.Flags()
	if v, ok := os.LookupEnv("ARCADE_SSH_ADDR"); ok && !flags.Changed("ssh") {
		flagSSHAddr = v
	}
	if v, ok := os.LookupEnv("ARCADE_HOST_KEY"); ok && !flags.Changed("host-key") {
		flagHostKey = v
	}
	if v, ok := os.LookupEnv("ARCADE_IDLE_TIMEOUT"); ok && !flags.Changed("idle-timeout") {
		minutes, err := strconv.Atoi(v)
		if err != nil || minutes <= 0 {
			return fmt.Errorf("ARCADE_IDLE_TIMEOUT: want positive minutes, got %q", v)
		}
		flagIdleTimeout = minutes
	}
	return nil
}
