package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// validator is implemented by every game config.
type validator interface {
	Validate() error
}

// Loader resolves game configs from disk with embedded fallbacks.
// Search order: custom path -> <HomeDir>/.arcade/configs/<id>.yaml ->
// <LocalDir>/<id>.yaml -> embedded default -> hard-coded default.
type Loader struct {
	HomeDir  string      // Empty means os.UserHomeDir()
	LocalDir string      // Empty means ./configs
	Logger   *log.Logger // Nil discards
}

var (
	defaultLogger   *log.Logger
	defaultLoggerMu sync.RWMutex
)

// SetLogger sets the logger used by LoadRunner and LoadTyping.
func SetLogger(logger *log.Logger) {
	defaultLoggerMu.Lock()
	defer defaultLoggerMu.Unlock()
	defaultLogger = logger
}

func defaultLoader() Loader {
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return Loader{Logger: defaultLogger}
}

// LoadRunner loads the Blaster Runner configuration with the default loader.
func LoadRunner(customPath string) (RunnerConfig, error) {
	return defaultLoader().Runner(customPath)
}

// LoadTyping loads the Typing Rush configuration with the default loader.
func LoadTyping(customPath string) (TypingConfig, error) {
	return defaultLoader().Typing(customPath)
}

// LoadRunnerOrDefault is LoadRunner for callers that must not fail: on
// error it logs a warning and returns the built-in defaults.
func LoadRunnerOrDefault(customPath string) RunnerConfig {
	return orDefault(defaultLoader(), "runner", customPath, LoadRunner, DefaultRunnerConfig)
}

// LoadTypingOrDefault is LoadTyping for callers that must not fail.
func LoadTypingOrDefault(customPath string) TypingConfig {
	return orDefault(defaultLoader(), "typing", customPath, LoadTyping, DefaultTypingConfig)
}

func orDefault[T any](l Loader, gameID, customPath string, load func(string) (T, error), fallback func() T) T {
	cfg, err := load(customPath)
	if err != nil {
		l.logger().Warn("config unusable, using built-in defaults", "game", gameID, "error", err)
		return fallback()
	}
	return cfg
}

// Runner loads the Blaster Runner configuration.
func (l Loader) Runner(customPath string) (RunnerConfig, error) {
	return load(l, "runner", customPath, defaultRunnerYAML, DefaultRunnerConfig)
}

// Typing loads the Typing Rush configuration.
func (l Loader) Typing(customPath string) (TypingConfig, error) {
	return load(l, "typing", customPath, defaultTypingYAML, DefaultTypingConfig)
}

func load[T validator](l Loader, gameID, customPath string, embedded []byte, fallback func() T) (T, error) {
	logger := l.logger()

	// A custom path is an explicit request, so any problem with it is an error
	if customPath != "" {
		cfg, err := parseFile[T](customPath)
		if err != nil {
			var zero T
			return zero, err
		}
		logger.Debug("loaded config", "game", gameID, "path", customPath)
		return cfg, nil
	}

	filename := gameID + ".yaml"
	for _, path := range []string{l.userConfigPath(filename), l.localConfigPath(filename)} {
		if path == "" {
			continue
		}
		cfg, err := parseFile[T](path)
		if err == nil {
			logger.Debug("loaded config", "game", gameID, "path", path)
			return cfg, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warn("ignoring config", "game", gameID, "path", path, "error", err)
		}
	}

	cfg, err := parse[T](embedded)
	if err != nil {
		logger.Warn("embedded config unusable, using built-in defaults", "game", gameID, "error", err)
		return fallback(), nil
	}
	return cfg, nil
}

func parseFile[T validator](path string) (T, error) {
	var zero T
	data, err := os.ReadFile(path)
	if err != nil {
		return zero, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := parse[T](data)
	if err != nil {
		return zero, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func parse[T validator](data []byte) (T, error) {
	var cfg T
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (l Loader) logger() *log.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return log.New(io.Discard)
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func (l Loader) userConfigPath(filename string) string {
	home := l.HomeDir
	if home == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			return ""
		}
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

func (l Loader) localConfigPath(filename string) string {
	dir := l.LocalDir
	if dir == "" {
		dir = "configs"
	}
	return filepath.Join(dir, filename)
}
