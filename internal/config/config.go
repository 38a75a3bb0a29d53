package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	BackendNone     = "none"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

type Config struct {
	Port          string
	DataDir       string
	StateKey      string
	RemoteBackend string
	RemoteStateID string
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	WorkerCount   int
	LogLevel      string
	CORSOrigins   []string
	Users         []string
}

// Load reads the environment and, when path is set, a YAML file. Environment
// variables win over the file.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetDefault("port", "8080")
	v.SetDefault("data_dir", defaultDataDir())
	v.SetDefault("state_key", "kanban-app-state")
	v.SetDefault("remote_backend", "")
	v.SetDefault("remote_state_id", "default")
	v.SetDefault("database_url", "")
	v.SetDefault("redis_addr", "")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("worker_count", 3)
	v.SetDefault("log_level", "info")
	v.SetDefault("cors_origins", "http://localhost:5173")
	v.SetDefault("users", "")

	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config.Load: %w", err)
		}
	}

	cfg := Config{
		Port:          v.GetString("port"),
		DataDir:       v.GetString("data_dir"),
		StateKey:      v.GetString("state_key"),
		RemoteStateID: v.GetString("remote_state_id"),
		DatabaseURL:   v.GetString("database_url"),
		RedisAddr:     v.GetString("redis_addr"),
		RedisPassword: v.GetString("redis_password"),
		RedisDB:       v.GetInt("redis_db"),
		WorkerCount:   v.GetInt("worker_count"),
		LogLevel:      strings.ToLower(v.GetString("log_level")),
		CORSOrigins:   splitList(v.Get("cors_origins")),
		Users:         splitList(v.Get("users")),
	}
	if cfg.WorkerCount < 1 {
		cfg.WorkerCount = 1
	}

	backend, err := resolveBackend(strings.ToLower(v.GetString("remote_backend")), cfg)
	if err != nil {
		return Config{}, err
	}
	cfg.RemoteBackend = backend

	return cfg, nil
}

func resolveBackend(name string, cfg Config) (string, error) {
	switch name {
	case "":
		switch {
		case cfg.DatabaseURL != "":
			return BackendPostgres, nil
		case cfg.RedisAddr != "":
			return BackendRedis, nil
		default:
			return BackendNone, nil
		}
	case BackendNone:
		return BackendNone, nil
	case BackendPostgres:
		if cfg.DatabaseURL == "" {
			return "", fmt.Errorf("config.Load: remote backend postgres needs DATABASE_URL")
		}
		return BackendPostgres, nil
	case BackendRedis:
		if cfg.RedisAddr == "" {
			return "", fmt.Errorf("config.Load: remote backend redis needs REDIS_ADDR")
		}
		return BackendRedis, nil
	default:
		return "", fmt.Errorf("config.Load: unknown remote backend %q", name)
	}
}

func defaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "kanban")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".kanban"
	}
	return filepath.Join(home, ".local", "share", "kanban")
}

// splitList accepts a comma separated string (env) or a YAML list.
func splitList(raw any) []string {
	var parts []string
	switch x := raw.(type) {
	case string:
		parts = strings.Split(x, ",")
	case []string:
		parts = x
	case []any:
		for _, p := range x {
			parts = append(parts, fmt.Sprint(p))
		}
	}

	var out []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
