package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "MONGO_DB", "MONGO_TIMEOUT", "REDIS_TIMEOUT", "SLACK_TIMEOUT"} {
		t.Setenv(key, "") // register restore, then clear so defaults apply
		os.Unsetenv(key)
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.Mongo.Database != "recognition" {
		t.Errorf("Mongo.Database = %q", cfg.Mongo.Database)
	}
	if cfg.Mongo.Timeout != 10*time.Second {
		t.Errorf("Mongo.Timeout = %v, want 10s", cfg.Mongo.Timeout)
	}
	if cfg.Redis.Timeout != 5*time.Second {
		t.Errorf("Redis.Timeout = %v, want 5s", cfg.Redis.Timeout)
	}
	if cfg.Slack.Timeout != 5*time.Second {
		t.Errorf("Slack.Timeout = %v, want 5s", cfg.Slack.Timeout)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MONGO_TIMEOUT", "2s")
	t.Setenv("REDIS_TIMEOUT", "250ms")
	t.Setenv("REDIS_ADDR", "cache:6379")

	cfg := Load()

	if cfg.Mongo.Timeout != 2*time.Second {
		t.Errorf("Mongo.Timeout = %v, want 2s", cfg.Mongo.Timeout)
	}
	if cfg.Redis.Timeout != 250*time.Millisecond {
		t.Errorf("Redis.Timeout = %v, want 250ms", cfg.Redis.Timeout)
	}
	if cfg.Redis.Addr != "cache:6379" {
		t.Errorf("Redis.Addr = %q", cfg.Redis.Addr)
	}
}
