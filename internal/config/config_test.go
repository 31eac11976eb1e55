package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "port: 5000\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != 5000 {
		t.Errorf("Port = %d, want 5000", cfg.Port)
	}
	if !cfg.IsDev() {
		t.Error("default env should be development")
	}
	if cfg.MongoURI != "mongodb://localhost:27017/routein-db" {
		t.Errorf("MongoURI = %q", cfg.MongoURI)
	}
	if cfg.RedisURL != "redis://localhost:6379/0" {
		t.Errorf("RedisURL = %q", cfg.RedisURL)
	}
	if cfg.Backup.IntervalHours != 24 {
		t.Errorf("Backup.IntervalHours = %d, want 24", cfg.Backup.IntervalHours)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
port: 8080
env: production
mongo:
  host: db.internal
  port: 27018
  name: routein-prod
redis:
  url: redis://cache:6380/2
jwt_secret: super-secret
timezone: Europe/Berlin
allowed_origins:
  - app.example.com
  - "*.example.dev"
backup:
  enable: true
  interval_hours: 6
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.IsDev() {
		t.Error("env production should not be dev")
	}
	if cfg.MongoURI != "mongodb://db.internal:27018/routein-prod" {
		t.Errorf("MongoURI = %q", cfg.MongoURI)
	}
	if cfg.RedisURL != "redis://cache:6380/2" {
		t.Errorf("RedisURL = %q", cfg.RedisURL)
	}
	if cfg.JWTSecret != "super-secret" {
		t.Errorf("JWTSecret = %q", cfg.JWTSecret)
	}
	if cfg.Timezone != "Europe/Berlin" {
		t.Errorf("Timezone = %q", cfg.Timezone)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "*.example.dev" {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
	if !cfg.Backup.Enable || cfg.Backup.IntervalHours != 6 {
		t.Errorf("Backup = %+v", cfg.Backup)
	}
}

func TestLoadLegacyAliases(t *testing.T) {
	path := writeConfig(t, `
node_env: production
mongo_url: mongodb://legacy:27017/old-db
jwtsecret: legacy-secret
tz: "+02:00"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.IsDev() {
		t.Error("node_env production should not be dev")
	}
	if cfg.MongoURI != "mongodb://legacy:27017/old-db" {
		t.Errorf("MongoURI = %q", cfg.MongoURI)
	}
	if cfg.JWTSecret != "legacy-secret" {
		t.Errorf("JWTSecret = %q", cfg.JWTSecret)
	}
	if cfg.Timezone != "+02:00" {
		t.Errorf("Timezone = %q", cfg.Timezone)
	}
}

func TestLoadRejectsInvalidPort(t *testing.T) {
	path := writeConfig(t, "port: 70000\n")
	if _, err := Load(path); err == nil {
		t.Error("expected error for out-of-range port")
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	path := writeConfig(t, "prot: 5000\n")
	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown config key")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestMongoURIValueWithCredentials(t *testing.T) {
	c := MongoRuntimeConfig{
		Host:     "db",
		Port:     27017,
		Username: "admin",
		Password: "p@ss word",
		Name:     "routein-db",
	}
	want := "mongodb://admin:p%40ss%20word@db:27017/routein-db"
	if got := c.URIValue(); got != want {
		t.Errorf("URIValue = %q, want %q", got, want)
	}
}

func TestMongoURIValuePrefersExplicitURI(t *testing.T) {
	c := MongoRuntimeConfig{URI: "mongodb://explicit:27017/x", Host: "ignored"}
	if got := c.URIValue(); got != "mongodb://explicit:27017/x" {
		t.Errorf("URIValue = %q", got)
	}
}

func TestRedisURLValue(t *testing.T) {
	c := RedisRuntimeConfig{Host: "cache", Port: 6380, DB: 3, TLS: true, Password: "pw"}
	want := "rediss://:pw@cache:6380/3"
	if got := c.URLValue(); got != want {
		t.Errorf("URLValue = %q, want %q", got, want)
	}
}

func TestRedisURLValueAddsScheme(t *testing.T) {
	c := RedisRuntimeConfig{URL: "cache:6379"}
	if got := c.URLValue(); got != "redis://cache:6379" {
		t.Errorf("URLValue = %q", got)
	}
}
