package config

import (
	"bytes"
	"fmt"
	"net"
	neturl "net/url"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"
	defaultPort       = 5000
	defaultEnv        = "development"
	defaultMongoHost  = "localhost"
	defaultMongoPort  = 27017
	defaultMongoName  = "routein-db"
	defaultRedisHost  = "localhost"
	defaultRedisPort  = 6379
	defaultRedisDB    = 0
)

// AppConfig holds runtime startup configuration loaded from YAML.
type AppConfig struct {
	Port           int                `yaml:"port"`
	MongoURI       string             `yaml:"mongo_uri"`
	RedisURL       string             `yaml:"redis_url"`
	Mongo          MongoRuntimeConfig `yaml:"mongo"`
	Redis          RedisRuntimeConfig `yaml:"redis"`
	Env            string             `yaml:"env"` // "development" | "production"
	Paths          RuntimePathsConfig `yaml:"paths"`
	AllowedOrigins []string           `yaml:"allowed_origins"`
	JWTSecret      string             `yaml:"jwt_secret"`
	Timezone       string             `yaml:"timezone"`
	Backup         BackupConfig       `yaml:"backup"`
}

type MongoRuntimeConfig struct {
	URI      string `yaml:"uri"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

type RedisRuntimeConfig struct {
	URL      string `yaml:"url"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	TLS      bool   `yaml:"tls"`
}

type RuntimePathsConfig struct {
	Logs    string `yaml:"logs"`
	Backups string `yaml:"backups"`
}

// BackupConfig controls the collection export job.
type BackupConfig struct {
	Enable        bool      `yaml:"enable"`
	IntervalHours int       `yaml:"interval_hours"`
	S3            S3Options `yaml:"s3"`
}

// S3Options configures the optional S3 upload target for backups.
type S3Options struct {
	Enable          bool   `yaml:"enable"`
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	Bucket          string `yaml:"bucket"`
	Region          string `yaml:"region"`
	PathTemplate    string `yaml:"path_template"`
	PathStyleAccess bool   `yaml:"path_style_access"`
}

type rawAppConfig struct {
	Port               int                `yaml:"port"`
	MongoURI           string             `yaml:"mongo_uri"`
	MongoURL           string             `yaml:"mongo_url"`
	DatabaseURL        string             `yaml:"database_url"`
	RedisURL           string             `yaml:"redis_url"`
	Mongo              rawMongoConfig     `yaml:"mongo"`
	Redis              rawRedisConfig     `yaml:"redis"`
	Env                string             `yaml:"env"`
	NodeEnv            string             `yaml:"node_env"`
	Paths              RuntimePathsConfig `yaml:"paths"`
	LogDir             string             `yaml:"log_dir"`
	BackupDir          string             `yaml:"backup_dir"`
	AllowedOrigins     []string           `yaml:"allowed_origins"`
	CORSAllowedOrigins []string           `yaml:"cors_allowed_origins"`
	JWTSecret          string             `yaml:"jwt_secret"`
	JWTSecretLegacy    string             `yaml:"jwtsecret"`
	Timezone           string             `yaml:"timezone"`
	TZ                 string             `yaml:"tz"`
	Backup             rawBackupConfig    `yaml:"backup"`
}

type rawMongoConfig struct {
	URI      string `yaml:"uri"`
	URL      string `yaml:"url"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	DBName   string `yaml:"db_name"`
}

type rawRedisConfig struct {
	URL      string `yaml:"url"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	DB       *int   `yaml:"db"`
	TLS      *bool  `yaml:"tls"`
}

type rawBackupConfig struct {
	Enable        *bool     `yaml:"enable"`
	IntervalHours int       `yaml:"interval_hours"`
	S3            S3Options `yaml:"s3"`
}

// Load reads and normalizes the YAML config file.
func Load(configPath string) (*AppConfig, error) {
	path := strings.TrimSpace(configPath)
	if path == "" {
		path = DefaultConfigPath
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	}

	cfg := defaultAppConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	raw := rawAppConfig{}
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse config file %q: %w", path, err)
	}

	applyRawAppConfig(&cfg, raw)
	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d in %q, expected 1-65535", cfg.Port, path)
	}
	if cfg.Mongo.Port < 1 || cfg.Mongo.Port > 65535 {
		return nil, fmt.Errorf("invalid mongo.port %d in %q, expected 1-65535", cfg.Mongo.Port, path)
	}
	if cfg.Redis.Port < 1 || cfg.Redis.Port > 65535 {
		return nil, fmt.Errorf("invalid redis.port %d in %q, expected 1-65535", cfg.Redis.Port, path)
	}
	if cfg.Redis.DB < 0 {
		return nil, fmt.Errorf("invalid redis.db %d in %q, expected >= 0", cfg.Redis.DB, path)
	}

	return &cfg, nil
}

func defaultAppConfig() AppConfig {
	cfg := AppConfig{
		Port: defaultPort,
		Env:  defaultEnv,
		Mongo: MongoRuntimeConfig{
			Host: defaultMongoHost,
			Port: defaultMongoPort,
			Name: defaultMongoName,
		},
		Redis: RedisRuntimeConfig{
			Host: defaultRedisHost,
			Port: defaultRedisPort,
			DB:   defaultRedisDB,
		},
		Backup: BackupConfig{
			IntervalHours: 24,
		},
	}
	cfg.MongoURI = cfg.Mongo.URIValue()
	cfg.RedisURL = cfg.Redis.URLValue()
	return cfg
}

func applyRawAppConfig(cfg *AppConfig, raw rawAppConfig) {
	if raw.Port != 0 {
		cfg.Port = raw.Port
	}
	cfg.Mongo = applyRawMongoConfig(cfg.Mongo, raw)
	cfg.Redis = applyRawRedisConfig(cfg.Redis, raw)

	if v := strings.TrimSpace(raw.Env); v != "" {
		cfg.Env = v
	}
	if v := strings.TrimSpace(raw.NodeEnv); v != "" {
		cfg.Env = v
	}
	if v := strings.TrimSpace(raw.Paths.Logs); v != "" {
		cfg.Paths.Logs = v
	}
	if v := strings.TrimSpace(raw.LogDir); v != "" {
		cfg.Paths.Logs = v
	}
	if v := strings.TrimSpace(raw.Paths.Backups); v != "" {
		cfg.Paths.Backups = v
	}
	if v := strings.TrimSpace(raw.BackupDir); v != "" {
		cfg.Paths.Backups = v
	}

	switch {
	case raw.AllowedOrigins != nil:
		cfg.AllowedOrigins = normalizeOrigins(raw.AllowedOrigins)
	case raw.CORSAllowedOrigins != nil:
		cfg.AllowedOrigins = normalizeOrigins(raw.CORSAllowedOrigins)
	}

	if v := strings.TrimSpace(raw.JWTSecret); v != "" {
		cfg.JWTSecret = v
	}
	if v := strings.TrimSpace(raw.JWTSecretLegacy); v != "" {
		cfg.JWTSecret = v
	}
	if v := strings.TrimSpace(raw.Timezone); v != "" {
		cfg.Timezone = v
	}
	if v := strings.TrimSpace(raw.TZ); v != "" {
		cfg.Timezone = v
	}

	if raw.Backup.Enable != nil {
		cfg.Backup.Enable = *raw.Backup.Enable
	}
	if raw.Backup.IntervalHours > 0 {
		cfg.Backup.IntervalHours = raw.Backup.IntervalHours
	}
	cfg.Backup.S3 = normalizeS3Options(raw.Backup.S3, cfg.Backup.S3)

	cfg.MongoURI = cfg.Mongo.URIValue()
	cfg.RedisURL = cfg.Redis.URLValue()
	cfg.Env = normalizeEnv(cfg.Env)
}

func applyRawMongoConfig(current MongoRuntimeConfig, raw rawAppConfig) MongoRuntimeConfig {
	cfg := current

	if v := strings.TrimSpace(raw.Mongo.URI); v != "" {
		cfg.URI = v
	}
	if v := strings.TrimSpace(raw.Mongo.URL); v != "" {
		cfg.URI = v
	}
	if v := strings.TrimSpace(raw.MongoURI); v != "" {
		cfg.URI = v
	}
	if v := strings.TrimSpace(raw.MongoURL); v != "" {
		cfg.URI = v
	}
	if v := strings.TrimSpace(raw.DatabaseURL); v != "" {
		cfg.URI = v
	}
	if v := strings.TrimSpace(raw.Mongo.Host); v != "" {
		cfg.Host = v
	}
	if raw.Mongo.Port != 0 {
		cfg.Port = raw.Mongo.Port
	}
	if v := strings.TrimSpace(raw.Mongo.Username); v != "" {
		cfg.Username = v
	}
	if v := strings.TrimSpace(raw.Mongo.Password); v != "" {
		cfg.Password = v
	}
	if v := strings.TrimSpace(raw.Mongo.Name); v != "" {
		cfg.Name = v
	}
	if v := strings.TrimSpace(raw.Mongo.DBName); v != "" {
		cfg.Name = v
	}

	return normalizeMongoConfig(cfg)
}

func applyRawRedisConfig(current RedisRuntimeConfig, raw rawAppConfig) RedisRuntimeConfig {
	cfg := current

	if v := strings.TrimSpace(raw.Redis.URL); v != "" {
		cfg.URL = v
	}
	if v := strings.TrimSpace(raw.RedisURL); v != "" {
		cfg.URL = v
	}
	if v := strings.TrimSpace(raw.Redis.Host); v != "" {
		cfg.Host = v
	}
	if raw.Redis.Port != 0 {
		cfg.Port = raw.Redis.Port
	}
	if v := strings.TrimSpace(raw.Redis.Username); v != "" {
		cfg.Username = v
	}
	if v := strings.TrimSpace(raw.Redis.Password); v != "" {
		cfg.Password = v
	}
	if raw.Redis.DB != nil {
		cfg.DB = *raw.Redis.DB
	}
	if raw.Redis.TLS != nil {
		cfg.TLS = *raw.Redis.TLS
	}

	return normalizeRedisConfig(cfg)
}

func normalizeMongoConfig(cfg MongoRuntimeConfig) MongoRuntimeConfig {
	cfg.URI = strings.TrimSpace(cfg.URI)
	cfg.Host = strings.TrimSpace(cfg.Host)
	cfg.Username = strings.TrimSpace(cfg.Username)
	cfg.Password = strings.TrimSpace(cfg.Password)
	cfg.Name = strings.TrimSpace(cfg.Name)

	if cfg.Host == "" && cfg.URI == "" {
		cfg.Host = defaultMongoHost
	}
	if cfg.Port == 0 {
		cfg.Port = defaultMongoPort
	}
	if cfg.Name == "" {
		cfg.Name = defaultMongoName
	}
	return cfg
}

func normalizeRedisConfig(cfg RedisRuntimeConfig) RedisRuntimeConfig {
	cfg.URL = normalizeRedisRawURL(cfg.URL)
	cfg.Host = strings.TrimSpace(cfg.Host)
	cfg.Username = strings.TrimSpace(cfg.Username)
	cfg.Password = strings.TrimSpace(cfg.Password)

	if cfg.Host == "" && cfg.URL == "" {
		cfg.Host = defaultRedisHost
	}
	if cfg.Port == 0 {
		cfg.Port = defaultRedisPort
	}
	if cfg.DB < 0 {
		cfg.DB = defaultRedisDB
	}
	return cfg
}

func normalizeRedisRawURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "redis://") || strings.HasPrefix(trimmed, "rediss://") {
		return trimmed
	}
	return "redis://" + trimmed
}

func normalizeS3Options(raw, current S3Options) S3Options {
	cfg := current
	cfg.Enable = raw.Enable
	if v := strings.TrimSpace(raw.Endpoint); v != "" {
		cfg.Endpoint = v
	}
	if v := strings.TrimSpace(raw.AccessKeyID); v != "" {
		cfg.AccessKeyID = v
	}
	if v := strings.TrimSpace(raw.SecretAccessKey); v != "" {
		cfg.SecretAccessKey = v
	}
	if v := strings.TrimSpace(raw.Bucket); v != "" {
		cfg.Bucket = v
	}
	if v := strings.TrimSpace(raw.Region); v != "" {
		cfg.Region = v
	}
	if v := strings.TrimSpace(raw.PathTemplate); v != "" {
		cfg.PathTemplate = v
	}
	if raw.PathStyleAccess {
		cfg.PathStyleAccess = true
	}
	return cfg
}

// URIValue builds the effective MongoDB connection string.
func (c MongoRuntimeConfig) URIValue() string {
	if v := strings.TrimSpace(c.URI); v != "" {
		return v
	}

	host := strings.TrimSpace(c.Host)
	if host == "" {
		host = defaultMongoHost
	}
	port := c.Port
	if port == 0 {
		port = defaultMongoPort
	}
	name := strings.TrimSpace(c.Name)
	if name == "" {
		name = defaultMongoName
	}

	u := &neturl.URL{
		Scheme: "mongodb",
		Host:   net.JoinHostPort(host, strconv.Itoa(port)),
		Path:   "/" + name,
	}
	username := strings.TrimSpace(c.Username)
	password := strings.TrimSpace(c.Password)
	if username != "" {
		if password != "" {
			u.User = neturl.UserPassword(username, password)
		} else {
			u.User = neturl.User(username)
		}
	}
	return u.String()
}

// URLValue builds the effective Redis connection string.
func (c RedisRuntimeConfig) URLValue() string {
	if u := normalizeRedisRawURL(c.URL); u != "" {
		return u
	}

	host := strings.TrimSpace(c.Host)
	if host == "" {
		host = defaultRedisHost
	}
	port := c.Port
	if port == 0 {
		port = defaultRedisPort
	}
	db := c.DB
	if db < 0 {
		db = defaultRedisDB
	}

	scheme := "redis"
	if c.TLS {
		scheme = "rediss"
	}

	u := &neturl.URL{
		Scheme: scheme,
		Host:   net.JoinHostPort(host, strconv.Itoa(port)),
		Path:   "/" + strconv.Itoa(db),
	}
	username := strings.TrimSpace(c.Username)
	password := strings.TrimSpace(c.Password)
	if username != "" {
		if password != "" {
			u.User = neturl.UserPassword(username, password)
		} else {
			u.User = neturl.User(username)
		}
	} else if password != "" {
		u.User = neturl.UserPassword("", password)
	}
	return u.String()
}

func normalizeOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, origin := range origins {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(env string) string {
	trimmed := strings.ToLower(strings.TrimSpace(env))
	if trimmed == "" {
		return defaultEnv
	}
	return trimmed
}

func (c *AppConfig) IsDev() bool {
	return strings.EqualFold(c.Env, defaultEnv)
}

func (c *AppConfig) LogDir() string {
	if c == nil {
		return ResolveRuntimePath("", "logs")
	}
	return ResolveRuntimePath(c.Paths.Logs, "logs")
}

func (c *AppConfig) BackupDir() string {
	if c == nil {
		return ResolveRuntimePath("", "backups")
	}
	return ResolveRuntimePath(c.Paths.Backups, "backups")
}
