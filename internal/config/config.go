package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	DB     DBConfig     `yaml:"db"`
	Log    LogConfig    `yaml:"log"`
	Audit  AuditConfig  `yaml:"audit"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// AuditConfig tunes the audit workflow. DefaultSchemaID is the form used
// when a submission names no schema; DueDays is the business deadline
// window for new assignments.
type AuditConfig struct {
	DefaultSchemaID string `yaml:"default_schema_id"`
	DueDays         int    `yaml:"due_days"`
	DailyQuota      int    `yaml:"daily_quota"`
	AssignBatch     int    `yaml:"assign_batch"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		DB: DBConfig{
			Path: "auditline.db",
		},
		Log: LogConfig{
			Level: "info",
		},
		Audit: AuditConfig{
			DefaultSchemaID: "default",
			DueDays:         2,
			DailyQuota:      10,
			AssignBatch:     100,
		},
	}

	if path := os.Getenv("AUDITLINE_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("AUDITLINE_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("AUDITLINE_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid AUDITLINE_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if dbPath := os.Getenv("AUDITLINE_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if level := os.Getenv("AUDITLINE_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if schemaID := os.Getenv("AUDITLINE_DEFAULT_SCHEMA_ID"); schemaID != "" {
		cfg.Audit.DefaultSchemaID = schemaID
	}
	if dueDaysStr := os.Getenv("AUDITLINE_DUE_DAYS"); dueDaysStr != "" {
		dueDays, err := strconv.Atoi(dueDaysStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid AUDITLINE_DUE_DAYS: %w", err)
		}
		cfg.Audit.DueDays = dueDays
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
