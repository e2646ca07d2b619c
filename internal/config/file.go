// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig mirrors [StructuredConfig] in the shape of the JSON
// or YAML config file.
type StructuredFileConfig struct {
	App struct {
		CommitPolicy     string `json:"commit_policy" yaml:"commit_policy"`
		DeleteStrictness string `json:"delete_strictness" yaml:"delete_strictness"`
		LogFile          string `json:"log_file" yaml:"log_file"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db,omitempty" yaml:"db,omitempty"`

		Attachments struct {
			MaxSize int64 `json:"max_size" yaml:"max_size"`
		} `json:"attachments,omitempty" yaml:"attachments,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Workers struct {
		CleanupInterval Duration `json:"cleanup_interval" yaml:"cleanup_interval"`
	} `json:"workers,omitempty" yaml:"workers,omitempty"`
}

// parseFile reads the config file at path. Files ending in .yaml or .yml
// are decoded as YAML, everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return &StructuredConfig{
		App: App{
			CommitPolicy:     fileCfg.App.CommitPolicy,
			DeleteStrictness: fileCfg.App.DeleteStrictness,
			LogFile:          fileCfg.App.LogFile,
		},
		Storage: Storage{
			DB:          DB{DSN: fileCfg.Storage.DB.DSN},
			Attachments: Attachments{MaxSize: fileCfg.Storage.Attachments.MaxSize},
		},
		Workers: Workers{
			CleanupInterval: time.Duration(fileCfg.Workers.CleanupInterval),
		},
	}, nil
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" as well as from integer nanoseconds, in JSON and in YAML.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("invalid duration at line %d", value.Line)
	}

	if n, err := strconv.ParseInt(value.Value, 10, 64); err == nil {
		*d = Duration(n)
		return nil
	}

	tmp, err := time.ParseDuration(value.Value)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}
