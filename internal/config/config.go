// Package config loads CLI configuration from file, environment and defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the CLI configuration for connecting a bucket as a file system.
type Config struct {
	// Bucket is the bucket name (required).
	Bucket string `mapstructure:"bucket"`

	// Region is the AWS region identifier. Must name a supported region.
	Region string `mapstructure:"region"`

	// Endpoint is a custom endpoint URL for S3-compatible stores.
	Endpoint string `mapstructure:"endpoint"`

	// Profile is the AWS shared-config profile to use.
	Profile string `mapstructure:"profile"`

	// AccessKeyID and SecretAccessKey are explicit credentials. When unset
	// the SDK default credential chain applies.
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`

	// MediaRoot is the optional prefix under which all keys live.
	MediaRoot string `mapstructure:"media_root"`

	// PlainHTTP selects http:// instead of https:// for built URLs.
	PlainHTTP bool `mapstructure:"plain_http"`

	// ForcePathStyle forces path-style addressing (S3-compatible stores).
	ForcePathStyle bool `mapstructure:"force_path_style"`

	// RateLimit caps store requests per second during listing and delete
	// loops. Zero means unlimited.
	RateLimit float64 `mapstructure:"rate_limit"`

	// LogLevel is the CLI log level (debug|info|warn|error).
	LogLevel string `mapstructure:"log_level"`
}

// EnvPrefix is the prefix for environment variable overrides,
// e.g. BUCKETFS_BUCKET, BUCKETFS_MEDIA_ROOT.
const EnvPrefix = "BUCKETFS"

// Load reads configuration from the given file path (optional), applies
// environment overrides and defaults, and validates required fields.
//
// With an empty path, a bucketfs.yaml in the working directory is used if
// present; a missing file is not an error since everything can come from
// the environment.
func Load(path string) (*Config, error) {
	v := viper.New()
	// Defaults double as key registrations: viper only unmarshals keys it
	// knows about, and AutomaticEnv alone does not register any.
	v.SetDefault("bucket", "")
	v.SetDefault("region", "us-east-1")
	v.SetDefault("endpoint", "")
	v.SetDefault("profile", "")
	v.SetDefault("access_key_id", "")
	v.SetDefault("secret_access_key", "")
	v.SetDefault("media_root", "")
	v.SetDefault("plain_http", false)
	v.SetDefault("force_path_style", false)
	v.SetDefault("rate_limit", 0.0)
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("bucketfs")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Bucket == "" {
		return nil, errors.New("config: bucket is required (set bucket in bucketfs.yaml or BUCKETFS_BUCKET)")
	}

	return cfg, nil
}
