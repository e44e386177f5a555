package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bstardust/exifgps/internal/exif"
	"github.com/bstardust/exifgps/internal/utils"
	"github.com/bstardust/exifgps/pkg/common"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Output formats
const (
	FormatText  = "text"
	FormatLines = "lines"
	FormatJSON  = "json"
)

// Config represents the application configuration
type Config struct {
	LogLevel string     `mapstructure:"log_level"`
	Backend  string     `mapstructure:"backend"`
	Format   string     `mapstructure:"format"`
	S3       S3Config   `mapstructure:"s3"`
	Scan     ScanConfig `mapstructure:"scan"`
}

// S3Config represents S3 connection configuration
type S3Config struct {
	Endpoint  string `mapstructure:"endpoint"`
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	UseSSL    bool   `mapstructure:"use_ssl"`
	Prefix    string `mapstructure:"prefix"`
}

// ScanConfig represents batch scan configuration
type ScanConfig struct {
	Concurrency  int           `mapstructure:"concurrency"`
	OnlyGPS      bool          `mapstructure:"only_gps"`
	Output       string        `mapstructure:"output"`
	Upload       bool          `mapstructure:"upload"`
	UploadImages bool          `mapstructure:"upload_images"`
	SkipExisting bool          `mapstructure:"skip_existing"`
	DryRun       bool          `mapstructure:"dry_run"`
	ReportKey    string        `mapstructure:"report_key"`
	Journal      string        `mapstructure:"journal"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

// New creates a new configuration with default values
func New() *Config {
	return &Config{
		LogLevel: "info",
		Backend:  exif.BackendGoexif,
		Format:   FormatText,
		S3: S3Config{
			Region: "us-east-1",
			UseSSL: true,
		},
		Scan: ScanConfig{
			Concurrency:  4,
			SkipExisting: true,
			ReportKey:    "exifgps-report.json",
			Timeout:      30 * time.Minute,
		},
	}
}

// flagKeys maps command line flag names to configuration keys
var flagKeys = map[string]string{
	"log-level":     "log_level",
	"backend":       "backend",
	"format":        "format",
	"endpoint":      "s3.endpoint",
	"region":        "s3.region",
	"bucket":        "s3.bucket",
	"access-key":    "s3.access_key",
	"secret-key":    "s3.secret_key",
	"use-ssl":       "s3.use_ssl",
	"prefix":        "s3.prefix",
	"concurrency":   "scan.concurrency",
	"only-gps":      "scan.only_gps",
	"output":        "scan.output",
	"upload":        "scan.upload",
	"upload-images": "scan.upload_images",
	"skip-existing": "scan.skip_existing",
	"dry-run":       "scan.dry_run",
	"report-key":    "scan.report_key",
	"journal":       "scan.journal",
	"timeout":       "scan.timeout",
}

// Load reads configuration from an optional file and EXIFGPS_* environment
// variables on top of the defaults. An empty path skips the file. Flags
// in flags that were set on the command line take precedence over both.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	cfg := New()

	v := viper.New()
	v.SetEnvPrefix("exifgps")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, cfg)

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, common.NewConfigError(fmt.Sprintf("failed to bind flag %s: %v", name, err))
				}
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, common.NewConfigError(fmt.Sprintf("failed to read %s: %v", path, err))
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, common.NewConfigError(fmt.Sprintf("failed to decode configuration: %v", err))
	}
	return cfg, nil
}

// AutomaticEnv only resolves keys viper already knows, so every field
// gets a default.
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("backend", cfg.Backend)
	v.SetDefault("format", cfg.Format)

	v.SetDefault("s3.endpoint", cfg.S3.Endpoint)
	v.SetDefault("s3.region", cfg.S3.Region)
	v.SetDefault("s3.bucket", cfg.S3.Bucket)
	v.SetDefault("s3.access_key", cfg.S3.AccessKey)
	v.SetDefault("s3.secret_key", cfg.S3.SecretKey)
	v.SetDefault("s3.use_ssl", cfg.S3.UseSSL)
	v.SetDefault("s3.prefix", cfg.S3.Prefix)

	v.SetDefault("scan.concurrency", cfg.Scan.Concurrency)
	v.SetDefault("scan.only_gps", cfg.Scan.OnlyGPS)
	v.SetDefault("scan.output", cfg.Scan.Output)
	v.SetDefault("scan.upload", cfg.Scan.Upload)
	v.SetDefault("scan.upload_images", cfg.Scan.UploadImages)
	v.SetDefault("scan.skip_existing", cfg.Scan.SkipExisting)
	v.SetDefault("scan.dry_run", cfg.Scan.DryRun)
	v.SetDefault("scan.report_key", cfg.Scan.ReportKey)
	v.SetDefault("scan.journal", cfg.Scan.Journal)
	v.SetDefault("scan.timeout", cfg.Scan.Timeout)
}

// Validate checks the settings shared by all commands
func (c *Config) Validate() error {
	if _, err := exif.NewDecoder(c.Backend); err != nil {
		return common.NewConfigError(err.Error())
	}

	switch c.Format {
	case FormatText, FormatLines, FormatJSON:
	default:
		return common.NewConfigError(fmt.Sprintf("unknown output format %q", c.Format))
	}

	if c.Scan.Concurrency < 1 {
		return common.NewConfigError("scan concurrency must be at least 1")
	}

	if c.Scan.Upload || c.Scan.UploadImages {
		return c.validateS3()
	}
	return nil
}

func (c *Config) validateS3() error {
	var errs []error
	if c.S3.Endpoint == "" {
		errs = append(errs, errors.New("S3 endpoint is required"))
	}
	if c.S3.AccessKey == "" || c.S3.SecretKey == "" {
		errs = append(errs, errors.New("S3 access key and secret key are required"))
	}
	if err := utils.ValidateS3BucketName(c.S3.Bucket); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return common.NewConfigError(errors.Join(errs...).Error())
	}
	return nil
}
