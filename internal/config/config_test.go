package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func durationPtr(d time.Duration) *time.Duration {
	return &d
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "json logging",
			config: Config{
				Logging: LoggingConfig{Level: "DEBUG", Format: "json"},
			},
			wantErr: false,
		},
		{
			name: "unknown level",
			config: Config{
				Logging: LoggingConfig{Level: "verbose"},
			},
			wantErr: true,
		},
		{
			name: "unknown format",
			config: Config{
				Logging: LoggingConfig{Format: "xml"},
			},
			wantErr: true,
		},
		{
			name: "negative settle delay",
			config: Config{
				Watch: WatchConfig{SettleDelay: durationPtr(-time.Second)},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	if cfg.Logging.Level != "warn" {
		t.Errorf("expected default level warn, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("expected default format console, got %q", cfg.Logging.Format)
	}
	if cfg.Watch.Delay() != defaultSettleDelay {
		t.Errorf(
			"expected default settle delay %v, got %v",
			defaultSettleDelay,
			cfg.Watch.Delay(),
		)
	}
}

func TestLoad(t *testing.T) {
	content := `convert:
  strict_extension: true
  timestamps_only: true
watch:
  dir: ./incoming
  output_dir: ./converted
  settle_delay: 1s
logging:
  level: info
  format: json
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !cfg.Convert.StrictExtension || !cfg.Convert.TimestampsOnly {
		t.Errorf("convert flags not loaded: %+v", cfg.Convert)
	}
	if cfg.Watch.Dir != "./incoming" {
		t.Errorf("expected watch dir ./incoming, got %q", cfg.Watch.Dir)
	}
	if cfg.Watch.OutputDir != "./converted" {
		t.Errorf("expected output dir ./converted, got %q", cfg.Watch.OutputDir)
	}
	if cfg.Watch.Delay() != time.Second {
		t.Errorf("expected settle delay 1s, got %v", cfg.Watch.Delay())
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("logging not loaded: %+v", cfg.Logging)
	}
}

func TestLoadZeroSettleDelay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("watch:\n  settle_delay: 0s\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Watch.Delay() != 0 {
		t.Errorf("expected explicit zero settle delay to be kept, got %v", cfg.Watch.Delay())
	}
}

func TestLoadErrors(t *testing.T) {
	tmpDir := t.TempDir()

	if _, err := Load(filepath.Join(tmpDir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(tmpDir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("logging: [unclosed"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed yaml")
	}

	invalid := filepath.Join(tmpDir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("logging:\n  level: chatty\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := Load(invalid); err == nil {
		t.Error("expected error for invalid level")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}
