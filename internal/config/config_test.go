package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/btcbacked/collateral-calc/pkg/constants"
)

func TestLoadConfiguration(t *testing.T) {
	content := `logging:
  level: debug
  format: console
output:
  format: csv
  language: uk
server:
  address: ":9090"
preset:
  durationMonths: 12
  positions:
    - principal: "10000"
      collateral: "1.0"
  rates:
    - rate: "12"
      period: "12"
  prices:
    - "20000"
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if conf.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, expected \"debug\"", conf.Logging.Level)
	}
	if conf.Output.Format != "csv" {
		t.Errorf("Output.Format = %q, expected \"csv\"", conf.Output.Format)
	}
	if conf.Output.Language != "uk" {
		t.Errorf("Output.Language = %q, expected \"uk\"", conf.Output.Language)
	}
	if conf.Server.Address != ":9090" {
		t.Errorf("Server.Address = %q, expected \":9090\"", conf.Server.Address)
	}
	if conf.Preset == nil {
		t.Fatal("Preset is nil")
	}
	if conf.Preset.DurationMonths != 12 {
		t.Errorf("Preset.DurationMonths = %d, expected 12", conf.Preset.DurationMonths)
	}
	if len(conf.Preset.Positions) != 1 || conf.Preset.Positions[0].Principal != "10000" {
		t.Errorf("Preset.Positions = %v, expected one position with principal 10000", conf.Preset.Positions)
	}
	if len(conf.Preset.Rates) != 1 || conf.Preset.Rates[0].Period != "12" {
		t.Errorf("Preset.Rates = %v, expected one 12-month rate", conf.Preset.Rates)
	}
	if len(conf.Preset.Prices) != 1 || conf.Preset.Prices[0] != "20000" {
		t.Errorf("Preset.Prices = %v, expected [20000]", conf.Preset.Prices)
	}
}

func TestLoadConfigurationMissingFileUsesDefaults(t *testing.T) {
	conf, err := LoadConfiguration(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v, expected defaults for a missing file", err)
	}

	if conf.Server.Address != constants.DefaultServerAddress {
		t.Errorf("Server.Address = %q, expected default %q", conf.Server.Address, constants.DefaultServerAddress)
	}
	if conf.Preset != nil {
		t.Errorf("Preset = %v, expected nil", conf.Preset)
	}
}

func TestLoadConfigurationMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("logging: [unclosed"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := LoadConfiguration(path); err == nil {
		t.Error("LoadConfiguration() expected error for malformed YAML")
	}
}
