// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	Employee EmployeeConfig `toml:"employee"`
	Currency CurrencyConfig `toml:"currency"`
	Export   ExportConfig   `toml:"export"`
	UI       UIConfig       `toml:"ui"`
}

// EmployeeConfig identifies the signed-in employee for headings and exports.
type EmployeeConfig struct {
	Name string `toml:"name"` // empty hides the name
}

// CurrencyConfig controls how amounts are displayed.
type CurrencyConfig struct {
	Symbol string `toml:"symbol"` // e.g., "₹"
	Code   string `toml:"code"`   // ISO 4217, e.g., "INR"; used in PDF exports
}

// ExportConfig holds payslip export settings.
type ExportConfig struct {
	PayslipDir string `toml:"payslip_dir"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte", "light", "auto"
	Mouse bool   `toml:"mouse"` // enable click handling for tabs and dialogs
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Employee: EmployeeConfig{
			Name: "",
		},
		Currency: CurrencyConfig{
			Symbol: "₹",
			Code:   "INR",
		},
		Export: ExportConfig{
			PayslipDir: defaultPayslipDir(),
		},
		UI: UIConfig{
			Theme: "mocha",
			Mouse: true,
		},
	}
}

// defaultPayslipDir returns the default payslip export directory.
func defaultPayslipDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "payslips"
	}
	return filepath.Join(home, ".local", "share", "hrportal", "payslips")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "hrportal", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Export.PayslipDir = expandPath(cfg.Export.PayslipDir)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HRPORTAL_EMPLOYEE_NAME"); v != "" {
		cfg.Employee.Name = v
	}

	if v := os.Getenv("HRPORTAL_CURRENCY_SYMBOL"); v != "" {
		cfg.Currency.Symbol = v
	}
	if v := os.Getenv("HRPORTAL_CURRENCY_CODE"); v != "" {
		cfg.Currency.Code = strings.ToUpper(v)
	}

	if v := os.Getenv("HRPORTAL_PAYSLIP_DIR"); v != "" {
		cfg.Export.PayslipDir = v
	}

	if v := os.Getenv("HRPORTAL_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("HRPORTAL_UI_MOUSE"); v != "" {
		switch strings.ToLower(v) {
		case "0", "false", "no", "off":
			cfg.UI.Mouse = false
		case "1", "true", "yes", "on":
			cfg.UI.Mouse = true
		}
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Currency.Symbol) == "" {
		return errors.New("currency symbol must be set")
	}
	if err := validateCurrencyCode(c.Currency.Code); err != nil {
		return err
	}
	if c.Export.PayslipDir == "" {
		return errors.New("payslip_dir must be set")
	}
	return nil
}

// validateCurrencyCode checks for a three-letter uppercase code.
func validateCurrencyCode(code string) error {
	if len(code) != 3 {
		return fmt.Errorf("currency code must be three letters, got %q", code)
	}
	for _, c := range code {
		if c < 'A' || c > 'Z' {
			return fmt.Errorf("currency code must be uppercase letters, got %q", code)
		}
	}
	return nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
