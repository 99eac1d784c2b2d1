package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ddcalc/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// MaxYears caps the horizon; the cohort matrix grows with the square of the
// period count.
const MaxYears = 100

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a YAML configuration document.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if _, err := ip.Parameters(config); err != nil {
		return fmt.Errorf("investment: %w", err)
	}
	if config.Investment.Years > MaxYears {
		return fmt.Errorf("investment: years must be at most %d", MaxYears)
	}
	if config.Matrix.Workers < 0 {
		return fmt.Errorf("matrix: workers cannot be negative")
	}
	switch config.Logging.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("logging: format must be 'json' or 'console'")
	}
	return nil
}

// Parameters converts the investment section into validated parameters. A
// missing frequency defaults to domain.DefaultFrequency.
func (ip *InputParser) Parameters(config *domain.Configuration) (domain.Parameters, error) {
	inv := config.Investment
	taxRate := domain.DefaultTaxRate
	if inv.TaxRate != nil {
		taxRate = *inv.TaxRate
	}
	frequency := inv.Frequency
	if strings.TrimSpace(frequency) == "" {
		frequency = domain.DefaultFrequency.String()
	}
	return domain.NewParametersWithTaxRate(inv.Principal, inv.Years, inv.GrowthPC, frequency, taxRate)
}

// SaveConfiguration writes config as YAML.
func (ip *InputParser) SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	if err := os.WriteFile(filename, b, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}

// CreateExampleConfiguration creates an example configuration
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	taxRate := domain.DefaultTaxRate
	return &domain.Configuration{
		Investment: domain.InvestmentConfig{
			Principal: decimal.NewFromInt(1000),
			Years:     20,
			GrowthPC:  decimal.NewFromInt(7),
			Frequency: "monthly",
			TaxRate:   &taxRate,
		},
		Matrix: domain.MatrixConfig{
			Workers: 8,
		},
		Logging: domain.LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
