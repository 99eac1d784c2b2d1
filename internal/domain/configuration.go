package domain

import "github.com/shopspring/decimal"

// Configuration is the on-disk description of a projection run.
type Configuration struct {
	Investment InvestmentConfig `yaml:"investment" json:"investment" mapstructure:"investment"`
	Matrix     MatrixConfig     `yaml:"matrix" json:"matrix" mapstructure:"matrix"`
	Logging    LoggingConfig    `yaml:"logging" json:"logging" mapstructure:"logging"`
}

// InvestmentConfig holds the raw, unvalidated investment inputs.
type InvestmentConfig struct {
	Principal decimal.Decimal  `yaml:"principal" json:"principal" mapstructure:"principal"`
	Years     int              `yaml:"years" json:"years" mapstructure:"years"`
	GrowthPC  decimal.Decimal  `yaml:"growth_pc" json:"growth_pc" mapstructure:"growth_pc"`
	Frequency string           `yaml:"frequency" json:"frequency" mapstructure:"frequency"`
	TaxRate   *decimal.Decimal `yaml:"tax_rate,omitempty" json:"tax_rate,omitempty" mapstructure:"tax_rate"`
}

// MatrixConfig tunes cohort matrix construction.
type MatrixConfig struct {
	Workers int `yaml:"workers" json:"workers" mapstructure:"workers"`
}

// LoggingConfig selects log verbosity and encoding.
type LoggingConfig struct {
	Level  string `yaml:"level" json:"level" mapstructure:"level"`
	Format string `yaml:"format" json:"format" mapstructure:"format"`
}
