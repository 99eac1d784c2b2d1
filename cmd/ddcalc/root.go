package main

import (
	"fmt"
	"strings"

	"github.com/ddcalc/investment-calculator/internal/calculation"
	"github.com/ddcalc/investment-calculator/internal/config"
	"github.com/ddcalc/investment-calculator/internal/domain"
	"github.com/ddcalc/investment-calculator/internal/logging"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// envPrefix namespaces environment overrides, e.g. DDCALC_INVESTMENT_YEARS.
const envPrefix = "DDCALC"

// flagKeys maps command-line flags to configuration keys.
var flagKeys = map[string]string{
	"principal":  "investment.principal",
	"years":      "investment.years",
	"growth":     "investment.growth_pc",
	"frequency":  "investment.frequency",
	"tax-rate":   "investment.tax_rate",
	"workers":    "matrix.workers",
	"log-level":  "logging.level",
	"log-format": "logging.format",
}

func newRootCommand() *cobra.Command {
	v := viper.New()
	var configPath string

	cmd := &cobra.Command{
		Use:           "ddcalc",
		Short:         "Project investment growth under deemed-disposal taxation",
		Version:       fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	pf.String("principal", "", "amount invested per cohort")
	pf.Int("years", 0, "horizon in years")
	pf.String("growth", "", "annual growth in whole percent (10 = 10%)")
	pf.String("frequency", "monthly", "compounding frequency (monthly, yearly)")
	pf.String("tax-rate", "", "deemed-disposal tax rate as a fraction (default 0.41)")
	pf.Int("workers", calculation.DefaultMatrixWorkers, "cohort rows computed concurrently")
	pf.String("log-level", "warn", "log level (debug, info, warn, error)")
	pf.String("log-format", "console", "log format (console, json)")

	for flag, key := range flagKeys {
		_ = v.BindPFlag(key, pf.Lookup(flag))
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	env := &cliEnv{viper: v, configPath: &configPath}
	cmd.AddCommand(
		newProjectCommand(env),
		newMatrixCommand(env),
		newExampleConfigCommand(),
	)
	return cmd
}

// cliEnv resolves configuration and dependencies for subcommands.
type cliEnv struct {
	viper      *viper.Viper
	configPath *string
}

// configuration merges, lowest precedence first: the config file, DDCALC_*
// environment variables, then explicitly set flags.
func (e *cliEnv) configuration() (*domain.Configuration, error) {
	parser := config.NewInputParser()
	v := e.viper

	if *e.configPath != "" {
		base, err := parser.LoadFromFile(*e.configPath)
		if err != nil {
			return nil, err
		}
		v.SetDefault("investment.principal", base.Investment.Principal.String())
		v.SetDefault("investment.years", base.Investment.Years)
		v.SetDefault("investment.growth_pc", base.Investment.GrowthPC.String())
		v.SetDefault("investment.frequency", base.Investment.Frequency)
		if base.Investment.TaxRate != nil {
			v.SetDefault("investment.tax_rate", base.Investment.TaxRate.String())
		}
		if base.Matrix.Workers > 0 {
			v.SetDefault("matrix.workers", base.Matrix.Workers)
		}
		if base.Logging.Level != "" {
			v.SetDefault("logging.level", base.Logging.Level)
		}
		if base.Logging.Format != "" {
			v.SetDefault("logging.format", base.Logging.Format)
		}
	}

	cfg := &domain.Configuration{
		Investment: domain.InvestmentConfig{
			Years:     v.GetInt("investment.years"),
			Frequency: v.GetString("investment.frequency"),
		},
		Matrix:  domain.MatrixConfig{Workers: v.GetInt("matrix.workers")},
		Logging: domain.LoggingConfig{Level: v.GetString("logging.level"), Format: v.GetString("logging.format")},
	}

	var err error
	if cfg.Investment.Principal, err = decimalSetting(v, "investment.principal"); err != nil {
		return nil, err
	}
	if cfg.Investment.GrowthPC, err = decimalSetting(v, "investment.growth_pc"); err != nil {
		return nil, err
	}
	if raw := v.GetString("investment.tax_rate"); raw != "" {
		rate, err := decimalSetting(v, "investment.tax_rate")
		if err != nil {
			return nil, err
		}
		cfg.Investment.TaxRate = &rate
	}

	if err := parser.ValidateConfiguration(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// engine builds a calculation engine and its logger from the merged configuration.
func (e *cliEnv) engine() (*calculation.CalculationEngine, *logging.Logger, error) {
	cfg, err := e.configuration()
	if err != nil {
		return nil, nil, err
	}
	params, err := config.NewInputParser().Parameters(cfg)
	if err != nil {
		return nil, nil, err
	}
	log, err := logging.NewLogger(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return nil, nil, err
	}

	ce := calculation.NewCalculationEngine(params)
	ce.Workers = cfg.Matrix.Workers
	ce.Debug = strings.EqualFold(cfg.Logging.Level, "debug")
	ce.SetLogger(log.Named("engine"))
	return ce, log, nil
}

func decimalSetting(v *viper.Viper, key string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(v.GetString(key))
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
