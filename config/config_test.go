package config_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/stokaro-labs/loomquery/config"
)

func TestDefault(t *testing.T) {
	c := qt.New(t)

	cfg := config.Default()

	c.Assert(cfg, qt.IsNotNil)
	c.Assert(cfg.ParameterLimit, qt.Equals, config.DefaultParameterLimit)
	c.Assert(cfg.DecimalPrecision, qt.Equals, config.DefaultDecimalPrecision)
	c.Assert(cfg.DecimalScale, qt.Equals, config.DefaultDecimalScale)
}

func TestWithParameterLimit(t *testing.T) {
	tests := []struct {
		name     string
		limit    int
		expected int
	}{
		{name: "positive override", limit: 250, expected: 250},
		{name: "zero falls back to default", limit: 0, expected: config.DefaultParameterLimit},
		{name: "negative falls back to default", limit: -5, expected: config.DefaultParameterLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)

			cfg := config.WithParameterLimit(tt.limit)
			c.Assert(cfg.ParameterLimit, qt.Equals, tt.expected)
		})
	}
}

func TestConfig_EffectiveParameterLimit(t *testing.T) {
	c := qt.New(t)

	var nilCfg *config.Config
	c.Assert(nilCfg.EffectiveParameterLimit(), qt.Equals, config.DefaultParameterLimit)

	c.Assert((&config.Config{}).EffectiveParameterLimit(), qt.Equals, config.DefaultParameterLimit)
	c.Assert((&config.Config{ParameterLimit: 7}).EffectiveParameterLimit(), qt.Equals, 7)
}

func TestConfig_EffectiveDecimal(t *testing.T) {
	c := qt.New(t)

	var nilCfg *config.Config
	p, s := nilCfg.EffectiveDecimal()
	c.Assert(p, qt.Equals, config.DefaultDecimalPrecision)
	c.Assert(s, qt.Equals, config.DefaultDecimalScale)

	cfg := &config.Config{DecimalPrecision: 10, DecimalScale: 2}
	p, s = cfg.EffectiveDecimal()
	c.Assert(p, qt.Equals, 10)
	c.Assert(s, qt.Equals, 2)
}

func TestConfig_UsesRowNumber(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *config.Config
		dialect  string
		expected bool
	}{
		{name: "auto postgres", cfg: config.Default(), dialect: "postgres", expected: true},
		{name: "force union-all", cfg: &config.Config{RelatedRecordsStrategy: config.StrategyForceUnionAll}, dialect: "postgres", expected: false},
		{name: "force row-number", cfg: &config.Config{RelatedRecordsStrategy: config.StrategyForceRowNumber}, dialect: "sqlite", expected: true},
		{name: "unknown dialect auto", cfg: config.Default(), dialect: "oracle", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)
			c.Assert(tt.cfg.UsesRowNumber(tt.dialect), qt.Equals, tt.expected)
		})
	}
}
