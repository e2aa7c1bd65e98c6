// Package config provides host-tunable options for the query and schema
// core. It provides a simple, programmatic API rather than external
// configuration file management — hosts that want file/env-backed config
// wire spf13/viper themselves and pass the decoded values to the With*
// constructors below.
package config

import "github.com/stokaro-labs/loomquery/core/platform"

// DefaultParameterLimit is the maximum number of values the SQL query
// builder will place in a single IN(...) predicate, or of OR-groups in a
// single disjunction, before chunking into multiple queries (spec §4.E,
// PARAMETER_LIMIT).
const DefaultParameterLimit = 10000

// DefaultDecimalPrecision and DefaultDecimalScale are used when a
// declarative Decimal-typed scalar field does not specify its own
// precision/scale (SPEC_FULL.md §3, Open Question #1).
const (
	DefaultDecimalPrecision = 65
	DefaultDecimalScale     = 30
)

// RelatedRecordsStrategyOverride forces a specific related-records
// pagination strategy regardless of what the dialect would otherwise pick.
// The zero value, StrategyAuto, defers to platform.SupportsWindowFunctions.
type RelatedRecordsStrategyOverride int

const (
	// StrategyAuto selects window-function or union-all based on the
	// dialect's capabilities (the default).
	StrategyAuto RelatedRecordsStrategyOverride = iota
	// StrategyForceRowNumber always uses the ROW_NUMBER() window strategy.
	StrategyForceRowNumber
	// StrategyForceUnionAll always uses the union-all strategy, useful for
	// SQLite builds compiled without window function support.
	StrategyForceUnionAll
)

// Config holds the options a host may tune when embedding this module.
// The zero value is not fully defaulted; use Default() to get one that is.
type Config struct {
	// ParameterLimit overrides DefaultParameterLimit. Zero means "use the
	// default".
	ParameterLimit int

	// RelatedRecordsStrategy overrides the dialect-derived pagination
	// strategy for to-many related-record fetches.
	RelatedRecordsStrategy RelatedRecordsStrategyOverride

	// DecimalPrecision and DecimalScale are the fallback (precision,
	// scale) used for Decimal-typed scalar columns that don't declare
	// their own. Zero values fall back to DefaultDecimalPrecision/Scale.
	DecimalPrecision int
	DecimalScale     int
}

// Default returns a Config resolved to its effective defaults.
//
// Example:
//
//	cfg := config.Default()
func Default() *Config {
	return &Config{
		ParameterLimit:   DefaultParameterLimit,
		DecimalPrecision: DefaultDecimalPrecision,
		DecimalScale:     DefaultDecimalScale,
	}
}

// WithParameterLimit returns a default Config with ParameterLimit
// overridden. A non-positive limit is ignored in favor of the default,
// since chunking needs a positive chunk size.
//
// Example:
//
//	cfg := config.WithParameterLimit(500)
func WithParameterLimit(limit int) *Config {
	c := Default()
	if limit > 0 {
		c.ParameterLimit = limit
	}
	return c
}

// WithDecimalDefaults returns a default Config with the fallback decimal
// precision/scale overridden.
func WithDecimalDefaults(precision, scale int) *Config {
	c := Default()
	if precision > 0 {
		c.DecimalPrecision = precision
	}
	if scale > 0 {
		c.DecimalScale = scale
	}
	return c
}

// EffectiveParameterLimit returns c.ParameterLimit if positive, else
// DefaultParameterLimit. Safe to call on a nil *Config.
func (c *Config) EffectiveParameterLimit() int {
	if c == nil || c.ParameterLimit <= 0 {
		return DefaultParameterLimit
	}
	return c.ParameterLimit
}

// EffectiveDecimal returns the (precision, scale) pair to use for a
// Decimal scalar column that didn't declare its own. Safe to call on a
// nil *Config.
func (c *Config) EffectiveDecimal() (precision, scale int) {
	if c == nil {
		return DefaultDecimalPrecision, DefaultDecimalScale
	}
	precision, scale = c.DecimalPrecision, c.DecimalScale
	if precision <= 0 {
		precision = DefaultDecimalPrecision
	}
	if scale <= 0 {
		scale = DefaultDecimalScale
	}
	return precision, scale
}

// UsesRowNumber resolves the effective related-records strategy for the
// given dialect, honoring any override set on c. Safe to call on a nil
// *Config.
func (c *Config) UsesRowNumber(dialect string) bool {
	if c != nil {
		switch c.RelatedRecordsStrategy {
		case StrategyForceRowNumber:
			return true
		case StrategyForceUnionAll:
			return false
		}
	}
	return platform.SupportsWindowFunctions(dialect)
}
