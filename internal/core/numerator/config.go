// Package numerator provides domain contracts for document auto-numbering.
package numerator

// Strategy defines the numbering generation strategy.
type Strategy int

const (
	// StrategyStrict uses UPSERT ... RETURNING for every number.
	// Guarantees sequential numbers without gaps.
	// Slower, suitable for accounting documents.
	StrategyStrict Strategy = iota

	// StrategyCached allocates ranges of numbers in memory.
	// Much faster, but may produce gaps if application restarts.
	// Suitable for internal reference codes.
	StrategyCached
)

// Options configuration for number generation.
type Options struct {
	// Strategy to use for number generation
	Strategy Strategy
	// RangeSize is the number of IDs to allocate at once in Cached strategy.
	// Default is 50.
	RangeSize int64
}

// DefaultOptions returns standard options (Strict).
func DefaultOptions() *Options {
	return &Options{
		Strategy: StrategyStrict,
	}
}

// CodeOptions returns the options used for catalog code generation: cached
// ranges, since codes tolerate gaps and catalogs are created in bursts
// during imports.
func CodeOptions() *Options {
	return &Options{
		Strategy:  StrategyCached,
		RangeSize: 50,
	}
}

// Config holds numbering configuration.
type Config struct {
	// Prefix added to all numbers (e.g., "PO", "GR", "VP")
	Prefix string

	// PadWidth is the minimum number width (default 4)
	PadWidth int

	// ResetPeriod: "day", "month", "year", "never".
	// The period is embedded into both the sequence key and the formatted
	// number, so GR-20260831-0001 restarts at 0001 the next day.
	ResetPeriod string
}

// DefaultConfig returns the daily-reset numbering used for all documents:
// PREFIX-YYYYMMDD-NNNN.
func DefaultConfig(prefix string) Config {
	return Config{
		Prefix:      prefix,
		PadWidth:    4,
		ResetPeriod: "day",
	}
}

// CodeConfig returns the numbering used for catalog codes: PREFIX-NNNNN,
// never reset.
func CodeConfig(prefix string) Config {
	return Config{
		Prefix:      prefix,
		PadWidth:    5,
		ResetPeriod: "never",
	}
}
