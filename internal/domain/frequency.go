package domain

import "strings"

// Frequency is the compounding frequency of an investment.
type Frequency int

const (
	Monthly Frequency = iota
	Yearly
)

// Deemed disposal is triggered every eight years regardless of frequency.
const deemedDisposalYears = 8

var frequencyNames = map[Frequency]string{
	Monthly: "monthly",
	Yearly:  "yearly",
}

// FrequencyNames returns the accepted frequency names in canonical order.
func FrequencyNames() []string {
	return []string{frequencyNames[Monthly], frequencyNames[Yearly]}
}

// DefaultFrequency is applied by callers when no frequency is configured.
const DefaultFrequency = Monthly

// ParseFrequency resolves a frequency name case-insensitively. An empty name
// is rejected like any other unknown name; defaulting belongs to the caller.
func ParseFrequency(name string) (Frequency, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for f, s := range frequencyNames {
		if s == n {
			return f, nil
		}
	}
	return 0, invalidArgument("frequency", name, "frequency not recognised", FrequencyNames()...)
}

// PeriodsPerYear returns the number of compounding periods in a year.
func (f Frequency) PeriodsPerYear() int {
	if f == Yearly {
		return 1
	}
	return 12
}

// ChunkSize returns the number of periods between deemed-disposal events
// (96 months or 8 years).
func (f Frequency) ChunkSize() int {
	return deemedDisposalYears * f.PeriodsPerYear()
}

func (f Frequency) String() string {
	if s, ok := frequencyNames[f]; ok {
		return s
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (f Frequency) MarshalText() ([]byte, error) { return []byte(f.String()), nil }
