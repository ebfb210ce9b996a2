package fftypes

// Strategy identifies how a plan for a given size was (or should be) built.
type Strategy uint32

const (
	StrategyAuto Strategy = iota
	StrategyCodelet
	StrategyMixedRadix
)

// String returns a human-readable name for the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyAuto:
		return "auto"
	case StrategyCodelet:
		return "codelet"
	case StrategyMixedRadix:
		return "mixed-radix"
	default:
		return "unknown"
	}
}

// ParseStrategy converts a strategy name back to its value. Unknown names
// map to StrategyAuto so stale wisdom files degrade to automatic selection.
func ParseStrategy(name string) Strategy {
	switch name {
	case "codelet":
		return StrategyCodelet
	case "mixed-radix":
		return StrategyMixedRadix
	default:
		return StrategyAuto
	}
}
