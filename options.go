package algodft

import (
	"github.com/rs/zerolog"

	"github.com/cwbudde/algo-dft/internal/wisdom"
)

// Options configures plan construction. The zero value (and a nil *Options)
// selects defaults: tracing disabled, the package-level wisdom store, and
// automatic strategy selection. No option alters the numerical output of a
// successfully built plan.
type Options struct {
	// Trace receives structured build and selection events at debug level.
	// Nil disables tracing.
	Trace *zerolog.Logger

	// Wisdom overrides the wisdom store consulted and updated during
	// construction. Nil selects DefaultWisdom.
	Wisdom *Wisdom
}

func (o *Options) trace() zerolog.Logger {
	if o == nil || o.Trace == nil {
		return zerolog.Nop()
	}

	return *o.Trace
}

func (o *Options) wisdom() *wisdom.Store {
	if o == nil || o.Wisdom == nil {
		return DefaultWisdom
	}

	return o.Wisdom
}
