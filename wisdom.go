package algodft

import (
	"fmt"
	"os"

	"github.com/cwbudde/algo-dft/internal/wisdom"
)

// Wisdom caches per-size plan-construction decisions. Entries act as
// strategy pins consulted by subsequent builds and are updated with the
// decisions actually taken.
type Wisdom = wisdom.Store

// DefaultWisdom is the store used by plans built without an explicit
// Options.Wisdom.
var DefaultWisdom = wisdom.NewStore()

// NewWisdom creates a new empty wisdom store.
func NewWisdom() *Wisdom {
	return wisdom.NewStore()
}

// ImportWisdom loads wisdom entries from a YAML file into DefaultWisdom.
// The file should be in the format produced by ExportWisdom.
func ImportWisdom(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open wisdom file: %w", err)
	}

	defer f.Close()

	if err := DefaultWisdom.Import(f); err != nil {
		return fmt.Errorf("failed to import wisdom: %w", err)
	}

	return nil
}

// ExportWisdom saves DefaultWisdom to a YAML file. The file can be loaded
// later with ImportWisdom.
func ExportWisdom(filename string) error {
	return ExportWisdomTo(filename, DefaultWisdom)
}

// ExportWisdomTo saves a specific wisdom store to a YAML file.
func ExportWisdomTo(filename string, w *Wisdom) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create wisdom file: %w", err)
	}

	defer f.Close()

	if err := w.Export(f); err != nil {
		return fmt.Errorf("failed to export wisdom: %w", err)
	}

	return nil
}
