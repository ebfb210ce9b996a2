// Package wisdom caches per-size plan-construction decisions. A store can
// be exported to YAML and imported later, so a program can pin the strategy
// used for each size across runs.
package wisdom

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-dft/internal/fftypes"
)

// Store holds strategy decisions keyed by transform size. It is safe for
// concurrent use.
type Store struct {
	mu      sync.RWMutex
	entries map[int]fftypes.Strategy
}

// NewStore creates an empty wisdom store.
func NewStore() *Store {
	return &Store{entries: make(map[int]fftypes.Strategy)}
}

// Lookup returns the recorded strategy for size n, if any.
func (s *Store) Lookup(n int) (fftypes.Strategy, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	strategy, ok := s.entries[n]

	return strategy, ok
}

// Record stores the strategy chosen for size n, replacing any previous
// entry.
func (s *Store) Record(n int, strategy fftypes.Strategy) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[n] = strategy
}

// Len returns the number of recorded sizes.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}

// fileFormat is the YAML representation of a store.
type fileFormat struct {
	Plans []fileEntry `yaml:"plans"`
}

type fileEntry struct {
	Size     int    `yaml:"size"`
	Strategy string `yaml:"strategy"`
}

// Export writes the store as YAML, sorted by size for stable output.
func (s *Store) Export(w io.Writer) error {
	s.mu.RLock()

	out := fileFormat{Plans: make([]fileEntry, 0, len(s.entries))}
	for size, strategy := range s.entries {
		out.Plans = append(out.Plans, fileEntry{Size: size, Strategy: strategy.String()})
	}

	s.mu.RUnlock()

	sort.Slice(out.Plans, func(i, j int) bool {
		return out.Plans[i].Size < out.Plans[j].Size
	})

	data, err := yaml.Marshal(&out)
	if err != nil {
		return fmt.Errorf("wisdom: marshal: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("wisdom: write: %w", err)
	}

	return nil
}

// Import merges entries from YAML produced by Export. Existing entries for
// the same sizes are overwritten; entries with non-positive sizes are
// rejected.
func (s *Store) Import(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("wisdom: read: %w", err)
	}

	var in fileFormat
	if err := yaml.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("wisdom: unmarshal: %w", err)
	}

	for _, entry := range in.Plans {
		if entry.Size < 2 {
			return fmt.Errorf("wisdom: invalid size %d", entry.Size)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, entry := range in.Plans {
		s.entries[entry.Size] = fftypes.ParseStrategy(entry.Strategy)
	}

	return nil
}
