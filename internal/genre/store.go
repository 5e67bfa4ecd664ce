package genre

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goccy/go-yaml"
	"github.com/groovekit/groovekit/pkg/embedded"
)

// documents maps canonical genre names to their embedded YAML sources.
var documents = map[string][]byte{
	"organic house":     embedded.OrganicHouseYAML,
	"deep house":        embedded.DeepHouseYAML,
	"melodic techno":    embedded.MelodicTechnoYAML,
	"progressive house": embedded.ProgressiveHouseYAML,
	"afro house":        embedded.AfroHouseYAML,
}

// Store parses genre documents on demand and memoizes them for the life
// of the process. Safe for concurrent use; parsed templates are read-only.
type Store struct {
	mu    sync.Mutex
	cache map[string]*Template
}

// NewStore builds an empty template store.
func NewStore() *Store {
	return &Store{cache: make(map[string]*Template)}
}

// Load returns the parsed template for a genre, parsing it on first use.
// Genre names are case-insensitive.
func (s *Store) Load(name string) (*Template, error) {
	key := strings.ToLower(strings.TrimSpace(name))

	s.mu.Lock()
	defer s.mu.Unlock()

	if tmpl, ok := s.cache[key]; ok {
		return tmpl, nil
	}

	doc, ok := documents[key]
	if !ok {
		return nil, fmt.Errorf("unknown genre %q", name)
	}

	var tmpl Template
	if err := yaml.Unmarshal(doc, &tmpl); err != nil {
		return nil, fmt.Errorf("parsing %s template: %w", key, err)
	}

	s.cache[key] = &tmpl
	return &tmpl, nil
}

// Genres lists the supported genre names, sorted.
func (s *Store) Genres() []string {
	names := make([]string, 0, len(documents))
	for name := range documents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
