package sources

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bondwatch-lab/bondwatch/internal/core/fields"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Source describes where booking time and bond live in one county's raw records.
// Field lists are ordered candidates; the first non-blank match wins.
type Source struct {
	Name        string   `yaml:"name"`
	County      string   `yaml:"county"`
	DateFields  []string `yaml:"date_fields"`
	BondFields  []string `yaml:"bond_fields"`
	Fingerprint string   `yaml:"-"` // SHA-256 of the raw YAML file
}

// BookedAt derives the booking time from a raw document.
func (s Source) BookedAt(doc map[string]interface{}) (time.Time, bool) {
	v, ok := fields.PickFirst(doc, s.DateFields)
	if !ok {
		return time.Time{}, false
	}
	return fields.ParseDate(v)
}

// Bond derives the bond amount from a raw document; missing bonds are zero.
func (s Source) Bond(doc map[string]interface{}) decimal.Decimal {
	v, ok := fields.PickFirst(doc, s.BondFields)
	if !ok {
		return decimal.Zero
	}
	return fields.ParseBond(v)
}

// Registry holds every configured source, keyed by name.
// Loaded once at startup; read-only afterwards.
type Registry struct {
	sources map[string]Source
}

// NewRegistry builds a registry from already-parsed sources (used by tests and tooling).
func NewRegistry(list []Source) (*Registry, error) {
	r := &Registry{sources: make(map[string]Source, len(list))}
	for _, s := range list {
		if err := r.add(s); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// LoadDir reads every *.yaml / *.yml file in dir, one source per file.
// A missing directory yields an empty registry.
func LoadDir(dir string) (*Registry, error) {
	r := &Registry{sources: make(map[string]Source)}

	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return r, nil
	}
	if err != nil {
		return nil, fmt.Errorf("source mapping dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source mapping path %q is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading source mapping dir: %w", err)
	}

	for _, e := range entries {
		if e.IsDir() || (!strings.HasSuffix(e.Name(), ".yaml") && !strings.HasSuffix(e.Name(), ".yml")) {
			continue
		}

		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading source file %s: %w", path, err)
		}

		var s Source
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("parsing source file %s: %w", path, err)
		}
		if s.Name == "" {
			continue // empty / comment-only file
		}
		s.Fingerprint = fmt.Sprintf("%x", sha256.Sum256(data))

		if err := r.add(s); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return r, nil
}

func (r *Registry) add(s Source) error {
	s.Name = strings.TrimSpace(s.Name)
	s.County = strings.ToLower(strings.TrimSpace(s.County))

	if s.Name == "" {
		return fmt.Errorf("source name must not be empty")
	}
	if s.County == "" {
		return fmt.Errorf("source %q: county must not be empty", s.Name)
	}
	if len(s.DateFields) == 0 {
		return fmt.Errorf("source %q: date_fields must not be empty", s.Name)
	}
	if len(s.BondFields) == 0 {
		return fmt.Errorf("source %q: bond_fields must not be empty", s.Name)
	}
	if _, exists := r.sources[s.Name]; exists {
		return fmt.Errorf("source %q: duplicate source name", s.Name)
	}
	r.sources[s.Name] = s
	return nil
}

// Get returns the source with the given name.
func (r *Registry) Get(name string) (Source, bool) {
	s, ok := r.sources[name]
	return s, ok
}

// List returns every source sorted by name.
func (r *Registry) List() []Source {
	out := make([]Source, 0, len(r.sources))
	for _, s := range r.sources {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Counties returns the distinct counties covered, sorted.
func (r *Registry) Counties() []string {
	seen := make(map[string]struct{})
	for _, s := range r.sources {
		seen[s.County] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Len reports how many sources are loaded.
func (r *Registry) Len() int {
	return len(r.sources)
}
