// Package mockdata holds the curated instrument snapshots served when the
// upstream backend cannot answer.
package mockdata

import (
	"fmt"
	"os"
	"sort"

	"FinDash/internal/domain/models"
	drepo "FinDash/internal/domain/repository"
	"FinDash/pkg/util"

	"gopkg.in/yaml.v3"
)

// Catalog is an immutable symbol -> snapshot table. Lookups hand out deep
// copies, so it is safe to share between goroutines without locking.
type Catalog struct {
	entries map[string]models.Snapshot
	symbols []string
}

var _ drepo.Catalog = (*Catalog)(nil)

// NewCatalog validates and indexes snapshots by normalized symbol.
func NewCatalog(snaps []models.Snapshot) (*Catalog, error) {
	c := &Catalog{entries: make(map[string]models.Snapshot, len(snaps))}
	for _, s := range snaps {
		sym := util.NormalizeSymbol(s.Symbol)
		if sym == "" {
			return nil, fmt.Errorf("catalog: snapshot without symbol")
		}
		if _, dup := c.entries[sym]; dup {
			return nil, fmt.Errorf("catalog: duplicate symbol %s", sym)
		}
		if err := Validate(s); err != nil {
			return nil, fmt.Errorf("catalog: %s: %w", sym, err)
		}
		s = s.Clone()
		s.Symbol = sym
		c.entries[sym] = s
		c.symbols = append(c.symbols, sym)
	}
	sort.Strings(c.symbols)
	return c, nil
}

// Default returns the catalog built from the hand-authored snapshots.
func Default() *Catalog {
	c, err := NewCatalog(DefaultSnapshots())
	if err != nil {
		panic(fmt.Sprintf("mockdata: default catalog: %v", err))
	}
	return c
}

type catalogFile struct {
	Instruments []models.Snapshot `yaml:"instruments"`
}

// LoadFile builds a catalog from a YAML document with an `instruments` list.
func LoadFile(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var f catalogFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(f.Instruments) == 0 {
		return nil, fmt.Errorf("catalog %s: no instruments", path)
	}
	return NewCatalog(f.Instruments)
}

// Lookup returns a deep copy of the snapshot for symbol.
func (c *Catalog) Lookup(symbol string) (models.Snapshot, bool) {
	s, ok := c.entries[util.NormalizeSymbol(symbol)]
	if !ok {
		return models.Snapshot{}, false
	}
	return s.Clone(), true
}

// Symbols lists the catalog keys in ascending order.
func (c *Catalog) Symbols() []string {
	return append([]string(nil), c.symbols...)
}

// Len returns the number of instruments.
func (c *Catalog) Len() int { return len(c.entries) }

// Validate checks level ordering: support strictly decreasing away from
// price, resistance strictly increasing.
func Validate(s models.Snapshot) error {
	for i := 1; i < len(s.Support); i++ {
		if s.Support[i] >= s.Support[i-1] {
			return fmt.Errorf("support not strictly decreasing at %d", i)
		}
	}
	for i := 1; i < len(s.Resistance); i++ {
		if s.Resistance[i] <= s.Resistance[i-1] {
			return fmt.Errorf("resistance not strictly increasing at %d", i)
		}
	}
	if s.Sentiment < -1 || s.Sentiment > 1 {
		return fmt.Errorf("sentiment %v outside [-1, 1]", s.Sentiment)
	}
	if s.Volume < 0 || s.OpenInterest < 0 {
		return fmt.Errorf("negative volume/open interest")
	}
	return nil
}
