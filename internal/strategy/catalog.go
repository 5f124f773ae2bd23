// Package strategy holds the registry of named equity and debt allocation
// strategies. The catalog is built once at startup and injected into the
// allocation service; lookups never mutate it.
package strategy

import (
	"fmt"
	"math"
	"sort"

	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/apperrors"
)

// Weights maps a fund category to its share of the strategy in percent.
// Weights for a single strategy sum to exactly 100.
type Weights map[string]float64

// Definition pairs a strategy's weights with its human-readable description.
type Definition struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Weights     Weights `json:"weights"`
}

// Catalog is an append-only registry of equity and debt strategies.
// Registration happens at construction time; after injection the catalog is
// treated as immutable configuration.
type Catalog struct {
	equity map[string]Definition
	debt   map[string]Definition
}

// NewCatalog returns an empty catalog. Most callers want DefaultCatalog.
func NewCatalog() *Catalog {
	return &Catalog{
		equity: make(map[string]Definition),
		debt:   make(map[string]Definition),
	}
}

// DefaultCatalog returns a catalog populated with the built-in presets.
func DefaultCatalog() *Catalog {
	c := NewCatalog()

	presets := []struct {
		kind string
		def  Definition
	}{
		{"equity", Definition{
			Name:        "index_core",
			Description: "100% large-cap index funds for low-cost market returns",
			Weights:     Weights{"largecap": 100},
		}},
		{"equity", Definition{
			Name:        "market_weighted",
			Description: "70% large-cap, 20% mid-cap, 10% small-cap; mirrors market composition",
			Weights:     Weights{"largecap": 70, "midcap": 20, "smallcap": 10},
		}},
		{"equity", Definition{
			Name:        "balanced_growth",
			Description: "45% large-cap, 30% mid-cap, 25% small-cap; balanced risk-return",
			Weights:     Weights{"largecap": 45, "midcap": 30, "smallcap": 25},
		}},
		{"equity", Definition{
			Name:        "aggressive_growth",
			Description: "35% large-cap, 35% mid-cap, 30% small-cap; maximum growth potential",
			Weights:     Weights{"largecap": 35, "midcap": 35, "smallcap": 30},
		}},
		{"debt", Definition{
			Name:        "long_term",
			Description: "Fixed deposits for safe long-term low-risk returns",
			Weights:     Weights{"fd": 100},
		}},
	}

	for _, p := range presets {
		var err error
		if p.kind == "equity" {
			err = c.RegisterEquity(p.def)
		} else {
			err = c.RegisterDebt(p.def)
		}
		if err != nil {
			// Presets are compile-time constants; a failure here is a programming error.
			panic(fmt.Sprintf("invalid built-in strategy %q: %v", p.def.Name, err))
		}
	}

	return c
}

// RegisterEquity adds an equity strategy to the catalog. Existing strategies are
// never overwritten.
func (c *Catalog) RegisterEquity(def Definition) error {
	return register(c.equity, def)
}

// RegisterDebt adds a debt strategy to the catalog.
func (c *Catalog) RegisterDebt(def Definition) error {
	return register(c.debt, def)
}

func register(m map[string]Definition, def Definition) error {
	if def.Name == "" {
		return fmt.Errorf("%w: strategy name is empty", apperrors.ErrInvalidStrategyWeights)
	}
	if _, exists := m[def.Name]; exists {
		return fmt.Errorf("%w: %s", apperrors.ErrStrategyExists, def.Name)
	}
	if err := validateWeights(def.Weights); err != nil {
		return fmt.Errorf("%w: %s", err, def.Name)
	}
	m[def.Name] = Definition{
		Name:        def.Name,
		Description: def.Description,
		Weights:     copyWeights(def.Weights),
	}
	return nil
}

func validateWeights(w Weights) error {
	if len(w) == 0 {
		return apperrors.ErrInvalidStrategyWeights
	}
	total := 0.0
	for _, pct := range w {
		if pct < 0 {
			return apperrors.ErrInvalidStrategyWeights
		}
		total += pct
	}
	if math.Abs(total-100) > 1e-9 {
		return apperrors.ErrInvalidStrategyWeights
	}
	return nil
}

// Equity returns the category weights of the named equity strategy.
func (c *Catalog) Equity(name string) (Weights, error) {
	return lookup(c.equity, name)
}

// Debt returns the category weights of the named debt strategy.
func (c *Catalog) Debt(name string) (Weights, error) {
	return lookup(c.debt, name)
}

func lookup(m map[string]Definition, name string) (Weights, error) {
	def, ok := m[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownStrategy, name)
	}
	return copyWeights(def.Weights), nil
}

// EquityStrategies returns all registered equity strategies sorted by name.
func (c *Catalog) EquityStrategies() []Definition {
	return definitions(c.equity)
}

// DebtStrategies returns all registered debt strategies sorted by name.
func (c *Catalog) DebtStrategies() []Definition {
	return definitions(c.debt)
}

func definitions(m map[string]Definition) []Definition {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	defs := make([]Definition, len(names))
	for i, name := range names {
		def := m[name]
		def.Weights = copyWeights(def.Weights)
		defs[i] = def
	}
	return defs
}

func copyWeights(w Weights) Weights {
	out := make(Weights, len(w))
	for category, pct := range w {
		out[category] = pct
	}
	return out
}
