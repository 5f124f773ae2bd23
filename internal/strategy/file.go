package strategy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileEntry is a single strategy definition in a catalog file.
type fileEntry struct {
	Description string             `yaml:"description"`
	Weights     map[string]float64 `yaml:"weights"`
}

// catalogFile is the on-disk layout of a strategy override file:
//
//	equity:
//	  my_custom:
//	    description: 50/50 large and mid cap
//	    weights:
//	      largecap: 50
//	      midcap: 50
//	debt:
//	  short_term:
//	    description: liquid funds only
//	    weights:
//	      liquid: 100
type catalogFile struct {
	Equity map[string]fileEntry `yaml:"equity"`
	Debt   map[string]fileEntry `yaml:"debt"`
}

// LoadFile registers additional strategies from a YAML file. User-defined and
// built-in strategies are interchangeable once registered; names that collide
// with existing strategies are rejected, keeping the registry append-only.
func (c *Catalog) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read strategy file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse strategy file: %w", err)
	}

	for name, entry := range file.Equity {
		if err := c.RegisterEquity(Definition{Name: name, Description: entry.Description, Weights: entry.Weights}); err != nil {
			return fmt.Errorf("register equity strategy from file: %w", err)
		}
	}
	for name, entry := range file.Debt {
		if err := c.RegisterDebt(Definition{Name: name, Description: entry.Description, Weights: entry.Weights}); err != nil {
			return fmt.Errorf("register debt strategy from file: %w", err)
		}
	}

	return nil
}
