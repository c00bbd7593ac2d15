package main

import (
	"errors"
	"fmt"
	"io"

	"orderpanel/internal/core/domain/model/catalog"
	"orderpanel/internal/core/domain/model/kernel"

	"gopkg.in/yaml.v3"
)

// SeedFile is the YAML layout accepted by "panelctl seed":
//
//	items:
//	  - category: TOPUP
//	    name: 1,000 Gems
//	    price: 10000
//	    description: Instant delivery
type SeedFile struct {
	Items []SeedItem `yaml:"items"`
}

type SeedItem struct {
	Category    string `yaml:"category"`
	Name        string `yaml:"name"`
	Price       int64  `yaml:"price"`
	Description string `yaml:"description"`
}

// ReadSeedFile decodes and validates every item. Unknown keys are rejected
// so a typo does not silently drop a field.
func ReadSeedFile(r io.Reader) ([]*catalog.Item, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file SeedFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("seed file is empty")
		}
		return nil, fmt.Errorf("decode seed file: %w", err)
	}

	items := make([]*catalog.Item, 0, len(file.Items))
	var problems []error
	for i, raw := range file.Items {
		item, err := raw.toItem()
		if err != nil {
			problems = append(problems, fmt.Errorf("item %d (%s): %w", i+1, raw.Name, err))
			continue
		}
		items = append(items, item)
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}
	return items, nil
}

func (s SeedItem) toItem() (*catalog.Item, error) {
	category, err := kernel.ParseCategory(s.Category)
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewPrice(s.Price)
	if err != nil {
		return nil, err
	}
	return catalog.NewItem(category, s.Name, price, s.Description)
}
