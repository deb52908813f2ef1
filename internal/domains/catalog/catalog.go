package catalog

import (
	_ "embed"
	"fmt"
	"hauliday/internal/domains/catalog/model"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed equipment.yaml
var equipmentYAML []byte

type document struct {
	Equipment []model.Equipment `yaml:"equipment"`
}

// Catalog is the read-only equipment list. It is safe for concurrent use.
type Catalog struct {
	items []model.Equipment
	byID  map[string]int
}

// Load parses the embedded equipment list.
func Load() (*Catalog, error) {
	return Parse(equipmentYAML)
}

// MustLoad is Load for process startup; the embedded document is validated by tests.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}

	return c
}

func Parse(data []byte) (*Catalog, error) {
	var doc document

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse equipment catalog: %w", err)
	}

	c := &Catalog{
		items: make([]model.Equipment, 0, len(doc.Equipment)),
		byID:  make(map[string]int, len(doc.Equipment)),
	}

	for i, item := range doc.Equipment {
		item.ID = strings.TrimSpace(item.ID)
		item.Name = strings.TrimSpace(item.Name)

		if item.ID == "" || item.Name == "" {
			return nil, errors.Errorf("equipment entry %d is missing an id or name", i)
		}

		if _, ok := c.byID[item.ID]; ok {
			return nil, errors.Errorf("duplicate equipment id %q", item.ID)
		}

		c.byID[item.ID] = len(c.items)
		c.items = append(c.items, item)
	}

	return c, nil
}

func (c *Catalog) Get(id string) (model.Equipment, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return model.Equipment{}, false
	}

	return c.items[idx], true
}

// All returns a copy of the equipment in file order.
func (c *Catalog) All() []model.Equipment {
	res := make([]model.Equipment, len(c.items))
	copy(res, c.items)

	return res
}

// Describe renders the catalog for the assistant's instructions.
func (c *Catalog) Describe() string {
	var sb strings.Builder

	for _, item := range c.items {
		fmt.Fprintf(&sb, "- %s (id: %s): %s per day. %s\n", item.Name, item.ID, item.PricePerDay, item.Description)

		for _, feature := range item.Features {
			fmt.Fprintf(&sb, "  * %s\n", feature)
		}

		if item.Capacity != "" {
			fmt.Fprintf(&sb, "  * Capacity: %s\n", item.Capacity)
		}
	}

	return sb.String()
}

// Markdown renders the catalog as a knowledge base document.
func (c *Catalog) Markdown() string {
	var sb strings.Builder

	sb.WriteString("# Hauliday Equipment Catalog\n")

	for _, item := range c.items {
		fmt.Fprintf(&sb, "\n## %s\n\n", item.Name)
		fmt.Fprintf(&sb, "- Equipment ID: `%s`\n", item.ID)
		fmt.Fprintf(&sb, "- Price: %s per day\n", item.PricePerDay)

		if item.Capacity != "" {
			fmt.Fprintf(&sb, "- Capacity: %s\n", item.Capacity)
		}

		if item.Description != "" {
			fmt.Fprintf(&sb, "\n%s\n", item.Description)
		}

		if len(item.Features) > 0 {
			sb.WriteString("\n### Features\n\n")

			for _, feature := range item.Features {
				fmt.Fprintf(&sb, "- %s\n", feature)
			}
		}
	}

	return sb.String()
}
