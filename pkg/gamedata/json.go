package gamedata

import (
	"encoding/json"
	"fmt"
	"os"
)

// jsonEnchantment mirrors one entry of minecraft-data's enchantments.json.
type jsonEnchantment struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	DisplayName  string   `json:"displayName"`
	MaxLevel     int      `json:"maxLevel"`
	MinCost      jsonCost `json:"minCost"`
	MaxCost      jsonCost `json:"maxCost"`
	Exclude      []string `json:"exclude"`
	Category     string   `json:"category"`
	Weight       int      `json:"weight"`
	TreasureOnly bool     `json:"treasureOnly"`
	Curse        bool     `json:"curse"`
	Tradeable    bool     `json:"tradeable"`
	Discoverable bool     `json:"discoverable"`
}

type jsonCost struct {
	A int `json:"a"`
	B int `json:"b"`
}

func LoadJSON[T any](data []byte) ([]T, error) {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	return items, nil
}

// ParseEnchantments decodes a minecraft-data enchantments.json document.
func ParseEnchantments(data []byte) ([]Enchantment, error) {
	raw, err := LoadJSON[jsonEnchantment](data)
	if err != nil {
		return nil, err
	}

	out := make([]Enchantment, 0, len(raw))
	for _, r := range raw {
		if r.Name == "" {
			return nil, fmt.Errorf("enchantment id %d: missing name", r.ID)
		}
		out = append(out, Enchantment{
			ID:           r.ID,
			Name:         r.Name,
			DisplayName:  r.DisplayName,
			MaxLevel:     r.MaxLevel,
			MinCost:      EnchantCost(r.MinCost),
			MaxCost:      EnchantCost(r.MaxCost),
			Exclude:      r.Exclude,
			Category:     r.Category,
			Weight:       r.Weight,
			TreasureOnly: r.TreasureOnly,
			Curse:        r.Curse,
			Tradeable:    r.Tradeable,
			Discoverable: r.Discoverable,
		})
	}
	return out, nil
}

// LoadEnchantmentsFile reads a scheme file from disk and wraps it as a
// GameData labelled with version.
func LoadEnchantmentsFile(path, version string) (*GameData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	list, err := ParseEnchantments(raw)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &GameData{
		Version:      version,
		Enchantments: NewEnchantmentRegistry(list),
	}, nil
}
