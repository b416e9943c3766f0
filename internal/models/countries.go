package models

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed data/countries.json
var defaultCountries []byte

// DefaultCountries returns the dataset bundled with the game.
func DefaultCountries() ([]Country, error) {
	countries, err := ParseCountries(defaultCountries)
	if err != nil {
		return nil, fmt.Errorf("embedded dataset: %w", err)
	}
	return countries, nil
}

// LoadCountries reads a country dataset from path. Both JSON and YAML
// arrays are accepted. An empty path loads the bundled dataset.
func LoadCountries(path string) ([]Country, error) {
	if path == "" {
		return DefaultCountries()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	countries, err := ParseCountries(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return countries, nil
}

// ParseCountries decodes a list of country records, keeping file order.
func ParseCountries(data []byte) ([]Country, error) {
	var countries []Country
	if err := yaml.Unmarshal(data, &countries); err != nil {
		return nil, fmt.Errorf("failed to parse countries: %w", err)
	}
	if len(countries) == 0 {
		return nil, fmt.Errorf("no countries found")
	}
	return countries, nil
}
