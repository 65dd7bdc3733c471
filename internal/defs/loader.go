// internal/defs/loader.go
package defs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadUpgrades reads a standalone YAML upgrade table and validates it.
func LoadUpgrades(path string) (UpgradeTable, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read upgrades file: %w", err)
	}

	var table UpgradeTable
	if err := yaml.Unmarshal(file, &table); err != nil {
		return nil, fmt.Errorf("failed to unmarshal upgrades: %w", err)
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}
