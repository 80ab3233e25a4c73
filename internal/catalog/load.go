package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// LoadFile reads a role database from a JSON file shaped as
// {"Role Name": {"skills": [...], "projects": [...]}, ...}.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roles file: %w", err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (*Catalog, error) {
	var byName map[string]Role
	if err := json.Unmarshal(raw, &byName); err != nil {
		return nil, fmt.Errorf("parse roles: %w", err)
	}
	if len(byName) == 0 {
		return nil, fmt.Errorf("parse roles: empty role database")
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	roles := make([]Role, 0, len(names))
	for _, name := range names {
		r := byName[name]
		r.Name = name
		roles = append(roles, r)
	}
	return New(roles), nil
}

// Fallback is the minimal catalog used when reference data cannot be loaded.
// The service must still start and resolve every role to "General".
func Fallback() *Catalog {
	return New([]Role{
		{
			Name:   FallbackRoleKey,
			Skills: []string{"communication", "problem solving", "documentation"},
		},
	})
}
