package catalog

import (
	"sort"
	"strings"
)

// FallbackRoleKey is returned by role resolution when nothing else matches.
const FallbackRoleKey = "General"

type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	TechStack   []string `json:"tech_stack"`
}

type Role struct {
	Name     string    `json:"-"`
	Skills   []string  `json:"skills"`
	Projects []Project `json:"projects"`
}

// Catalog is the read-only role database. It is built once at startup and
// shared by every request without locking.
type Catalog struct {
	keys  []string
	roles map[string]Role
}

func New(roles []Role) *Catalog {
	c := &Catalog{
		keys:  make([]string, 0, len(roles)),
		roles: make(map[string]Role, len(roles)),
	}
	for _, r := range roles {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			continue
		}
		if _, ok := c.roles[name]; ok {
			continue
		}
		r.Name = name
		r.Skills = dedupeLower(r.Skills)
		c.keys = append(c.keys, name)
		c.roles[name] = r
	}
	return c
}

// Keys returns role names in database order.
func (c *Catalog) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

func (c *Catalog) Len() int {
	return len(c.keys)
}

func (c *Catalog) Get(key string) (Role, bool) {
	r, ok := c.roles[key]
	return r, ok
}

// Skills returns the role's required skills, already lowercased and unique.
func (c *Catalog) Skills(key string) []string {
	r, ok := c.roles[key]
	if !ok {
		return nil
	}
	out := make([]string, len(r.Skills))
	copy(out, r.Skills)
	return out
}

// MasterSkills is the union of every role's required skills, sorted.
func (c *Catalog) MasterSkills() []string {
	seen := make(map[string]struct{})
	for _, key := range c.keys {
		for _, s := range c.roles[key].Skills {
			seen[s] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func dedupeLower(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
