package matching

import (
	"strings"

	"trackmycareer/internal/catalog"
	"trackmycareer/internal/pkg/textutil"
)

// Resolver maps arbitrary role-name strings to the closest known role key.
// Resolution is total: it always returns an existing key or the designated
// fallback, never an empty value, in time linear in the number of roles.
type Resolver struct {
	cat    *catalog.Catalog
	cutoff float64
}

func NewResolver(cat *catalog.Catalog, cfg Scoring) *Resolver {
	return &Resolver{cat: cat, cutoff: cfg.RoleNameCutoff}
}

func (r *Resolver) Resolve(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return r.fallback()
	}

	keys := r.cat.Keys()
	lower := strings.ToLower(query)

	// 1) exact, case-insensitive
	for _, k := range keys {
		if strings.ToLower(k) == lower {
			return k
		}
	}

	// 2) substring containment, either direction
	for _, k := range keys {
		kl := strings.ToLower(k)
		if strings.Contains(kl, lower) || strings.Contains(lower, kl) {
			return k
		}
	}

	// 3) closest name by similarity above the cutoff
	best := ""
	bestSim := 0.0
	for _, k := range keys {
		sim := textutil.Similarity(lower, strings.ToLower(k))
		if sim > bestSim {
			bestSim = sim
			best = k
		}
	}
	if best != "" && bestSim > r.cutoff {
		return best
	}

	// 4) any shared token
	qTokens := textutil.Tokens(lower, 3)
	for _, k := range keys {
		kTokens := textutil.Tokens(strings.ToLower(k), 3)
		for _, qt := range qTokens {
			for _, kt := range kTokens {
				if qt == kt {
					return k
				}
			}
		}
	}

	return r.fallback()
}

func (r *Resolver) fallback() string {
	if _, ok := r.cat.Get(catalog.FallbackRoleKey); ok {
		return catalog.FallbackRoleKey
	}
	if keys := r.cat.Keys(); len(keys) > 0 {
		return keys[0]
	}
	return catalog.FallbackRoleKey
}
