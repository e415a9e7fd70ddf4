package spawn

import (
	"github.com/ngoccc0/dreamland-engine-sub002/internal/registry"
	"github.com/ngoccc0/dreamland-engine-sub002/internal/world"
)

// CheckConditions reports whether a chunk satisfies every precondition of a
// condition set. Soil constraints require membership in the allow-list,
// numeric bounds are enforced per side (a missing side is unconstrained), and
// attribute keys the engine does not define are skipped so modded condition
// tables stay usable. The chance field is selection input, not a
// precondition, and is ignored here.
func CheckConditions(cond *registry.Conditions, ch *world.Chunk) bool {
	if cond == nil {
		return true
	}

	if len(cond.SoilTypes) > 0 {
		allowed := false
		for _, soil := range cond.SoilTypes {
			if soil == ch.SoilType {
				allowed = true
				break
			}
		}
		if !allowed {
			return false
		}
	}

	for key, bound := range cond.Ranges {
		value, known := ch.ByName(key)
		if !known {
			continue
		}
		if bound.Min != nil && value < *bound.Min {
			return false
		}
		if bound.Max != nil && value > *bound.Max {
			return false
		}
	}
	return true
}
