package action

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"lifeos/internal/domain/life"
)

// suggest offers the closest catalog name for a typo, or "" when nothing is
// near enough to be a plausible slip.
func suggest(name string) string {
	best := ""
	bestDist := 4
	lower := strings.ToLower(name)
	for _, candidate := range life.ActionNames() {
		d := levenshtein.ComputeDistance(lower, strings.ToLower(candidate))
		if d < bestDist {
			best = candidate
			bestDist = d
		}
	}
	return best
}
