package styleexpr

import (
	"sort"

	"github.com/maruel/natural"
)

// naturalSortAccessors orders accessors by slug using natural (numeric-aware)
// comparison, so introspection output lists "prop_2" before "prop_10"
// instead of lexicographically after it.
func naturalSortAccessors(accessors []Accessor) {
	sort.Slice(accessors, func(i, j int) bool {
		return natural.Less(accessors[i].Slug, accessors[j].Slug)
	})
}
