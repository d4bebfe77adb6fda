package ising

import "fmt"

// Relabel builds a copy of src with every variable renamed through
// mapping. The mapping must be total (every src variable appears as a
// key) and injective (no two variables share a target); anything less is
// rejected, since partial or colliding relabels would silently merge
// coefficients.
//
// Returns ErrIncompleteRelabel or ErrDuplicateLabel accordingly.
// Complexity: O(variables + couplers).
func Relabel[V, W comparable](src *Model[V], mapping map[V]W) (*Model[W], error) {
	seen := make(map[W]V, len(mapping))
	for v := range src.linear {
		w, ok := mapping[v]
		if !ok {
			return nil, fmt.Errorf("Relabel: variable %v has no target: %w", v, ErrIncompleteRelabel)
		}
		if prev, dup := seen[w]; dup {
			return nil, fmt.Errorf("Relabel: %v and %v both map to %v: %w", prev, v, w, ErrDuplicateLabel)
		}
		seen[w] = v
	}

	dst := New[W]()
	dst.offset = src.offset
	for v, bias := range src.linear {
		dst.linear[mapping[v]] = bias
	}
	for p, w := range src.quad {
		dst.quad[pair[W]{mapping[p.u], mapping[p.v]}] = w
	}

	return dst, nil
}
