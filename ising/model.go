package ising

import "fmt"

// pair is an unordered variable pair; normalization happens at insertion
// time (whichever orientation was stored first owns the coefficient).
type pair[V comparable] struct {
	u, v V
}

// Model is a quadratic energy function over spin variables labeled by V.
// The zero value is not usable; construct with New or FromQuadraticForm.
type Model[V comparable] struct {
	linear map[V]float64
	quad   map[pair[V]]float64
	offset float64
}

// New returns an empty spin model.
func New[V comparable]() *Model[V] {
	return &Model[V]{
		linear: make(map[V]float64),
		quad:   make(map[pair[V]]float64),
	}
}

// AddVariable ensures v exists with a (possibly zero) linear coefficient.
func (m *Model[V]) AddVariable(v V) {
	if _, ok := m.linear[v]; !ok {
		m.linear[v] = 0
	}
}

// AddLinear accumulates bias onto v's linear coefficient, inserting the
// variable if needed.
func (m *Model[V]) AddLinear(v V, bias float64) {
	m.linear[v] += bias
}

// AddQuadratic accumulates w onto the (u,v) coupler, inserting both
// variables if needed. A self-coupler (u == v) folds into the offset:
// s² = 1 for spins.
func (m *Model[V]) AddQuadratic(u, v V, w float64) {
	m.AddVariable(u)
	m.AddVariable(v)
	if u == v {
		m.offset += w
		return
	}
	if _, ok := m.quad[pair[V]{v, u}]; ok {
		m.quad[pair[V]{v, u}] += w
		return
	}
	m.quad[pair[V]{u, v}] += w
}

// AddOffset accumulates a constant energy term.
func (m *Model[V]) AddOffset(k float64) {
	m.offset += k
}

// Linear returns v's linear coefficient (zero for absent variables).
func (m *Model[V]) Linear(v V) float64 {
	return m.linear[v]
}

// Quadratic returns the (u,v) coupler in either orientation (zero when
// absent).
func (m *Model[V]) Quadratic(u, v V) float64 {
	if w, ok := m.quad[pair[V]{u, v}]; ok {
		return w
	}

	return m.quad[pair[V]{v, u}]
}

// Offset returns the constant energy term.
func (m *Model[V]) Offset() float64 {
	return m.offset
}

// Has reports whether v is a variable of the model.
func (m *Model[V]) Has(v V) bool {
	_, ok := m.linear[v]
	return ok
}

// NumVariables returns the variable count.
func (m *Model[V]) NumVariables() int {
	return len(m.linear)
}

// NumInteractions returns the count of nonzero-stored couplers.
func (m *Model[V]) NumInteractions() int {
	return len(m.quad)
}

// Variables returns all variable labels in unspecified order.
func (m *Model[V]) Variables() []V {
	out := make([]V, 0, len(m.linear))
	for v := range m.linear {
		out = append(out, v)
	}

	return out
}

// Add merges other into m: variables are matched by identity, and linear,
// quadratic, and offset coefficients are summed. This is the model "+" of
// cooperative composition.
func (m *Model[V]) Add(other *Model[V]) {
	for v, bias := range other.linear {
		m.AddLinear(v, bias)
	}
	for p, w := range other.quad {
		m.AddQuadratic(p.u, p.v, w)
	}
	m.offset += other.offset
}

// Energy evaluates E(s) for a full sample assigning every variable.
// Returns ErrMissingVariable when the sample is incomplete; extraneous
// sample entries are ignored.
// Complexity: O(variables + couplers).
func (m *Model[V]) Energy(sample map[V]float64) (float64, error) {
	e := m.offset
	for v, bias := range m.linear {
		s, ok := sample[v]
		if !ok {
			return 0, fmt.Errorf("Energy: variable %v unassigned: %w", v, ErrMissingVariable)
		}
		e += bias * s
	}
	for p, w := range m.quad {
		e += w * sample[p.u] * sample[p.v]
	}

	return e, nil
}
