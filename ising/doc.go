// Package ising is a small container for quadratic models over spin
// variables s ∈ {−1,+1}:
//
//	E(s) = Σᵢ hᵢ·sᵢ + Σ_{i<j} Jᵢⱼ·sᵢ·sⱼ + offset
//
// Variables are identified by any comparable label type; package mimo uses
// plain integers for single-cell models and geometric (basestation, index)
// labels for cooperative joint models. Couplers are stored once per
// unordered pair; adding a coupler for (u,v) and later for (v,u)
// accumulates into the same coefficient. Self-couplers fold into the
// offset, since s² = 1 on the spin domain.
//
// Models support the collaborator surface the composers need: construction
// from dense (h, J, offset) arrays, coefficient-wise summation merging
// variables by identity, total relabeling onto a new label type, and exact
// energy evaluation.
//
// The container is deliberately not concurrency-safe: models are built
// single-threaded and read-only afterwards.
package ising
