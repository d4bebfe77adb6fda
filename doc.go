// Package spinmimo turns maximum-likelihood decoding of multi-antenna (MIMO)
// wireless transmissions into spin-valued quadratic optimization problems.
//
// 🚀 What is spinmimo?
//
//	A library that brings together:
//		• Constellation catalog: bits per symbol, amplitude levels, mean power
//		• Channel & signal synthesis: random channels, symbols, AWGN at a target SNRb
//		• Quadratic-form pipeline: ||y − Fv||² → complex form → real spins → bit planes
//		• Linear baselines: zero-forcing, matched filter, MMSE
//		• Single-cell encoding: one Ising model per channel/signal pair
//		• Cooperative (CoMP) encoding: per-basestation models over a honeycomb
//		  lattice, relabeled to geometric variables and summed into one joint model
//
// ✨ Why choose spinmimo?
//
//   - Deterministic – every stochastic path is driven by one explicit seedable source
//   - Fail-fast – sentinel errors, no panics on user inputs, no partial construction
//   - Pure Go – numerics via gonum, no cgo
//
// Under the hood, everything is organized per concern:
//
//	cmat/          — dense complex matrix product kernel
//	constellation/ — modulation catalog + symbol↔spin codec
//	channel/       — channel matrices, transmitted symbols, noisy signals
//	qform/         — quadratic form builder, real projection, amplitude expansion
//	filter/        — linear filter estimators + marginal (nearest-point) estimator
//	ising/         — spin quadratic model: coefficients, relabeling, summation, energy
//	lattice/       — basestation adjacency (honeycomb by default)
//	mimo/          — single-cell and cooperative multi-point composers
//
// Quick sketch of the pipeline:
//
//	y = F·v + n  ──►  (offset, h, J)  ──►  real spins  ──►  Ising model
//
// The produced models are optimizer-agnostic: hand them to any solver that
// understands linear and quadratic coefficients over {−1,+1} variables.
//
//	go get github.com/katalvlaran/spinmimo
package spinmimo
