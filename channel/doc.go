// Package channel synthesizes the random ingredients of a decoding
// instance: channel matrices, transmitted symbol vectors, and noisy
// received signals at a target per-bit signal-to-noise ratio.
//
// All stochastic paths consume an explicit *rand.Rand
// (golang.org/x/exp/rand); nothing reads ambient process-wide state, so a
// fixed seed and a fixed call sequence reproduce every draw bit-for-bit.
// Gaussian entries are drawn through gonum's distuv.Normal over the same
// source.
//
// Matrices are complex-valued throughout (gonum mat.CDense); real-domain
// channels simply carry zero imaginary parts, and noise degrades to
// real-only when both the channel and the symbols are numerically real.
package channel
