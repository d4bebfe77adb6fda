// Package filter provides the classical linear baselines for recovering
// transmitted symbols from a noisy received signal: zero-forcing (channel
// pseudo-inverse), matched filter, and MMSE. These estimators are
// standalone tooling — they play no part in building the spin models — and
// follow the conventions of MacKay et al., "Achievable sum rate of MIMO
// MMSE receivers: A general analytic framework".
//
// Complex pseudo-inverses are computed through the real block embedding
// ρ(A) = [[Re A, −Im A], [Im A, Re A]]: ρ is a ring homomorphism that
// commutes with pseudo-inversion, so pinv(A) is read back from the blocks
// of pinv(ρ(A)) computed with gonum's real SVD.
//
// MarginalEstimate snaps a continuous (filtered) estimate back onto the
// constellation grid, per real dimension.
package filter
