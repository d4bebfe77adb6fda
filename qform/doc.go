// Package qform re-expresses the least-squares decoding objective
// ||y − F·v||² as a quadratic form over spin variables.
//
// The pipeline has three stages, composed by SpinForm:
//
//  1. QuadraticForm: offset = yᴴy, h = −2·Fᴴy, J = FᴴF, so that
//     E(v) = vᴴJv + Re(hᴴv) + offset equals the least-squares objective
//     (the −2 sign convention lives inside h).
//  2. RealProjection: complex variables become concatenated real spins
//     [Re v; Im v]; h and J are projected to the matching real block
//     forms. BPSK stays in the real domain untouched.
//  3. AmplitudeExpand: amplitude-modulated schemes (QAM16/QAM64) lift the
//     single-spin form onto 2/3 bit planes by a Kronecker product with the
//     plane weights {1,2} / {1,2,4}, least-significant plane first —
//     matching the spin ordering of package constellation.
//
// All stages are pure, fail fast on shape violations, and leave their
// inputs untouched.
package qform
