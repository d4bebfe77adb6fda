// Package mimo composes the full decoding pipeline into spin models:
// channel synthesis (or user-supplied matrices), received-signal
// construction, quadratic-form extraction, real projection, amplitude
// expansion, and spin-model assembly.
//
// Two composers are exported:
//
//   - SpinEncodedMIMO builds the model of a single multi-antenna cell.
//     Ground truth in, spin model out: the minimum-energy spin assignment
//     of the result is the maximum-likelihood estimate of the transmitted
//     symbols.
//   - SpinEncodedCoMP builds the joint model of cooperating basestations
//     on an interference lattice, one local model per cell relabeled onto
//     geometric (cell, transmitter, quadrature) variables and summed.
//
// Both are configured through functional options. Options validate
// eagerly and panic on programmer error (nil matrices, non-positive
// counts); data-dependent failures surface as wrapped sentinel errors at
// composition time. All randomness flows through a single seedable
// source, so equal configurations produce equal models.
package mimo
