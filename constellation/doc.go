// Package constellation is the static catalog of supported modulation
// schemes and the bidirectional linear encoding between modulated symbols
// and spin variables.
//
// The catalog (Properties) reports bits per symbol, the positive amplitude
// levels, and the constellation mean power assuming symbols are sampled
// uniformly at random. The codec (SymbolsToSpins / SpinsToSymbols) maps
// integer-valued constellation points to {−1,+1} spin vectors and back,
// using a fixed bit-plane decomposition: one spin per real dimension for
// BPSK/QPSK, two (QAM16) or three (QAM64) bit planes otherwise.
//
// Spin ordering contract (fixed, relied upon by package qform):
// planes are emitted least-significant first; within a plane, all real
// parts precede all imaginary parts. The round-trip
// SpinsToSymbols(SymbolsToSpins(v, m), m, len(v)) reconstructs v exactly.
//
// All functions are pure; the sign-tuple lookup tables are precomputed once
// at package initialization.
package constellation
