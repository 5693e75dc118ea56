// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package quantum provides real-valued qubits, multi-qubit systems and
// measurement on top of the tensor algebra.
//
// # Overview
//
//   - Basis: a change-of-basis operator (Bra of column Kets). Deg0, Deg45 and
//     Deg90 are the named polarisation bases; FromRadians builds the rest.
//   - Qubit: a 2-amplitude unit state. Measure returns the collapsed qubit.
//   - System: k qubits as one Ket of 2^k amplitudes, qubit 0 most significant.
//   - Gates: CNOT, PauliX, Hadamard and Lift for single-qubit gates.
//   - Filter: a polariser that counts what it lets through.
//
// All values are immutable: measurement and gate application return new
// values and leave their inputs as they were.
//
// # Randomness
//
// Every measurement takes a Source. NewSource returns a seeded PCG source;
// tests can script outcomes with Fixed.
//
// # Example
//
//	src := quantum.NewSource(42)
//
//	pair, _ := quantum.Plus().System().AddSystem(quantum.Zero().System())
//	pair, _ = quantum.ApplyCNOT(pair)
//
//	rest, alice, _ := pair.Measure(0, quantum.Deg0, src)
//	bob, _ := rest.Qubit()
//	_, bobOn, _ := bob.Measure(quantum.Deg0, src)
//	fmt.Println(alice.On == bobOn) // true
//
// # Snapshots
//
// SaveSystem and LoadSystem store a system in the .qbit format: a fixed
// binary header with a SHA-256 checksum, a JSON header and the amplitudes
// as little-endian float64.
//
// # Debug builds
//
// Build with -tags qdebug to panic when measurement probabilities drift more
// than 1e-4 from unit sum; other builds log a warning and renormalise.
package quantum
