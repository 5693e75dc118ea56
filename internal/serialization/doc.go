// Package serialization provides the .qbit snapshot format for saving and
// loading tensors and qubit systems.
//
//	Format Structure:
//	  [4 bytes: Magic "QBIT"]
//	  [4 bytes: Version (uint32 LE)]
//	  [4 bytes: Flags (uint32 LE)]
//	  [4 bytes: Reserved]
//	  [8 bytes: Header Size (uint64 LE)]
//	  [8 bytes: Data Size (uint64 LE)]
//	  [32 bytes: SHA-256 of the data section]
//	  [Header: JSON metadata]
//	  [Tensor data: float64 LE leaves, 64-byte aligned]
//
// Every tensor keeps its shape and its per-axis variances, so a Bra of Kets
// reads back as a Bra of Kets.
//
// Example usage:
//
//	// Save a system
//	if err := serialization.SaveSystem("bell.qbit", bell, nil); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Load it back
//	bell, meta, err := serialization.LoadSystem("bell.qbit")
package serialization
