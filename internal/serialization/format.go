package serialization

import (
	"fmt"
	"time"

	"github.com/born-ml/qubit/internal/tensor"
)

// Format constants.
const (
	MagicBytes      = "QBIT"
	FormatVersion   = 1
	HeaderAlignment = 64   // Align tensor data to 64 bytes
	FixedHeaderSize = 64   // Fixed header size (0x40 bytes)
	ChecksumSize    = 32   // SHA-256 checksum size (32 bytes)
	ChecksumOffset  = 0x20 // Checksum offset in the fixed header
	LeafSize        = 8    // Every leaf is a float64
)

// Flags for the .qbit format.
const (
	FlagHasMetadata uint32 = 1 << 0 // bit 0: custom metadata included
	FlagSystem      uint32 = 1 << 1 // bit 1: file holds a qubit system
)

// Kinds of snapshot.
const (
	KindTensors = "tensors"
	KindSystem  = "system"
)

// Header represents the JSON header in a .qbit file.
type Header struct {
	FormatVersion int               `json:"format_version"` // Version of the .qbit format
	QubitVersion  string            `json:"qubit_version"`  // Version of the library that wrote the file
	Kind          string            `json:"kind"`           // KindTensors or KindSystem
	CreatedAt     time.Time         `json:"created_at"`     // When the file was created
	Tensors       []TensorMeta      `json:"tensors"`        // Tensor metadata
	Metadata      map[string]string `json:"metadata"`       // Custom metadata
}

// TensorMeta describes a tensor in the .qbit file.
type TensorMeta struct {
	Name      string   `json:"name"`      // Tensor name (e.g., "state")
	Shape     []int    `json:"shape"`     // Tensor shape
	Variances []string `json:"variances"` // "Ket" or "Bra" per axis
	Offset    int64    `json:"offset"`    // Offset in the data section
	Size      int64    `json:"size"`      // Size in bytes
}

func variancesToStrings(vs tensor.Variances) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.String()
	}
	return out
}

func stringsToVariances(names []string) (tensor.Variances, error) {
	vs := make(tensor.Variances, len(names))
	for i, n := range names {
		switch n {
		case tensor.Up.String():
			vs[i] = tensor.Up
		case tensor.Down.String():
			vs[i] = tensor.Down
		default:
			return nil, fmt.Errorf("%w: axis %d has variance %q", ErrInvalidVariance, i, n)
		}
	}
	return vs, nil
}

// alignedDataOffset returns where tensor data starts after a JSON header of the given size.
func alignedDataOffset(headerSize int64) int64 {
	pos := int64(FixedHeaderSize) + headerSize
	return pos + (HeaderAlignment-pos%HeaderAlignment)%HeaderAlignment
}
