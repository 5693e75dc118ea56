package serialization

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/born-ml/qubit/internal/tensor"
)

const qubitVersion = "0.1.0" // Current library version

// Entry is a named tensor to be written.
type Entry struct {
	Name   string
	Tensor *tensor.Tensor
}

// Write encodes the entries, in order, as a .qbit snapshot.
//
// Kind, Metadata and CreatedAt are taken from header when set; the format
// fields and the tensor table are always filled in here.
func Write(w io.Writer, header Header, entries ...Entry) error {
	header.FormatVersion = FormatVersion
	header.QubitVersion = qubitVersion
	if header.Kind == "" {
		header.Kind = KindTensors
	}
	if header.CreatedAt.IsZero() {
		header.CreatedAt = time.Now().UTC()
	}
	if header.Metadata == nil {
		header.Metadata = make(map[string]string)
	}

	// Lay out tensor data and collect it for the checksum.
	var data bytes.Buffer
	header.Tensors = make([]TensorMeta, 0, len(entries))
	for _, e := range entries {
		if err := ValidateTensorName(e.Name); err != nil {
			return err
		}
		leaves := e.Tensor.Data()
		meta := TensorMeta{
			Name:      e.Name,
			Shape:     []int(e.Tensor.Shape()),
			Variances: variancesToStrings(e.Tensor.Variances()),
			Offset:    int64(data.Len()),
			Size:      int64(len(leaves) * LeafSize),
		}
		header.Tensors = append(header.Tensors, meta)

		var buf [LeafSize]byte
		for _, v := range leaves {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			data.Write(buf[:])
		}
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to marshal header: %w", err)
	}

	flags := uint32(0)
	if len(header.Metadata) > 0 {
		flags |= FlagHasMetadata
	}
	if header.Kind == KindSystem {
		flags |= FlagSystem
	}

	// 0x00-0x03: magic
	// 0x04-0x07: version
	// 0x08-0x0B: flags
	// 0x0C-0x0F: reserved
	// 0x10-0x17: header size
	// 0x18-0x1F: data size
	// 0x20-0x3F: SHA-256 checksum of the data section
	fixed := make([]byte, FixedHeaderSize)
	copy(fixed[0:4], MagicBytes)
	binary.LittleEndian.PutUint32(fixed[4:8], FormatVersion)
	binary.LittleEndian.PutUint32(fixed[8:12], flags)
	binary.LittleEndian.PutUint64(fixed[16:24], uint64(len(headerJSON)))
	binary.LittleEndian.PutUint64(fixed[24:32], uint64(data.Len()))
	checksum := ComputeChecksum(data.Bytes())
	copy(fixed[ChecksumOffset:ChecksumOffset+ChecksumSize], checksum[:])

	if _, err := w.Write(fixed); err != nil {
		return fmt.Errorf("failed to write fixed header: %w", err)
	}
	if _, err := w.Write(headerJSON); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	padding := alignedDataOffset(int64(len(headerJSON))) - int64(FixedHeaderSize) - int64(len(headerJSON))
	if padding > 0 {
		if _, err := w.Write(make([]byte, padding)); err != nil {
			return fmt.Errorf("failed to write padding: %w", err)
		}
	}

	if _, err := w.Write(data.Bytes()); err != nil {
		return fmt.Errorf("failed to write tensor data: %w", err)
	}
	return nil
}

// Save writes a snapshot to path, replacing any existing file.
func Save(path string, header Header, entries ...Entry) (err error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for saving
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", cerr)
		}
	}()

	return Write(file, header, entries...)
}
