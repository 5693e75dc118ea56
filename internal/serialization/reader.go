package serialization

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/born-ml/qubit/internal/tensor"
)

// ReaderOptions configures how snapshots are read.
type ReaderOptions struct {
	SkipChecksumValidation bool            // Skip checksum validation (faster but less safe)
	ValidationLevel        ValidationLevel // Validation strictness level
}

// Snapshot is a fully read .qbit file.
type Snapshot struct {
	header Header
	flags  uint32
	data   []byte
}

// Read parses a snapshot from r with strict validation.
func Read(r io.Reader) (*Snapshot, error) {
	return ReadWithOptions(r, ReaderOptions{ValidationLevel: ValidationStrict})
}

// ReadWithOptions parses a snapshot from r.
func ReadWithOptions(r io.Reader, opts ReaderOptions) (*Snapshot, error) {
	fixed := make([]byte, FixedHeaderSize)
	if _, err := io.ReadFull(r, fixed); err != nil {
		return nil, fmt.Errorf("failed to read fixed header: %w", err)
	}
	if string(fixed[0:4]) != MagicBytes {
		return nil, ErrInvalidMagic
	}
	if version := binary.LittleEndian.Uint32(fixed[4:8]); version != FormatVersion {
		return nil, fmt.Errorf("%w: got %d, expected %d", ErrUnsupportedVersion, version, FormatVersion)
	}

	s := &Snapshot{flags: binary.LittleEndian.Uint32(fixed[8:12])}
	headerSize := binary.LittleEndian.Uint64(fixed[16:24])
	dataSize := binary.LittleEndian.Uint64(fixed[24:32])
	var stored [ChecksumSize]byte
	copy(stored[:], fixed[ChecksumOffset:ChecksumOffset+ChecksumSize])

	if headerSize > MaxHeaderSize {
		return nil, ErrHeaderTooLarge
	}
	if dataSize > math.MaxInt32 {
		return nil, &ValidationError{Type: "out_of_bounds", Details: fmt.Sprintf("data size %d", dataSize)}
	}

	headerBytes := make([]byte, headerSize)
	if _, err := io.ReadFull(r, headerBytes); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if err := json.Unmarshal(headerBytes, &s.header); err != nil {
		return nil, fmt.Errorf("failed to parse header JSON: %w", err)
	}

	//nolint:gosec // G115: headerSize is bounded by MaxHeaderSize
	padding := alignedDataOffset(int64(headerSize)) - int64(FixedHeaderSize) - int64(headerSize)
	if _, err := io.CopyN(io.Discard, r, padding); err != nil {
		return nil, fmt.Errorf("failed to skip padding: %w", err)
	}

	s.data = make([]byte, dataSize)
	if _, err := io.ReadFull(r, s.data); err != nil {
		return nil, fmt.Errorf("failed to read tensor data: %w", err)
	}

	if !opts.SkipChecksumValidation {
		if err := ValidateChecksum(ComputeChecksum(s.data), stored); err != nil {
			return nil, err
		}
	}
	//nolint:gosec // G115: dataSize is bounded above
	if err := ValidateHeader(&s.header, int64(dataSize), opts.ValidationLevel); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return s, nil
}

// Open reads the snapshot stored at path.
func Open(path string) (*Snapshot, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for loading
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Read(file)
}

// Header returns the file header.
func (s *Snapshot) Header() Header {
	return s.header
}

// Flags returns the flag bits of the fixed header.
func (s *Snapshot) Flags() uint32 {
	return s.flags
}

// Metadata returns the metadata map from the header.
func (s *Snapshot) Metadata() map[string]string {
	return s.header.Metadata
}

// TensorNames returns the names of all tensors in file order.
func (s *Snapshot) TensorNames() []string {
	names := make([]string, len(s.header.Tensors))
	for i, meta := range s.header.Tensors {
		names[i] = meta.Name
	}
	return names
}

// TensorInfo returns information about a specific tensor.
func (s *Snapshot) TensorInfo(name string) (*TensorMeta, error) {
	for _, meta := range s.header.Tensors {
		if meta.Name == name {
			return &meta, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrTensorNotFound, name)
}

// Tensor decodes a single tensor.
func (s *Snapshot) Tensor(name string) (*tensor.Tensor, error) {
	meta, err := s.TensorInfo(name)
	if err != nil {
		return nil, err
	}

	vs, err := stringsToVariances(meta.Variances)
	if err != nil {
		return nil, err
	}
	if meta.Offset < 0 || meta.Size < 0 || meta.Offset+meta.Size > int64(len(s.data)) {
		return nil, &ValidationError{Type: "out_of_bounds", Tensor: name, Details: "tensor data outside the file"}
	}

	raw := s.data[meta.Offset : meta.Offset+meta.Size]
	leaves := make([]float64, len(raw)/LeafSize)
	for i := range leaves {
		leaves[i] = math.Float64frombits(binary.LittleEndian.Uint64(raw[i*LeafSize:]))
	}

	t, err := tensor.FromSlice(leaves, tensor.Shape(meta.Shape), vs)
	if err != nil {
		return nil, fmt.Errorf("tensor %s: %w", name, err)
	}
	return t, nil
}
