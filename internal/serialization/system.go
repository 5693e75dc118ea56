package serialization

import (
	"fmt"
	"io"
	"strconv"

	"github.com/born-ml/qubit/internal/quantum"
)

// StateTensor is the tensor name a system's amplitudes are stored under.
const StateTensor = "state"

// WriteSystem writes s as a system snapshot with optional metadata.
func WriteSystem(w io.Writer, s *quantum.System, metadata map[string]string) error {
	return Write(w, systemHeader(s, metadata), Entry{Name: StateTensor, Tensor: s.State()})
}

// SaveSystem writes s to path.
func SaveSystem(path string, s *quantum.System, metadata map[string]string) error {
	return Save(path, systemHeader(s, metadata), Entry{Name: StateTensor, Tensor: s.State()})
}

func systemHeader(s *quantum.System, metadata map[string]string) Header {
	meta := make(map[string]string, len(metadata)+1)
	for k, v := range metadata {
		meta[k] = v
	}
	meta["qubits"] = strconv.Itoa(s.Qubits())
	return Header{Kind: KindSystem, Metadata: meta}
}

// ReadSystem reads a system snapshot and returns the system with its metadata.
func ReadSystem(r io.Reader) (*quantum.System, map[string]string, error) {
	snap, err := Read(r)
	if err != nil {
		return nil, nil, err
	}
	return snap.System()
}

// LoadSystem reads the system snapshot stored at path.
func LoadSystem(path string) (*quantum.System, map[string]string, error) {
	snap, err := Open(path)
	if err != nil {
		return nil, nil, err
	}
	return snap.System()
}

// System decodes the snapshot as a qubit system.
func (s *Snapshot) System() (*quantum.System, map[string]string, error) {
	if s.header.Kind != KindSystem {
		return nil, nil, fmt.Errorf("%w: kind is %q", ErrNotSystem, s.header.Kind)
	}
	state, err := s.Tensor(StateTensor)
	if err != nil {
		return nil, nil, err
	}
	sys, err := quantum.FromKet(state)
	if err != nil {
		return nil, nil, err
	}
	return sys, s.header.Metadata, nil
}
