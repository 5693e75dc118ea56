package quantum

import "github.com/born-ml/qubit/internal/random"

// Filter is a polarisation filter: it measures every qubit in its basis and
// lets through those whose outcome matches allow.
//
// A Filter counts what it sees and is not safe for concurrent use.
type Filter struct {
	basis  Basis
	allow  bool
	passed uint64
	total  uint64
}

// NewFilter creates a filter over basis that passes the given outcome.
func NewFilter(basis Basis, allow bool) *Filter {
	return &Filter{basis: basis, allow: allow}
}

// Pass measures q and reports whether it got through.
// The returned qubit is the collapsed state and is only meaningful when ok is true.
func (f *Filter) Pass(q Qubit, src random.Source) (Qubit, bool, error) {
	collapsed, on, err := q.Measure(f.basis, src)
	if err != nil {
		return q, false, err
	}
	f.total++
	if on != f.allow {
		return collapsed, false, nil
	}
	f.passed++
	return collapsed, true, nil
}

// Passed returns the number of qubits let through.
func (f *Filter) Passed() uint64 { return f.passed }

// Total returns the number of qubits measured.
func (f *Filter) Total() uint64 { return f.total }

// Rate returns Passed/Total, or 0 before any qubit was measured.
func (f *Filter) Rate() float64 {
	if f.total == 0 {
		return 0
	}
	return float64(f.passed) / float64(f.total)
}

// Reset clears both counters.
func (f *Filter) Reset() {
	f.passed, f.total = 0, 0
}
