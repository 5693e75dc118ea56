package quantum

import "gonum.org/v1/gonum/mat"

// schmidtTolerance is the smallest singular value counted towards the Schmidt rank.
const schmidtTolerance = 1e-9

// IsEntangled reports whether any qubit of s is entangled with the rest.
//
// For every qubit the amplitudes are reshaped into a 2×(N/2) matrix whose rows
// are the qubit's off and on halves. The system factors as qubit ⊗ rest exactly
// when that matrix has rank 1, so a Schmidt rank above 1 for any qubit means the
// state is entangled. Systems of zero or one qubit are never entangled.
func (s *System) IsEntangled() bool {
	if s.qubits < 2 {
		return false
	}
	for q := range s.qubits {
		if s.schmidtRank(q) > 1 {
			return true
		}
	}
	return false
}

func (s *System) schmidtRank(qubit int) int {
	amps := s.state.Data()
	half := len(amps) / 2
	m := s.mask(qubit)

	split := mat.NewDense(2, half, nil)
	for i, a := range amps {
		row := 0
		if i&m != 0 {
			row = 1
		}
		// Drop the qubit's bit to get the column of the remaining qubits.
		rest := (i>>1)&^(m-1) | i&(m-1)
		split.Set(row, rest, a)
	}

	var svd mat.SVD
	if !svd.Factorize(split, mat.SVDNone) {
		return 2
	}
	rank := 0
	for _, v := range svd.Values(nil) {
		if v > schmidtTolerance {
			rank++
		}
	}
	return rank
}
