// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/qubit/tensor"
)

func TestPublicAPI(t *testing.T) {
	x := tensor.Vector(tensor.Up, 1, 0)
	y := tensor.Vector(tensor.Up, 0, 1)
	basis, err := tensor.Stack(tensor.Down, x, y)
	require.NoError(t, err)
	assert.True(t, tensor.Equal(tensor.Identity(2), basis))

	amps, err := tensor.Mul(tensor.Transpose(basis), tensor.Vector(tensor.Up, 0.6, 0.8))
	require.NoError(t, err)
	assert.Equal(t, "Ket(0.6, 0.8)", amps.String())

	k, err := tensor.Kron(x, y)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 0, 0}, k.Data())

	flat, err := tensor.Flatten(tensor.Outer(x, y), 0)
	require.NoError(t, err)
	assert.True(t, tensor.Equal(k, flat))

	_, err = tensor.Mul(x, tensor.Vector(tensor.Up, 1, 2, 3))
	assert.NoError(t, err, "Ket × Ket distributes")

	_, err = tensor.Mul(x.T(), tensor.Vector(tensor.Up, 1, 2, 3))
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestFromSliceErrors(t *testing.T) {
	_, err := tensor.FromSlice([]float64{1, 2, 3}, tensor.Shape{2, 2}, tensor.Variances{tensor.Down, tensor.Up})
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)

	_, err = tensor.FromSlice(nil, tensor.Shape{0}, tensor.Variances{tensor.Up})
	assert.ErrorIs(t, err, tensor.ErrInvalidShape)
}
