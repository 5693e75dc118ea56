//go:build qdebug

package quantum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckNormalizationPanics(t *testing.T) {
	assert.NotPanics(t, func() { checkNormalization(0.5, 0.5) })
	assert.Panics(t, func() { checkNormalization(0.3, 0.9) })
}
