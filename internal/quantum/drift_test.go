//go:build !qdebug

package quantum

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestCheckNormalizationWithinTolerance(t *testing.T) {
	off, on := checkNormalization(0.25, 0.75+5e-5)
	assert.Equal(t, 0.25, off)
	assert.Equal(t, 0.75+5e-5, on)
}

func TestCheckNormalizationRenormalises(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))
	t.Cleanup(func() { SetLogger(zerolog.Nop()) })

	off, on := checkNormalization(0.3, 0.9)
	assert.InDelta(t, 0.25, off, 1e-12)
	assert.InDelta(t, 0.75, on, 1e-12)
	assert.Contains(t, buf.String(), "probability drift")
	assert.Contains(t, buf.String(), `"component":"quantum"`)

	// Nothing sensible to scale by.
	off, on = checkNormalization(0, 0)
	assert.Zero(t, off)
	assert.Zero(t, on)
}
