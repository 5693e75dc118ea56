package quantum

import (
	"fmt"
	"math"
)

// driftTolerance bounds |1 - (p_off + p_on)| after every amplitude-squaring step.
const driftTolerance = 1e-4

// checkNormalization validates a Born-rule probability pair.
//
// A pair outside tolerance means a malformed basis or a non-unit state. Builds
// with the qdebug tag panic; other builds log a warning and renormalise the pair
// so that sampling never sees NaN or a probability above 1.
func checkNormalization(off, on float64) (float64, float64) {
	sum := off + on
	if math.Abs(1-sum) < driftTolerance {
		return off, on
	}
	if assertNormalization {
		panic(fmt.Sprintf("%v: %g + %g = %g", ErrNormalizationDrift, off, on, sum))
	}

	logger.Warn().
		Float64("p_off", off).
		Float64("p_on", on).
		Float64("sum", sum).
		Msg("probability drift, renormalising")

	if sum <= 0 || math.IsNaN(sum) || math.IsInf(sum, 0) {
		return off, on
	}
	return off / sum, on / sum
}
