package types

import (
	"fmt"
	"math"
)

// FixedDecimal formats x with exactly three decimal places, the precision
// every statistics field in the summary output is reported at. Rounding
// is that of Go's "%.3f" verb on the exact binary value, so an exact tie
// rounds to even (1.0625 renders as "1.062").
func FixedDecimal(x float64) string {
	if math.IsNaN(x) {
		x = 0
	}
	return fmt.Sprintf("%.3f", x)
}
