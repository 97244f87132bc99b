package types

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedDecimal(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0.000"},
		{1, "1.000"},
		{3.14159, "3.142"},
		{1.2346, "1.235"},
		{100, "100.000"},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%v", c.in), func(t *testing.T) {
			assert.Equal(t, c.want, FixedDecimal(c.in))
		})
	}
}
