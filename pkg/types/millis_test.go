package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMillis_Half(t *testing.T) {
	assert.Equal(t, Millis(4), Millis(8).Half())
	assert.Equal(t, Millis(1), Millis(2).Half())
	assert.Equal(t, Millis(0), Millis(0).Half())
}
