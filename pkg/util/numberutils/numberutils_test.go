package numberutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToIntWithDefault(t *testing.T) {
	assert.Equal(t, 42, ToIntWithDefault("42", 0))
	assert.Equal(t, 7, ToIntWithDefault("", 7))
	assert.Equal(t, 7, ToIntWithDefault("abc", 7))
	assert.Equal(t, -3, ToIntWithDefault("-3", 0))
}

func TestToFloat64WithDefault(t *testing.T) {
	assert.Equal(t, 51.5, ToFloat64WithDefault("51.5", 0))
	assert.Equal(t, -0.12, ToFloat64WithDefault("-0.12", 0))
	assert.Equal(t, 1.5, ToFloat64WithDefault("not-a-number", 1.5))
}

func TestIsFloat64(t *testing.T) {
	assert.True(t, IsFloat64("-0.12"))
	assert.True(t, IsFloat64("10"))
	assert.False(t, IsFloat64("ten"))
	assert.False(t, IsFloat64(""))
}

func TestIsIntInRange(t *testing.T) {
	assert.True(t, IsIntInRange(5, 1, 10))
	assert.True(t, IsIntInRange(1, 1, 10))
	assert.True(t, IsIntInRange(10, 1, 10))
	assert.False(t, IsIntInRange(0, 1, 10))
}
