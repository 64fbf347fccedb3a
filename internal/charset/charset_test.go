package charset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlphabetSizes(t *testing.T) {
	tests := []struct {
		class Class
		size  int
	}{
		{Upper, 26},
		{Lower, 26},
		{Digit, 10},
		{Symbol, 32},
	}

	for _, tt := range tests {
		assert.Len(t, tt.class.Alphabet(), tt.size, tt.class.String())
	}
}

func TestPoolOrder(t *testing.T) {
	all := Selection{Upper: true, Lower: true, Digits: true, Special: true}
	assert.Equal(t, UpperCase+LowerCase+Digits+Special, all.Pool())

	assert.Equal(t, LowerCase+Special, Selection{Lower: true, Special: true}.Pool())
	assert.Equal(t, UpperCase+Digits, Selection{Digits: true, Upper: true}.Pool())
}

func TestEmptyPool(t *testing.T) {
	var s Selection
	assert.True(t, s.Empty())
	assert.Empty(t, s.Pool())
	assert.Empty(t, s.Classes())
}

// Each class must appear in the pool exactly when its flag is set,
// whatever the other flags are.
func TestPoolTogglesIndependently(t *testing.T) {
	for mask := 0; mask < 16; mask++ {
		s := Selection{
			Upper:   mask&1 != 0,
			Lower:   mask&2 != 0,
			Digits:  mask&4 != 0,
			Special: mask&8 != 0,
		}
		pool := s.Pool()

		assert.Equal(t, s.Empty(), pool == "", "mask %04b", mask)
		for _, c := range All {
			assert.Equal(t, s.Has(c), strings.Contains(pool, c.Alphabet()),
				"mask %04b class %s", mask, c)
		}
	}
}
