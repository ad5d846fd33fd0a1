package numerology

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigitRoot(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{name: "zero", n: 0, want: 0},
		{name: "single digit", n: 7, want: 7},
		{name: "nine stays nine", n: 9, want: 9},
		{name: "two digits one fold", n: 19, want: 1},
		{name: "two folds", n: 99, want: 9},
		{name: "date sum", n: 31, want: 4},
		{name: "full date digits", n: 19910119, want: 4},
		{name: "negative uses absolute value", n: -38, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DigitRoot(tt.n))
		})
	}
}

func TestDigitRoot_RangeAndFixedPoint(t *testing.T) {
	for n := 1; n <= 100_000; n++ {
		root := DigitRoot(n)
		if root < 1 || root > 9 {
			t.Fatalf("DigitRoot(%d) = %d, want 1-9", n, root)
		}
		if folded := DigitRoot(DigitSum(n)); folded != root {
			t.Fatalf("DigitRoot(DigitSum(%d)) = %d, want %d", n, folded, root)
		}
		if want := 1 + (n-1)%9; root != want {
			t.Fatalf("DigitRoot(%d) = %d, want %d", n, root, want)
		}
	}
}

func TestDigitSumString(t *testing.T) {
	assert.Equal(t, 31, DigitSumString("19910119"))
	assert.Equal(t, 0, DigitSumString(""))
	assert.Equal(t, 6, DigitSumString("1-2-3"))
}
