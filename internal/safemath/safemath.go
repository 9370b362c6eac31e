package safemath

import (
	"errors"
	"math/bits"
)

var ErrOverflow = errors.New("number overflow")

type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Add returns a + b and false when the sum overflows
func Add[T Integer](a, b T) (T, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}

// Sub returns a - b and false when the difference overflows
func Sub[T Integer](a, b T) (T, bool) {
	diff := a - b
	if (b > 0 && diff > a) || (b < 0 && diff < a) {
		return 0, false
	}
	return diff, true
}

// Mul returns a * b and false when the product overflows
func Mul[T Integer](a, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if allOnes := T(0) - 1; allOnes < 0 && b == allOnes {
		// signed multiply by -1 overflows only for the minimum value,
		// and dividing by -1 below would fault on it
		p := a * b
		if p == a {
			return 0, false
		}
		return p, true
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}

func Add32(a, b uint32) (uint32, bool) {
	v, carry := bits.Add32(a, b, 0)
	return v, carry == 0
}

func Add64(a, b uint64) (uint64, bool) {
	v, carry := bits.Add64(a, b, 0)
	return v, carry == 0
}

func Sub32(a, b uint32) (uint32, bool) {
	v, carry := bits.Sub32(a, b, 0)
	return v, carry == 0
}

func Sub64(a, b uint64) (uint64, bool) {
	v, carry := bits.Sub64(a, b, 0)
	return v, carry == 0
}
