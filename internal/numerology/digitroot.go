package numerology

// DigitSum adds the decimal digits of n, ignoring its sign.
func DigitSum(n int) int {
	if n < 0 {
		n = -n
	}

	sum := 0
	for n > 0 {
		sum += n % 10
		n /= 10
	}
	return sum
}

// DigitSumString adds every ASCII digit in s. Other runes are skipped.
func DigitSumString(s string) int {
	sum := 0
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			sum += int(c - '0')
		}
	}
	return sum
}

// DigitRoot folds n by repeated digit sums until a single digit remains.
// The result is 1-9 for any non-zero n and 0 only for 0.
func DigitRoot(n int) int {
	if n < 0 {
		n = -n
	}
	for n > 9 {
		n = DigitSum(n)
	}
	return n
}
