package trid

// In both functions odd is the sum of the digits at 1-based positions
// 1,3,5,7,9 and even the sum at positions 2,4,6,8.

// initialChecksum computes digit 10 (index 9). odd*7-even may be negative,
// so the remainder is normalized into 0..9.
func initialChecksum(odd, even int) int {
	r := (odd*7 - even) % 10
	if r < 0 {
		r += 10
	}
	return r
}

// finalChecksum computes digit 11 (index 10) from the sums and digit 10.
func finalChecksum(odd, even, first int) int {
	return (odd + even + first) % 10
}
