package trid

import "unicode/utf8"

// IsValid reports whether s is a valid Turkish citizenship ID number.
func IsValid(s string) bool {
	return Validate(s) == nil
}

// Validate checks s and returns nil if it is a valid ID number.
//
// Checks run in this order and the first failure is returned: length,
// then each character left to right (with the leading-zero check as soon
// as the first digit is read), then the final checksum, then the initial
// checksum.
func Validate(s string) error {
	if len(s) != Length {
		return ErrInvalidLength
	}

	var odd, even int
	for i := 0; i < 9; i++ {
		d, err := digitAt(s, i)
		if err != nil {
			return err
		}
		if i == 0 && d == 0 {
			return ErrFirstDigitIsZero
		}
		if i%2 == 0 {
			odd += d
		} else {
			even += d
		}
	}

	first, err := digitAt(s, 9)
	if err != nil {
		return err
	}
	final, err := digitAt(s, 10)
	if err != nil {
		return err
	}

	// final checksum first, it doesn't need the multiplication
	if finalChecksum(odd, even, first) != final {
		return ErrInvalidFinalChecksum
	}
	if initialChecksum(odd, even) != first {
		return ErrInvalidInitialChecksum
	}
	return nil
}

func digitAt(s string, i int) (int, error) {
	c := s[i]
	if c < '0' || c > '9' {
		r, _ := utf8.DecodeRuneInString(s[i:])
		return 0, &CharacterError{Char: r, Pos: i}
	}
	return int(c - '0'), nil
}
