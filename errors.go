package trid

import (
	"errors"
	"strconv"
)

// Validation errors. Every failure returned by Validate and Parse matches
// exactly one of these with errors.Is.
var (
	ErrInvalidLength          = errors.New("trid: invalid length")
	ErrInvalidCharacter       = errors.New("trid: invalid character")
	ErrFirstDigitIsZero       = errors.New("trid: first digit is zero")
	ErrInvalidFinalChecksum   = errors.New("trid: invalid final checksum")
	ErrInvalidInitialChecksum = errors.New("trid: invalid initial checksum")
)

// ErrSequenceOutOfRange is returned by FromSequence for a sequence outside
// [SequenceMin, SequenceMax).
var ErrSequenceOutOfRange = errors.New("trid: sequence out of range")

// CharacterError reports the first character that is not a decimal digit.
type CharacterError struct {
	Char rune // offending character
	Pos  int  // byte offset in the input
}

func (e *CharacterError) Error() string {
	return "trid: invalid character " + strconv.QuoteRune(e.Char) + " at position " + strconv.Itoa(e.Pos)
}

// Is makes a CharacterError match ErrInvalidCharacter.
func (e *CharacterError) Is(target error) bool {
	return target == ErrInvalidCharacter
}

// IsChecksumError reports whether err is one of the two checksum mismatches.
func IsChecksumError(err error) bool {
	return errors.Is(err, ErrInvalidFinalChecksum) || errors.Is(err, ErrInvalidInitialChecksum)
}
