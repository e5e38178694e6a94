package trid

// FromSequence builds the valid ID whose first nine digits are seq, by
// computing the two checksum digits. seq must be in
// [SequenceMin, SequenceMax), otherwise ErrSequenceOutOfRange is returned.
func FromSequence(seq int) (ID, error) {
	if seq < SequenceMin || seq >= SequenceMax {
		return ID{}, ErrSequenceOutOfRange
	}

	var id ID
	var odd, even int
	divisor := SequenceMin
	for i := 0; i < 9; i++ {
		d := seq / divisor % 10
		if i%2 == 0 {
			odd += d
		} else {
			even += d
		}
		id.digits[i] = byte('0' + d)
		divisor /= 10
	}

	first := initialChecksum(odd, even)
	id.digits[9] = byte('0' + first)
	id.digits[10] = byte('0' + finalChecksum(odd, even, first))
	return id, nil
}
