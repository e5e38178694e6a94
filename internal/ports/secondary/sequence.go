package secondary

// SequenceSource supplies sequence numbers for ID generation.
type SequenceSource interface {
	// Next returns a number in [trid.SequenceMin, trid.SequenceMax).
	Next() int
}
