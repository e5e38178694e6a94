// Package trid provides a value type holding a valid Turkish citizenship
// ID number, along with validation and generation of such numbers.
//
// This is the functional core of the repository: no I/O, no allocation
// beyond the string returned by String, only integer arithmetic over a
// fixed-size array.
package trid

// Length is the number of digits in a Turkish citizenship ID number.
const Length = 11

// Sequence bounds accepted by FromSequence. The domain is half-open:
// SequenceMin is the smallest 9-digit number, SequenceMax is excluded.
const (
	SequenceMin = 100_000_000
	SequenceMax = 1_000_000_000
)

// ID is a Turkish citizenship ID number. The number is stored as ASCII
// digits '0'..'9'. A non-zero ID is always checksum-valid; the only way to
// obtain one is Parse, MustParse, FromSequence or UnmarshalText.
//
// IDs are comparable and can be used as map keys.
type ID struct {
	digits [Length]byte
}

// Parse validates s and returns it as an ID.
func Parse(s string) (ID, error) {
	if err := Validate(s); err != nil {
		return ID{}, err
	}
	var id ID
	copy(id.digits[:], s)
	return id, nil
}

// MustParse is like Parse but panics if s is not a valid ID.
func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic("trid: MustParse(" + s + "): " + err.Error())
	}
	return id
}

// IsZero reports whether id is the zero value, which holds no number.
func (id ID) IsZero() bool {
	return id == ID{}
}

// String returns the 11 digits of the ID. The zero value renders as "".
func (id ID) String() string {
	if id.IsZero() {
		return ""
	}
	return string(id.digits[:])
}

// Sequence returns the 9-digit sequence number the ID carries in its
// leading digits, so that FromSequence(id.Sequence()) == id.
func (id ID) Sequence() int {
	if id.IsZero() {
		return 0
	}
	seq := 0
	for _, c := range id.digits[:9] {
		seq = seq*10 + int(c-'0')
	}
	return seq
}

// MarshalText implements encoding.TextMarshaler.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty text decodes to
// the zero ID, anything else must be a valid ID. On error the receiver is
// left unchanged.
func (id *ID) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*id = ID{}
		return nil
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
