//go:build go1.18

package trid

import "testing"

// FuzzParse checks that Parse never panics and that every accepted input
// round-trips through String and FromSequence.
func FuzzParse(f *testing.F) {
	f.Add("")
	f.Add("76558242278")
	f.Add("10000000146")
	f.Add("04948892948")
	f.Add("14948892946")
	f.Add(" 7655824227")
	f.Add("765582422ş")
	f.Add(string([]byte{0x00, 0x01, 0x02}))

	f.Fuzz(func(t *testing.T, input string) {
		id, err := Parse(input)
		if err != nil {
			if !id.IsZero() {
				t.Errorf("Parse(%q) returned a value with error %v", input, err)
			}
			if IsValid(input) {
				t.Errorf("IsValid(%q) = true but Parse failed: %v", input, err)
			}
			return
		}

		if id.String() != input {
			t.Errorf("String() = %q, want %q", id.String(), input)
		}
		regenerated, err := FromSequence(id.Sequence())
		if err != nil {
			t.Fatalf("FromSequence(%d) failed: %v", id.Sequence(), err)
		}
		if regenerated != id {
			t.Errorf("FromSequence(Sequence()) = %q, want %q", regenerated, id)
		}
	})
}
