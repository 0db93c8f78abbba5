// Package tape records ordered (name, payload) declarations.
//
// Both declaration recorders (cases and operation handlers) write to a Tape.
// The tape has no vocabulary of its own: any name is accepted and kept in call
// order, and interpretation is left to the consumer.
package tape

// Entry is one recorded declaration.
type Entry[P any] struct {
	Name    string
	Payload P
}

// Tape accumulates entries in call order. The zero value is ready to use.
type Tape[P any] struct {
	entries []Entry[P]
}

// Record appends a declaration.
func (t *Tape[P]) Record(name string, payload P) {
	t.entries = append(t.entries, Entry[P]{Name: name, Payload: payload})
}

// Len returns the number of recorded entries.
func (t *Tape[P]) Len() int { return len(t.entries) }

// Entries returns a copy of the recorded entries.
func (t *Tape[P]) Entries() []Entry[P] {
	out := make([]Entry[P], len(t.entries))
	copy(out, t.entries)
	return out
}

// Names returns the recorded names in order.
func (t *Tape[P]) Names() []string {
	out := make([]string, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Name
	}
	return out
}

// Duplicates returns names recorded more than once, in order of their second
// occurrence.
func (t *Tape[P]) Duplicates() []string {
	seen := make(map[string]int, len(t.entries))
	var out []string
	for _, e := range t.entries {
		seen[e.Name]++
		if seen[e.Name] == 2 {
			out = append(out, e.Name)
		}
	}
	return out
}
