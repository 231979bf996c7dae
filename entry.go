package terminfo

// Names holds the parsed terminal-description header line: a primary name,
// zero or more synonyms, and a free-text description, separated by `|` in
// the source terminfo names field (e.g. "xterm|xterm terminal emulator").
type Names struct {
	Primary     string
	Synonyms    []string
	Description string
}

// Entry is one decoded terminfo description. It is immutable once returned
// from a decoder or Database: all fields are populated at construction time
// and exposed only through accessor methods.
type Entry struct {
	names Names

	booleans map[string]bool
	numbers  map[string]int
	strings  map[string]string

	extended bool
	is32Bit  bool
}

func newEntry() *Entry {
	return &Entry{
		booleans: map[string]bool{},
		numbers:  map[string]int{},
		strings:  map[string]string{},
	}
}

// Names returns the terminal's name header.
func (e *Entry) Names() Names { return e.names }

// Bool reports a boolean capability's value; a capability absent from the
// entry is false, the same as a capability explicitly set to false.
func (e *Entry) Bool(name string) bool { return e.booleans[name] }

// Num returns a numeric capability's value and whether it was present.
// An absent numeric capability is reported as (0, false), never as -1 —
// the -1-means-absent convention is a decode-time detail, not part of
// Entry's public contract.
func (e *Entry) Num(name string) (int, bool) {
	v, ok := e.numbers[name]
	return v, ok
}

// Str returns a string capability's raw, uncompiled source and whether it
// was present.
func (e *Entry) Str(name string) (string, bool) {
	v, ok := e.strings[name]
	return v, ok
}

// Booleans returns every boolean capability present (and true) in this
// entry, keyed by capability name.
func (e *Entry) Booleans() map[string]bool {
	out := make(map[string]bool, len(e.booleans))
	for k, v := range e.booleans {
		out[k] = v
	}
	return out
}

// Numbers returns every numeric capability present in this entry.
func (e *Entry) Numbers() map[string]int {
	out := make(map[string]int, len(e.numbers))
	for k, v := range e.numbers {
		out[k] = v
	}
	return out
}

// Strings returns every string capability present in this entry, as
// uncompiled source.
func (e *Entry) Strings() map[string]string {
	out := make(map[string]string, len(e.strings))
	for k, v := range e.strings {
		out[k] = v
	}
	return out
}

// IsExtended reports whether the file carried a trailing extended
// (ncurses user-defined) capability section.
func (e *Entry) IsExtended() bool { return e.extended }

// Is32Bit reports whether the file used the 32-bit-number magic (0x021E)
// rather than the classic 16-bit magic (0x011A).
func (e *Entry) Is32Bit() bool { return e.is32Bit }
