package terminfo

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// decoder walks a terminfo binary blob with a read cursor, in the same
// sliceOff/evenBoundary style arp242-zli's terminfo_read.go uses for its
// (much smaller) fixed capability set.
type decoder struct {
	path string
	buf  []byte
	pos  int
}

func (d *decoder) err(format string, args ...interface{}) error {
	return &FormatError{Path: d.path, Msg: fmt.Sprintf(format, args...)}
}

func (d *decoder) take(n int) ([]byte, error) {
	if d.pos+n > len(d.buf) {
		return nil, d.err("unexpected end of file at byte %d (need %d more)", d.pos, n)
	}
	b := d.buf[d.pos : d.pos+n]
	d.pos += n
	return b, nil
}

func (d *decoder) int16() (int, error) {
	b, err := d.take(2)
	if err != nil {
		return 0, err
	}
	return int(int16(binary.LittleEndian.Uint16(b))), nil
}

func (d *decoder) number(width int) (int, error) {
	if width == 4 {
		b, err := d.take(4)
		if err != nil {
			return 0, err
		}
		return int(int32(binary.LittleEndian.Uint32(b))), nil
	}
	return d.int16()
}

// evenBoundary consumes one padding byte if the cursor sits on an odd
// offset, aligning the following section to a two-byte boundary.
func (d *decoder) evenBoundary() error {
	if d.pos%2 != 0 {
		_, err := d.take(1)
		return err
	}
	return nil
}

// cstring reads a NUL-terminated string out of table starting at offset,
// returning the string and the index one past its terminating NUL.
func cstring(table []byte, offset int) (string, int, error) {
	if offset < 0 || offset > len(table) {
		return "", 0, fmt.Errorf("string offset %d out of range (table length %d)", offset, len(table))
	}
	end := bytes.IndexByte(table[offset:], 0)
	if end < 0 {
		return "", 0, fmt.Errorf("unterminated string at offset %d", offset)
	}
	return string(table[offset : offset+end]), offset + end + 1, nil
}

// Decode parses one terminfo binary file's contents into an Entry. path is
// used only to annotate error messages; pass "" if the data didn't come
// from a named file.
func Decode(path string, data []byte) (*Entry, error) {
	d := &decoder{path: path, buf: data}

	magic, err := d.int16()
	if err != nil {
		return nil, err
	}
	if magic != Magic && magic != Magic32 {
		return nil, d.err("bad magic number 0x%04x", uint16(magic))
	}
	width := numWidth(magic)

	h, err := decodeHeader(d)
	if err != nil {
		return nil, err
	}

	e := newEntry()
	e.is32Bit = magic == Magic32

	namesBlob, err := d.take(h.sizeNames)
	if err != nil {
		return nil, err
	}
	e.names = parseNames(namesBlob)

	if err := decodeBooleans(d, h.nCapBool, e); err != nil {
		return nil, err
	}
	if err := d.evenBoundary(); err != nil {
		return nil, err
	}
	if err := decodeNumbers(d, h.nCapNum, width, e); err != nil {
		return nil, err
	}
	if err := decodeStrings(d, h.nCapStr, h.sizeStr, e); err != nil {
		return nil, err
	}

	// Anything left over (beyond trailing padding) is the extended section.
	// The pad byte is only present when more data follows.
	if d.pos < len(d.buf) {
		if err := d.evenBoundary(); err != nil {
			return nil, err
		}
	}
	if d.pos < len(d.buf) {
		if err := decodeExtended(d, width, e); err != nil {
			return nil, err
		}
		e.extended = true
	}

	return e, nil
}

func decodeHeader(d *decoder) (header, error) {
	var h header
	fields := []*int{&h.sizeNames, &h.nCapBool, &h.nCapNum, &h.nCapStr, &h.sizeStr}
	for _, f := range fields {
		v, err := d.int16()
		if err != nil {
			return h, err
		}
		*f = v
	}
	if h.sizeNames < 0 || h.nCapBool < 0 || h.nCapNum < 0 || h.nCapStr < 0 || h.sizeStr < 0 {
		return h, d.err("negative header field")
	}
	return h, nil
}

func parseNames(blob []byte) Names {
	s := string(bytes.TrimRight(blob, "\x00"))
	parts := bytes.Split([]byte(s), []byte("|"))
	var n Names
	if len(parts) == 0 {
		return n
	}
	n.Primary = string(parts[0])
	if len(parts) > 1 {
		rest := parts[1:]
		// The terminfo convention puts the free-text description last,
		// when there is more than one remaining field.
		if len(rest) > 1 {
			n.Description = string(rest[len(rest)-1])
			rest = rest[:len(rest)-1]
		} else {
			n.Description = string(rest[0])
			rest = nil
		}
		for _, r := range rest {
			n.Synonyms = append(n.Synonyms, string(r))
		}
	}
	return n
}

func decodeBooleans(d *decoder, n int, e *Entry) error {
	b, err := d.take(n)
	if err != nil {
		return err
	}
	for i, v := range b {
		if v != 0 && i < boolCapCount {
			e.booleans[boolCapNames[i]] = true
		}
	}
	return nil
}

func decodeNumbers(d *decoder, n, width int, e *Entry) error {
	for i := 0; i < n; i++ {
		v, err := d.number(width)
		if err != nil {
			return err
		}
		if v >= 0 && i < numCapCount {
			e.numbers[numCapNames[i]] = v
		}
	}
	return nil
}

func decodeStrings(d *decoder, n, tableSize int, e *Entry) error {
	offsets := make([]int, n)
	for i := range offsets {
		v, err := d.int16()
		if err != nil {
			return err
		}
		offsets[i] = v
	}
	table, err := d.take(tableSize)
	if err != nil {
		return err
	}
	for i, off := range offsets {
		if off < 0 || i >= strCapCount {
			continue
		}
		s, _, err := cstring(table, off)
		if err != nil {
			return d.err("string capability %d: %s", i, err)
		}
		e.strings[strCapNames[i]] = s
	}
	return nil
}

// decodeExtended parses the trailing ncurses user-defined capability
// section. Its offsets array holds nCapStr value offsets followed by one
// name offset per extended boolean, number and string. The header's nStr
// counts only the offsets that are present: absent (-1) offsets are left
// out of it, so every absent offset read extends the array by one more
// slot, until nStr plus all absent offsets seen have been read.
func decodeExtended(d *decoder, width int, e *Entry) error {
	eh, err := decodeExtHeader(d)
	if err != nil {
		return err
	}

	bools := make([]bool, eh.nCapBool)
	b, err := d.take(eh.nCapBool)
	if err != nil {
		return err
	}
	for i, v := range b {
		bools[i] = v != 0
	}
	if err := d.evenBoundary(); err != nil {
		return err
	}

	nums := make([]int, eh.nCapNum)
	for i := range nums {
		v, err := d.number(width)
		if err != nil {
			return err
		}
		nums[i] = v
	}

	want := eh.nStr
	valueOffsets := make([]int, eh.nCapStr)
	for i := range valueOffsets {
		v, err := d.int16()
		if err != nil {
			return err
		}
		valueOffsets[i] = v
		if v < 0 {
			want++
		}
	}

	totalNames := eh.nCapBool + eh.nCapNum + eh.nCapStr
	nameOffsets := make([]int, 0, totalNames)
	for eh.nCapStr+len(nameOffsets) < want {
		v, err := d.int16()
		if err != nil {
			return err
		}
		nameOffsets = append(nameOffsets, v)
		if v < 0 {
			want++
		}
	}
	if len(nameOffsets) != totalNames {
		return d.err("extended section: %d name offsets for %d capabilities", len(nameOffsets), totalNames)
	}

	table, err := d.take(eh.sizeStr)
	if err != nil {
		return err
	}

	// Values live at the front of the table; names are packed immediately
	// after the last value string's NUL terminator.
	strs := make([]string, eh.nCapStr)
	valuesEnd := 0
	for i, off := range valueOffsets {
		if off < 0 {
			continue
		}
		s, end, err := cstring(table, off)
		if err != nil {
			return d.err("extended string value %d: %s", i, err)
		}
		strs[i] = s
		if end > valuesEnd {
			valuesEnd = end
		}
	}

	names := make([]string, totalNames)
	for i, off := range nameOffsets {
		if off < 0 {
			continue
		}
		pos := valuesEnd + off
		s, _, err := cstring(table, pos)
		if err != nil {
			return d.err("extended capability name %d: %s", i, err)
		}
		names[i] = s
	}

	idx := 0
	for i := 0; i < eh.nCapBool; i++ {
		if names[idx] != "" && bools[i] {
			e.booleans[names[idx]] = true
		}
		idx++
	}
	for i := 0; i < eh.nCapNum; i++ {
		if names[idx] != "" && nums[i] >= 0 {
			e.numbers[names[idx]] = nums[i]
		}
		idx++
	}
	for i := 0; i < eh.nCapStr; i++ {
		if names[idx] != "" && valueOffsets[i] >= 0 {
			e.strings[names[idx]] = strs[i]
		}
		idx++
	}

	return nil
}

func decodeExtHeader(d *decoder) (extHeader, error) {
	var h extHeader
	fields := []*int{&h.nCapBool, &h.nCapNum, &h.nCapStr, &h.nStr, &h.sizeStr}
	for _, f := range fields {
		v, err := d.int16()
		if err != nil {
			return h, err
		}
		*f = v
	}
	if h.nCapBool < 0 || h.nCapNum < 0 || h.nCapStr < 0 || h.nStr < 0 || h.sizeStr < 0 {
		return h, d.err("negative extended header field")
	}
	return h, nil
}
