package leftpad

import "unicode/utf8"

// Padder is a precompiled pad operation: the fill character is resolved
// once at construction and reused on every call. Use it when padding many
// strings to the same width.
//
// A Padder is immutable and safe for concurrent use.
type Padder struct {
	length int
	fill   rune
}

// New creates a Padder that pads to at least length runes with the
// character resolved from fill.
func New(length int, fill Filler) *Padder {
	return &Padder{length: length, fill: fill.Rune()}
}

// Pad returns s left-padded to the Padder's length.
func (p *Padder) Pad(s string) string {
	old := utf8.RuneCountInString(s)
	if p.length <= old {
		return s
	}
	buf := make([]byte, 0, (p.length-old)*utf8.UTFMax+len(s))
	return string(appendPad(buf, s, p.length, p.fill))
}

// Append appends the left-padded form of s to dst and returns the
// extended buffer. This is the zero-allocation hot path.
func (p *Padder) Append(dst []byte, s string) []byte {
	return appendPad(dst, s, p.length, p.fill)
}
