// Package leftpad implements the infamous left-padding function.
//
// # Overview
//
// leftpad pads a string on the left with a single fill character until it
// reaches a minimum length. Lengths are measured in Unicode code points
// (runes), not bytes, so multi-byte input is counted correctly.
//
// The fill character comes from a Filler, a three-way specification:
//
//	leftpad.Char('_')    // the character itself
//	leftpad.Text("abc")  // first rune of the string ('a'), space if empty
//	leftpad.Number(-12)  // first character of the decimal form ('-')
//
// # Basic Usage
//
//	leftpad.Pad("foo", 5, leftpad.Char('_'))   // "__foo"
//	leftpad.Pad("foo", 2, leftpad.Char('_'))   // "foo" (already long enough)
//
// Pad is total: any string, any length (including negative) and any Filler
// produce a defined result. There are no error returns.
//
// # Performance
//
// Pad allocates once for its result. For hot loops, Append writes into a
// caller-provided buffer instead, and a Padder resolves the fill character
// once up front:
//
//	p := leftpad.New(8, leftpad.Char('0'))
//	buf := make([]byte, 0, 64)
//	for _, id := range ids {
//	    buf = p.Append(buf[:0], id)
//	    w.Write(buf)
//	}
//
// All operations are pure and safe for concurrent use.
package leftpad

import (
	"strconv"
	"unicode/utf8"
)

// fillKind discriminates the Filler variants.
type fillKind int

const (
	fillChar fillKind = iota + 1
	fillText
	fillNumber
)

// Filler specifies the character used to pad. Construct one with Char,
// Text or Number; the zero value pads with spaces.
type Filler struct {
	kind fillKind
	ch   rune
	text string
	num  int64
}

// Char returns a Filler that pads with c itself.
func Char(c rune) Filler {
	return Filler{kind: fillChar, ch: c}
}

// Text returns a Filler that pads with the first rune of s, or with a
// space if s is empty.
func Text(s string) Filler {
	return Filler{kind: fillText, text: s}
}

// Number returns a Filler that pads with the first character of the
// decimal representation of n. Note that this is the minus sign for
// negative n and a single digit otherwise; Number(12) pads with '1'.
func Number(n int64) Filler {
	return Filler{kind: fillNumber, num: n}
}

// Rune resolves the Filler to the single character used for padding.
func (f Filler) Rune() rune {
	switch f.kind {
	case fillChar:
		return f.ch
	case fillText:
		for _, r := range f.text {
			return r
		}
		return ' '
	case fillNumber:
		// The decimal form is never empty and always ASCII.
		return rune(strconv.FormatInt(f.num, 10)[0])
	default:
		// Zero value.
		return ' '
	}
}

// Pad left-pads s with the fill character until it is at least length
// runes long. If length is less than or equal to the rune count of s
// (including zero and negative lengths) s is returned unchanged.
func Pad(s string, length int, fill Filler) string {
	old := utf8.RuneCountInString(s)
	if length <= old {
		return s
	}
	buf := make([]byte, 0, (length-old)*utf8.UTFMax+len(s))
	return string(Append(buf, s, length, fill))
}

// Append appends the left-padded form of s to dst and returns the
// extended buffer. It is the allocation-free variant of Pad: reuse dst
// across calls when formatting many strings.
func Append(dst []byte, s string, length int, fill Filler) []byte {
	return appendPad(dst, s, length, fill.Rune())
}

// appendPad is the shared hot path; fill is already resolved.
func appendPad(dst []byte, s string, length int, fill rune) []byte {
	for n := length - utf8.RuneCountInString(s); n > 0; n-- {
		dst = utf8.AppendRune(dst, fill)
	}
	return append(dst, s...)
}
