// internal/exif/reader.go
package exif

import "unicode/utf8"

// ReadRationals returns the rational sequence stored under tag.
// A missing tag or one of another kind reads as absent.
func ReadRationals(c Container, tag Tag) ([]Rational, bool) {
	v, ok := c.Lookup(tag)
	if !ok || v.Kind != KindRational {
		return nil, false
	}
	return v.Rationals, true
}

// ReadASCII returns the string stored under tag. Text that is not valid
// UTF-8 reads as absent.
func ReadASCII(c Container, tag Tag) (string, bool) {
	v, ok := c.Lookup(tag)
	if !ok || v.Kind != KindASCII || !utf8.ValidString(v.Text) {
		return "", false
	}
	return v.Text, true
}

// ReadByte returns the first byte stored under tag.
func ReadByte(c Container, tag Tag) (byte, bool) {
	v, ok := c.Lookup(tag)
	if !ok || v.Kind != KindByte || len(v.Bytes) == 0 {
		return 0, false
	}
	return v.Bytes[0], true
}
