// internal/exif/goexif.go
package exif

import (
	"fmt"
	"io"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"
)

type goexifDecoder struct{}

// Decode keeps a partially parsed block when goexif reports only
// non-critical tag errors.
func (goexifDecoder) Decode(r io.Reader) (Container, error) {
	x, err := exif.Decode(r)
	if err != nil && (x == nil || exif.IsCriticalError(err)) {
		return nil, fmt.Errorf("%w: %v", ErrNoExif, err)
	}
	return &goexifContainer{x: x}, nil
}

type goexifContainer struct {
	x *exif.Exif
}

// Lookup only sees IFD0 and its sub-IFDs; goexif does not load IFD1
// fields other than the thumbnail pointers.
func (c *goexifContainer) Lookup(tag Tag) (Value, bool) {
	t, err := c.x.Get(exif.FieldName(tag))
	if err != nil {
		return Value{}, false
	}

	switch t.Type {
	case tiff.DTRational:
		rats := make([]Rational, 0, t.Count)
		for i := 0; i < int(t.Count); i++ {
			num, den, err := t.Rat2(i)
			if err != nil {
				return Value{}, false
			}
			rats = append(rats, Rational{Numerator: uint32(num), Denominator: uint32(den)})
		}
		return Value{Kind: KindRational, Rationals: rats}, true
	case tiff.DTAscii:
		s, err := t.StringVal()
		if err != nil {
			return Value{}, false
		}
		return Value{Kind: KindASCII, Text: s}, true
	case tiff.DTByte:
		b := make([]byte, 0, t.Count)
		for i := 0; i < int(t.Count); i++ {
			n, err := t.Int(i)
			if err != nil {
				return Value{}, false
			}
			b = append(b, byte(n))
		}
		return Value{Kind: KindByte, Bytes: b}, true
	default:
		return Value{Kind: KindOther}, true
	}
}
