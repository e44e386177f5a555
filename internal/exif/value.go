// internal/exif/value.go
package exif

// Rational is an EXIF RATIONAL: two unsigned 32-bit integers.
type Rational struct {
	Numerator   uint32
	Denominator uint32
}

// Float64 returns the quotient. ok is false when the denominator is zero,
// in which case the value is 0.
func (r Rational) Float64() (float64, bool) {
	if r.Denominator == 0 {
		return 0, false
	}
	return float64(r.Numerator) / float64(r.Denominator), true
}

// Kind is the encoding of a tag value as far as this package cares.
type Kind int

const (
	KindOther Kind = iota
	KindRational
	KindASCII
	KindByte
)

func (k Kind) String() string {
	switch k {
	case KindRational:
		return "rational"
	case KindASCII:
		return "ascii"
	case KindByte:
		return "byte"
	default:
		return "other"
	}
}

// Value is a raw tag value. Only the field matching Kind is set.
type Value struct {
	Kind      Kind
	Rationals []Rational
	Text      string
	Bytes     []byte
}

// Tag identifies a GPS tag in the primary image directory.
// The string form is the tag name used by both parser backends.
type Tag string

const (
	GPSLatitudeRef  Tag = "GPSLatitudeRef"
	GPSLatitude     Tag = "GPSLatitude"
	GPSLongitudeRef Tag = "GPSLongitudeRef"
	GPSLongitude    Tag = "GPSLongitude"
	GPSAltitudeRef  Tag = "GPSAltitudeRef"
	GPSAltitude     Tag = "GPSAltitude"
	GPSTimeStamp    Tag = "GPSTimeStamp"
	GPSDateStamp    Tag = "GPSDateStamp"
)

// Container is a parsed EXIF block.
type Container interface {
	// Lookup returns the value of tag, or false when the tag is absent
	// or could not be decoded.
	Lookup(tag Tag) (Value, bool)
}
