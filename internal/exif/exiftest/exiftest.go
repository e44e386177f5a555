// Package exiftest builds EXIF blocks carrying a GPS sub-IFD, for tests
// that need real EXIF input without binary fixtures.
package exiftest

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"sort"

	exifv3 "github.com/dsoprea/go-exif/v3"
	exifcommon "github.com/dsoprea/go-exif/v3/common"
)

// GPS tag ids.
const (
	GPSLatitudeRef  uint16 = 0x1
	GPSLatitude     uint16 = 0x2
	GPSLongitudeRef uint16 = 0x3
	GPSLongitude    uint16 = 0x4
	GPSAltitudeRef  uint16 = 0x5
	GPSAltitude     uint16 = 0x6
	GPSTimeStamp    uint16 = 0x7
	GPSDateStamp    uint16 = 0x1d
)

var byteOrder = exifcommon.EncodeDefaultByteOrder

type entry struct {
	value interface{}
	// typ overrides the standard type of the tag when set
	typ exifcommon.TagTypePrimitive
}

// Builder accumulates GPS tags. The zero value is not usable; call New.
type Builder struct {
	maker string
	gps   map[uint16]entry
}

// New returns a builder whose IFD0 carries only a Make tag.
func New() *Builder {
	return &Builder{maker: "exiftest", gps: make(map[uint16]entry)}
}

// Rationals stores tag as a RATIONAL sequence of {numerator, denominator} pairs.
func (b *Builder) Rationals(tag uint16, vals ...[2]uint32) *Builder {
	rats := make([]exifcommon.Rational, len(vals))
	for i, v := range vals {
		rats[i] = exifcommon.Rational{Numerator: v[0], Denominator: v[1]}
	}
	b.gps[tag] = entry{value: rats}
	return b
}

// ASCII stores tag as a NUL-terminated ASCII string.
func (b *Builder) ASCII(tag uint16, s string) *Builder {
	b.gps[tag] = entry{value: s}
	return b
}

// Bytes stores tag as a BYTE sequence.
func (b *Builder) Bytes(tag uint16, vals ...byte) *Builder {
	b.gps[tag] = entry{value: append([]byte(nil), vals...)}
	return b
}

// Short stores tag as a single SHORT whatever its standard type, for
// type-mismatch cases.
func (b *Builder) Short(tag uint16, v uint16) *Builder {
	b.gps[tag] = entry{value: []uint16{v}, typ: exifcommon.TypeShort}
	return b
}

// Without removes tag.
func (b *Builder) Without(tag uint16) *Builder {
	delete(b.gps, tag)
	return b
}

// Encode renders the accumulated tags as a TIFF stream. The GPS IFD is
// only linked from IFD0 when at least one GPS tag was set.
func (b *Builder) Encode() ([]byte, error) {
	im, err := exifcommon.NewIfdMappingWithStandard()
	if err != nil {
		return nil, fmt.Errorf("failed to build IFD mapping: %w", err)
	}
	ti := exifv3.NewTagIndex()

	rootIb := exifv3.NewIfdBuilder(im, ti, exifcommon.IfdStandardIfdIdentity, byteOrder)
	if err := rootIb.AddStandardWithName("Make", b.maker); err != nil {
		return nil, fmt.Errorf("failed to add Make: %w", err)
	}

	if len(b.gps) > 0 {
		gpsIb := exifv3.NewIfdBuilder(im, ti, exifcommon.IfdGpsInfoStandardIfdIdentity, byteOrder)

		tags := make([]uint16, 0, len(b.gps))
		for tag := range b.gps {
			tags = append(tags, tag)
		}
		sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })

		for _, tag := range tags {
			if err := addTag(gpsIb, tag, b.gps[tag]); err != nil {
				return nil, fmt.Errorf("failed to add GPS tag 0x%04x: %w", tag, err)
			}
		}

		if err := rootIb.AddChildIb(gpsIb); err != nil {
			return nil, fmt.Errorf("failed to link GPS IFD: %w", err)
		}
	}

	return exifv3.NewIfdByteEncoder().EncodeToExif(rootIb)
}

func addTag(ib *exifv3.IfdBuilder, tag uint16, e entry) error {
	if e.typ == 0 {
		return ib.AddStandard(tag, e.value)
	}

	ed, err := exifcommon.NewValueEncoder(byteOrder).Encode(e.value)
	if err != nil {
		return err
	}
	bt := exifv3.NewBuilderTag(
		exifcommon.IfdGpsInfoStandardIfdIdentity.UnindexedString(),
		tag,
		e.typ,
		exifv3.NewIfdBuilderTagValueFromBytes(ed.Encoded),
		byteOrder)
	return ib.Add(bt)
}

// TIFF is Encode for fixed fixtures; it panics on encoding errors.
func (b *Builder) TIFF() []byte {
	data, err := b.Encode()
	if err != nil {
		panic(fmt.Sprintf("exiftest: %v", err))
	}
	return data
}

// JPEG wraps the TIFF stream in a minimal JPEG: SOI, an APP1 "Exif"
// segment, an empty scan and EOI.
func (b *Builder) JPEG() []byte {
	payload := append([]byte("Exif\x00\x00"), b.TIFF()...)

	var buf bytes.Buffer
	buf.Write([]byte{0xFF, 0xD8})
	buf.Write([]byte{0xFF, 0xE1})
	binary.Write(&buf, binary.BigEndian, uint16(len(payload)+2))
	buf.Write(payload)
	buf.Write([]byte{0xFF, 0xDA, 0x00, 0x08, 0x01, 0x01, 0x00, 0x00, 0x3F, 0x00})
	buf.Write([]byte{0xFF, 0xD9})
	return buf.Bytes()
}

// WriteFile writes the TIFF rendering to path.
func (b *Builder) WriteFile(path string) error {
	data, err := b.Encode()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
