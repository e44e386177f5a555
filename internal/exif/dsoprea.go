// internal/exif/dsoprea.go
package exif

import (
	"fmt"
	"io"

	exifv3 "github.com/dsoprea/go-exif/v3"
	exifcommon "github.com/dsoprea/go-exif/v3/common"
)

const gpsIfdPath = "IFD/GPSInfo"

type dsopreaDecoder struct{}

func (dsopreaDecoder) Decode(r io.Reader) (Container, error) {
	rawExif, err := exifv3.SearchAndExtractExifWithReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoExif, err)
	}

	im, err := exifcommon.NewIfdMappingWithStandard()
	if err != nil {
		return nil, fmt.Errorf("failed to build IFD mapping: %w", err)
	}

	ti := exifv3.NewTagIndex()
	_, index, err := exifv3.Collect(im, ti, rawExif)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoExif, err)
	}

	// A block without a GPS IFD is still a valid container.
	gpsIfd, err := exifv3.FindIfdFromRootIfd(index.RootIfd, gpsIfdPath)
	if err != nil {
		gpsIfd = nil
	}

	return &dsopreaContainer{gps: gpsIfd}, nil
}

type dsopreaContainer struct {
	gps *exifv3.Ifd
}

func (c *dsopreaContainer) Lookup(tag Tag) (Value, bool) {
	if c.gps == nil {
		return Value{}, false
	}

	results, err := c.gps.FindTagWithName(string(tag))
	if err != nil || len(results) == 0 {
		return Value{}, false
	}

	raw, err := results[0].Value()
	if err != nil {
		return Value{}, false
	}

	switch v := raw.(type) {
	case []exifcommon.Rational:
		rats := make([]Rational, len(v))
		for i, r := range v {
			rats[i] = Rational{Numerator: r.Numerator, Denominator: r.Denominator}
		}
		return Value{Kind: KindRational, Rationals: rats}, true
	case string:
		return Value{Kind: KindASCII, Text: v}, true
	case []byte:
		return Value{Kind: KindByte, Bytes: v}, true
	default:
		return Value{Kind: KindOther}, true
	}
}
