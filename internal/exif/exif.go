// internal/exif/exif.go
package exif

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Backend names accepted by NewDecoder.
const (
	BackendGoexif  = "goexif"
	BackendDsoprea = "dsoprea"
)

var (
	// ErrNoExif is returned when the input holds no parseable EXIF block.
	ErrNoExif = errors.New("exif: no exif data")
	// ErrUnknownBackend is returned by NewDecoder for unsupported names.
	ErrUnknownBackend = errors.New("exif: unknown backend")
)

// Decoder parses EXIF data out of an image stream.
type Decoder interface {
	Decode(r io.Reader) (Container, error)
}

var decoders = map[string]Decoder{
	BackendGoexif:  goexifDecoder{},
	BackendDsoprea: dsopreaDecoder{},
}

// NewDecoder returns the decoder registered under name. An empty name
// selects the default goexif backend.
func NewDecoder(name string) (Decoder, error) {
	if name == "" {
		name = BackendGoexif
	}
	d, ok := decoders[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownBackend, name, strings.Join(Backends(), ", "))
	}
	return d, nil
}

// Backends lists the registered backend names.
func Backends() []string {
	names := make([]string, 0, len(decoders))
	for name := range decoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
