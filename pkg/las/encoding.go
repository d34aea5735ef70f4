package las

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Encodings lists the accepted encoding names.
var Encodings = []string{"utf-8", "latin1", "windows-1252"}

func lookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return nil, nil
	case "latin1", "latin-1", "iso-8859-1":
		return charmap.ISO8859_1, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	default:
		return nil, fmt.Errorf("%w %q (use one of %s)", ErrUnknownEncoding, name, strings.Join(Encodings, ", "))
	}
}

// ValidateEncoding reports whether name is an accepted encoding.
func ValidateEncoding(name string) error {
	_, err := lookupEncoding(name)
	return err
}

func decodeReader(r io.Reader, name string) (io.Reader, error) {
	enc, err := lookupEncoding(name)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return r, nil
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

func normalize(s string) string {
	return strings.TrimSpace(norm.NFKC.String(s))
}
