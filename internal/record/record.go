// Package record defines the unit of input that flows from a file source into
// the style-guide aggregator.
package record

import (
	"io"
	"path/filepath"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	ferrors "git.home.luguber.info/inful/stylebuilder/internal/foundation/errors"
)

// Kind classifies a Record by the shape of its payload.
type Kind int

const (
	KindUnknown Kind = iota
	KindEmpty
	KindStream
	KindBuffer
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindStream:
		return "stream"
	case KindBuffer:
		return "buffer"
	default:
		return "unknown"
	}
}

// Record is one matched file. Contents is nil (empty record), a []byte
// (buffered payload) or an io.Reader (streamed payload). Any other value is a
// kind no consumer recognizes.
//
// Records are owned by the producer; consumers must not keep them past the
// call they were handed in.
type Record struct {
	Path     string
	Base     string
	Contents any
}

// Kind reports the payload kind.
func (r *Record) Kind() Kind {
	if r == nil {
		return KindUnknown
	}
	switch r.Contents.(type) {
	case nil:
		return KindEmpty
	case []byte:
		return KindBuffer
	case io.Reader:
		return KindStream
	default:
		return KindUnknown
	}
}

func (r *Record) IsEmpty() bool  { return r.Kind() == KindEmpty }
func (r *Record) IsStream() bool { return r.Kind() == KindStream }
func (r *Record) IsBuffer() bool { return r.Kind() == KindBuffer }

// Relative returns Path relative to Base, or Path when that is not possible.
func (r *Record) Relative() string {
	if r.Base == "" {
		return r.Path
	}
	rel, err := filepath.Rel(r.Base, r.Path)
	if err != nil {
		return r.Path
	}
	return rel
}

// Text decodes a buffered payload as UTF-8, dropping a leading byte order mark.
func (r *Record) Text() (string, error) {
	b, ok := r.Contents.([]byte)
	if !ok {
		return "", ferrors.ParseFailure("record has no buffered contents").
			WithContext("path", r.Path).
			WithContext("kind", r.Kind().String()).
			Build()
	}
	return DecodeUTF8(b, r.Path)
}

// DecodeUTF8 validates b and strips a BOM. path is only used for error context.
func DecodeUTF8(b []byte, path string) (string, error) {
	if !utf8.Valid(b) {
		return "", ferrors.ParseFailure("contents are not valid UTF-8").
			WithContext("path", path).
			Build()
	}
	out, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), b)
	if err != nil {
		return "", ferrors.WrapError(err, ferrors.CategoryParse, "decode UTF-8").
			Fatal().
			WithContext("path", path).
			Build()
	}
	return string(out), nil
}
