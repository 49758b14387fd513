package aggregate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"

	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/stylebuilder/internal/foundation/errors"
)

// Renderer turns the accumulated documents into the bytes of one sink write.
// docs is always a slice.
type Renderer interface {
	Render(docs any) ([]byte, error)
}

// Report formats understood by RendererFor.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
	FormatText = "text"
)

// RendererFor maps a format name to its Renderer.
func RendererFor(format string) (Renderer, error) {
	switch format {
	case "", FormatYAML:
		return YAMLRenderer{}, nil
	case FormatJSON:
		return JSONRenderer{}, nil
	case FormatText:
		return TextRenderer{}, nil
	default:
		return nil, ferrors.ValidationError("unknown report format").
			WithContext("format", format).
			Build()
	}
}

// YAMLRenderer emits a YAML sequence.
type YAMLRenderer struct{}

func (YAMLRenderer) Render(docs any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(docs); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// JSONRenderer emits an indented JSON array.
type JSONRenderer struct{}

func (JSONRenderer) Render(docs any) ([]byte, error) {
	out, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// TextRenderer prints one %+v line per document between brackets.
type TextRenderer struct{}

func (TextRenderer) Render(docs any) ([]byte, error) {
	v := reflect.ValueOf(docs)
	if v.Kind() != reflect.Slice {
		return nil, fmt.Errorf("text renderer: expected slice, got %T", docs)
	}
	if v.Len() == 0 {
		return []byte("[]\n"), nil
	}
	var buf bytes.Buffer
	buf.WriteString("[\n")
	for i := 0; i < v.Len(); i++ {
		fmt.Fprintf(&buf, "  %+v\n", v.Index(i).Interface())
	}
	buf.WriteString("]\n")
	return buf.Bytes(), nil
}
