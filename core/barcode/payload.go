package barcode

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInvalidPayload is returned when a JSON request value is neither a string nor an object.
var ErrInvalidPayload = errors.New("barcode payload must be a string or an object")

// Payload is the barcode data exactly as the caller supplied it.
type Payload struct {
	text     string
	document map[string]any
	isDoc    bool
}

// TextPayload wraps raw scanned text.
func TextPayload(text string) Payload {
	return Payload{text: text}
}

// DocumentPayload wraps an already structured payload.
func DocumentPayload(doc map[string]any) Payload {
	return Payload{document: doc, isDoc: true}
}

// PayloadFromJSON decodes a JSON value into a Payload.
// A JSON string becomes a text payload, a JSON object a document payload.
func PayloadFromJSON(raw []byte) (Payload, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return Payload{}, ErrInvalidPayload
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return Payload{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		return TextPayload(s), nil
	case '{':
		doc, ok := decodeObject(string(raw))
		if !ok {
			return Payload{}, ErrInvalidPayload
		}
		return DocumentPayload(doc), nil
	default:
		return Payload{}, ErrInvalidPayload
	}
}

// IsText reports whether the payload was supplied as text.
func (p Payload) IsText() bool {
	return !p.isDoc
}

// Text returns the raw text of a text payload.
func (p Payload) Text() string {
	return p.text
}

// Document returns the document of a structured payload.
func (p Payload) Document() map[string]any {
	return p.document
}

// String renders the payload as text. Documents are rendered as compact JSON
// with sorted keys so equal documents always render the same way.
func (p Payload) String() string {
	if !p.isDoc {
		return p.text
	}
	if p.document == nil {
		return ""
	}
	out, err := json.Marshal(p.document)
	if err != nil {
		return fmt.Sprintf("%v", p.document)
	}
	return string(out)
}

// Kind is the shape of a normalized payload.
type Kind int

const (
	KindUndecodable Kind = iota
	KindRaw
	KindStructured
)

func (k Kind) String() string {
	switch k {
	case KindRaw:
		return "raw"
	case KindStructured:
		return "structured"
	default:
		return "undecodable"
	}
}

// Normalized is the canonical decoded form of a payload.
type Normalized struct {
	Kind   Kind
	Text   string
	Fields map[string]any
}

// Normalize decodes a payload once. Text that is not a JSON object stays raw;
// that is not an error, short-code and hash matching still apply to it.
func Normalize(p Payload) Normalized {
	if p.isDoc {
		if p.document == nil {
			return Normalized{Kind: KindUndecodable}
		}
		return Normalized{Kind: KindStructured, Fields: p.document}
	}

	if strings.TrimSpace(p.text) == "" {
		return Normalized{Kind: KindUndecodable, Text: p.text}
	}
	if doc, ok := decodeObject(p.text); ok {
		return Normalized{Kind: KindStructured, Text: p.text, Fields: doc}
	}
	return Normalized{Kind: KindRaw, Text: p.text}
}

// decodeObject decodes text holding exactly one JSON object. Numbers are kept as json.Number.
func decodeObject(text string) (map[string]any, bool) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, false
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, false
	}

	doc, ok := v.(map[string]any)
	if !ok || doc == nil {
		return nil, false
	}
	return doc, true
}
