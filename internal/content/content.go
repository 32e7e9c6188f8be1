// Package content models a post's rich-text body: either a plain string
// or a structured, block-based document in the Editor.js wire format.
package content

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ErrInvalidShape is returned when a content value is neither a JSON string
// nor a block document. Body parsing surfaces it as a validation failure.
var ErrInvalidShape = errors.New("content must be a string or a block document")

// Block kinds supported by the structured document form. Unknown kinds are
// preserved verbatim and degrade gracefully during rendering and extraction.
const (
	BlockHeader    = "header"
	BlockParagraph = "paragraph"
	BlockList      = "list"
	BlockQuote     = "quote"
	BlockCode      = "code"
	BlockTable     = "table"
	BlockWarning   = "warning"
	BlockImage     = "image"
	BlockEmbed     = "embed"
	BlockDelimiter = "delimiter"
)

// Block is one unit of structured content: a kind tag plus kind-specific
// data, which is kept raw so unknown kinds round-trip unchanged.
type Block struct {
	ID   string          `json:"id,omitempty"`
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// Document is a tagged union: a raw string or a sequence of blocks.
// The zero value is an empty raw string.
type Document struct {
	raw        string
	blocks     []Block
	time       int64
	version    string
	structured bool
}

// documentJSON is the structured wire form.
type documentJSON struct {
	Time    int64   `json:"time,omitempty"`
	Blocks  []Block `json:"blocks"`
	Version string  `json:"version,omitempty"`
}

// FromString returns a Document holding a plain string.
func FromString(s string) Document {
	return Document{raw: s}
}

// FromBlocks returns a structured Document over the given blocks.
func FromBlocks(blocks []Block) Document {
	return Document{blocks: blocks, structured: true}
}

// IsStructured reports whether the document is block-based rather than a
// raw string.
func (d Document) IsStructured() bool { return d.structured }

// Raw returns the plain-string form; empty for structured documents.
func (d Document) Raw() string { return d.raw }

// Blocks returns the block sequence; nil for raw-string documents.
func (d Document) Blocks() []Block { return d.blocks }

// UnmarshalJSON accepts either a JSON string or a structured object with a
// "blocks" array. JSON null decodes to the empty document.
func (d *Document) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*d = Document{}
		return nil
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*d = Document{raw: s}
		return nil
	}

	if trimmed[0] == '{' {
		var doc documentJSON
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return err
		}
		*d = Document{
			blocks:     doc.Blocks,
			time:       doc.Time,
			version:    doc.Version,
			structured: true,
		}
		return nil
	}

	return ErrInvalidShape
}

// MarshalJSON emits the same shape the document was decoded from.
func (d Document) MarshalJSON() ([]byte, error) {
	if !d.structured {
		return json.Marshal(d.raw)
	}
	blocks := d.blocks
	if blocks == nil {
		blocks = []Block{}
	}
	return json.Marshal(documentJSON{
		Time:    d.time,
		Blocks:  blocks,
		Version: d.version,
	})
}
