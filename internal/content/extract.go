package content

import (
	"encoding/json"
	"html"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	stripPolicy = bluemonday.StrictPolicy()
	whitespace  = regexp.MustCompile(`\s+`)
)

type headerData struct {
	Text  string `json:"text"`
	Level int    `json:"level"`
}

type paragraphData struct {
	Text string `json:"text"`
}

type listData struct {
	Style string   `json:"style"`
	Items []string `json:"items"`
}

type quoteData struct {
	Text    string `json:"text"`
	Caption string `json:"caption"`
}

type codeData struct {
	Code string `json:"code"`
}

type warningData struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

type captionData struct {
	Caption string `json:"caption"`
}

type tableData struct {
	Content [][]string `json:"content"`
}

// ExtractText flattens a document into plain text. Raw strings are returned
// unchanged; structured documents are mapped block by block, joined with
// single spaces, stripped of markup tags, whitespace-collapsed, and trimmed.
// A document with no blocks yields the empty string.
func ExtractText(d Document) string {
	if !d.structured {
		return d.raw
	}
	if len(d.blocks) == 0 {
		return ""
	}

	fragments := make([]string, 0, len(d.blocks))
	for _, b := range d.blocks {
		fragments = append(fragments, blockText(b))
	}
	return sanitize(strings.Join(fragments, " "))
}

// blockText maps one block to its plain-text fragment. Each known kind has
// an explicit arm; the default arm concatenates any string-valued fields so
// unknown kinds still contribute their readable content.
func blockText(b Block) string {
	if b.Type == "" {
		return ""
	}

	switch b.Type {
	case BlockHeader:
		var data headerData
		decode(b.Data, &data)
		return data.Text
	case BlockParagraph:
		var data paragraphData
		decode(b.Data, &data)
		return data.Text
	case BlockList:
		var data listData
		decode(b.Data, &data)
		return strings.Join(data.Items, " ")
	case BlockQuote:
		var data quoteData
		decode(b.Data, &data)
		return data.Text
	case BlockCode:
		var data codeData
		decode(b.Data, &data)
		return data.Code
	case BlockWarning:
		var data warningData
		decode(b.Data, &data)
		if data.Title != "" && data.Message != "" {
			return data.Title + " " + data.Message
		}
		if data.Title != "" {
			return data.Title
		}
		return data.Message
	case BlockImage, BlockEmbed:
		var data captionData
		decode(b.Data, &data)
		return data.Caption
	case BlockDelimiter:
		return "---"
	case BlockTable:
		var data tableData
		decode(b.Data, &data)
		var cells []string
		for _, row := range data.Content {
			cells = append(cells, row...)
		}
		return strings.Join(cells, " ")
	default:
		return stringFields(b.Data)
	}
}

// decode unmarshals block data, tolerating missing or malformed payloads.
func decode(raw json.RawMessage, dest any) {
	if len(raw) == 0 {
		return
	}
	_ = json.Unmarshal(raw, dest)
}

// stringFields joins every string-valued field of an unknown block's data,
// in sorted key order so extraction is deterministic.
func stringFields(raw json.RawMessage) string {
	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil || len(data) == 0 {
		return ""
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var parts []string
	for _, k := range keys {
		if s, ok := data[k].(string); ok {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// sanitize strips markup tags, collapses runs of whitespace, and trims.
func sanitize(s string) string {
	s = html.UnescapeString(stripPolicy.Sanitize(s))
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}

// IsEmpty reports whether the document carries no usable content: a blank
// string, zero blocks, or blocks whose data fields are all blank.
func IsEmpty(d Document) bool {
	if !d.structured {
		return strings.TrimSpace(d.raw) == ""
	}
	if len(d.blocks) == 0 {
		return true
	}
	for _, b := range d.blocks {
		if !blockEmpty(b) {
			return false
		}
	}
	return true
}

func blockEmpty(b Block) bool {
	var data map[string]any
	if err := json.Unmarshal(b.Data, &data); err != nil || len(data) == 0 {
		return true
	}
	for _, v := range data {
		if !valueBlank(v) {
			return false
		}
	}
	return true
}

// valueBlank mirrors JS falsiness for field values: nil, blank strings,
// zero numbers, and false are blank; arrays and objects are not, even when
// empty.
func valueBlank(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	case float64:
		return val == 0
	case bool:
		return !val
	default:
		return false
	}
}

// Truncate extracts the document's text and shortens it to maxLen runes,
// appending suffix when anything was cut.
func Truncate(d Document, maxLen int, suffix string) string {
	text := ExtractText(d)
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen]) + suffix
}

// WordCount returns the number of whitespace-separated words in the
// document's extracted text.
func WordCount(d Document) int {
	return len(strings.Fields(ExtractText(d)))
}

// ReadingTime estimates reading time in whole minutes at the given pace,
// never less than one minute.
func ReadingTime(d Document, wordsPerMinute int) int {
	if wordsPerMinute <= 0 {
		wordsPerMinute = 200
	}
	minutes := int(math.Ceil(float64(WordCount(d)) / float64(wordsPerMinute)))
	if minutes < 1 {
		return 1
	}
	return minutes
}
