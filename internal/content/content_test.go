package content

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentUnmarshalString(t *testing.T) {
	var d Document
	require.NoError(t, json.Unmarshal([]byte(`"plain text"`), &d))
	assert.False(t, d.IsStructured())
	assert.Equal(t, "plain text", d.Raw())
	assert.Nil(t, d.Blocks())
}

func TestDocumentUnmarshalBlocks(t *testing.T) {
	payload := `{
		"time": 1712000000000,
		"blocks": [
			{"id": "abc", "type": "header", "data": {"text": "Hi", "level": 2}},
			{"id": "def", "type": "paragraph", "data": {"text": "Body"}}
		],
		"version": "2.28.2"
	}`

	var d Document
	require.NoError(t, json.Unmarshal([]byte(payload), &d))
	assert.True(t, d.IsStructured())
	require.Len(t, d.Blocks(), 2)
	assert.Equal(t, "header", d.Blocks()[0].Type)
	assert.Equal(t, "abc", d.Blocks()[0].ID)
}

func TestDocumentUnmarshalNull(t *testing.T) {
	var d Document
	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.False(t, d.IsStructured())
	assert.True(t, IsEmpty(d))
}

func TestDocumentUnmarshalInvalidShape(t *testing.T) {
	for _, payload := range []string{`42`, `[1,2]`, `true`} {
		var d Document
		err := json.Unmarshal([]byte(payload), &d)
		assert.ErrorIs(t, err, ErrInvalidShape, "payload %s", payload)
	}
}

func TestDocumentMarshalRoundTrip(t *testing.T) {
	// String form stays a string.
	raw, err := json.Marshal(FromString("hello"))
	require.NoError(t, err)
	assert.Equal(t, `"hello"`, string(raw))

	// Structured form keeps time, version, and unknown block data verbatim.
	payload := `{"time":123,"blocks":[{"type":"mystery","data":{"weird":["x"],"keep":true}}],"version":"2.28.2"}`
	var d Document
	require.NoError(t, json.Unmarshal([]byte(payload), &d))

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, payload, string(out))
}

func TestDocumentMarshalEmptyBlocks(t *testing.T) {
	out, err := json.Marshal(FromBlocks(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"blocks":[]}`, string(out))
}
