package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llmring/registry/pkg/errors"
)

func TestParseReplyBareArray(t *testing.T) {
	reply := `[{"model_id": "gemini-pro", "dollars_per_million_tokens_input": 1.25}]`

	records, err := parseReply("models.md", reply)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "gemini-pro", records[0]["model_id"])
	assert.Equal(t, 1.25, records[0]["dollars_per_million_tokens_input"])
}

func TestParseReplyCodeFenced(t *testing.T) {
	reply := "```json\n[{\"model_id\": \"gemini-pro\"}]\n```"

	records, err := parseReply("models.md", reply)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "gemini-pro", records[0]["model_id"])
}

func TestParseReplyModelsEnvelope(t *testing.T) {
	reply := `{"models": [{"model_id": "a"}, {"model_id": "b"}]}`

	records, err := parseReply("models.md", reply)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestParseReplyEmptyArray(t *testing.T) {
	records, err := parseReply("models.md", "[]")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParseReplyMalformed(t *testing.T) {
	for _, reply := range []string{"", "not json at all", `{"unexpected": true}`, "42"} {
		_, err := parseReply("models.md", reply)
		var parseErr *errors.ParseError
		assert.ErrorAs(t, err, &parseErr, "reply %q", reply)
	}
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"[]", "[]"},
		{"```json\n[]\n```", "[]"},
		{"```\n[]\n```", "[]"},
		{"  [1]  ", "[1]"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, stripCodeFence(tt.in))
	}
}
