package lenientjson

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripFences(t *testing.T) {
	t.Parallel()

	in := "```json\n[{\"a\": 1}]\n```"
	assert.Equal(t, `[{"a": 1}]`, StripFences(in))

	// case-insensitive fence marker
	assert.Equal(t, `{"x": 2}`, StripFences("```JSON\n{\"x\": 2}\n```"))

	// text without fences passes through trimmed
	assert.Equal(t, `[1, 2]`, StripFences("  [1, 2]  "))
}

func TestExtractArray(t *testing.T) {
	t.Parallel()

	got := ExtractArray(`Here are your questions: [{"q": "a"}] hope that helps!`)
	assert.Equal(t, `[{"q": "a"}]`, got)

	// nested arrays keep the outermost brackets
	got = ExtractArray(`noise [[1, 2], [3]] trailing`)
	assert.Equal(t, `[[1, 2], [3]]`, got)

	assert.Equal(t, "", ExtractArray("no array here"))
	assert.Equal(t, "", ExtractArray("] backwards ["))
}

func TestExtractObject(t *testing.T) {
	t.Parallel()

	got := ExtractObject(`Sure! {"plan": [{"week": 1}]} Enjoy.`)
	assert.Equal(t, `{"plan": [{"week": 1}]}`, got)

	assert.Equal(t, "", ExtractObject("nothing braced"))
}

func TestRepair(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trailing comma before bracket", `[{"a": 1},]`, `[{"a": 1}]`},
		{"trailing comma before brace", `{"a": 1,}`, `{"a": 1}`},
		{"repeated trailing commas", `[1, 2,,]`, `[1, 2]`},
		{"smart double quotes", "{“a”: 1}", `{"a": 1}`},
		{"smart single quotes", "{\"a\": ‘x’}", `{"a": 'x'}`},
		{"invalid escape dropped", `{"a": "5\%"}`, `{"a": "5%"}`},
		{"valid escapes kept", `{"a": "line\nbreak \"q\""}`, `{"a": "line\nbreak \"q\""}`},
		{"control characters stripped", "{\"a\": \"x\x00y\"}", `{"a": "xy"}`},
		{"clean input untouched", `[{"a": 1}]`, `[{"a": 1}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Repair(tt.in))
		})
	}
}

func TestRepairIdempotent(t *testing.T) {
	t.Parallel()

	// representative malformed LLM payload: fenced, trailing comma, smart quotes
	raw := "```json\n[\n  {“question”: \"What is Go?\", \"answer\": \"A language\",},\n]\n```"

	once := Repair(StripFences(raw))
	twice := Repair(once)
	assert.Equal(t, once, twice, "repair must be a fixed point after one application")
}

func TestDecodeArray(t *testing.T) {
	t.Parallel()

	type qa struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
	}

	t.Run("fenced with trailing comma", func(t *testing.T) {
		raw := "```json\n[{\"question\": \"q1\", \"answer\": \"a1\"},]\n```"
		var out []qa
		cleaned, err := DecodeArray(raw, &out)
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "q1", out[0].Question)
		assert.NotEmpty(t, cleaned)
	})

	t.Run("commentary around the array", func(t *testing.T) {
		raw := "Sure, here you go!\n[{\"question\": \"q\", \"answer\": \"a\"}]\nLet me know if you need more."
		var out []qa
		_, err := DecodeArray(raw, &out)
		require.NoError(t, err)
		require.Len(t, out, 1)
	})

	t.Run("unrecoverable output", func(t *testing.T) {
		var out []qa
		cleaned, err := DecodeArray("I cannot answer that question.", &out)
		require.Error(t, err)

		var decodeErr *DecodeError
		require.True(t, errors.As(err, &decodeErr))
		assert.Equal(t, cleaned, decodeErr.Cleaned)
	})
}

func TestDecodeObject(t *testing.T) {
	t.Parallel()

	type plan struct {
		Role    string `json:"role"`
		Summary string `json:"summary"`
	}

	raw := "```json\n{\"role\": \"SDE\", \"summary\": \"12 weeks\",}\n```"
	var out plan
	_, err := DecodeObject(raw, &out)
	require.NoError(t, err)
	assert.Equal(t, "SDE", out.Role)
}
