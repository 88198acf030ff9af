// Package lenientjson recovers structured data from free-form LLM output.
//
// Models asked for "only valid JSON" still wrap it in markdown fences, add
// commentary, or emit almost-JSON (trailing commas, smart quotes, stray
// escapes). DecodeArray and DecodeObject apply an ordered list of recovery
// passes and report the cleaned text alongside a typed error when every pass
// is exhausted, so callers can surface it for diagnosis.
package lenientjson

import (
	"encoding/json"
	"regexp"
	"strings"
)

// DecodeError reports that no recovery pass produced parseable JSON.
// Cleaned holds the text after all transformations were applied.
type DecodeError struct {
	Cleaned string
	Err     error
}

func (e *DecodeError) Error() string {
	return "lenientjson: unparseable model output: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

var (
	fenceRe         = regexp.MustCompile("(?i)```json|```")
	trailingCommaRe = regexp.MustCompile(`,\s*([\]}])`)
	invalidEscapeRe = regexp.MustCompile(`\\([^"\\/bfnrtu])`)
	smartQuotes     = strings.NewReplacer(
		"“", `"`, "”", `"`, // double quotes
		"‘", "'", "’", "'", // single quotes
	)
)

// StripFences removes markdown code-fence markers.
func StripFences(s string) string {
	return strings.TrimSpace(fenceRe.ReplaceAllString(s, ""))
}

// ExtractArray returns the outermost bracketed array in s, or "" if none.
func ExtractArray(s string) string {
	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return s[start : end+1]
}

// ExtractObject returns the outermost braced object in s, or "" if none.
func ExtractObject(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return s[start : end+1]
}

// Repair applies the heuristic cleanup passes, in order: trailing commas
// before ] or }, smart-quote normalization, invalid escape sequences, and
// control characters. Repair is idempotent.
func Repair(s string) string {
	// repeated commas collapse one per pass, so loop to a fixed point
	for {
		next := trailingCommaRe.ReplaceAllString(s, "$1")
		if next == s {
			break
		}
		s = next
	}

	s = smartQuotes.Replace(s)

	for {
		next := invalidEscapeRe.ReplaceAllString(s, "$1")
		if next == s {
			break
		}
		s = next
	}

	return stripControl(s)
}

func stripControl(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x20 && r != '\n' && r != '\r' && r != '\t' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// DecodeArray recovers a JSON array from raw model output into v.
// It returns the cleaned text that was last handed to the parser.
func DecodeArray(raw string, v any) (string, error) {
	cleaned := StripFences(raw)
	if arr := ExtractArray(cleaned); arr != "" {
		cleaned = arr
	}
	return decode(cleaned, v)
}

// DecodeObject recovers a JSON object from raw model output into v.
func DecodeObject(raw string, v any) (string, error) {
	cleaned := StripFences(raw)
	if obj := ExtractObject(cleaned); obj != "" {
		cleaned = obj
	}
	return decode(cleaned, v)
}

func decode(cleaned string, v any) (string, error) {
	if err := json.Unmarshal([]byte(cleaned), v); err == nil {
		return cleaned, nil
	}

	cleaned = Repair(cleaned)
	if err := json.Unmarshal([]byte(cleaned), v); err != nil {
		return cleaned, &DecodeError{Cleaned: cleaned, Err: err}
	}
	return cleaned, nil
}
