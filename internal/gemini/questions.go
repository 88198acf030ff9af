package gemini

import (
	"context"
	"fmt"

	"github.com/mradulpatle03/IDE/pkg/lenientjson"
	"github.com/mradulpatle03/IDE/pkg/model"
)

// InterviewQuestions asks the model for five question/answer pairs for the
// given role. It returns the recovered pairs along with the cleaned text that
// was parsed; when recovery fails the cleaned text is still returned so the
// caller can expose it for diagnosis.
func (c *Client) InterviewQuestions(ctx context.Context, role, experience, topicsToFocus string) ([]model.GeneratedQA, string, error) {
	prompt := fmt.Sprintf(`
You are an interview question generator.
Return ONLY a valid JSON array. Do not include explanations, extra text, or formatting.

Example format:
[
  {"question": "What is React?", "answer": "React is a JS library for building UIs."}
]

Now generate 5 questions for a %s with %s years experience.
Focus on topics: %s.
`, role, experience, topicsToFocus)

	raw, err := c.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, "", err
	}

	var pairs []model.GeneratedQA
	cleaned, err := lenientjson.DecodeArray(raw, &pairs)
	if err != nil {
		return nil, cleaned, err
	}
	return pairs, cleaned, nil
}
