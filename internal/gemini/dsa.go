package gemini

import (
	"context"
	"fmt"

	"github.com/mradulpatle03/IDE/pkg/lenientjson"
	"github.com/mradulpatle03/IDE/pkg/model"
)

// DSAQuestions asks the model for a curated list of practice problems.
// On unrecoverable output it returns the cleaned text so the caller can fall
// back to serving the raw reply.
func (c *Client) DSAQuestions(ctx context.Context, q model.DSAQuery) ([]model.DSAQuestion, string, error) {
	prompt := fmt.Sprintf(`
Generate top %d DSA interview questions related to %s at %s level,
preferably asked in %s interviews.
For each question, include:
1. Question title
2. LeetCode link (like https://leetcode.com/problems/<slug>/)
3. Difficulty level
4. One-line summary

Return in pure JSON format like this:
[
  {
    "title": "Two Sum",
    "link": "https://leetcode.com/problems/two-sum/",
    "difficulty": "Easy",
    "summary": "Find two numbers that add up to a target."
  }
]
`, q.Limit, q.Topic, q.Difficulty, q.Company)

	raw, err := c.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, "", err
	}

	var questions []model.DSAQuestion
	cleaned, err := lenientjson.DecodeArray(raw, &questions)
	if err != nil {
		return nil, cleaned, err
	}
	return questions, cleaned, nil
}
