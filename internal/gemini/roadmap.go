package gemini

import (
	"context"
	"fmt"

	"github.com/mradulpatle03/IDE/pkg/lenientjson"
	"github.com/mradulpatle03/IDE/pkg/model"
)

// GenerateRoadmap produces a personalized week-by-week learning plan.
// Single shot, no retry on malformed output.
func (c *Client) GenerateRoadmap(ctx context.Context, req model.RoadmapReq) (*model.Roadmap, error) {
	knownTools := req.KnownTools
	if knownTools == "" {
		knownTools = "none"
	}

	prompt := fmt.Sprintf(`
You are an expert AI career mentor.
Create a DETAILED and PERSONALIZED learning roadmap for a person preparing for the role of %s.
Skill level: %s
Duration: %s
Daily time: %s hours/day
Preferred style: %s
Known tools: %s

Return ONLY valid JSON in this format (no extra text):
{
  "duration": "e.g. 12 Weeks",
  "role": "e.g. SDE",
  "summary": "Short paragraph summarizing the roadmap goal",
  "plan": [
    {
      "week": 1,
      "focus": "Main topics for the week",
      "hours_per_day": 2,
      "details": [
        {"day": 1, "topic": "What to study", "time": "2h", "resources": ["link1", "link2"]}
      ],
      "checkpoint": "Mini goal for week",
      "motivation": "Short motivational message"
    }
  ],
  "final_week": "Final preparation summary"
}
`, req.Role, req.Level, req.Duration, req.DailyHours, req.Style, knownTools)

	raw, err := c.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var roadmap model.Roadmap
	if _, err := lenientjson.DecodeObject(raw, &roadmap); err != nil {
		return nil, err
	}
	return &roadmap, nil
}
