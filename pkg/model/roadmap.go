package model

type RoadmapReq struct {
	Role       string `json:"role" binding:"required"`
	Level      string `json:"level" binding:"required"`
	Duration   string `json:"duration" binding:"required"`
	DailyHours string `json:"dailyHours" binding:"required"`
	Style      string `json:"style" binding:"required"`
	KnownTools string `json:"knownTools"`
}

type Roadmap struct {
	Duration  string     `json:"duration"`
	Role      string     `json:"role"`
	Summary   string     `json:"summary"`
	Plan      []WeekPlan `json:"plan"`
	FinalWeek string     `json:"final_week"`
}

type WeekPlan struct {
	Week        int         `json:"week"`
	Focus       string      `json:"focus"`
	HoursPerDay float64     `json:"hours_per_day"`
	Details     []DayDetail `json:"details"`
	Checkpoint  string      `json:"checkpoint"`
	Motivation  string      `json:"motivation"`
}

type DayDetail struct {
	Day       int      `json:"day"`
	Topic     string   `json:"topic"`
	Time      string   `json:"time"`
	Resources []string `json:"resources"`
}
