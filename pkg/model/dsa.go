package model

type DSAQuery struct {
	Topic      string `json:"topic" form:"topic,default=array"`
	Difficulty string `json:"difficulty" form:"difficulty,default=easy"`
	Company    string `json:"company" form:"company,default=Google"`
	Limit      int    `json:"limit" form:"limit,default=10"`
}

type DSAQuestion struct {
	Title      string `json:"title"`
	Link       string `json:"link"`
	Difficulty string `json:"difficulty"`
	Summary    string `json:"summary"`
}
