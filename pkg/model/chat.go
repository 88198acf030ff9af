package model

type ChatReq struct {
	Message string `json:"message" binding:"required"`
}

type ChatRes struct {
	Reply string `json:"reply"`
}
