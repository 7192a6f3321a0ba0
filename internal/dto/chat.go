package dto

type ChatRequest struct {
	Message string `json:"message"`
	BookID  int64  `json:"book_id"`
}

type ChatResponse struct {
	Response string `json:"response"`
}
