package dto

type UploadResponse struct {
	ID       int64  `json:"id"`
	Filename string `json:"filename"`
	Status   string `json:"status"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
