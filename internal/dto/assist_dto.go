package dto

type AssistRequest struct {
	Query string `json:"query" validate:"required"`
}

type AssistResponse struct {
	Answer string `json:"answer"`
}
