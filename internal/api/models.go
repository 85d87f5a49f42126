package api

// GenerateRequest represents the request body for POST /generate
type GenerateRequest struct {
	Prompt string `json:"prompt" validate:"required"`
	Model  string `json:"model"`
}

// GenerateResponse represents a successful generation
type GenerateResponse struct {
	Response string `json:"response"`
}
