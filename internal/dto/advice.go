package dto

// AdviceResponse carries the generated (or fallback) business advice text.
type AdviceResponse struct {
	Advice   string `json:"advice"`
	Fallback bool   `json:"fallback"` // true when the generator was unavailable
}
