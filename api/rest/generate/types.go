package generate

import (
	"context"

	"codeberg.org/hairswap/server/hairswap/credits"
	"codeberg.org/hairswap/server/internal/gemini"
)

// maximum accepted upload size per image
const maxImageSize = 10 << 20 // 10 MiB

// CreditLedger gates generation on the user's credit balance
type CreditLedger interface {
	GetBalance(ctx context.Context, userID string) int
	TryDeduct(ctx context.Context, userID string) credits.DeductResult
}

// Generator invokes the image generation model
type Generator interface {
	Generate(ctx context.Context, face, hairstyle gemini.Image) (*gemini.GenerateResponse, error)
}

// Response is the success payload for a generation request
type Response struct {
	Success   bool   `json:"success"`
	ImageData string `json:"imageData"`
	MimeType  string `json:"mimeType"`
	Message   string `json:"message"`
}
