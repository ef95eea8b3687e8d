package generate

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"codeberg.org/hairswap/server/internal/auth"
	"codeberg.org/hairswap/server/internal/errors"
	"codeberg.org/hairswap/server/internal/gemini"
	"codeberg.org/hairswap/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// Handler godoc
// @Summary Generate a hairstyle composite
// @Description Composites the hairstyle from the second image onto the face in the first. Costs one credit per attempt.
// @Tags generate
// @Accept multipart/form-data
// @Produce json
// @Param faceImage formData file true "Face photo (image/*, max 10MiB)"
// @Param hairstyleImage formData file true "Reference hairstyle photo (image/*, max 10MiB)"
// @Success 200 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 402 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/generate-hairstyle [post]
// @Security BearerAuth
func Handler(ledger CreditLedger, generator Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		faceHeader, err := c.FormFile("faceImage")
		if err != nil {
			errors.BadRequest(c, "both faceImage and hairstyleImage are required", nil)
			return
		}

		hairstyleHeader, err := c.FormFile("hairstyleImage")
		if err != nil {
			errors.BadRequest(c, "both faceImage and hairstyleImage are required", nil)
			return
		}

		// all input validation happens before any credit is spent
		face, err := readImage(faceHeader)
		if err != nil {
			errors.BadRequest(c, err.Error(), nil)
			return
		}

		hairstyle, err := readImage(hairstyleHeader)
		if err != nil {
			errors.BadRequest(c, err.Error(), nil)
			return
		}

		// advisory read: cheap rejection before any work begins
		if ledger.GetBalance(c.Request.Context(), userID) <= 0 {
			errors.PaymentRequired(c, "insufficient credits, please purchase more credits to generate hairstyles")
			return
		}

		// authoritative gate: the atomic deduct decides under concurrency
		deduct := ledger.TryDeduct(c.Request.Context(), userID)
		if !deduct.Success {
			errors.PaymentRequired(c, deduct.Reason)
			return
		}

		logger.Info("starting hairstyle generation",
			"user_id", userID,
			"face_bytes", len(face.Data),
			"hairstyle_bytes", len(hairstyle.Data),
		)

		// single attempt; the credit stays spent if this fails
		resp, err := generator.Generate(c.Request.Context(), face, hairstyle)
		if err != nil {
			errors.InternalError(c, "failed to generate image, please try again", err)
			return
		}

		imageBytes, mimeType, ok := gemini.ExtractImage(resp)
		if !ok {
			errors.InternalError(c, "failed to generate image, please try again",
				fmt.Errorf("no image data found in model response"))
			return
		}

		logger.Info("hairstyle generation completed",
			"user_id", userID,
			"image_bytes", len(imageBytes),
			"mime_type", mimeType,
		)

		c.JSON(http.StatusOK, Response{
			Success:   true,
			ImageData: base64.StdEncoding.EncodeToString(imageBytes),
			MimeType:  mimeType,
			Message:   "Hairstyle generated successfully!",
		})
	}
}

// validates an uploaded file and reads it fully into memory
func readImage(header *multipart.FileHeader) (gemini.Image, error) {
	if header.Size > maxImageSize {
		return gemini.Image{}, fmt.Errorf("image files must be smaller than 10MB")
	}

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return gemini.Image{}, fmt.Errorf("both files must be images")
	}

	file, err := header.Open()
	if err != nil {
		return gemini.Image{}, fmt.Errorf("failed to open uploaded file")
	}
	defer file.Close() //nolint:errcheck

	data, err := io.ReadAll(io.LimitReader(file, maxImageSize+1))
	if err != nil {
		return gemini.Image{}, fmt.Errorf("failed to read uploaded file")
	}

	// header.Size comes from the client; trust the bytes, not the header
	if len(data) > maxImageSize {
		return gemini.Image{}, fmt.Errorf("image files must be smaller than 10MB")
	}

	return gemini.Image{Data: data, MimeType: contentType}, nil
}
