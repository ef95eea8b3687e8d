package tui

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"time"
)

const clientRequestTimeout = 180 * time.Second

// manages HTTP requests to the hairswap REST API
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
}

// creates a new REST client for the given app context
func NewClient(ctx *AppContext) *Client {
	return &Client{
		endpoint: ctx.Endpoint,
		token:    ctx.Token,
		httpClient: &http.Client{
			Timeout: clientRequestTimeout,
		},
	}
}

type generateResponse struct {
	Success   bool   `json:"success"`
	ImageData string `json:"imageData"`
	MimeType  string `json:"mimeType"`
	Message   string `json:"message"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// GenerateResult is a decoded generation response
type GenerateResult struct {
	ImageData []byte
	MimeType  string
}

// uploads both images and returns the decoded composite
func (c *Client) Generate(ctx context.Context, facePath, hairstylePath string) (*GenerateResult, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if err := attachImage(writer, "faceImage", facePath); err != nil {
		return nil, err
	}

	if err := attachImage(writer, "hairstyleImage", hairstylePath); err != nil {
		return nil, err
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize upload: %w", err)
	}

	url := fmt.Sprintf("%s/api/generate-hairstyle", c.endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			if errResp.Message != "" {
				return nil, fmt.Errorf("%s: %s", errResp.Error, errResp.Message)
			}
			return nil, fmt.Errorf("%s", errResp.Error)
		}
		return nil, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	var result generateResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	imageData, err := base64.StdEncoding.DecodeString(result.ImageData)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image payload: %w", err)
	}

	return &GenerateResult{
		ImageData: imageData,
		MimeType:  result.MimeType,
	}, nil
}

// streams one image file into the multipart writer with its detected MIME type
func attachImage(writer *multipart.Writer, field, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck

	mimeType, err := detectImageType(path)
	if err != nil {
		return err
	}

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filepath.Base(path)))
	header.Set("Content-Type", mimeType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return fmt.Errorf("failed to create form part: %w", err)
	}

	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
