package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	generateContentURL = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent"

	// fixed instruction for hairstyle transfer: swap the hair, keep the face
	hairstylePrompt = "Remove the hair of the first person and completely replace it " +
		"with the hair of the second person. Leave the face as is"
)

// shared HTTP client for Gemini API calls
var geminiHTTPClient = &http.Client{
	Timeout: 120 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

// rate limiter for Gemini API calls (10 requests/second with burst capacity of 5)
var geminiRateLimiter = rate.NewLimiter(10, 5)

// Client invokes the Gemini image generation API
type Client struct {
	config     Config
	httpClient *http.Client
}

// creates a new client with auto-configuration from environment variables
func NewClient() (*Client, error) {
	config, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load gemini config: %w", err)
	}

	return NewClientWithConfig(*config), nil
}

// creates a new client with explicit configuration
func NewClientWithConfig(config Config) *Client {
	if config.Model == "" {
		config.Model = defaultModel
	}

	return &Client{
		config:     config,
		httpClient: geminiHTTPClient,
	}
}

func (c *Client) Model() string {
	return c.config.Model
}

// EncodeImage converts raw image bytes into an inline data part.
// No size limit is enforced here; the request handler validates upstream.
func EncodeImage(img Image) InlineData {
	return InlineData{
		MimeType: img.MimeType,
		Data:     base64.StdEncoding.EncodeToString(img.Data),
	}
}

// DecodeImageData decodes a base64 image payload back to raw bytes
func DecodeImageData(data string) ([]byte, error) {
	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image data: %w", err)
	}

	return decoded, nil
}

// Generate composites the hairstyle image onto the face image.
//
// The call is a single synchronous attempt: no retry and no backoff. A slow
// upstream blocks until the shared transport times out.
func (c *Client) Generate(ctx context.Context, face, hairstyle Image) (*GenerateResponse, error) {
	facePart := EncodeImage(face)
	hairstylePart := EncodeImage(hairstyle)

	reqBody := generateRequest{
		Contents: []requestContent{
			{
				Parts: []requestPart{
					{Text: hairstylePrompt},
					{InlineData: &facePart},
					{InlineData: &hairstylePart},
				},
			},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf(generateContentURL, c.config.Model)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.config.APIKey)

	// rate limiting
	if err := geminiRateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to generate hairstyle: %w", err)
	}

	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body) //nolint:errcheck
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var generateResp GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&generateResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &generateResp, nil
}
