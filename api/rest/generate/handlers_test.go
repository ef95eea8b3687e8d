package generate

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"sync"
	"testing"

	"codeberg.org/hairswap/server/hairswap/credits"
	"codeberg.org/hairswap/server/internal/auth"
	"codeberg.org/hairswap/server/internal/gemini"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// implements CreditLedger for testing; the mutex mirrors the atomicity
// the real ledger gets from the database function
type mockLedger struct {
	mu           sync.Mutex
	balance      int
	getCalls     int
	deductCalls  int
	deductErrors bool
}

func (m *mockLedger) GetBalance(_ context.Context, _ string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.getCalls++
	return m.balance
}

func (m *mockLedger) TryDeduct(_ context.Context, _ string) credits.DeductResult {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.deductCalls++

	if m.deductErrors {
		return credits.DeductResult{Success: false, Reason: "failed to use credit"}
	}

	if m.balance <= 0 {
		return credits.DeductResult{Success: false, Reason: "insufficient credits"}
	}

	m.balance--
	return credits.DeductResult{Success: true}
}

// implements Generator for testing
type mockGenerator struct {
	mu         sync.Mutex
	calls      int
	err        error
	emptyReply bool
	imageBytes []byte
}

func (m *mockGenerator) Generate(_ context.Context, _, _ gemini.Image) (*gemini.GenerateResponse, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}

	if m.emptyReply {
		return &gemini.GenerateResponse{}, nil
	}

	imageBytes := m.imageBytes
	if imageBytes == nil {
		imageBytes = []byte("generated-png-bytes")
	}

	return &gemini.GenerateResponse{
		Response: &gemini.ResponseEnvelope{
			Candidates: []gemini.Candidate{
				{Content: gemini.Content{Parts: []gemini.Part{
					{InlineData: &gemini.InlineData{MimeType: "image/png", Data: base64.StdEncoding.EncodeToString(imageBytes)}},
				}}},
			},
		},
	}, nil
}

func (m *mockGenerator) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.calls
}

func newTestRouter(ledger CreditLedger, generator Generator) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	api := router.Group("/api")
	RegisterRoutes(api, ledger, generator)

	return router
}

// builds a multipart body; mimeType is applied to each part so the
// handler sees the same Content-Type a browser would send
func multipartBody(t *testing.T, fields map[string][]byte, mimeType string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for name, data := range fields {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, name, name+".jpg"))
		header.Set("Content-Type", mimeType)

		part, err := writer.CreatePart(header)
		require.NoError(t, err)

		_, err = part.Write(data)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func doRequest(t *testing.T, router *gin.Engine, token string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/generate-hairstyle", body)
	req.Header.Set("Content-Type", contentType)

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func testToken(t *testing.T) string {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing")

	token, err := auth.GenerateJWT("user-123", "test@example.com", false)
	require.NoError(t, err)

	return token
}

func TestHandler_MissingToken(t *testing.T) {
	ledger := &mockLedger{balance: 1}
	generator := &mockGenerator{}
	router := newTestRouter(ledger, generator)

	body, contentType := multipartBody(t, map[string][]byte{
		"faceImage":      []byte("face"),
		"hairstyleImage": []byte("hair"),
	}, "image/jpeg")

	rec := doRequest(t, router, "", body, contentType)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, 0, generator.callCount())
	assert.Equal(t, 0, ledger.deductCalls)
}

func TestHandler_MissingImageField(t *testing.T) {
	ledger := &mockLedger{balance: 1}
	generator := &mockGenerator{}
	router := newTestRouter(ledger, generator)
	token := testToken(t)

	body, contentType := multipartBody(t, map[string][]byte{
		"faceImage": []byte("face"),
	}, "image/jpeg")

	rec := doRequest(t, router, token, body, contentType)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "required")
	assert.Equal(t, 0, generator.callCount())
	assert.Equal(t, 0, ledger.getCalls)
	assert.Equal(t, 0, ledger.deductCalls)
}

func TestHandler_NonImageUpload(t *testing.T) {
	ledger := &mockLedger{balance: 1}
	generator := &mockGenerator{}
	router := newTestRouter(ledger, generator)
	token := testToken(t)

	body, contentType := multipartBody(t, map[string][]byte{
		"faceImage":      []byte("not an image"),
		"hairstyleImage": []byte("also not an image"),
	}, "text/plain")

	rec := doRequest(t, router, token, body, contentType)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "must be images")

	// validation failures never touch the model or the ledger
	assert.Equal(t, 0, generator.callCount())
	assert.Equal(t, 0, ledger.getCalls)
	assert.Equal(t, 0, ledger.deductCalls)
}

func TestHandler_OversizedUpload(t *testing.T) {
	ledger := &mockLedger{balance: 1}
	generator := &mockGenerator{}
	router := newTestRouter(ledger, generator)
	token := testToken(t)

	body, contentType := multipartBody(t, map[string][]byte{
		"faceImage":      make([]byte, maxImageSize+1),
		"hairstyleImage": []byte("hair"),
	}, "image/jpeg")

	rec := doRequest(t, router, token, body, contentType)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "smaller than 10MB")
	assert.Equal(t, 0, generator.callCount())
	assert.Equal(t, 0, ledger.deductCalls)
}

func TestHandler_NoCredits(t *testing.T) {
	ledger := &mockLedger{balance: 0}
	generator := &mockGenerator{}
	router := newTestRouter(ledger, generator)
	token := testToken(t)

	body, contentType := multipartBody(t, map[string][]byte{
		"faceImage":      []byte("face"),
		"hairstyleImage": []byte("hair"),
	}, "image/jpeg")

	rec := doRequest(t, router, token, body, contentType)

	assert.Equal(t, http.StatusPaymentRequired, rec.Code)

	// rejected on the advisory read, before any deduct or model call
	assert.Equal(t, 0, generator.callCount())
	assert.Equal(t, 0, ledger.deductCalls)
}

func TestHandler_DeductRaceLost(t *testing.T) {
	ledger := &mockLedger{balance: 1, deductErrors: true}
	generator := &mockGenerator{}
	router := newTestRouter(ledger, generator)
	token := testToken(t)

	body, contentType := multipartBody(t, map[string][]byte{
		"faceImage":      []byte("face"),
		"hairstyleImage": []byte("hair"),
	}, "image/jpeg")

	rec := doRequest(t, router, token, body, contentType)

	// advisory read passed but the authoritative deduct failed
	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	assert.Equal(t, 1, ledger.deductCalls)
	assert.Equal(t, 0, generator.callCount())
}

func TestHandler_GenerationFailure(t *testing.T) {
	ledger := &mockLedger{balance: 1}
	generator := &mockGenerator{err: fmt.Errorf("upstream exploded")}
	router := newTestRouter(ledger, generator)
	token := testToken(t)

	body, contentType := multipartBody(t, map[string][]byte{
		"faceImage":      []byte("face"),
		"hairstyleImage": []byte("hair"),
	}, "image/jpeg")

	rec := doRequest(t, router, token, body, contentType)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "please try again")

	// the credit stays spent on generation failure
	assert.Equal(t, 0, ledger.balance)
}

func TestHandler_NoImageInResponse(t *testing.T) {
	ledger := &mockLedger{balance: 1}
	generator := &mockGenerator{emptyReply: true}
	router := newTestRouter(ledger, generator)
	token := testToken(t)

	body, contentType := multipartBody(t, map[string][]byte{
		"faceImage":      []byte("face"),
		"hairstyleImage": []byte("hair"),
	}, "image/jpeg")

	rec := doRequest(t, router, token, body, contentType)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, 1, generator.callCount())
}

func TestHandler_SuccessThenExhausted(t *testing.T) {
	imageBytes := []byte{0x89, 0x50, 0x4E, 0x47}
	ledger := &mockLedger{balance: 1}
	generator := &mockGenerator{imageBytes: imageBytes}
	router := newTestRouter(ledger, generator)
	token := testToken(t)

	body, contentType := multipartBody(t, map[string][]byte{
		"faceImage":      bytes.Repeat([]byte("f"), 1<<20),
		"hairstyleImage": bytes.Repeat([]byte("h"), 1<<20),
	}, "image/jpeg")

	rec := doRequest(t, router, token, body, contentType)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, "image/png", resp.MimeType)
	assert.NotEmpty(t, resp.Message)

	decoded, err := base64.StdEncoding.DecodeString(resp.ImageData)
	require.NoError(t, err)
	assert.Equal(t, imageBytes, decoded)

	assert.Equal(t, 0, ledger.balance)

	// the very next request finds the balance exhausted
	body, contentType = multipartBody(t, map[string][]byte{
		"faceImage":      []byte("face"),
		"hairstyleImage": []byte("hair"),
	}, "image/jpeg")

	rec = doRequest(t, router, token, body, contentType)
	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	assert.Equal(t, 1, generator.callCount())
}

func TestHandler_ConcurrentRequestsSingleCredit(t *testing.T) {
	const attempts = 8

	ledger := &mockLedger{balance: 1}
	generator := &mockGenerator{}
	router := newTestRouter(ledger, generator)
	token := testToken(t)

	// bodies are built up front; testify must not fail from a goroutine
	bodies := make([]*bytes.Buffer, attempts)
	contentTypes := make([]string, attempts)

	for i := 0; i < attempts; i++ {
		bodies[i], contentTypes[i] = multipartBody(t, map[string][]byte{
			"faceImage":      []byte("face"),
			"hairstyleImage": []byte("hair"),
		}, "image/jpeg")
	}

	results := make(chan int, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)

		go func(n int) {
			defer wg.Done()

			req := httptest.NewRequest(http.MethodPost, "/api/generate-hairstyle", bodies[n])
			req.Header.Set("Content-Type", contentTypes[n])
			req.Header.Set("Authorization", "Bearer "+token)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			results <- rec.Code
		}(i)
	}

	wg.Wait()
	close(results)

	succeeded := 0
	rejected := 0

	for code := range results {
		switch code {
		case http.StatusOK:
			succeeded++
		case http.StatusPaymentRequired:
			rejected++
		default:
			t.Fatalf("unexpected status code %d", code)
		}
	}

	// with balance 1, exactly one concurrent attempt may win
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, rejected)
	assert.GreaterOrEqual(t, ledger.balance, 0, "balance must never go negative")
}
