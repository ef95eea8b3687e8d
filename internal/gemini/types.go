package gemini

// Image is an uploaded binary image and its MIME type
type Image struct {
	Data     []byte
	MimeType string
}

// holds configuration for the Gemini image client
type Config struct {
	APIKey string
	Model  string // e.g., "gemini-2.5-flash-image"
}

// request payload for the generateContent endpoint

type generateRequest struct {
	Contents []requestContent `json:"contents"`
}

type requestContent struct {
	Parts []requestPart `json:"parts"`
}

type requestPart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inlineData,omitempty"`
}

// InlineData carries a base64-encoded image payload
type InlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

// GenerateResponse is the model's response envelope.
//
// The payload is not strictly guaranteed field-for-field: candidates may
// appear at the top level or nested one level under "response", depending
// on which shape the upstream serializes. Both are modeled; extraction
// probes them in order.
type GenerateResponse struct {
	Candidates []Candidate       `json:"candidates"`
	Response   *ResponseEnvelope `json:"response,omitempty"`
}

// ResponseEnvelope is the nested response shape
type ResponseEnvelope struct {
	Candidates []Candidate `json:"candidates"`
}

// Candidate is one generated alternative
type Candidate struct {
	Content      Content `json:"content"`
	FinishReason string  `json:"finishReason,omitempty"`
}

// Content holds the candidate's parts
type Content struct {
	Parts []Part `json:"parts"`
	Role  string `json:"role,omitempty"`
}

// Part is a single content part, either text or inline image data
type Part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inlineData,omitempty"`
}
