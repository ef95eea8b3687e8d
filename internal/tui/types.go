package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
)

// represents the current state of the client workflow
type AppState int

const (
	StateIdle AppState = iota
	StateImagesSelected
	StateGenerating
	StateSucceeded
	StateFailed
)

// AppContext holds the per-session client state (endpoint, credential,
// limits). It is constructed at startup and passed into the model
// explicitly; nothing in this package keeps module-level session state.
type AppContext struct {
	Endpoint     string
	Token        string
	MaxImageSize int64
}

// main TUI application model
type Model struct {
	ctx    *AppContext
	client *Client
	state  AppState

	faceInput      textinput.Model
	hairstyleInput textinput.Model
	focusIndex     int

	facePath      string
	hairstylePath string

	spinner spinner.Model

	resultData []byte
	resultMime string
	savedPath  string
	showBefore bool

	errMsg string
	width  int
	height int
}

// sent when generation completes successfully
type GenerateResultMsg struct {
	ImageData []byte
	MimeType  string
}

// sent when generation fails
type GenerateErrorMsg struct {
	Err error
}

// sent when the result has been written to disk
type SavedMsg struct {
	Path string
	Err  error
}
