package tui

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// runs a generation request off the UI loop
func generateCmd(client *Client, facePath, hairstylePath string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), clientRequestTimeout)
		defer cancel()

		result, err := client.Generate(ctx, facePath, hairstylePath)
		if err != nil {
			return GenerateErrorMsg{Err: err}
		}

		return GenerateResultMsg{
			ImageData: result.ImageData,
			MimeType:  result.MimeType,
		}
	}
}

// writes the result bytes to disk, no server round-trip
func saveCmd(data []byte, mimeType string) tea.Cmd {
	return func() tea.Msg {
		path := fmt.Sprintf("hairswap-%d%s", time.Now().Unix(), extensionForMime(mimeType))

		if err := os.WriteFile(path, data, 0o644); err != nil {
			return SavedMsg{Err: err}
		}

		return SavedMsg{Path: path}
	}
}
