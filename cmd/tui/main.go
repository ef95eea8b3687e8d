package main

import (
	"fmt"
	"os"

	"codeberg.org/hairswap/server/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
)

const maxImageSize = 10 << 20 // matches the server-side upload limit

func main() {
	if err := godotenv.Load(); err != nil {
		_ = err // optional .env file
	}

	endpoint := os.Getenv("HAIRSWAP_API_ENDPOINT")
	if endpoint == "" {
		endpoint = "http://localhost:8080"
	}

	token := os.Getenv("HAIRSWAP_TOKEN")
	if token == "" {
		fmt.Println("HAIRSWAP_TOKEN must be set (sign in via /api/v1/auth/google to get one)")
		os.Exit(1)
	}

	// the app context is built here and torn down with the program;
	// the model never reaches for globals
	ctx := &tui.AppContext{
		Endpoint:     endpoint,
		Token:        token,
		MaxImageSize: maxImageSize,
	}

	app := tui.NewApp(ctx)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("error running hairswap: %v\n", err)
		os.Exit(1)
	}
}
