package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// creates the client workflow model for the given app context
func NewApp(ctx *AppContext) *Model {
	faceInput := textinput.New()
	faceInput.Placeholder = "path/to/face.jpg"
	faceInput.Focus()
	faceInput.CharLimit = 512

	hairstyleInput := textinput.New()
	hairstyleInput.Placeholder = "path/to/hairstyle.jpg"
	hairstyleInput.CharLimit = 512

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorWhite)

	return &Model{
		ctx:            ctx,
		client:         NewClient(ctx),
		state:          StateIdle,
		faceInput:      faceInput,
		hairstyleInput: hairstyleInput,
		spinner:        sp,
	}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.state == StateGenerating {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case GenerateResultMsg:
		m.state = StateSucceeded
		m.resultData = msg.ImageData
		m.resultMime = msg.MimeType
		m.savedPath = ""
		m.showBefore = false
		m.errMsg = ""
		return m, nil

	case GenerateErrorMsg:
		m.state = StateFailed
		m.errMsg = msg.Err.Error()
		return m, nil

	case SavedMsg:
		if msg.Err != nil {
			m.errMsg = fmt.Sprintf("failed to save: %v", msg.Err)
		} else {
			m.savedPath = msg.Path
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.state {
		case StateIdle:
			return m.updateSelection(msg)
		case StateImagesSelected:
			return m.updateSelected(msg)
		case StateSucceeded, StateFailed:
			return m.updateResult(msg)
		}
	}

	return m, nil
}

// handles key input while the user is picking the two images
func (m *Model) updateSelection(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		m.toggleFocus()
		return m, nil

	case "enter":
		return m.confirmSelection()
	}

	var cmd tea.Cmd
	if m.focusIndex == 0 {
		m.faceInput, cmd = m.faceInput.Update(msg)
	} else {
		m.hairstyleInput, cmd = m.hairstyleInput.Update(msg)
	}

	return m, cmd
}

func (m *Model) toggleFocus() {
	if m.focusIndex == 0 {
		m.focusIndex = 1
		m.faceInput.Blur()
		m.hairstyleInput.Focus()
	} else {
		m.focusIndex = 0
		m.hairstyleInput.Blur()
		m.faceInput.Focus()
	}
}

// validates the focused path; an invalid selection surfaces an error
// without blocking further attempts
func (m *Model) confirmSelection() (tea.Model, tea.Cmd) {
	if m.focusIndex == 0 {
		path := strings.TrimSpace(m.faceInput.Value())

		if err := validateImageFile(path, m.ctx.MaxImageSize); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}

		m.facePath = path
		m.errMsg = ""
		m.toggleFocus()

		return m, nil
	}

	path := strings.TrimSpace(m.hairstyleInput.Value())

	if err := validateImageFile(path, m.ctx.MaxImageSize); err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	m.hairstylePath = path
	m.errMsg = ""

	if m.facePath == "" {
		m.toggleFocus()
		return m, nil
	}

	m.state = StateImagesSelected
	return m, nil
}

func (m *Model) updateSelected(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "g":
		return m.startGeneration()

	case "e":
		m.state = StateIdle
		return m, nil
	}

	return m, nil
}

func (m *Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "r":
		// regenerate resubmits the same two images
		return m.startGeneration()

	case "s":
		if m.state == StateSucceeded {
			return m, saveCmd(m.resultData, m.resultMime)
		}

	case "c":
		// compare toggle, no re-fetch
		if m.state == StateSucceeded {
			m.showBefore = !m.showBefore
		}

	case "e":
		m.resultData = nil
		m.savedPath = ""
		m.errMsg = ""
		m.state = StateIdle
	}

	return m, nil
}

func (m *Model) startGeneration() (tea.Model, tea.Cmd) {
	m.state = StateGenerating
	m.errMsg = ""

	return m, tea.Batch(
		m.spinner.Tick,
		generateCmd(m.client, m.facePath, m.hairstylePath),
	)
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(logo)
	b.WriteString(titleStyle.Render("  hairstyle try-on"))
	b.WriteString("\n\n")

	switch m.state {
	case StateIdle:
		b.WriteString(m.selectionView())
	case StateImagesSelected:
		b.WriteString(m.selectedView())
	case StateGenerating:
		b.WriteString(fmt.Sprintf("  %s Generating hairstyle...\n", m.spinner.View()))
		b.WriteString(statusStyle.Render("  this can take a while, the model runs one attempt"))
		b.WriteString("\n")
	case StateSucceeded:
		b.WriteString(m.resultView())
	case StateFailed:
		b.WriteString(errorStyle.Render("  generation failed"))
		b.WriteString("\n")
		b.WriteString(statusStyle.Render("  " + m.errMsg))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("  r retry · e new images · ctrl+c quit"))
		b.WriteString("\n")
	}

	if m.errMsg != "" && m.state != StateFailed {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("  " + m.errMsg))
		b.WriteString("\n")
	}

	return b.String()
}

func (m *Model) selectionView() string {
	var b strings.Builder

	faceLabel := labelStyle
	hairstyleLabel := labelStyle

	if m.focusIndex == 0 {
		faceLabel = labelFocusedStyle
	} else {
		hairstyleLabel = labelFocusedStyle
	}

	b.WriteString(faceLabel.Render("  face photo"))
	b.WriteString("\n  " + m.faceInput.View() + "\n\n")
	b.WriteString(hairstyleLabel.Render("  hairstyle photo"))
	b.WriteString("\n  " + m.hairstyleInput.View() + "\n")
	b.WriteString(helpStyle.Render("  enter confirm · tab switch field · ctrl+c quit"))
	b.WriteString("\n")

	return b.String()
}

func (m *Model) selectedView() string {
	var b strings.Builder

	b.WriteString(labelStyle.Render("  face:      ") + m.facePath + "\n")
	b.WriteString(labelStyle.Render("  hairstyle: ") + m.hairstylePath + "\n")
	b.WriteString(helpStyle.Render("  enter generate · e edit selection · ctrl+c quit"))
	b.WriteString("\n")

	return b.String()
}

func (m *Model) resultView() string {
	var b strings.Builder

	b.WriteString(successStyle.Render("  Hairstyle generated!"))
	b.WriteString("\n\n")

	var panel string

	if m.showBefore {
		info, _ := os.Stat(m.facePath)

		size := int64(0)
		if info != nil {
			size = info.Size()
		}

		panel = fmt.Sprintf("before\n%s\n%d bytes", m.facePath, size)
	} else {
		panel = fmt.Sprintf("after\n%s\n%d bytes", m.resultMime, len(m.resultData))

		if m.savedPath != "" {
			panel += "\nsaved to " + m.savedPath
		}
	}

	b.WriteString(panelStyle.Render(panel))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("  s save · c compare before/after · r regenerate · e new images · ctrl+c quit"))
	b.WriteString("\n")

	return b.String()
}
