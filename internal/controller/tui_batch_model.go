package controller

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// batchModel shows a spinner and a progress bar while a multi-barrel run
// is generating.
type batchModel struct {
	spinner     spinner.Model
	progressBar progress.Model
	total       int
	completed   int
	current     string
	finished    bool
}

func newBatchModel(total int) batchModel {
	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	spin := spinner.New(spinner.WithSpinner(spinner.Dot))
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	return batchModel{
		spinner:     spin,
		progressBar: prog,
		total:       total,
	}
}

func (b batchModel) Init() tea.Cmd {
	return b.spinner.Tick
}

func (b batchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.progressBar.Width = msg.Width - 8
		if b.progressBar.Width < 20 {
			b.progressBar.Width = 20
		}

	case spinner.TickMsg:
		var cmd tea.Cmd

		b.spinner, cmd = b.spinner.Update(msg)

		return b, cmd

	case barrelDoneMsg:
		b.completed++
		b.current = msg.indexFile

	case batchDoneMsg:
		b.finished = true

		return b, tea.Quit
	}

	return b, nil
}

func (b batchModel) View() string {
	// The final frame is cleared; results are printed once the program exits.
	if b.finished {
		return ""
	}

	header := fmt.Sprintf("%s Generating barrels %s / %s",
		b.spinner.View(),
		infoStyle.Render(fmt.Sprintf("%d", b.completed)),
		infoStyle.Render(fmt.Sprintf("%d", b.total)),
	)

	lines := []string{header, b.progressBar.ViewAs(b.percent())}
	if b.current != "" {
		lines = append(lines, stepStyle.Render(b.current))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...) + "\n"
}

func (b batchModel) percent() float64 {
	if b.total <= 0 {
		return 0
	}

	if b.completed >= b.total {
		return 1
	}

	return float64(b.completed) / float64(b.total)
}
