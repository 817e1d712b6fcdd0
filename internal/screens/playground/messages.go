package playground

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

const (
	copyFlashDuration = 2 * time.Second
	hintPollInterval  = 150 * time.Millisecond
)

// copyFlashDoneMsg clears the "copied" label.
type copyFlashDoneMsg struct{}

// hintPollMsg asks the screen to check for a finished tutor hint.
type hintPollMsg struct{}

func copyFlashCmd() tea.Cmd {
	return tea.Tick(copyFlashDuration, func(time.Time) tea.Msg {
		return copyFlashDoneMsg{}
	})
}

func hintPollCmd() tea.Cmd {
	return tea.Tick(hintPollInterval, func(time.Time) tea.Msg {
		return hintPollMsg{}
	})
}
