package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-member-auth/models"
)

// NavigateTo switches the root model to Page. Payload, if set, is delivered
// to the new page right after its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult is produced by the login command.
type LoginResult struct {
	Principal models.Principal
	Err       error
}

type mainPageLoadedMsg struct {
	page models.MainPage
	err  error
}

type copiedMsg struct {
	err error
}

type loggedOutMsg struct{}
