package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-member-auth/internal/adapter"
	"github.com/MKhiriev/go-member-auth/models"
)

const productNameWidth = 24

// HomeModel shows the signed-in principal and the product catalog.
type HomeModel struct {
	ctx    context.Context
	server adapter.ServerAdapter

	// copyToClipboard receives the bearer token on "c".
	copyToClipboard func(string) error

	principal models.Principal
	page      models.MainPage
	loading   bool
	status    string
	errMsg    string
}

func NewHomeModel(ctx context.Context, server adapter.ServerAdapter, copyToClipboard func(string) error) *HomeModel {
	return &HomeModel{
		ctx:             ctx,
		server:          server,
		copyToClipboard: copyToClipboard,
	}
}

func (m *HomeModel) Init() tea.Cmd {
	return nil
}

func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoginResult:
		m.principal = msg.Principal
		m.page = models.MainPage{}
		m.status = ""
		m.errMsg = ""
		return m, m.cmdLoad()
	case mainPageLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.page = msg.page
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			m.status = ""
			return m, nil
		}
		m.status = "Token copied to clipboard"
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.refresh):
			if m.loading {
				return m, nil
			}
			return m, m.cmdLoad()
		case key.Matches(msg, keys.copy):
			return m, m.cmdCopyToken()
		case key.Matches(msg, keys.logout):
			m.server.SetToken("")
			m.principal = models.Principal{}
			m.page = models.MainPage{}
			m.status = ""
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageLogin, Payload: loggedOutMsg{}} }
		}
	}

	return m, nil
}

func (m *HomeModel) View() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Signed in as %s\n", m.principal.LoginName)
	if len(m.principal.Authorities) == 0 {
		b.WriteString("Authorities: -\n")
	} else {
		fmt.Fprintf(&b, "Authorities: %s\n", strings.Join(m.principal.Authorities, ", "))
	}

	b.WriteString("\nProducts\n")
	switch {
	case m.loading:
		b.WriteString("  loading...\n")
	case len(m.page.Products) == 0:
		b.WriteString("  -\n")
	default:
		for _, p := range m.page.Products {
			fmt.Fprintf(&b, "  %-*s %8.2f %s\n", productNameWidth, fitText(p.Name, productNameWidth), p.Price, p.Currency)
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("HOME", strings.TrimRight(b.String(), "\n"), "r: refresh │ c: copy token │ l: log out │ q: quit")
}

func (m *HomeModel) cmdLoad() tea.Cmd {
	m.loading = true
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		page, err := server.MainPage(ctx)
		return mainPageLoadedMsg{page: page, err: err}
	}
}

func (m *HomeModel) cmdCopyToken() tea.Cmd {
	token := m.server.Token()
	copyToClipboard := m.copyToClipboard

	return func() tea.Msg {
		if token == "" {
			return copiedMsg{err: adapter.ErrNotLoggedIn}
		}
		if err := copyToClipboard(token); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}
