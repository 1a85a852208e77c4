// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/recipe-keeper/internal/service"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginModel is the Bubble Tea model for the sign-in screen. It renders two
// text inputs (email or username, and password) and dispatches an async login
// command on form submission. On success an [AuthResult] message is produced
// and handled by [RootModel] to finish the authentication flow.
type LoginModel struct {
	ctx      context.Context
	sessions service.ClientSessionService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewLoginModel creates a [LoginModel] with pre-configured identifier and
// password inputs. The identifier field receives focus immediately; the
// password field uses masked echo.
func NewLoginModel(ctx context.Context, sessions service.ClientSessionService) *LoginModel {
	identifierInput := textinput.New()
	identifierInput.Placeholder = "email or username"
	identifierInput.CharLimit = 254
	identifierInput.Width = 40
	identifierInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &LoginModel{
		ctx:      ctx,
		sessions: sessions,
		inputs:   []textinput.Model{identifierInput, passwordInput},
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [AuthResult]  — clears submitting state; on error, populates errMsg.
//   - esc           — cancels and navigates back to the menu.
//   - tab/shift+tab — moves focus between inputs.
//   - enter         — validates inputs and dispatches the async login command.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(AuthResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeConnectivityError(result.Err)
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			identifier := strings.TrimSpace(m.inputs[0].Value())
			pass := m.inputs[1].Value()
			if identifier == "" || pass == "" {
				m.errMsg = "Both fields are required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(identifier, pass)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("Field    │ Value\n")
	b.WriteString("─────────┼────────────────────────────────────────────\n")
	b.WriteString("Account  │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("SIGN IN", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *LoginModel) cmdLogin(identifier, pass string) tea.Cmd {
	ctx := m.ctx
	sessions := m.sessions

	return func() tea.Msg {
		return AuthResult{Err: sessions.Login(ctx, identifier, pass)}
	}
}

func (m *LoginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *LoginModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
