// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/recipe-keeper/internal/service"
	"github.com/MKhiriev/recipe-keeper/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	regFieldEmail = iota
	regFieldPassword
	regFieldUsername
	regFieldFirstName
	regFieldLastName
	regFieldCount
)

// RegisterModel is the Bubble Tea model for the registration screen. A
// successful signup also establishes a session, so it finishes the auth flow
// with an [AuthResult] just like the login screen.
type RegisterModel struct {
	ctx      context.Context
	sessions service.ClientSessionService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, sessions service.ClientSessionService) *RegisterModel {
	inputs := make([]textinput.Model, regFieldCount)
	placeholders := [regFieldCount]string{
		"email",
		"password (8+ characters)",
		"username",
		"first name",
		"last name",
	}

	for i := range inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 254
		in.Width = 40
		inputs[i] = in
	}
	inputs[regFieldPassword].EchoMode = textinput.EchoPassword
	inputs[regFieldPassword].EchoCharacter = '*'
	inputs[regFieldEmail].Focus()

	return &RegisterModel{
		ctx:      ctx,
		sessions: sessions,
		inputs:   inputs,
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
		case "tab", "down":
			m.focusNext()
			return m, nil
		case "shift+tab", "up":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			input, validationErr := m.collectInput()
			if validationErr != "" {
				m.errMsg = validationErr
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSignUp(input)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *RegisterModel) View() string {
	labels := [regFieldCount]string{"Email", "Password", "Username", "First name", "Last name"}

	var b strings.Builder
	b.WriteString("Field      │ Value\n")
	b.WriteString("───────────┼──────────────────────────────────────────\n")
	for i, in := range m.inputs {
		b.WriteString(padLabel(labels[i]))
		b.WriteString("│ [")
		b.WriteString(in.View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Creating account...]\n")
	} else {
		b.WriteString("\n[Create account]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("CREATE ACCOUNT", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) collectInput() (models.SignUpInput, string) {
	email := strings.TrimSpace(m.inputs[regFieldEmail].Value())
	password := m.inputs[regFieldPassword].Value()
	username := strings.TrimSpace(m.inputs[regFieldUsername].Value())

	switch {
	case email == "" || !strings.Contains(email, "@"):
		return models.SignUpInput{}, "A valid email is required"
	case len(password) < 8:
		return models.SignUpInput{}, "Password must be at least 8 characters"
	case username == "":
		return models.SignUpInput{}, "Username is required"
	}

	return models.SignUpInput{
		Email:     email,
		Password:  password,
		Username:  username,
		FirstName: strings.TrimSpace(m.inputs[regFieldFirstName].Value()),
		LastName:  strings.TrimSpace(m.inputs[regFieldLastName].Value()),
	}, ""
}

func (m *RegisterModel) cmdSignUp(input models.SignUpInput) tea.Cmd {
	ctx := m.ctx
	sessions := m.sessions

	return func() tea.Msg {
		return AuthResult{Err: sessions.SignUp(ctx, input)}
	}
}

func (m *RegisterModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func padLabel(label string) string {
	const width = 11
	if len(label) >= width {
		return label
	}
	return label + strings.Repeat(" ", width-len(label))
}
