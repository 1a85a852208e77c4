package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/recipe-keeper/models"
)

// NavigateTo switches the router to another page. An optional Payload is
// delivered to the target page right after the switch.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// AuthResult finishes a login or signup attempt. A nil Err ends the auth flow.
type AuthResult struct {
	Err error
}

type feedLoadedMsg struct {
	recipes []models.Recipe
	mine    bool
	err     error
}

type searchDoneMsg struct {
	result models.SearchResponse
	err    error
}

type recipeSavedMsg struct {
	err error
}

type recipeDeletedMsg struct {
	err error
}

type profileSavedMsg struct {
	err error
}
