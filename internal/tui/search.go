package tui

import (
	"strings"

	"github.com/MKhiriev/recipe-keeper/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	searchFieldQuery = iota
	searchFieldCuisine
	searchFieldTags
	searchFieldMaxTime
	searchFieldCount
)

type searchForm struct {
	inputs []textinput.Model
	focus  int
	errMsg string
}

func (m *mainLoopModel) startSearch() {
	inputs := make([]textinput.Model, searchFieldCount)
	placeholders := [searchFieldCount]string{
		"search text",
		"cuisine",
		"tags, comma separated",
		"max cook time in minutes",
	}
	for i := range inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 120
		in.Width = 40
		inputs[i] = in
	}
	inputs[searchFieldQuery].Focus()

	m.search = searchForm{inputs: inputs}
	m.mode = modeSearch
	m.status = ""
	m.errMsg = ""
}

func (f *searchForm) initCmd() tea.Cmd {
	return textinput.Blink
}

func (m mainLoopModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.mode = modeList
			return m, nil
		case "tab", "down":
			m.search.focusNext()
			return m, nil
		case "shift+tab", "up":
			m.search.focusPrev()
			return m, nil
		case "enter":
			query, validationErr := m.search.collect()
			if validationErr != "" {
				m.search.errMsg = validationErr
				return m, nil
			}
			m.search.errMsg = ""
			m.loading = true
			return m, m.cmdSearch(query)
		}
	}

	var cmd tea.Cmd
	m.search.inputs[m.search.focus], cmd = m.search.inputs[m.search.focus].Update(msg)
	return m, cmd
}

func (f *searchForm) collect() (models.SearchQuery, string) {
	maxTime, err := parseOptionalInt(f.inputs[searchFieldMaxTime].Value())
	if err != nil {
		return models.SearchQuery{}, "Max cook time must be a number of minutes"
	}

	return models.SearchQuery{
		Query:              strings.TrimSpace(f.inputs[searchFieldQuery].Value()),
		Cuisine:            strings.TrimSpace(f.inputs[searchFieldCuisine].Value()),
		Tags:               splitComma(f.inputs[searchFieldTags].Value()),
		MaxCookTimeMinutes: maxTime,
		Limit:              feedPageSize,
	}, ""
}

func (f *searchForm) focusNext() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *searchForm) focusPrev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (m mainLoopModel) viewSearch() string {
	labels := [searchFieldCount]string{"Text", "Cuisine", "Tags", "Max time"}

	var b strings.Builder
	b.WriteString("Field    │ Value\n")
	b.WriteString("─────────┼────────────────────────────────────────────\n")
	for i, in := range m.search.inputs {
		b.WriteString(padSearchLabel(labels[i]))
		b.WriteString("│ [")
		b.WriteString(in.View())
		b.WriteString("]\n")
	}

	if m.loading {
		b.WriteString("\n[Searching...]\n")
	}
	if m.search.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.search.errMsg))
		b.WriteString("\n")
	}

	return renderPage("SEARCH RECIPES", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: search")
}

func (m mainLoopModel) cmdSearch(query models.SearchQuery) tea.Cmd {
	ctx := m.ctx
	recipes := m.services.RecipeService

	return func() tea.Msg {
		result, err := recipes.Search(ctx, query)
		return searchDoneMsg{result: result, err: err}
	}
}

func padSearchLabel(label string) string {
	const width = 9
	if len(label) >= width {
		return label
	}
	return label + strings.Repeat(" ", width-len(label))
}
