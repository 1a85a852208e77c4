package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

func (m mainLoopModel) updateDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	recipe, ok := m.current()
	if !ok {
		m.mode = modeList
		return m, nil
	}

	switch keyMsg.String() {
	case "esc", "q":
		m.mode = modeList
	case "e":
		if !m.ownRecipe(recipe) {
			m.status = "Only your own recipes can be edited"
			return m, nil
		}
		m.startForm(&recipe)
		return m, m.form.initCmd()
	case "ctrl+d":
		if !m.ownRecipe(recipe) {
			m.status = "Only your own recipes can be deleted"
			return m, nil
		}
		m.mode = modeList
		return m, m.cmdDelete(recipe.ID)
	case "c":
		if len(recipe.Ingredients) == 0 {
			m.status = "Nothing to copy"
			return m, nil
		}
		if err := clipboard.WriteAll(strings.Join(recipe.Ingredients, "\n")); err != nil {
			m.errMsg = fmt.Sprintf("copy failed: %v", err)
			return m, nil
		}
		m.status = "Ingredients copied"
	}

	return m, nil
}

func (m mainLoopModel) viewDetail() string {
	recipe, ok := m.current()
	if !ok {
		return m.viewList()
	}

	var b strings.Builder

	meta := joinNonEmpty(" │ ",
		"by "+valueOrDash(recipe.AuthorName),
		recipe.Cuisine,
		formatCookTime(recipe.CookTimeMinutes),
	)
	if recipe.Servings > 0 {
		meta = joinNonEmpty(" │ ", meta, fmt.Sprintf("serves %d", recipe.Servings))
	}
	b.WriteString(meta)
	b.WriteString("\n\n")

	if recipe.Description != "" {
		b.WriteString(recipe.Description)
		b.WriteString("\n\n")
	}

	b.WriteString("Ingredients\n")
	if len(recipe.Ingredients) == 0 {
		b.WriteString("  -\n")
	}
	for _, ingredient := range recipe.Ingredients {
		b.WriteString("  • ")
		b.WriteString(ingredient)
		b.WriteString("\n")
	}

	b.WriteString("\nSteps\n")
	if len(recipe.Steps) == 0 {
		b.WriteString("  -\n")
	}
	for i, step := range recipe.Steps {
		b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, step))
	}

	if len(recipe.Tags) > 0 {
		b.WriteString("\nTags: ")
		b.WriteString(strings.Join(recipe.Tags, ", "))
		b.WriteString("\n")
	}
	if recipe.ImageURL != "" {
		b.WriteString("Photo: ")
		b.WriteString(recipe.ImageURL)
		b.WriteString("\n")
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

	return renderPage(
		strings.ToUpper(fitText(recipe.Title, 50)),
		strings.TrimRight(b.String(), "\n"),
		"esc: back │ c: copy ingredients │ e: edit │ ctrl+d: delete",
	)
}
