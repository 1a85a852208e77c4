package tui

import (
	"mime"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/MKhiriev/recipe-keeper/models"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	formFieldTitle = iota
	formFieldDescription
	formFieldIngredients
	formFieldSteps
	formFieldServings
	formFieldCookTime
	formFieldCuisine
	formFieldTags
	formFieldImagePath
	formFieldCount
)

// recipeForm drives both the create and the edit screen; id is empty when
// creating.
type recipeForm struct {
	id string

	title     textinput.Model
	servings  textinput.Model
	cookTime  textinput.Model
	cuisine   textinput.Model
	tags      textinput.Model
	imagePath textinput.Model

	description textarea.Model
	ingredients textarea.Model
	steps       textarea.Model

	focus  int
	saving bool
	errMsg string
}

func (m *mainLoopModel) startForm(recipe *models.Recipe) {
	f := recipeForm{}

	newInput := func(placeholder string) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = 200
		in.Width = 44
		return in
	}
	newArea := func(placeholder string, height int) textarea.Model {
		ta := textarea.New()
		ta.Placeholder = placeholder
		ta.SetWidth(46)
		ta.SetHeight(height)
		ta.ShowLineNumbers = false
		return ta
	}

	f.title = newInput("title")
	f.servings = newInput("servings (number)")
	f.cookTime = newInput("cook time in minutes (number)")
	f.cuisine = newInput("cuisine, e.g. Italian")
	f.tags = newInput("tags, comma separated")
	f.imagePath = newInput("path to a cover photo (optional)")
	f.description = newArea("short description", 3)
	f.ingredients = newArea("one ingredient per line", 5)
	f.steps = newArea("one step per line", 5)

	if recipe != nil {
		f.id = recipe.ID
		f.title.SetValue(recipe.Title)
		f.description.SetValue(recipe.Description)
		f.ingredients.SetValue(strings.Join(recipe.Ingredients, "\n"))
		f.steps.SetValue(strings.Join(recipe.Steps, "\n"))
		if recipe.Servings > 0 {
			f.servings.SetValue(strconv.Itoa(recipe.Servings))
		}
		if recipe.CookTimeMinutes > 0 {
			f.cookTime.SetValue(strconv.Itoa(recipe.CookTimeMinutes))
		}
		f.cuisine.SetValue(recipe.Cuisine)
		f.tags.SetValue(strings.Join(recipe.Tags, ", "))
	}

	f.title.Focus()
	m.form = f
	m.mode = modeForm
	m.status = ""
	m.errMsg = ""
}

func (f *recipeForm) initCmd() tea.Cmd {
	return textinput.Blink
}

func (m mainLoopModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.mode = modeList
			return m, nil
		case "tab":
			m.form.focusField((m.form.focus + 1) % formFieldCount)
			return m, nil
		case "shift+tab":
			m.form.focusField((m.form.focus - 1 + formFieldCount) % formFieldCount)
			return m, nil
		case "ctrl+s":
			if m.form.saving {
				return m, nil
			}
			input, imagePath, validationErr := m.form.collect()
			if validationErr != "" {
				m.form.errMsg = validationErr
				return m, nil
			}
			m.form.errMsg = ""
			m.form.saving = true
			return m, m.cmdSaveRecipe(m.form.id, input, imagePath)
		}
	}

	var cmd tea.Cmd
	switch m.form.focus {
	case formFieldTitle:
		m.form.title, cmd = m.form.title.Update(msg)
	case formFieldDescription:
		m.form.description, cmd = m.form.description.Update(msg)
	case formFieldIngredients:
		m.form.ingredients, cmd = m.form.ingredients.Update(msg)
	case formFieldSteps:
		m.form.steps, cmd = m.form.steps.Update(msg)
	case formFieldServings:
		m.form.servings, cmd = m.form.servings.Update(msg)
	case formFieldCookTime:
		m.form.cookTime, cmd = m.form.cookTime.Update(msg)
	case formFieldCuisine:
		m.form.cuisine, cmd = m.form.cuisine.Update(msg)
	case formFieldTags:
		m.form.tags, cmd = m.form.tags.Update(msg)
	case formFieldImagePath:
		m.form.imagePath, cmd = m.form.imagePath.Update(msg)
	}
	return m, cmd
}

func (f *recipeForm) focusField(next int) {
	f.blurAll()
	f.focus = next
	switch next {
	case formFieldTitle:
		f.title.Focus()
	case formFieldDescription:
		f.description.Focus()
	case formFieldIngredients:
		f.ingredients.Focus()
	case formFieldSteps:
		f.steps.Focus()
	case formFieldServings:
		f.servings.Focus()
	case formFieldCookTime:
		f.cookTime.Focus()
	case formFieldCuisine:
		f.cuisine.Focus()
	case formFieldTags:
		f.tags.Focus()
	case formFieldImagePath:
		f.imagePath.Focus()
	}
}

func (f *recipeForm) blurAll() {
	f.title.Blur()
	f.description.Blur()
	f.ingredients.Blur()
	f.steps.Blur()
	f.servings.Blur()
	f.cookTime.Blur()
	f.cuisine.Blur()
	f.tags.Blur()
	f.imagePath.Blur()
}

// collect validates the widgets and assembles the submission payload plus the
// optional local image path.
func (f *recipeForm) collect() (models.RecipeInput, string, string) {
	title := strings.TrimSpace(f.title.Value())
	if title == "" {
		return models.RecipeInput{}, "", "Title is required"
	}

	servings, err := parseOptionalInt(f.servings.Value())
	if err != nil {
		return models.RecipeInput{}, "", "Servings must be a number"
	}
	cookTime, err := parseOptionalInt(f.cookTime.Value())
	if err != nil {
		return models.RecipeInput{}, "", "Cook time must be a number of minutes"
	}

	imagePath := strings.TrimSpace(f.imagePath.Value())
	if imagePath != "" {
		if _, statErr := os.Stat(imagePath); statErr != nil {
			return models.RecipeInput{}, "", "Cover photo file not found"
		}
	}

	return models.RecipeInput{
		Title:           title,
		Description:     strings.TrimSpace(f.description.Value()),
		Ingredients:     splitLines(f.ingredients.Value()),
		Steps:           splitLines(f.steps.Value()),
		Servings:        servings,
		CookTimeMinutes: cookTime,
		Cuisine:         strings.TrimSpace(f.cuisine.Value()),
		Tags:            splitComma(f.tags.Value()),
	}, imagePath, ""
}

func (m mainLoopModel) viewForm() string {
	title := "NEW RECIPE"
	if m.form.id != "" {
		title = "EDIT RECIPE"
	}

	var b strings.Builder
	b.WriteString("Title:       [" + m.form.title.View() + "]\n\n")
	b.WriteString("Description:\n" + m.form.description.View() + "\n\n")
	b.WriteString("Ingredients:\n" + m.form.ingredients.View() + "\n\n")
	b.WriteString("Steps:\n" + m.form.steps.View() + "\n\n")
	b.WriteString("Servings:    [" + m.form.servings.View() + "]\n")
	b.WriteString("Cook time:   [" + m.form.cookTime.View() + "]\n")
	b.WriteString("Cuisine:     [" + m.form.cuisine.View() + "]\n")
	b.WriteString("Tags:        [" + m.form.tags.View() + "]\n")
	b.WriteString("Cover photo: [" + m.form.imagePath.View() + "]\n")

	if m.form.saving {
		b.WriteString("\n[Saving...]\n")
	}
	if m.form.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.form.errMsg))
		b.WriteString("\n")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc: cancel │ tab: next field │ ctrl+s: save")
}

func (m mainLoopModel) cmdSaveRecipe(id string, input models.RecipeInput, imagePath string) tea.Cmd {
	ctx := m.ctx
	recipes := m.services.RecipeService
	uploads := m.services.UploadService

	return func() tea.Msg {
		if imagePath != "" {
			data, err := os.ReadFile(imagePath)
			if err != nil {
				return recipeSavedMsg{err: err}
			}
			url, err := uploads.UploadRecipeImage(ctx, filepath.Base(imagePath), contentTypeFor(imagePath), data)
			if err != nil {
				return recipeSavedMsg{err: err}
			}
			input.ImageURL = url
		}

		var err error
		if id == "" {
			_, err = recipes.Create(ctx, input)
		} else {
			_, err = recipes.Update(ctx, id, input)
		}
		return recipeSavedMsg{err: err}
	}
}

func contentTypeFor(path string) string {
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

func parseOptionalInt(v string) (int, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}

func splitLines(v string) []string {
	lines := strings.Split(v, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			kept = append(kept, trimmed)
		}
	}
	return kept
}

func splitComma(v string) []string {
	parts := strings.Split(v, ",")
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			kept = append(kept, trimmed)
		}
	}
	return kept
}
