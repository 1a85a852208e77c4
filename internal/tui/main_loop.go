package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/recipe-keeper/internal/service"
	"github.com/MKhiriev/recipe-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

const feedPageSize = 20

type uiMode int

const (
	modeList uiMode = iota
	modeDetail
	modeForm
	modeSearch
	modeProfile
)

type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices

	mode    uiMode
	recipes []models.Recipe
	idx     int
	page    int
	mine    bool
	total   int // search result count, -1 outside search results

	loading bool
	status  string
	errMsg  string

	form    recipeForm
	search  searchForm
	profile profileForm

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices) mainLoopModel {
	return mainLoopModel{
		ctx:      ctx,
		services: services,
		loading:  true,
		total:    -1,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoadFeed()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case feedLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeConnectivityError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.mine = msg.mine
		m.total = -1
		m.recipes = msg.recipes
		m.clampIdx()
		return m, nil

	case searchDoneMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeConnectivityError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.mode = modeList
		m.recipes = msg.result.Recipes
		m.total = msg.result.Total
		m.idx = 0
		m.status = fmt.Sprintf("%d match(es)", msg.result.Total)
		return m, nil

	case recipeSavedMsg:
		m.form.saving = false
		if msg.err != nil {
			m.form.errMsg = humanizeConnectivityError(msg.err)
			return m, nil
		}
		m.mode = modeList
		m.status = "Recipe saved"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdReload()

	case recipeDeletedMsg:
		if msg.err != nil {
			m.errMsg = humanizeConnectivityError(msg.err)
			return m, nil
		}
		m.status = "Recipe deleted"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdReload()

	case profileSavedMsg:
		m.profile.saving = false
		if msg.err != nil {
			m.profile.errMsg = humanizeConnectivityError(msg.err)
			return m, nil
		}
		m.mode = modeList
		m.status = "Profile updated"
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		switch m.mode {
		case modeForm:
			return m.updateForm(msg)
		case modeSearch:
			return m.updateSearch(msg)
		case modeProfile:
			return m.updateProfile(msg)
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case modeDetail:
		return m.updateDetail(keyMsg)
	case modeForm:
		return m.updateForm(msg)
	case modeSearch:
		return m.updateSearch(msg)
	case modeProfile:
		return m.updateProfile(msg)
	}

	return m.updateList(keyMsg)
}

func (m mainLoopModel) updateList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.recipes)-1 {
			m.idx++
		}
	case "right", "n":
		if m.searchResults() || m.mine || len(m.recipes) < feedPageSize {
			return m, nil
		}
		m.page++
		m.loading = true
		return m, m.cmdLoadFeed()
	case "left", "p":
		if m.searchResults() || m.mine || m.page == 0 {
			return m, nil
		}
		m.page--
		m.loading = true
		return m, m.cmdLoadFeed()
	case "m":
		m.loading = true
		m.status = ""
		if m.mine {
			return m, m.cmdLoadFeed()
		}
		return m, m.cmdLoadMine()
	case "r":
		m.loading = true
		m.status = ""
		return m, m.cmdReload()
	case "enter":
		if _, ok := m.current(); !ok {
			m.status = "No recipes"
			return m, nil
		}
		m.mode = modeDetail
	case "a":
		m.startForm(nil)
		return m, m.form.initCmd()
	case "e":
		recipe, ok := m.current()
		if !ok {
			m.status = "No recipes"
			return m, nil
		}
		if !m.ownRecipe(recipe) {
			m.status = "Only your own recipes can be edited"
			return m, nil
		}
		m.startForm(&recipe)
		return m, m.form.initCmd()
	case "ctrl+d":
		recipe, ok := m.current()
		if !ok {
			m.status = "No recipes"
			return m, nil
		}
		if !m.ownRecipe(recipe) {
			m.status = "Only your own recipes can be deleted"
			return m, nil
		}
		return m, m.cmdDelete(recipe.ID)
	case "/":
		m.startSearch()
		return m, m.search.initCmd()
	case "o":
		m.startProfile()
		return m, m.profile.initCmd()
	case "l":
		_ = m.services.SessionService.Logout(m.ctx)
		m.logout = true
		return m, tea.Quit
	}

	return m, nil
}

func (m mainLoopModel) View() string {
	switch m.mode {
	case modeDetail:
		return m.viewDetail()
	case modeForm:
		return m.viewForm()
	case modeSearch:
		return m.viewSearch()
	case modeProfile:
		return m.viewProfile()
	}
	return m.viewList()
}

func (m mainLoopModel) viewList() string {
	title := "RECIPE FEED"
	if m.mine {
		title = "MY RECIPES"
	} else if m.searchResults() {
		title = "SEARCH RESULTS"
	}

	var b strings.Builder

	if m.loading {
		b.WriteString("Loading...\n")
	} else if len(m.recipes) == 0 {
		b.WriteString("No recipes yet.\n")
	} else {
		b.WriteString("    Title                            │ Author          │ Time\n")
		b.WriteString("  ──────────────────────────────────┼─────────────────┼──────────\n")
		for i, recipe := range m.recipes {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("  %s %-32s │ %-15s │ %s\n",
				cursor,
				fitText(recipe.Title, 32),
				fitText(valueOrDash(recipe.AuthorName), 15),
				valueOrDash(formatCookTime(recipe.CookTimeMinutes)),
			))
		}
		if !m.mine && !m.searchResults() {
			b.WriteString(fmt.Sprintf("\npage %d\n", m.page+1))
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

	hotKeys := "enter: open │ a: new │ e: edit │ ctrl+d: delete │ /: search │ m: my recipes │ o: profile │ ←/→: page │ l: log out │ q: quit"
	if m.mine {
		hotKeys = "enter: open │ a: new │ e: edit │ ctrl+d: delete │ /: search │ m: feed │ o: profile │ l: log out │ q: quit"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *mainLoopModel) clampIdx() {
	if m.idx >= len(m.recipes) {
		m.idx = len(m.recipes) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m mainLoopModel) current() (models.Recipe, bool) {
	if m.idx < 0 || m.idx >= len(m.recipes) {
		return models.Recipe{}, false
	}
	return m.recipes[m.idx], true
}

func (m mainLoopModel) searchResults() bool {
	return m.total >= 0
}

func (m mainLoopModel) ownRecipe(recipe models.Recipe) bool {
	user, ok := m.services.SessionService.CurrentUser()
	return ok && user.UID == recipe.AuthorID
}

// ── commands ─────────────────────────────────────────────────────────────────

func (m mainLoopModel) cmdReload() tea.Cmd {
	if m.mine {
		return m.cmdLoadMine()
	}
	return m.cmdLoadFeed()
}

func (m mainLoopModel) cmdLoadFeed() tea.Cmd {
	ctx := m.ctx
	recipes := m.services.RecipeService
	offset := m.page * feedPageSize

	return func() tea.Msg {
		items, err := recipes.Feed(ctx, feedPageSize, offset)
		return feedLoadedMsg{recipes: items, mine: false, err: err}
	}
}

func (m mainLoopModel) cmdLoadMine() tea.Cmd {
	ctx := m.ctx
	recipes := m.services.RecipeService

	return func() tea.Msg {
		items, err := recipes.Mine(ctx)
		return feedLoadedMsg{recipes: items, mine: true, err: err}
	}
}

func (m mainLoopModel) cmdDelete(id string) tea.Cmd {
	ctx := m.ctx
	recipes := m.services.RecipeService

	return func() tea.Msg {
		return recipeDeletedMsg{err: recipes.Delete(ctx, id)}
	}
}
