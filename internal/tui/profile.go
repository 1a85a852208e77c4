package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/recipe-keeper/models"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	profileFieldDisplayName = iota
	profileFieldFirstName
	profileFieldLastName
	profileFieldBio
	profileFieldAvatarPath
	profileFieldCount
)

type profileForm struct {
	displayName textinput.Model
	firstName   textinput.Model
	lastName    textinput.Model
	avatarPath  textinput.Model
	bio         textarea.Model

	focus  int
	saving bool
	errMsg string
}

func (m *mainLoopModel) startProfile() {
	user, _ := m.services.SessionService.CurrentUser()

	f := profileForm{}

	newInput := func(placeholder, value string) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = 120
		in.Width = 40
		in.SetValue(value)
		return in
	}

	f.displayName = newInput("display name", user.DisplayName)
	f.firstName = newInput("first name", user.FirstName)
	f.lastName = newInput("last name", user.LastName)
	f.avatarPath = newInput("path to a new avatar (optional)", "")

	f.bio = textarea.New()
	f.bio.Placeholder = "a few words about your cooking"
	f.bio.SetWidth(42)
	f.bio.SetHeight(3)
	f.bio.ShowLineNumbers = false
	f.bio.SetValue(user.Bio)

	f.displayName.Focus()
	m.profile = f
	m.mode = modeProfile
	m.status = ""
	m.errMsg = ""
}

func (f *profileForm) initCmd() tea.Cmd {
	return textinput.Blink
}

func (m mainLoopModel) updateProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.mode = modeList
			return m, nil
		case "tab":
			m.profile.focusField((m.profile.focus + 1) % profileFieldCount)
			return m, nil
		case "shift+tab":
			m.profile.focusField((m.profile.focus - 1 + profileFieldCount) % profileFieldCount)
			return m, nil
		case "ctrl+s":
			if m.profile.saving {
				return m, nil
			}
			update, avatarPath, validationErr := m.profile.collect(m.currentUserView())
			if validationErr != "" {
				m.profile.errMsg = validationErr
				return m, nil
			}
			m.profile.errMsg = ""
			m.profile.saving = true
			return m, m.cmdSaveProfile(update, avatarPath)
		}
	}

	var cmd tea.Cmd
	switch m.profile.focus {
	case profileFieldDisplayName:
		m.profile.displayName, cmd = m.profile.displayName.Update(msg)
	case profileFieldFirstName:
		m.profile.firstName, cmd = m.profile.firstName.Update(msg)
	case profileFieldLastName:
		m.profile.lastName, cmd = m.profile.lastName.Update(msg)
	case profileFieldBio:
		m.profile.bio, cmd = m.profile.bio.Update(msg)
	case profileFieldAvatarPath:
		m.profile.avatarPath, cmd = m.profile.avatarPath.Update(msg)
	}
	return m, cmd
}

func (f *profileForm) focusField(next int) {
	f.displayName.Blur()
	f.firstName.Blur()
	f.lastName.Blur()
	f.bio.Blur()
	f.avatarPath.Blur()

	f.focus = next
	switch next {
	case profileFieldDisplayName:
		f.displayName.Focus()
	case profileFieldFirstName:
		f.firstName.Focus()
	case profileFieldLastName:
		f.lastName.Focus()
	case profileFieldBio:
		f.bio.Focus()
	case profileFieldAvatarPath:
		f.avatarPath.Focus()
	}
}

// collect builds a partial update containing only the fields that actually
// changed, so untouched fields keep their server-side values.
func (f *profileForm) collect(current models.UserView) (models.ProfileUpdate, string, string) {
	update := models.ProfileUpdate{}

	setIfChanged := func(dst **string, value, prior string) {
		value = strings.TrimSpace(value)
		if value != prior {
			v := value
			*dst = &v
		}
	}

	setIfChanged(&update.DisplayName, f.displayName.Value(), current.DisplayName)
	setIfChanged(&update.FirstName, f.firstName.Value(), current.FirstName)
	setIfChanged(&update.LastName, f.lastName.Value(), current.LastName)
	setIfChanged(&update.Bio, f.bio.Value(), current.Bio)

	if update.DisplayName != nil && *update.DisplayName == "" {
		return models.ProfileUpdate{}, "", "Display name cannot be empty"
	}

	avatarPath := strings.TrimSpace(f.avatarPath.Value())
	if avatarPath != "" {
		if _, err := os.Stat(avatarPath); err != nil {
			return models.ProfileUpdate{}, "", "Avatar file not found"
		}
	}

	return update, avatarPath, ""
}

func (m mainLoopModel) currentUserView() models.UserView {
	user, _ := m.services.SessionService.CurrentUser()
	return user
}

func (m mainLoopModel) viewProfile() string {
	user := m.currentUserView()

	var b strings.Builder
	b.WriteString(fmt.Sprintf("@%s │ %s\n", valueOrDash(user.Username), valueOrDash(user.Email)))
	b.WriteString(fmt.Sprintf("%d recipes │ %d followers │ %d following\n\n",
		user.RecipesCount, user.FollowersCount, user.FollowingCount))

	b.WriteString("Display name: [" + m.profile.displayName.View() + "]\n")
	b.WriteString("First name:   [" + m.profile.firstName.View() + "]\n")
	b.WriteString("Last name:    [" + m.profile.lastName.View() + "]\n")
	b.WriteString("Bio:\n" + m.profile.bio.View() + "\n")
	b.WriteString("New avatar:   [" + m.profile.avatarPath.View() + "]\n")

	if m.profile.saving {
		b.WriteString("\n[Saving...]\n")
	}
	if m.profile.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.profile.errMsg))
		b.WriteString("\n")
	}

	return renderPage("MY PROFILE", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ ctrl+s: save")
}

func (m mainLoopModel) cmdSaveProfile(update models.ProfileUpdate, avatarPath string) tea.Cmd {
	ctx := m.ctx
	sessions := m.services.SessionService
	uploads := m.services.UploadService

	return func() tea.Msg {
		if avatarPath != "" {
			data, err := os.ReadFile(avatarPath)
			if err != nil {
				return profileSavedMsg{err: err}
			}
			url, err := uploads.UploadProfileImage(ctx, filepath.Base(avatarPath), contentTypeFor(avatarPath), data)
			if err != nil {
				return profileSavedMsg{err: err}
			}
			update.ProfileImage = &url
		}

		_, err := sessions.UpdateProfile(ctx, update)
		return profileSavedMsg{err: err}
	}
}
