package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-flashcards/internal/utils"
	"github.com/MKhiriev/go-flashcards/models"
)

const (
	fieldFront = iota
	fieldBack
	fieldFrontLang
	fieldBackLang
	fieldCategory
	fieldCount
)

var formTokens = utils.NewUUIDGenerator()

var fieldLabels = [fieldCount]string{"Front", "Back", "Front language", "Back language", "Category"}

type formModel struct {
	// token identifies this form instance; results for another token are
	// not applied to it.
	token     string
	editingID int64
	returnTo  screen

	inputs     []textinput.Model
	focus      int
	err        string
	submitting bool
}

func newFormModel(card *models.FlashCard, returnTo screen) formModel {
	suggestions := make([]string, 0, len(models.LanguageOptions))
	for _, opt := range models.LanguageOptions {
		suggestions = append(suggestions, opt.Label)
	}

	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].Prompt = ""
	}
	inputs[fieldFront].CharLimit = models.MaxSideLength
	inputs[fieldBack].CharLimit = models.MaxSideLength
	inputs[fieldCategory].CharLimit = models.MaxCategoryLength
	for _, i := range []int{fieldFrontLang, fieldBackLang} {
		inputs[i].ShowSuggestions = true
		inputs[i].SetSuggestions(suggestions)
		// tab moves between fields
		inputs[i].KeyMap.AcceptSuggestion = key.NewBinding(key.WithKeys("ctrl+f"))
	}

	f := formModel{token: formTokens.Generate(), returnTo: returnTo, inputs: inputs}

	if card == nil {
		f.inputs[fieldFrontLang].SetValue(models.DefaultFrontLang)
		f.inputs[fieldBackLang].SetValue(models.DefaultBackLang)
		return f
	}

	f.editingID = card.ID
	f.inputs[fieldFront].SetValue(card.Front)
	f.inputs[fieldBack].SetValue(card.Back)
	f.inputs[fieldFrontLang].SetValue(card.FrontLang)
	f.inputs[fieldBackLang].SetValue(card.BackLang)
	if card.Category != nil {
		f.inputs[fieldCategory].SetValue(*card.Category)
	}
	return f
}

func (f *formModel) focusCmd() tea.Cmd {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	return f.inputs[f.focus].Focus()
}

// draft reads the inputs. Language names matching the language table are
// written with their canonical label.
func (f formModel) draft() models.CardFields {
	lang := func(v string) string {
		if opt, ok := models.LookupLanguage(v); ok {
			return opt.Label
		}
		return v
	}

	return models.CardFields{
		Front:     f.inputs[fieldFront].Value(),
		Back:      f.inputs[fieldBack].Value(),
		FrontLang: lang(f.inputs[fieldFrontLang].Value()),
		BackLang:  lang(f.inputs[fieldBackLang].Value()),
		Category:  models.NewCategory(f.inputs[fieldCategory].Value()),
	}
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.current = m.form.returnTo
			m.form = formModel{}
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.form.focus = (m.form.focus + 1) % fieldCount
			return m, m.form.focusCmd()
		case key.Matches(keyMsg, keys.backtab):
			m.form.focus = (m.form.focus - 1 + fieldCount) % fieldCount
			return m, m.form.focusCmd()
		case key.Matches(keyMsg, keys.enter):
			if m.form.submitting {
				return m, nil
			}
			m.form.submitting = true
			m.form.err = ""
			return m, m.cmdSubmitCard(m.form.token, m.form.editingID, m.form.draft())
		}
	}

	if len(m.form.inputs) == 0 {
		return m, nil
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m appModel) viewForm() string {
	title := "New card"
	if m.form.editingID != 0 {
		title = "Edit card"
	}

	var b strings.Builder
	for i, input := range m.form.inputs {
		label := fieldLabels[i] + ":"
		if i == m.form.focus {
			label = m.styles.selected.Render(label)
		}
		b.WriteString(label)
		b.WriteString("\n  ")
		b.WriteString(input.View())
		b.WriteString("\n")
	}

	if m.form.submitting {
		b.WriteString("\nSaving...")
	}
	if m.form.err != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.err.Render(m.form.err))
	}

	return m.renderPage(title, strings.TrimRight(b.String(), "\n"),
		[]key.Binding{keys.tab, keys.backtab, key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")), keys.esc})
}
