package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"clx/application"
	"clx/domain"
)

type searchState int

const (
	searchStateInput searchState = iota
	searchStateOptions
	searchStateRunning
	searchStateResults
)

// SearchView searches prompt history, or transcript bodies when deep
// search is enabled via the options form.
type SearchView struct {
	state      searchState
	input      textinput.Model
	spinner    spinner.Model
	results    viewport.Model
	form       *huh.Form
	deep       bool
	maxResults string
	lastQuery  string
	summary    string
	err        error
}

func NewSearchView(defaultMax int) *SearchView {
	input := textinput.New()
	input.Placeholder = "search prompts..."
	input.CharLimit = 200
	input.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &SearchView{
		input:      input,
		spinner:    sp,
		results:    viewport.New(80, 20),
		maxResults: strconv.Itoa(defaultMax),
	}
}

func (sv *SearchView) SetSize(width, height int) {
	sv.results.Width = width
	sv.results.Height = height - 3
}

// CapturesInput reports whether the view wants raw key events, which
// suppresses the global screen shortcuts.
func (sv *SearchView) CapturesInput() bool {
	return sv.state == searchStateInput || sv.state == searchStateOptions
}

func (sv *SearchView) Focus() tea.Cmd {
	sv.state = searchStateInput
	sv.input.Focus()
	return textinput.Blink
}

func (sv *SearchView) openOptions() tea.Cmd {
	sv.form = huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title("Deep search?").
			Description("Scan session transcripts instead of prompt history").
			Value(&sv.deep).
			Affirmative("Yes").
			Negative("No"),
		huh.NewInput().
			Title("Max deep results").
			Value(&sv.maxResults).
			Validate(func(s string) error {
				n, err := strconv.Atoi(s)
				if err != nil || n < 1 {
					return fmt.Errorf("must be a positive number")
				}
				return nil
			}),
	))
	sv.state = searchStateOptions
	return sv.form.Init()
}

func (sv *SearchView) Update(msg tea.Msg, explorer *application.Explorer) tea.Cmd {
	switch sv.state {
	case searchStateOptions:
		model, cmd := sv.form.Update(msg)
		if form, ok := model.(*huh.Form); ok {
			sv.form = form
		}
		if sv.form.State == huh.StateCompleted || sv.form.State == huh.StateAborted {
			sv.state = searchStateInput
			return textinput.Blink
		}
		return cmd

	case searchStateInput:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "enter":
				query := strings.TrimSpace(sv.input.Value())
				if query == "" {
					return nil
				}
				sv.lastQuery = query
				sv.state = searchStateRunning
				if sv.deep {
					max, _ := strconv.Atoi(sv.maxResults)
					return tea.Batch(sv.spinner.Tick, searchDeep(explorer, query, max))
				}
				return tea.Batch(sv.spinner.Tick, searchPrompts(explorer, query))
			case "ctrl+o":
				return sv.openOptions()
			case "esc":
				sv.input.SetValue("")
				return nil
			}
		}
		var cmd tea.Cmd
		sv.input, cmd = sv.input.Update(msg)
		return cmd

	case searchStateRunning:
		var cmd tea.Cmd
		sv.spinner, cmd = sv.spinner.Update(msg)
		return cmd

	case searchStateResults:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "/" {
			return sv.Focus()
		}
		var cmd tea.Cmd
		sv.results, cmd = sv.results.Update(msg)
		return cmd
	}
	return nil
}

// Handle consumes search result messages from the loaders.
func (sv *SearchView) Handle(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case promptResultsMsg:
		sv.err = msg.err
		sv.state = searchStateResults
		sv.summary = fmt.Sprintf("%d prompts matching %q", len(msg.prompts), msg.query)
		sv.results.SetContent(renderPromptResults(msg.prompts))
		sv.results.GotoTop()
	case deepResultsMsg:
		sv.err = msg.err
		sv.state = searchStateResults
		sv.summary = fmt.Sprintf("%d transcript matches for %q", len(msg.results), msg.query)
		sv.results.SetContent(renderDeepResults(msg.results))
		sv.results.GotoTop()
	}
	sv.input.Blur()
	return nil
}

func (sv *SearchView) View() string {
	switch sv.state {
	case searchStateOptions:
		return sv.form.View()
	case searchStateRunning:
		return fmt.Sprintf("%s searching %q...", sv.spinner.View(), sv.lastQuery)
	case searchStateResults:
		if sv.err != nil {
			return errorStyle.Render(fmt.Sprintf("search failed: %v", sv.err))
		}
		header := labelStyle.Render(sv.summary) + dimStyle.Render("  (/ new search)")
		return header + "\n" + sv.results.View()
	default:
		mode := "prompts"
		if sv.deep {
			mode = "deep"
		}
		return titleStyle.Render("Search") + "\n" +
			sv.input.View() + "\n" +
			dimStyle.Render(fmt.Sprintf("mode: %s • enter run • ctrl+o options • esc clear", mode))
	}
}

func renderPromptResults(prompts []domain.Prompt) string {
	if len(prompts) == 0 {
		return dimStyle.Render("no matches")
	}
	var b strings.Builder
	for _, p := range prompts {
		when := "?"
		if !p.Timestamp.IsZero() {
			when = p.Timestamp.Format("2006-01-02 15:04")
		}
		b.WriteString(dimStyle.Render(when+" "+p.Project) + "\n")
		b.WriteString(normalStyle.Render(singleLine(p.Text, 200)) + "\n\n")
	}
	return b.String()
}

func renderDeepResults(results []domain.SearchResult) string {
	if len(results) == 0 {
		return dimStyle.Render("no matches")
	}
	var b strings.Builder
	for _, r := range results {
		when := "?"
		if !r.Timestamp.IsZero() {
			when = r.Timestamp.Format("2006-01-02 15:04")
		}
		b.WriteString(dimStyle.Render(fmt.Sprintf("%s %s [%s] %s", when, r.Project, r.Role, shortID(r.SessionID))) + "\n")
		b.WriteString(matchStyle.Render(r.Snippet) + "\n\n")
	}
	return b.String()
}

func singleLine(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	runes := []rune(s)
	if len(runes) > max {
		return string(runes[:max]) + "..."
	}
	return s
}
