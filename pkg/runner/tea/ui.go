package teaui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/list"
	"github.com/charmbracelet/bubbles/v2/textarea"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/Arjun1106030909119/MindScribe/pkg/app"
	"github.com/Arjun1106030909119/MindScribe/pkg/journal"
	"github.com/Arjun1106030909119/MindScribe/pkg/runner/tea/internal/calview"
	"github.com/Arjun1106030909119/MindScribe/pkg/runner/tea/internal/editview"
	"github.com/Arjun1106030909119/MindScribe/pkg/runner/tea/internal/theme"
)

// Model states
type mode int

const (
	modeAuth mode = iota
	modeList
	modeCalendar
	modeEditor
)

// auth form focus order; the name field only exists in signup mode
const (
	authEmail = iota
	authPassword
	authName
)

// entryItem adapts a journal entry to the list widget.
type entryItem struct{ e *journal.Entry }

func (it entryItem) Title() string {
	day := it.e.Day().Format("Jan 02")
	return fmt.Sprintf("%s %s %s", day, it.e.Mood.Emoji(), it.e.DisplayTitle())
}

func (it entryItem) Description() string {
	desc := it.e.Preview(64)
	if len(it.e.Tags) > 0 {
		desc += "  #" + strings.Join(it.e.Tags, " #")
	}
	return desc
}

func (it entryItem) FilterValue() string { return it.e.Title + " " + it.e.Content }

// messages
type errMsg struct{ err error }
type sessionCheckedMsg struct{ user *journal.User }
type authDoneMsg struct{ user *journal.User }
type authFailedMsg struct{ err error }
type entriesLoadedMsg struct{ entries []*journal.Entry }
type loadFailedMsg struct{ err error }
type entrySavedMsg struct{ entry *journal.Entry }
type saveFailedMsg struct{ err error }
type entryDeletedMsg struct{}
type deleteFailedMsg struct{ err error }
type analyzedMsg struct{ analysis *journal.Analysis }
type analyzeFailedMsg struct{ err error }
type loggedOutMsg struct{}

// Model contains UI state for all four views.
type Model struct {
	svc  *app.Service
	ctx  context.Context
	mode mode

	user    *journal.User
	entries []*journal.Entry

	entList   list.Model
	search    textinput.Model
	searching bool

	cal     *calview.State
	calOpts calview.Options

	ed      *editview.State
	title   textinput.Model
	tags    textinput.Model
	content textarea.Model

	signup    bool
	authFocus int
	email     textinput.Model
	password  textinput.Model
	name      textinput.Model

	banner string
	retry  tea.Cmd
	status string
	busy   bool

	termWidth  int
	termHeight int

	th theme.Theme
}

// New creates the UI model backed by the Service.
func New(svc *app.Service) Model {
	d := list.NewDefaultDelegate()
	d.SetSpacing(1)

	l := list.New([]list.Item{}, d, 80, 20)
	l.Title = "Journal"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	search := textinput.New()
	search.Placeholder = "Search entries"
	search.Prompt = "/ "
	search.CharLimit = 128

	title := textinput.New()
	title.Placeholder = "Untitled Entry"
	title.CharLimit = 128

	tags := textinput.New()
	tags.Placeholder = "tags, comma, separated"
	tags.CharLimit = 256

	content := textarea.New()
	content.Placeholder = "Write about your day..."
	content.SetHeight(10)

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 128

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 128

	name := textinput.New()
	name.Placeholder = "Your name"
	name.CharLimit = 128

	m := Model{
		svc:      svc,
		ctx:      context.Background(),
		mode:     modeAuth,
		entList:  l,
		search:   search,
		cal:      calview.NewState(time.Now()),
		calOpts:  calview.DefaultOptions(),
		title:    title,
		tags:     tags,
		content:  content,
		email:    email,
		password: password,
		name:     name,
		status:   "checking session...",
		busy:     true,
		th:       theme.Default(),
	}
	m.email.Focus()
	return m
}

// Init checks the cached session before showing the auth form.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.checkSession(), textinput.Blink)
}

// commands

func (m *Model) checkSession() tea.Cmd {
	return func() tea.Msg {
		u, err := m.svc.CurrentUser(m.ctx)
		if err != nil {
			return errMsg{err}
		}
		return sessionCheckedMsg{user: u}
	}
}

func (m *Model) submitAuth() tea.Cmd {
	email := strings.TrimSpace(m.email.Value())
	password := m.password.Value()
	name := strings.TrimSpace(m.name.Value())
	signup := m.signup
	return func() tea.Msg {
		var (
			u   *journal.User
			err error
		)
		if signup {
			u, err = m.svc.Signup(m.ctx, email, password, name)
		} else {
			u, err = m.svc.Login(m.ctx, email, password)
		}
		if err != nil {
			return authFailedMsg{err}
		}
		return authDoneMsg{user: u}
	}
}

func (m *Model) loadEntries() tea.Cmd {
	if m.user == nil {
		return nil
	}
	userID := m.user.ID
	return func() tea.Msg {
		entries, err := m.svc.Entries(m.ctx, userID)
		if err != nil {
			return loadFailedMsg{err}
		}
		return entriesLoadedMsg{entries: entries}
	}
}

func (m *Model) saveCurrent() tea.Cmd {
	if m.ed == nil {
		return nil
	}
	e := m.ed.BuildEntry(m.title.Value(), m.content.Value(), m.tags.Value())
	return func() tea.Msg {
		saved, err := m.svc.SaveEntry(m.ctx, e)
		if err != nil {
			return saveFailedMsg{err}
		}
		return entrySavedMsg{entry: saved}
	}
}

func (m *Model) deleteCurrent() tea.Cmd {
	if m.ed == nil || m.ed.IsNew() {
		return nil
	}
	id := m.ed.EntryID()
	return func() tea.Msg {
		if err := m.svc.DeleteEntry(m.ctx, id); err != nil {
			return deleteFailedMsg{err}
		}
		return entryDeletedMsg{}
	}
}

func (m *Model) analyzeCurrent() tea.Cmd {
	text := m.content.Value()
	return func() tea.Msg {
		a, err := m.svc.Analyze(m.ctx, text)
		if err != nil {
			return analyzeFailedMsg{err}
		}
		return analyzedMsg{analysis: a}
	}
}

func (m *Model) logout() tea.Cmd {
	return func() tea.Msg {
		if err := m.svc.Logout(m.ctx); err != nil {
			return errMsg{err}
		}
		return loggedOutMsg{}
	}
}

// state transitions

func (m *Model) enterList() {
	m.mode = modeList
	m.ed = nil
	m.searching = false
}

func (m *Model) toggleView() {
	if m.mode == modeList {
		m.mode = modeCalendar
		return
	}
	if m.mode == modeCalendar {
		m.mode = modeList
	}
}

func (m *Model) openEditor(e *journal.Entry, day time.Time) tea.Cmd {
	userID := ""
	if m.user != nil {
		userID = m.user.ID
	}
	m.ed = editview.Begin(e, userID, day)
	m.mode = modeEditor
	m.banner = ""
	m.retry = nil

	if e != nil {
		m.title.SetValue(e.Title)
		m.content.SetValue(e.Content)
		m.tags.SetValue(strings.Join(e.Tags, ", "))
	} else {
		m.title.SetValue("")
		m.content.SetValue("")
		m.tags.SetValue("")
	}
	m.tags.Blur()
	m.content.Blur()
	m.title.CursorEnd()
	return tea.Batch(m.title.Focus(), textinput.Blink)
}

// openSelected opens the entry under the list cursor.
func (m *Model) openSelected() tea.Cmd {
	sel := m.entList.SelectedItem()
	if sel == nil {
		return nil
	}
	it, ok := sel.(entryItem)
	if !ok {
		return nil
	}
	return m.openEditor(it.e, time.Time{})
}

// openSelectedDay opens the newest entry on the calendar cursor's day, or a
// fresh entry dated to that day when it has none.
func (m *Model) openSelectedDay() tea.Cmd {
	day := m.cal.SelectedDate()
	buckets := journal.MonthBuckets(m.entries, m.cal.Month().Year(), m.cal.Month().Month())
	if entries := buckets[m.cal.Selected()]; len(entries) > 0 {
		return m.openEditor(entries[0], time.Time{})
	}
	return m.openEditor(nil, day)
}

func (m *Model) signOutLocally() {
	m.user = nil
	m.entries = nil
	m.entList.SetItems(nil)
	m.mode = modeAuth
	m.ed = nil
	m.searching = false
	m.password.SetValue("")
	m.authFocus = authEmail
	m.focusAuthField()
}

func (m *Model) refreshList() {
	visible := journal.Filter(m.entries, m.search.Value())
	items := make([]list.Item, 0, len(visible))
	for _, e := range visible {
		items = append(items, entryItem{e: e})
	}
	m.entList.SetItems(items)
}

func (m *Model) setBanner(err error, retry tea.Cmd) {
	m.banner = err.Error()
	m.retry = retry
}

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()

	case errMsg:
		m.busy = false
		m.setBanner(msg.err, nil)

	case sessionCheckedMsg:
		m.busy = false
		m.status = ""
		if msg.user == nil {
			m.mode = modeAuth
			break
		}
		m.user = msg.user
		m.enterList()
		m.busy = true
		cmds = append(cmds, m.loadEntries())

	case authDoneMsg:
		m.user = msg.user
		m.banner = ""
		m.password.SetValue("")
		m.enterList()
		m.busy = true
		m.status = fmt.Sprintf("welcome, %s", msg.user.Name)
		cmds = append(cmds, m.loadEntries())

	case authFailedMsg:
		m.busy = false
		m.setBanner(msg.err, nil)

	case entriesLoadedMsg:
		m.busy = false
		m.banner = ""
		m.retry = nil
		m.entries = msg.entries
		m.refreshList()

	case loadFailedMsg:
		m.busy = false
		m.setBanner(msg.err, m.loadEntries())

	case entrySavedMsg:
		m.status = "saved " + msg.entry.DisplayTitle()
		m.enterList()
		m.busy = true
		cmds = append(cmds, m.loadEntries())

	case saveFailedMsg:
		// editor stays open so nothing typed is lost
		m.busy = false
		m.setBanner(msg.err, m.saveCurrent())

	case entryDeletedMsg:
		m.status = "entry deleted"
		m.enterList()
		m.busy = true
		cmds = append(cmds, m.loadEntries())

	case deleteFailedMsg:
		m.busy = false
		if m.ed != nil {
			m.ed.ConfirmingDelete = false
		}
		m.setBanner(msg.err, nil)

	case analyzedMsg:
		m.busy = false
		if m.ed != nil {
			m.tags.SetValue(m.ed.ApplyAnalysis(msg.analysis, m.tags.Value()))
			m.status = "reflection ready"
		}

	case analyzeFailedMsg:
		m.busy = false
		m.setBanner(msg.err, nil)

	case loggedOutMsg:
		m.signOutLocally()
		m.status = "signed out"

	case tea.KeyPressMsg:
		switch m.mode {
		case modeAuth:
			cmds = append(cmds, m.updateAuth(msg)...)
		case modeList:
			cmds = append(cmds, m.updateList(msg)...)
		case modeCalendar:
			cmds = append(cmds, m.updateCalendar(msg)...)
		case modeEditor:
			cmds = append(cmds, m.updateEditor(msg)...)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) updateAuth(msg tea.KeyPressMsg) []tea.Cmd {
	var cmds []tea.Cmd
	switch msg.String() {
	case "ctrl+c":
		cmds = append(cmds, tea.Quit)
	case "tab", "down":
		m.cycleAuthFocus(1, &cmds)
	case "shift+tab", "up":
		m.cycleAuthFocus(-1, &cmds)
	case "ctrl+t":
		m.signup = !m.signup
		m.banner = ""
		if !m.signup && m.authFocus == authName {
			m.authFocus = authEmail
		}
		m.focusAuthField()
	case "enter":
		if m.busy {
			break
		}
		m.banner = ""
		m.busy = true
		m.status = "signing in..."
		if m.signup {
			m.status = "creating account..."
		}
		cmds = append(cmds, m.submitAuth())
	default:
		var cmd tea.Cmd
		switch m.authFocus {
		case authEmail:
			m.email, cmd = m.email.Update(msg)
		case authPassword:
			m.password, cmd = m.password.Update(msg)
		case authName:
			m.name, cmd = m.name.Update(msg)
		}
		cmds = append(cmds, cmd)
	}
	return cmds
}

func (m *Model) cycleAuthFocus(delta int, cmds *[]tea.Cmd) {
	fields := 2
	if m.signup {
		fields = 3
	}
	m.authFocus = (m.authFocus + delta + fields) % fields
	m.focusAuthField()
	*cmds = append(*cmds, textinput.Blink)
}

func (m *Model) focusAuthField() {
	m.email.Blur()
	m.password.Blur()
	m.name.Blur()
	switch m.authFocus {
	case authEmail:
		m.email.Focus()
	case authPassword:
		m.password.Focus()
	case authName:
		m.name.Focus()
	}
}

func (m *Model) updateList(msg tea.KeyPressMsg) []tea.Cmd {
	var cmds []tea.Cmd

	if m.searching {
		switch msg.String() {
		case "enter":
			m.searching = false
			m.search.Blur()
		case "esc":
			m.searching = false
			m.search.Reset()
			m.search.Blur()
			m.refreshList()
		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			cmds = append(cmds, cmd)
			m.refreshList()
		}
		return cmds
	}

	switch msg.String() {
	case "q", "ctrl+c":
		cmds = append(cmds, tea.Quit)
	case "tab":
		m.toggleView()
	case "n":
		cmds = append(cmds, m.openEditor(nil, time.Now()))
	case "enter":
		cmds = append(cmds, m.openSelected())
	case "/":
		m.searching = true
		if cmd := m.search.Focus(); cmd != nil {
			cmds = append(cmds, cmd)
		}
		cmds = append(cmds, textinput.Blink)
	case "r":
		m.busy = true
		if m.retry != nil {
			cmds = append(cmds, m.retry)
		} else {
			cmds = append(cmds, m.loadEntries())
		}
	case "x":
		m.banner = ""
		m.retry = nil
	case "ctrl+o":
		cmds = append(cmds, m.logout())
	default:
		var cmd tea.Cmd
		m.entList, cmd = m.entList.Update(msg)
		cmds = append(cmds, cmd)
	}
	return cmds
}

func (m *Model) updateCalendar(msg tea.KeyPressMsg) []tea.Cmd {
	var cmds []tea.Cmd
	switch msg.String() {
	case "q", "ctrl+c":
		cmds = append(cmds, tea.Quit)
	case "tab":
		m.toggleView()
	case "left", "h":
		m.cal.MoveDay(-1)
	case "right", "l":
		m.cal.MoveDay(1)
	case "up", "k":
		m.cal.MoveDay(-7)
	case "down", "j":
		m.cal.MoveDay(7)
	case "[":
		m.cal.MoveMonth(-1)
	case "]":
		m.cal.MoveMonth(1)
	case "enter":
		cmds = append(cmds, m.openSelectedDay())
	case "n":
		cmds = append(cmds, m.openEditor(nil, m.cal.SelectedDate()))
	case "r":
		m.busy = true
		cmds = append(cmds, m.loadEntries())
	case "x":
		m.banner = ""
		m.retry = nil
	case "ctrl+o":
		cmds = append(cmds, m.logout())
	}
	return cmds
}

func (m *Model) updateEditor(msg tea.KeyPressMsg) []tea.Cmd {
	var cmds []tea.Cmd
	switch msg.String() {
	case "ctrl+c":
		cmds = append(cmds, tea.Quit)
	case "esc":
		if m.ed != nil && m.ed.ConfirmingDelete {
			m.ed.ConfirmingDelete = false
			break
		}
		m.enterList()
	case "tab":
		m.cycleEditorFocus(1, &cmds)
	case "shift+tab":
		m.cycleEditorFocus(-1, &cmds)
	case "ctrl+s":
		if m.busy {
			break
		}
		m.busy = true
		m.status = "saving..."
		cmds = append(cmds, m.saveCurrent())
	case "ctrl+r":
		if m.busy {
			break
		}
		m.busy = true
		m.status = "reflecting..."
		cmds = append(cmds, m.analyzeCurrent())
	case "ctrl+d":
		if m.ed != nil && !m.ed.IsNew() && !m.busy {
			m.ed.ConfirmingDelete = true
		}
	case "y":
		if m.ed != nil && m.ed.ConfirmingDelete && !m.busy {
			m.busy = true
			cmds = append(cmds, m.deleteCurrent())
			break
		}
		cmds = append(cmds, m.routeEditorKey(msg)...)
	case "left":
		if m.ed != nil && m.ed.Focus == editview.FieldMood {
			m.ed.CycleMood(-1)
			break
		}
		cmds = append(cmds, m.routeEditorKey(msg)...)
	case "right":
		if m.ed != nil && m.ed.Focus == editview.FieldMood {
			m.ed.CycleMood(1)
			break
		}
		cmds = append(cmds, m.routeEditorKey(msg)...)
	default:
		cmds = append(cmds, m.routeEditorKey(msg)...)
	}
	return cmds
}

func (m *Model) routeEditorKey(msg tea.KeyPressMsg) []tea.Cmd {
	if m.ed == nil {
		return nil
	}
	var cmd tea.Cmd
	switch m.ed.Focus {
	case editview.FieldTitle:
		m.title, cmd = m.title.Update(msg)
	case editview.FieldContent:
		m.content, cmd = m.content.Update(msg)
	case editview.FieldTags:
		m.tags, cmd = m.tags.Update(msg)
	}
	return []tea.Cmd{cmd}
}

func (m *Model) cycleEditorFocus(delta int, cmds *[]tea.Cmd) {
	if m.ed == nil {
		return
	}
	if delta > 0 {
		m.ed.NextField()
	} else {
		m.ed.PrevField()
	}

	m.title.Blur()
	m.content.Blur()
	m.tags.Blur()
	switch m.ed.Focus {
	case editview.FieldTitle:
		if cmd := m.title.Focus(); cmd != nil {
			*cmds = append(*cmds, cmd)
		}
	case editview.FieldContent:
		if cmd := m.content.Focus(); cmd != nil {
			*cmds = append(*cmds, cmd)
		}
	case editview.FieldTags:
		if cmd := m.tags.Focus(); cmd != nil {
			*cmds = append(*cmds, cmd)
		}
	}
	*cmds = append(*cmds, textinput.Blink)
}

// View renders the active mode with a shared header and footer.
func (m Model) View() string {
	var body string
	switch m.mode {
	case modeAuth:
		body = m.viewAuth()
	case modeList:
		body = m.viewList()
	case modeCalendar:
		body = m.viewCalendar()
	case modeEditor:
		body = m.viewEditor()
	}

	header := m.th.Header.Render("MindScribe")
	if m.user != nil {
		header += "  " + m.th.Session.Render(m.user.Email)
	}

	out := header + "\n\n" + body
	if m.banner != "" {
		banner := m.th.Banner.Render("! " + m.banner)
		if m.retry != nil {
			banner += m.th.Help.Render("  (r retry, x dismiss)")
		} else if m.mode != modeAuth {
			banner += m.th.Help.Render("  (x dismiss)")
		}
		out = header + "\n" + banner + "\n\n" + body
	}

	return out + "\n\n" + m.footer()
}

func (m Model) footer() string {
	status := m.status
	if m.busy {
		status = "working... " + status
	}
	help := ""
	switch m.mode {
	case modeAuth:
		help = "enter submit · tab next field · ctrl+t switch login/signup · ctrl+c quit"
	case modeList:
		if m.searching {
			help = "enter keep filter · esc clear"
		} else {
			help = "enter open · n new · / search · tab calendar · r refresh · ctrl+o sign out · q quit"
		}
	case modeCalendar:
		help = "arrows move · [/] month · enter open day · n new · tab list · ctrl+o sign out · q quit"
	case modeEditor:
		help = "tab next field · ctrl+s save · ctrl+r reflect · ctrl+d delete · esc back"
	}
	return m.th.Status.Render(status) + "\n" + m.th.Help.Render(help)
}

func (m Model) viewAuth() string {
	label := func(f int, text string) string {
		if m.authFocus == f {
			return m.th.FocusedLabel.Render(text)
		}
		return m.th.Label.Render(text)
	}

	title := "Sign in"
	if m.signup {
		title = "Create account"
	}
	lines := []string{
		m.th.FocusedLabel.Render(title),
		"",
		label(authEmail, "Email"),
		m.email.View(),
		"",
		label(authPassword, "Password"),
		m.password.View(),
	}
	if m.signup {
		lines = append(lines, "", label(authName, "Name"), m.name.View())
	}
	return m.th.Panel.Render(strings.Join(lines, "\n"))
}

func (m Model) viewList() string {
	out := m.entList.View()
	if m.searching || m.search.Value() != "" {
		out = m.search.View() + "\n\n" + out
	}
	if len(m.entries) == 0 && !m.busy {
		out += "\n" + m.th.Faint.Render("no entries yet, press n to write one")
	}
	return out
}

func (m Model) viewCalendar() string {
	buckets := journal.MonthBuckets(m.entries, m.cal.Month().Year(), m.cal.Month().Month())
	days := m.cal.Days(buckets, time.Now())
	grid := calview.Render(m.cal.Month(), days, m.calOpts)

	var lines []string
	day := m.cal.SelectedDate()
	lines = append(lines, m.th.Label.Render(day.Format("Monday, January 2")))
	if selected := buckets[m.cal.Selected()]; len(selected) > 0 {
		for _, e := range selected {
			lines = append(lines, fmt.Sprintf("%s %s", e.Mood.Emoji(), e.DisplayTitle()))
		}
	} else {
		lines = append(lines, m.th.Faint.Render("no entries"))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.th.Panel.Render(grid),
		"  ",
		strings.Join(lines, "\n"),
	)
}

func (m Model) viewEditor() string {
	if m.ed == nil {
		return ""
	}

	label := func(f editview.Field, text string) string {
		if m.ed.Focus == f {
			return m.th.FocusedLabel.Render(text)
		}
		return m.th.Label.Render(text)
	}

	var moodCells []string
	for _, mood := range journal.AllMoods() {
		cell := fmt.Sprintf("%s %s", mood.Emoji(), mood)
		if mood == m.ed.Mood() {
			cell = m.th.FocusedLabel.Render("[" + cell + "]")
		} else {
			cell = m.th.Faint.Render(" " + cell + " ")
		}
		moodCells = append(moodCells, cell)
	}

	lines := []string{
		label(editview.FieldTitle, "Title"),
		m.title.View(),
		"",
		label(editview.FieldContent, "Entry"),
		m.content.View(),
		"",
		label(editview.FieldTags, "Tags"),
		m.tags.View(),
		"",
		label(editview.FieldMood, "Mood") + "  " + strings.Join(moodCells, " "),
	}

	if m.ed.ConfirmingDelete {
		lines = append(lines, "", m.th.Banner.Render("delete this entry? y to confirm, esc to cancel"))
	}

	body := strings.Join(lines, "\n")

	if a := m.ed.Analysis; a != nil {
		overlay := strings.Join([]string{
			m.th.FocusedLabel.Render("Reflection"),
			"Summary: " + a.Summary,
			"Sentiment: " + a.Sentiment,
			"Advice: " + a.Advice,
			"Keywords: " + strings.Join(a.Keywords, ", "),
		}, "\n")
		body += "\n\n" + m.th.Overlay.Render(overlay)
	}

	return body
}

// applySizes recalculates widget sizes from the terminal size.
func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	height := m.termHeight - 6
	if height < 5 {
		height = 5
	}
	width := m.termWidth - 2
	if width < 20 {
		width = 20
	}
	m.entList.SetSize(width, height)
	m.content.SetWidth(width)
	contentHeight := height - 10
	if contentHeight < 4 {
		contentHeight = 4
	}
	m.content.SetHeight(contentHeight)
}
