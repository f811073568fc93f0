package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/emanuele-r/newspaper/internal/aggregate"
	"github.com/emanuele-r/newspaper/internal/ai"
	"github.com/emanuele-r/newspaper/internal/browser"
	"github.com/emanuele-r/newspaper/internal/cache"
	"github.com/emanuele-r/newspaper/internal/config"
	"github.com/emanuele-r/newspaper/internal/sentiment"
	"github.com/emanuele-r/newspaper/internal/session"
	"github.com/emanuele-r/newspaper/internal/topics"
	"github.com/emanuele-r/newspaper/internal/update"
	"github.com/emanuele-r/newspaper/internal/view"
)

type focusPane int

const (
	focusList focusPane = iota
	focusDetail
)

type mode int

const (
	modeHome mode = iota
	modeSearch
	modeLoading
	modeResults
	modeFilter
	modeBookmarkName
	modeBookmarks
	modeHistory
	modeQuiz
	modePanel
	modeHelp
)

type panelKind int

const (
	panelCharts panelKind = iota
	panelTopics
	panelCloud
)

type App struct {
	cfg   *config.Config
	sess  *session.Session
	coord *view.Coordinator
	agg   *aggregate.Aggregator
	db    *cache.Cache
	ai    ai.Assistant

	width  int
	height int

	searchInput textinput.Model
	nameInput   textinput.Model
	spinner     spinner.Model
	filterBar   filterBar

	mode  mode
	focus focusPane

	full    *session.ResultSet
	visible *session.ResultSet
	cursor  int
	scroll  int

	panel      panelKind
	topicModel *topics.Model
	topicErr   error
	topicCache *topics.Cache

	summaries    map[string]string
	translations map[string]string

	historyCursor  int
	bookmarkCursor int
	quizAnswered   bool
	quizCorrect    bool

	notice        string
	err           error
	version       string
	updateVersion string
	currentDate   string
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Cfg          *config.Config
	Session      *session.Session
	Coordinator  *view.Coordinator
	Aggregator   *aggregate.Aggregator
	DB           *cache.Cache
	Assistant    ai.Assistant
	Version      string
	InitialQuery string
}

func NewApp(opts RunOpts) *App {
	si := textinput.New()
	si.Placeholder = "Search news..."
	si.Prompt = searchPromptStyle.Render("/ ")
	si.CharLimit = 100

	ni := textinput.New()
	ni.Placeholder = "Bookmark name..."
	ni.Prompt = searchPromptStyle.Render("★ ")
	ni.CharLimit = 50

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	return &App{
		cfg:          opts.Cfg,
		sess:         opts.Session,
		coord:        opts.Coordinator,
		agg:          opts.Aggregator,
		db:           opts.DB,
		ai:           opts.Assistant,
		searchInput:  si,
		nameInput:    ni,
		spinner:      sp,
		mode:         modeHome,
		topicCache:   &topics.Cache{},
		summaries:    make(map[string]string),
		translations: make(map[string]string),
		version:      opts.Version,
		currentDate:  time.Now().Format("Jan 2"),
	}
}

func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.checkUpdateCmd()}

	if q := strings.TrimSpace(a.searchInput.Value()); q != "" {
		a.mode = modeLoading
		cmds = append(cmds, a.searchCmd(q), a.spinner.Tick)
	}

	return tea.Batch(cmds...)
}

func (a *App) checkUpdateCmd() tea.Cmd {
	version := a.version
	return func() tea.Msg {
		res := update.Check(context.Background(), version)
		if res == nil {
			return nil
		}
		return updateMsg{version: res.LatestVersion}
	}
}

// searchCmd fetches and labels articles for query. A transport failure
// falls back to the last cached results for the same keyword when the
// local cache has them.
func (a *App) searchCmd(query string) tea.Cmd {
	agg := a.agg
	db := a.db
	timeout := a.cfg.Timeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		rs, notice := agg.FetchAndLabel(ctx, query)
		if notice != "" && db != nil {
			if cached, ok, err := db.LoadResults(query); err == nil && ok {
				return resultsMsg{rs: cached, notice: notice + " (showing cached results)", cached: true}
			}
		}
		return resultsMsg{rs: rs, notice: notice}
	}
}

func (a *App) summarizeCmd(la session.LabeledArticle) tea.Cmd {
	assistant := a.ai
	key := articleKey(la)
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		text, err := assistant.Summarize(ctx, la.DisplayTitle(), la.Content)
		if err != nil {
			return errMsg{err: err}
		}
		return summaryMsg{key: key, text: text}
	}
}

func (a *App) translateCmd(la session.LabeledArticle) tea.Cmd {
	assistant := a.ai
	key := articleKey(la)
	text := la.DisplayTitle()
	if la.Description != "" {
		text += "\n\n" + la.Description
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		out, err := assistant.Translate(ctx, text, "English")
		if err != nil {
			return errMsg{err: err}
		}
		return translationMsg{key: key, text: out}
	}
}

func (a *App) topicsCmd() tea.Cmd {
	tc := a.topicCache
	docs := contentDocs(a.visible)
	return func() tea.Msg {
		model, err := tc.Fit(docs)
		return topicsMsg{model: model, err: err}
	}
}

func openBrowserCmd(url string) tea.Cmd {
	return func() tea.Msg {
		if err := browser.Open(url); err != nil {
			return errMsg{err: err}
		}
		return nil
	}
}

func contentDocs(rs *session.ResultSet) []string {
	if rs == nil {
		return nil
	}
	docs := make([]string, 0, rs.Len())
	for _, la := range rs.Articles {
		if la.Content != "" {
			docs = append(docs, la.Content)
		}
	}
	return docs
}

// articleKey identifies an article across filtered views for the
// summary and translation caches.
func articleKey(la session.LabeledArticle) string {
	if la.URL != "" {
		return la.URL
	}
	return la.Title
}

func (a *App) selected() *session.LabeledArticle {
	if a.visible == nil || a.cursor >= a.visible.Len() {
		return nil
	}
	return &a.visible.Articles[a.cursor]
}

// indexInFull maps the cursor position back to the unfiltered set so
// quiz rewards key on a stable article position.
func (a *App) indexInFull() int {
	la := a.selected()
	if la == nil || a.full == nil {
		return -1
	}
	for i := range a.full.Articles {
		if articleKey(a.full.Articles[i]) == articleKey(*la) {
			return i
		}
	}
	return -1
}

func (a *App) applyFilter() {
	if a.full == nil {
		return
	}
	if a.filterBar.selected == "" {
		a.visible = a.full
	} else {
		a.visible = view.FilterBySource(a.full, a.filterBar.selected)
	}
	a.cursor = 0
	a.scroll = 0
	a.topicModel = nil
	a.topicErr = nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		a.err = nil
		return a.handleKey(msg)

	case resultsMsg:
		a.full = msg.rs
		a.notice = msg.notice
		a.sess.SetCurrent(msg.rs)
		a.filterBar.rebuild(msg.rs)
		a.applyFilter()
		a.mode = modeResults
		a.quizAnswered = false

		var cmds []tea.Cmd
		if msg.rs.Query != "" {
			if err := a.sess.RecordQuery(msg.rs.Query); err != nil {
				a.notice = strings.TrimSpace(a.notice + " " + fmt.Sprintf("(history not saved: %v)", err))
			}
		}
		if a.db != nil && !msg.cached && msg.rs.Len() > 0 {
			db := a.db
			rs := msg.rs
			cmds = append(cmds, func() tea.Msg {
				db.SaveResults(rs)
				return nil
			})
		}
		return a, tea.Batch(cmds...)

	case errMsg:
		a.err = msg.err
		if a.mode == modeLoading {
			a.mode = modeResults
		}
		return a, nil

	case summaryMsg:
		a.summaries[msg.key] = msg.text
		return a, nil

	case translationMsg:
		a.translations[msg.key] = msg.text
		return a, nil

	case topicsMsg:
		a.topicModel = msg.model
		a.topicErr = msg.err
		return a, nil

	case updateMsg:
		a.updateVersion = msg.version
		return a, nil

	case spinner.TickMsg:
		if a.mode == modeLoading {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.mode {
	case modeHome:
		return a.handleHomeKey(msg)
	case modeSearch:
		return a.handleSearchKey(msg)
	case modeLoading:
		return a, nil
	case modeFilter:
		return a.handleFilterKey(msg)
	case modeBookmarkName:
		return a.handleBookmarkNameKey(msg)
	case modeBookmarks:
		return a.handleBookmarksKey(msg)
	case modeHistory:
		return a.handleHistoryKey(msg)
	case modeQuiz:
		return a.handleQuizKey(msg)
	case modePanel:
		switch msg.String() {
		case "esc", "q", "c", "t", "w":
			a.mode = modeResults
		}
		return a, nil
	case modeHelp:
		switch msg.String() {
		case "?", "esc", "q":
			a.mode = modeResults
		}
		return a, nil
	}

	return a.handleResultsKey(msg)
}

func (a *App) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "s", "/", "enter":
		a.mode = modeSearch
		a.searchInput.Focus()
		return a, textinput.Blink
	case "h":
		a.mode = modeHistory
		a.historyCursor = 0
		return a, nil
	case "b":
		a.mode = modeBookmarks
		a.bookmarkCursor = 0
		return a, nil
	case "q":
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.searchInput.SetValue("")
		a.searchInput.Blur()
		if a.full != nil {
			a.mode = modeResults
		} else {
			a.mode = modeHome
		}
		return a, nil
	case "enter":
		query := strings.TrimSpace(a.searchInput.Value())
		if query == "" {
			return a, nil
		}
		a.searchInput.Blur()
		a.mode = modeLoading
		return a, tea.Batch(a.searchCmd(query), a.spinner.Tick)
	}

	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	return a, cmd
}

func (a *App) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "esc", "H":
		a.mode = modeHome
		return a, nil
	case "j", "down":
		if a.focus == focusList && a.visible != nil && a.cursor < a.visible.Len()-1 {
			a.cursor++
			a.scroll = 0
		} else if a.focus == focusDetail {
			a.scroll++
		}
		return a, nil
	case "k", "up":
		if a.focus == focusList && a.cursor > 0 {
			a.cursor--
			a.scroll = 0
		} else if a.focus == focusDetail && a.scroll > 0 {
			a.scroll--
		}
		return a, nil
	case "tab":
		if a.focus == focusList {
			a.focus = focusDetail
		} else {
			a.focus = focusList
		}
		return a, nil
	case "o", "enter":
		if la := a.selected(); la != nil {
			return a, openBrowserCmd(la.URL)
		}
		return a, nil
	case "/", "s":
		a.mode = modeSearch
		a.searchInput.Focus()
		return a, textinput.Blink
	case "r":
		if a.full != nil && a.full.Query != "" {
			a.mode = modeLoading
			return a, tea.Batch(a.searchCmd(a.full.Query), a.spinner.Tick)
		}
		return a, nil
	case "f":
		if len(a.filterBar.sources) > 0 {
			a.mode = modeFilter
			a.filterBar.filterMode = true
		}
		return a, nil
	case "c":
		if view.AvailablePanels(a.visible).Charts {
			a.mode = modePanel
			a.panel = panelCharts
		}
		return a, nil
	case "t":
		if view.AvailablePanels(a.visible).Topics {
			a.mode = modePanel
			a.panel = panelTopics
			if a.topicModel == nil && a.topicErr == nil {
				return a, a.topicsCmd()
			}
		}
		return a, nil
	case "w":
		if view.AvailablePanels(a.visible).WordCloud {
			a.mode = modePanel
			a.panel = panelCloud
		}
		return a, nil
	case "a":
		la := a.selected()
		if la == nil {
			return a, nil
		}
		if a.ai == nil {
			a.notice = "AI not configured."
			return a, nil
		}
		if _, ok := a.summaries[articleKey(*la)]; ok {
			return a, nil
		}
		return a, a.summarizeCmd(*la)
	case "i":
		la := a.selected()
		if la == nil || !view.AvailablePanels(a.visible).Translation {
			return a, nil
		}
		if a.ai == nil {
			a.notice = "AI not configured."
			return a, nil
		}
		if _, ok := a.translations[articleKey(*la)]; ok {
			return a, nil
		}
		return a, a.translateCmd(*la)
	case "z":
		if a.selected() != nil {
			a.mode = modeQuiz
			a.quizAnswered = false
		}
		return a, nil
	case "b":
		if a.visible != nil && a.visible.Len() > 0 {
			a.mode = modeBookmarkName
			a.nameInput.SetValue("")
			a.nameInput.Focus()
			return a, textinput.Blink
		}
		return a, nil
	case "B":
		a.mode = modeBookmarks
		a.bookmarkCursor = 0
		return a, nil
	case "h":
		a.mode = modeHistory
		a.historyCursor = 0
		return a, nil
	case "?":
		a.mode = modeHelp
		return a, nil
	}

	return a, nil
}

func (a *App) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "f":
		a.mode = modeResults
		a.filterBar.filterMode = false
		return a, nil
	case "left", "h":
		if a.filterBar.filterCursor > 0 {
			a.filterBar.filterCursor--
		}
		return a, nil
	case "right", "l":
		if a.filterBar.filterCursor < len(a.filterBar.sources)-1 {
			a.filterBar.filterCursor++
		}
		return a, nil
	case " ", "enter":
		a.filterBar.toggleCurrent()
		a.applyFilter()
		return a, nil
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(msg.String()[0] - '1')
		if idx < len(a.filterBar.sources) {
			a.filterBar.filterCursor = idx
			a.filterBar.toggleCurrent()
			a.applyFilter()
		}
		return a, nil
	}
	return a, nil
}

func (a *App) handleBookmarkNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.nameInput.Blur()
		a.mode = modeResults
		return a, nil
	case "enter":
		name := a.nameInput.Value()
		if err := a.coord.AddBookmark(name, a.visible); err != nil {
			a.err = err
			return a, nil
		}
		a.nameInput.Blur()
		a.mode = modeResults
		a.notice = fmt.Sprintf("Bookmarked as %q.", strings.TrimSpace(name))
		return a, nil
	}

	var cmd tea.Cmd
	a.nameInput, cmd = a.nameInput.Update(msg)
	return a, cmd
}

func (a *App) handleBookmarksKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	names := a.sess.BookmarkNames()
	switch msg.String() {
	case "esc", "q":
		if a.full != nil {
			a.mode = modeResults
		} else {
			a.mode = modeHome
		}
		return a, nil
	case "j", "down":
		if a.bookmarkCursor < len(names)-1 {
			a.bookmarkCursor++
		}
		return a, nil
	case "k", "up":
		if a.bookmarkCursor > 0 {
			a.bookmarkCursor--
		}
		return a, nil
	case "enter":
		if a.bookmarkCursor >= len(names) {
			return a, nil
		}
		rs, err := a.coord.SelectBookmark(names[a.bookmarkCursor])
		if err != nil {
			a.err = err
			return a, nil
		}
		a.full = rs
		a.filterBar.rebuild(rs)
		a.applyFilter()
		a.mode = modeResults
		a.notice = fmt.Sprintf("Bookmark %q.", names[a.bookmarkCursor])
		return a, nil
	}
	return a, nil
}

func (a *App) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	queries := a.sess.History()
	switch msg.String() {
	case "esc", "q":
		if a.full != nil {
			a.mode = modeResults
		} else {
			a.mode = modeHome
		}
		return a, nil
	case "j", "down":
		if a.historyCursor < len(queries)-1 {
			a.historyCursor++
		}
		return a, nil
	case "k", "up":
		if a.historyCursor > 0 {
			a.historyCursor--
		}
		return a, nil
	case "x":
		if err := a.sess.ClearHistory(); err != nil {
			a.err = err
		}
		a.historyCursor = 0
		return a, nil
	case "enter":
		if a.historyCursor >= len(queries) {
			return a, nil
		}
		a.mode = modeLoading
		return a, tea.Batch(a.searchCmd(queries[a.historyCursor]), a.spinner.Tick)
	}
	return a, nil
}

func (a *App) handleQuizKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var given string
	switch msg.String() {
	case "esc", "q":
		a.mode = modeResults
		return a, nil
	case "p":
		given = string(sentiment.Positive)
	case "n":
		given = string(sentiment.Negative)
	case "u":
		given = string(sentiment.Neutral)
	default:
		return a, nil
	}

	if a.quizAnswered {
		return a, nil
	}
	la := a.selected()
	if la == nil {
		a.mode = modeResults
		return a, nil
	}
	a.quizAnswered = true
	a.quizCorrect = a.coord.RecordQuizAnswer(a.indexInFull(), given, string(la.Sentiment))
	return a, nil
}

func (a *App) withBottomBar(content string, hints string) string {
	bar := renderBottomBar(a.sess.Score(), hints, a.width)
	lines := strings.Split(content, "\n")
	for len(lines) < a.height-1 {
		lines = append(lines, "")
	}
	if len(lines) >= a.height {
		lines = lines[:a.height-1]
	}
	lines = append(lines, bar)
	return strings.Join(lines, "\n")
}

func (a *App) View() string {
	if a.width == 0 {
		return lipgloss.NewStyle().Foreground(colorAccent).Render("  newspaper")
	}

	switch a.mode {
	case modeHome:
		return a.withBottomBar(
			renderHomeScreen(a.width, a.height, len(a.sess.History()) > 0, a.updateVersion),
			"s search  h history  b bookmarks  q quit",
		)
	case modeLoading:
		body := lipgloss.Place(a.width, a.height-1, lipgloss.Center, lipgloss.Center,
			a.spinner.View()+" Searching...")
		return a.withBottomBar(body, "ctrl+c quit")
	case modeHistory:
		return a.withBottomBar(
			renderHistory(reversed(a.sess.History()), a.historyCursor, a.width, a.height-1),
			"enter re-run  x clear  esc back",
		)
	case modeBookmarks:
		return a.withBottomBar(
			renderBookmarks(a.sess.BookmarkNames(), a.bookmarkCursor, a.width, a.height-1),
			"enter open  esc back",
		)
	case modeQuiz:
		return a.withBottomBar(
			renderQuiz(a.selected(), a.quizAnswered, a.quizCorrect, a.sess.Score(), a.width, a.height-1),
			"p/n/u answer  esc back",
		)
	case modePanel:
		var body string
		switch a.panel {
		case panelCharts:
			body = renderCharts(a.visible, a.width, a.height-1)
		case panelTopics:
			body = renderTopics(a.topicModel, a.topicErr, a.width, a.height-1)
		case panelCloud:
			body = renderWordCloud(topics.TopTerms(contentDocs(a.visible), 25), a.width, a.height-1)
		}
		return a.withBottomBar(body, "esc back  q quit")
	case modeHelp:
		return a.withBottomBar(a.renderHelp(), "? close  q quit")
	}

	return a.renderResults()
}

func (a *App) renderResults() string {
	headerHeight := 1
	filterHeight := 1
	statusHeight := 1
	contentHeight := a.height - headerHeight - filterHeight - statusHeight - 4 // borders

	listWidth := int(float64(a.width) * 0.4)
	detailWidth := a.width - listWidth - 1 // gap

	if contentHeight < 3 {
		contentHeight = 3
	}

	// Header
	headerLeft := headerStyle.Render("newspaper")
	headerRight := headerDateStyle.Render(a.currentDate)
	headerGap := a.width - lipgloss.Width(headerLeft) - lipgloss.Width(headerRight)
	if headerGap < 0 {
		headerGap = 0
	}
	header := headerLeft + fmt.Sprintf("%*s", headerGap, "") + headerRight

	// Filter bar, replaced by the active text input when one is open
	filter := a.filterBar.render(a.width)
	if a.mode == modeSearch {
		filter = a.searchInput.View()
	}
	if a.mode == modeBookmarkName {
		filter = a.nameInput.View()
	}

	var articles []session.LabeledArticle
	if a.visible != nil {
		articles = a.visible.Articles
	}

	innerListW := listWidth - 4
	listContent := renderList(articles, a.cursor, contentHeight, innerListW)

	var listPane string
	if a.focus == focusList {
		listPane = listPaneActiveStyle.Width(listWidth - 2).Height(contentHeight).Render(listContent)
	} else {
		listPane = listPaneStyle.Width(listWidth - 2).Height(contentHeight).Render(listContent)
	}

	la := a.selected()
	var summary, translation string
	if la != nil {
		summary = a.summaries[articleKey(*la)]
		translation = a.translations[articleKey(*la)]
	}
	innerDetailW := detailWidth - 4
	detailContent := renderDetail(la, summary, translation, innerDetailW, contentHeight, a.scroll)

	var detailPane string
	if a.focus == focusDetail {
		detailPane = detailPaneActiveStyle.Width(detailWidth - 2).Height(contentHeight).Render(detailContent)
	} else {
		detailPane = detailPaneStyle.Width(detailWidth - 2).Height(contentHeight).Render(detailContent)
	}

	content := lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)

	status := renderStatusBar(a.visible, a.filterBar.activeLabel(), a.sess.Score(), a.width, a.mode == modeSearch)

	if a.notice != "" {
		status = lipgloss.NewStyle().Foreground(colorAccent).Render(" " + a.notice)
	}
	if a.err != nil {
		status = lipgloss.NewStyle().Foreground(colorRed).Render(" " + a.err.Error())
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, filter, content, status)
}

func (a *App) renderHelp() string {
	title := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render("newspaper")
	dim := helpDimStyle

	help := title + dim.Render(" — Keyboard Shortcuts") + "\n\n" +
		dim.Render("Navigation") + "\n" +
		"  j/k, ↑/↓      Navigate article list\n" +
		"  tab           Switch focus between list and detail\n\n" +
		dim.Render("Actions") + "\n" +
		"  o, enter      Open article in browser\n" +
		"  /, s          New search\n" +
		"  r             Re-run current search\n" +
		"  f             Filter by source\n" +
		"  b             Bookmark current results\n" +
		"  B             Open bookmarks\n" +
		"  h             Recent searches\n\n" +
		dim.Render("Views") + "\n" +
		"  c             Sentiment charts\n" +
		"  t             Topics\n" +
		"  w             Word cloud\n" +
		"  z             Sentiment quiz\n" +
		"  a             AI summary\n" +
		"  i             Translate\n\n" +
		dim.Render("General") + "\n" +
		"  ?             Toggle this help\n" +
		"  q, ctrl+c     Quit"

	card := helpCardStyle.Render(help)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

func reversed(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[len(in)-1-i] = s
	}
	return out
}

// Run starts the TUI application.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	if opts.InitialQuery != "" {
		app.searchInput.SetValue(opts.InitialQuery)
	}
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
