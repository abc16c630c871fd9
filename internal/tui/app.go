package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/yyyklk/news-app/internal/digest"
	"github.com/yyyklk/news-app/internal/filter"
	"github.com/yyyklk/news-app/internal/news"
	"go.uber.org/zap"
)

// focus indexes the focusable widgets: the list, the two date inputs, then
// one slot per keyword field.
type focus int

const (
	focusList focus = iota
	focusStart
	focusEnd
	focusKeyword // first keyword field; field i is focusKeyword+i
)

type mode int

const (
	modeBrowse mode = iota
	modeSummarizing
	modeDetail
	modeHelp
)

type App struct {
	articles []news.Article
	results  []news.Article
	entries  map[int]digest.Entry
	digest   digest.Summarizers
	log      *zap.Logger

	defaultRange filter.DateRange
	earliest     news.Date
	today        news.Date
	rng          filter.DateRange

	startInput textinput.Model
	endInput   textinput.Model
	keywords   keywordFields

	focus  focus
	mode   mode
	cursor int

	progress progress.Model
	pending  []news.Article
	done     int

	showBody     bool
	detailScroll int

	width   int
	height  int
	dateErr error
	notice  string
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Articles     []news.Article
	Digest       digest.Summarizers
	DefaultStart news.Date
	Earliest     news.Date
	Today        news.Date

	// From and To prefill the date inputs; empty keeps the defaults.
	From     string
	To       string
	Keywords []string
	Log      *zap.Logger
}

func newDateInput(value string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = news.DateLayout
	ti.Prompt = inputPromptStyle.Render("› ")
	ti.CharLimit = len(news.DateLayout)
	ti.Width = len(news.DateLayout) + 1
	ti.SetValue(value)
	return ti
}

func NewApp(opts RunOpts) *App {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	today := opts.Today
	if today.IsZero() {
		today = news.Today()
	}
	def := filter.DateRange{Start: opts.DefaultStart, End: today}

	a := &App{
		articles:     opts.Articles,
		entries:      make(map[int]digest.Entry),
		digest:       opts.Digest,
		log:          log,
		defaultRange: def,
		earliest:     opts.Earliest,
		today:        today,
		rng:          def,
		startInput:   newDateInput(def.Start.String()),
		endInput:     newDateInput(def.End.String()),
		progress:     progress.New(progress.WithDefaultGradient()),
	}
	if opts.From != "" {
		a.startInput.SetValue(opts.From)
	}
	if opts.To != "" {
		a.endInput.SetValue(opts.To)
	}
	for i, kw := range opts.Keywords {
		if !a.keywords.add() {
			a.notice = fmt.Sprintf("Only the first %d of %d keywords are used", i, len(opts.Keywords))
			a.log.Warn("keywords dropped", zap.Strings("dropped", opts.Keywords[i:]))
			break
		}
		a.keywords.inputs[i].SetValue(kw)
	}
	a.refilter()
	return a
}

func (a *App) Init() tea.Cmd {
	return nil
}

// query snapshots the inputs into a filter query.
func (a *App) query() filter.Query {
	return filter.Query{Range: a.rng, Keywords: a.keywords.values()}
}

// refilter re-derives the result set from the current inputs. A bad date
// keeps the last valid range and is shown inline.
func (a *App) refilter() {
	r, err := filter.ParseRange(
		strings.TrimSpace(a.startInput.Value()),
		strings.TrimSpace(a.endInput.Value()),
		a.defaultRange, a.earliest,
	)
	a.dateErr = err
	if err == nil {
		a.rng = r
	}
	a.results = filter.Apply(a.articles, a.query())
	if a.cursor >= len(a.results) {
		a.cursor = max(0, len(a.results)-1)
	}
	a.log.Debug("filter applied",
		zap.String("start", a.rng.Start.String()),
		zap.String("end", a.rng.End.String()),
		zap.Strings("keywords", filter.CleanKeywords(a.keywords.values())),
		zap.Int("matches", len(a.results)),
	)
}

// summarizeCmd summarizes pending[pos]. The pass is a chain of these, one
// article per command.
func (a *App) summarizeCmd(pos int) tea.Cmd {
	d := a.digest
	art := a.pending[pos]
	return func() tea.Msg {
		e := d.Entry(art)
		e.Index = pos + 1
		return articleSummarizedMsg{pos: pos, entry: e}
	}
}

func (a *App) startSummarize() tea.Cmd {
	if len(a.results) == 0 {
		a.notice = "No matching articles to summarize"
		return nil
	}
	a.pending = append([]news.Article(nil), a.results...)
	a.done = 0
	a.entries = make(map[int]digest.Entry)
	a.mode = modeSummarizing
	a.log.Info("summarize started", zap.Int("articles", len(a.pending)))
	return a.summarizeCmd(0)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.progress.Width = max(10, msg.Width-30)
		return a, nil

	case tea.KeyMsg:
		a.notice = ""
		return a.handleKey(msg)

	case articleSummarizedMsg:
		a.entries[msg.entry.ID] = msg.entry
		a.done = msg.pos + 1
		if a.done < len(a.pending) {
			return a, a.summarizeCmd(a.done)
		}
		a.log.Info("summarize finished", zap.Int("articles", a.done))
		a.mode = modeBrowse
		a.notice = fmt.Sprintf("Summarized %d articles", a.done)
		a.pending = nil
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.mode {
	case modeSummarizing:
		// The pass runs to completion; only quitting interrupts it.
		if msg.String() == "q" {
			return a, tea.Quit
		}
		return a, nil
	case modeHelp:
		if msg.String() == "?" || msg.String() == "esc" || msg.String() == "q" {
			a.mode = modeBrowse
		}
		return a, nil
	case modeDetail:
		return a.handleDetailKey(msg)
	}

	if a.focus != focusList {
		return a.handleInputKey(msg)
	}

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "j", "down":
		if a.cursor < len(a.results)-1 {
			a.cursor++
		}
		return a, nil
	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil
	case "g", "home":
		a.cursor = 0
		return a, nil
	case "G", "end":
		a.cursor = max(0, len(a.results)-1)
		return a, nil
	case "enter":
		if len(a.results) > 0 {
			a.mode = modeDetail
			a.showBody = false
			a.detailScroll = 0
		}
		return a, nil
	case "+", "a":
		if !a.keywords.add() {
			a.notice = fmt.Sprintf("At most %d keyword fields", MaxKeywordFields)
			return a, nil
		}
		return a, a.setFocus(focusKeyword + focus(a.keywords.count()-1))
	case "-", "x":
		if a.keywords.remove() {
			a.refilter()
		}
		return a, nil
	case "s":
		return a, a.startSummarize()
	case "tab":
		return a, a.setFocus(a.nextFocus(1))
	case "shift+tab":
		return a, a.setFocus(a.nextFocus(-1))
	case "/":
		return a, a.setFocus(focusStart)
	case "?":
		a.mode = modeHelp
		return a, nil
	}
	return a, nil
}

func (a *App) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		return a, a.setFocus(focusList)
	case "tab":
		return a, a.setFocus(a.nextFocus(1))
	case "shift+tab":
		return a, a.setFocus(a.nextFocus(-1))
	}

	in := a.focusedInput()
	if in == nil {
		return a, nil
	}
	before := in.Value()
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	if in.Value() != before {
		a.refilter()
	}
	return a, cmd
}

func (a *App) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace", "h":
		a.mode = modeBrowse
	case "q":
		return a, tea.Quit
	case "b":
		a.showBody = !a.showBody
		a.detailScroll = 0
	case "j", "down":
		a.detailScroll++
	case "k", "up":
		if a.detailScroll > 0 {
			a.detailScroll--
		}
	case "n", "right":
		if a.cursor < len(a.results)-1 {
			a.cursor++
			a.showBody = false
			a.detailScroll = 0
		}
	case "p", "left":
		if a.cursor > 0 {
			a.cursor--
			a.showBody = false
			a.detailScroll = 0
		}
	}
	return a, nil
}

func (a *App) focusCount() int {
	return int(focusKeyword) + a.keywords.count()
}

func (a *App) nextFocus(step int) focus {
	n := a.focusCount()
	return focus(((int(a.focus)+step)%n + n) % n)
}

func (a *App) focusedInput() *textinput.Model {
	switch {
	case a.focus == focusStart:
		return &a.startInput
	case a.focus == focusEnd:
		return &a.endInput
	case a.focus >= focusKeyword && int(a.focus-focusKeyword) < a.keywords.count():
		return &a.keywords.inputs[a.focus-focusKeyword]
	}
	return nil
}

func (a *App) setFocus(f focus) tea.Cmd {
	if in := a.focusedInput(); in != nil {
		in.Blur()
	}
	a.focus = f
	if in := a.focusedInput(); in != nil {
		return in.Focus()
	}
	return nil
}

func (a *App) selected() (news.Article, bool) {
	if a.cursor < 0 || a.cursor >= len(a.results) {
		return news.Article{}, false
	}
	return a.results[a.cursor], true
}

func (a *App) withBottomBar(content string, hints string) string {
	bar := renderBottomBar(hints, a.width)
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
		return lipgloss.NewStyle().Foreground(focusColor).Render("  newsapp")
	}

	if a.mode == modeHelp {
		return a.withBottomBar(a.renderHelp(), "? close  q quit")
	}

	if a.mode == modeDetail {
		if art, ok := a.selected(); ok {
			entry, summarized := a.entries[art.ID]
			return a.withBottomBar(
				renderDetail(art, entry, summarized, a.showBody, a.cursor, len(a.results), a.width, a.height-1, a.detailScroll),
				"b body  n next  p prev  j/k scroll  esc back  q quit",
			)
		}
	}

	headerLeft := headerStyle.Render("newsapp")
	headerRight := headerDateStyle.Render(a.today.String())
	headerGap := max(0, a.width-lipgloss.Width(headerLeft)-lipgloss.Width(headerRight))
	header := headerLeft + fmt.Sprintf("%*s", headerGap, "") + headerRight

	controls := a.renderControls()

	statusHeight := 1
	contentHeight := a.height - lipgloss.Height(header) - lipgloss.Height(controls) - statusHeight - 2 // borders
	if contentHeight < 3 {
		contentHeight = 3
	}

	listWidth := int(float64(a.width) * 0.4)
	previewWidth := a.width - listWidth

	listContent := renderList(a.results, a.entries, a.cursor, contentHeight, listWidth-4)
	var listPane string
	if a.focus == focusList {
		listPane = listPaneActiveStyle.Width(listWidth - 2).Height(contentHeight).Render(listContent)
	} else {
		listPane = listPaneStyle.Width(listWidth - 2).Height(contentHeight).Render(listContent)
	}

	var previewContent string
	if art, ok := a.selected(); ok {
		entry, summarized := a.entries[art.ID]
		previewContent = renderPreview(art, entry, summarized, previewWidth-4, contentHeight)
	}
	previewPane := previewPaneStyle.Width(previewWidth - 2).Height(contentHeight).Render(previewContent)

	content := lipgloss.JoinHorizontal(lipgloss.Top, listPane, previewPane)

	status := renderStatusBar(len(a.results), a.width, a.focus != focusList)
	if a.mode == modeSummarizing {
		status = a.renderProgress()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, controls, content, status)
}

func (a *App) label(text string, f focus) string {
	if a.focus == f {
		return labelActiveStyle.Render(text)
	}
	return labelStyle.Render(text)
}

func (a *App) renderControls() string {
	var b strings.Builder
	b.WriteString(a.label("From", focusStart) + " " + a.startInput.View())
	b.WriteString("  " + a.label("To", focusEnd) + " " + a.endInput.View())
	b.WriteString("\n")

	for i, in := range a.keywords.inputs {
		b.WriteString(a.label(fmt.Sprintf("Keyword %d", i+1), focusKeyword+focus(i)) + " " + in.View() + "\n")
	}

	kws := filter.CleanKeywords(a.keywords.values())
	if len(kws) == 0 {
		b.WriteString(infoStyle.Render("No keywords: showing all articles"))
	} else {
		b.WriteString(infoStyle.Render("Keywords: " + strings.Join(kws, ", ")))
	}

	switch {
	case a.dateErr != nil:
		b.WriteString("\n" + errorStyle.Render(a.dateErr.Error()))
	case a.notice != "":
		b.WriteString("\n" + warnStyle.Render(a.notice))
	}
	return b.String()
}

func (a *App) renderProgress() string {
	total := len(a.pending)
	pct := 0.0
	if total > 0 {
		pct = float64(a.done) / float64(total)
	}
	label := fmt.Sprintf(" Summarizing %d/%d ", a.done, total)
	return label + a.progress.ViewAs(pct)
}

func (a *App) renderHelp() string {
	title := lipgloss.NewStyle().Foreground(focusColor).Bold(true).Render("newsapp")
	dim := helpDimStyle

	help := title + dim.Render(" keyboard shortcuts") + "\n\n" +
		dim.Render("Browse") + "\n" +
		"  j/k, ↑/↓      Move through matching articles\n" +
		"  enter          Open article detail\n" +
		"  tab            Cycle focus: list, dates, keywords\n" +
		"  /              Edit the start date\n\n" +
		dim.Render("Filters") + "\n" +
		"  +, a           Add a keyword field\n" +
		"  -, x           Remove the last keyword field\n" +
		"  esc, enter     Leave an input\n\n" +
		dim.Render("Summaries") + "\n" +
		"  s              Summarize all matching articles\n" +
		"  b              Show or hide the original article (detail)\n" +
		"  n/p            Next or previous article (detail)\n\n" +
		dim.Render("General") + "\n" +
		"  ?              Toggle this help\n" +
		"  q, ctrl+c      Quit"

	card := helpCardStyle.Render(help)

	return lipgloss.Place(a.width, a.height-1, lipgloss.Center, lipgloss.Center, card)
}

// Run starts the TUI application.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
