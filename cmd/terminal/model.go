package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/deepakkumardewani/review-pilot/internal/core"
	"github.com/deepakkumardewani/review-pilot/internal/github"
	"github.com/deepakkumardewani/review-pilot/internal/wire"
)

const asciiLogo = `
╔══════════════════════════════════════════════════════════════╗
║                                                              ║
║   ██████╗ ███████╗██╗   ██╗██╗███████╗██╗    ██╗             ║
║   ██╔══██╗██╔════╝██║   ██║██║██╔════╝██║    ██║             ║
║   ██████╔╝█████╗  ╚██╗ ██╔╝██║█████╗  ██║ █╗ ██║             ║
║   ██╔══██╗██╔══╝   ╚████╔╝ ██║██╔══╝  ██║███╗██║             ║
║   ██║  ██║███████╗  ╚═══╝  ██║███████╗╚███╔███╔╝             ║
║   ╚═╝  ╚═╝╚══════╝         ╚═╝╚══════╝ ╚══╝╚══╝  PILOT       ║
║                                                              ║
║              AI-POWERED CODE REVIEW TERMINAL                 ║
║                                                              ║
╚══════════════════════════════════════════════════════════════╝
`

type model struct {
	styles styles
	kit    *wire.ReviewKit

	// UI Components
	viewport  viewport.Model
	textarea  textarea.Model
	spinner   spinner.Model
	isLoading bool

	// Session State
	owner          string
	repoFullName   string
	repoName       string
	branch         string
	availableRepos []github.Repository
	tree           []github.TreeEntry
	history        []string

	// Active review stream
	reviewChunks chan string
	reviewDone   chan error
	reviewPath   string
}

func initialModel(theme ThemeName) *model {
	styles := GetTheme(theme)
	ta := textarea.New()
	ta.Placeholder = "Enter command, e.g. /repos octocat"
	ta.Focus()
	ta.Prompt = styles.prompt.Render("► ")
	ta.CharLimit = 500
	ta.SetWidth(50)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	sp := spinner.New()
	sp.Spinner = spinner.Points
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))

	return &model{
		styles:    styles,
		textarea:  ta,
		spinner:   sp,
		isLoading: true,
		history:   []string{styles.ascii.Render(asciiLogo), "", "⚙ CONNECTING TO REVIEW PILOT SERVICES..."},
	}
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(initializeKitCmd(), m.spinner.Tick)
}

func (m *model) appendHistory(lines ...string) {
	m.history = append(m.history, lines...)
	m.viewport.SetContent(strings.Join(m.history, "\n"))
	m.viewport.GotoBottom()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		spCmd tea.Cmd
	)

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)
	m.spinner, spCmd = m.spinner.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			input := strings.TrimSpace(m.textarea.Value())
			if input == "" {
				return m, nil
			}

			m.textarea.Reset()
			return m, m.processCommand(input)
		}

	case kitInitializedMsg:
		m.isLoading = false
		if msg.err != nil {
			m.appendHistory("", m.styles.error.Render(msg.err.Error()))
			return m, nil
		}
		m.kit = msg.kit
		m.appendHistory("",
			m.styles.success.Render("✓ SYSTEM ONLINE"),
			"",
			"Type /repos [owner] to browse repositories, or /help for commands.")
		return m, nil

	case reposLoadedMsg:
		m.isLoading = false
		if msg.err != nil {
			m.appendHistory("", m.styles.error.Render("Could not load repositories: "+msg.err.Error()))
			return m, nil
		}
		m.owner = msg.owner
		m.availableRepos = msg.repos
		if len(m.availableRepos) == 0 {
			m.appendHistory("", m.styles.inactive.Render(fmt.Sprintf("No repositories found for '%s'.", msg.owner)))
			return m, nil
		}

		var b strings.Builder
		b.WriteString(m.styles.success.Render(fmt.Sprintf("REPOSITORIES OF %s:", strings.ToUpper(msg.owner))))
		for _, repo := range m.availableRepos {
			b.WriteString(fmt.Sprintf("\n  - %s %s", m.styles.prompt.Render(repo.FullName),
				m.styles.inactive.Render("("+repo.DefaultBranch+")")))
		}
		b.WriteString("\n\n" + m.styles.inactive.Render("Use '/select [name]' to open one."))
		m.appendHistory("", b.String())
		return m, nil

	case treeLoadedMsg:
		m.isLoading = false
		if msg.err != nil {
			m.appendHistory("", m.styles.error.Render("Could not load file tree: "+msg.err.Error()))
			return m, nil
		}
		m.tree = msg.entries
		m.branch = msg.ref
		m.appendHistory("", m.styles.success.Render(
			fmt.Sprintf("✓ Opened %s@%s (%d entries)", m.repoFullName, m.branch, len(m.tree))),
			m.styles.inactive.Render("Use '/ls [prefix]' to browse, '/view [path]' to read, '/review [path]' to review."))
		return m, nil

	case fileLoadedMsg:
		m.isLoading = false
		if msg.err != nil {
			m.appendHistory("", m.styles.error.Render("Could not load file: "+msg.err.Error()))
			return m, nil
		}
		m.appendHistory("", m.styles.success.Render("── "+msg.path+" ──"), msg.content)
		return m, nil

	case reviewStartedMsg:
		m.reviewChunks = msg.chunks
		m.reviewDone = msg.done
		m.reviewPath = msg.path
		m.appendHistory("", m.styles.success.Render("── REVIEW OF "+msg.path+" ──"), "")
		return m, waitForReviewChunkCmd(m.reviewChunks, m.reviewDone)

	case reviewChunkMsg:
		m.history[len(m.history)-1] += string(msg)
		m.viewport.SetContent(strings.Join(m.history, "\n"))
		m.viewport.GotoBottom()
		return m, waitForReviewChunkCmd(m.reviewChunks, m.reviewDone)

	case reviewDoneMsg:
		m.isLoading = false
		m.reviewChunks = nil
		m.reviewDone = nil
		if msg.err != nil {
			m.appendHistory("", m.styles.error.Render("REVIEW FAILED: "+msg.err.Error()))
			return m, nil
		}
		snap := m.kit.Controller.State().Snapshot()
		doneNote := fmt.Sprintf("✓ Review of %s complete.", m.reviewPath)
		if snap.ModifiedFile != "" {
			doneNote += " Suggestions were reconciled into a modified file view."
		}
		m.appendHistory("", m.styles.success.Render(doneNote))
		return m, nil

	case errorMsg:
		m.isLoading = false
		m.appendHistory("", m.styles.error.Render("⚠ "+msg.err.Error()))
		return m, nil

	case tea.WindowSizeMsg:
		m.styles.header.Width(msg.Width - 4)
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 10
		m.textarea.SetWidth(msg.Width - 10)
		m.viewport.SetContent(strings.Join(m.history, "\n"))
	}

	return m, tea.Batch(tiCmd, vpCmd, spCmd)
}

func (m *model) View() string {
	if m.kit == nil {
		return fmt.Sprintf("\n  %s BOOTING SYSTEM...\n\n", m.spinner.View())
	}

	var statusParts []string
	if m.repoFullName != "" {
		statusParts = append(statusParts, fmt.Sprintf("REPO: %s@%s", m.repoFullName, m.branch))
	} else {
		statusParts = append(statusParts, "REPO: None Selected")
	}

	cfg := m.kit.Cfg
	statusParts = append(statusParts, fmt.Sprintf("🤖 %s (%s)", cfg.AI.GeneratorModel, cfg.AI.Provider))

	status := m.styles.inactive.Render(strings.Join(statusParts, " │ "))

	var loadingIndicator string
	if m.isLoading {
		loadingIndicator = " " + m.spinner.View() + " " + m.styles.success.Render("PROCESSING...")
	}

	return m.styles.app.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.styles.viewport.Render(m.viewport.View()),
			"",
			m.styles.footer.Render(
				lipgloss.JoinHorizontal(lipgloss.Left,
					m.textarea.View(),
					loadingIndicator,
				),
			),
			status,
		),
	)
}

func (m *model) processCommand(input string) tea.Cmd {
	m.appendHistory(m.styles.prompt.Render("► ") + input)

	parts := strings.Fields(input)
	if len(parts) == 0 {
		return nil
	}
	command := parts[0]
	args := parts[1:]

	switch command {
	case "/repos":
		if len(args) != 1 {
			m.appendHistory(m.styles.error.Render("USAGE: /repos [owner]"))
			return nil
		}
		m.isLoading = true
		m.appendHistory("", m.styles.command.Render(fmt.Sprintf("→ Loading repositories of %s...", args[0])))
		return tea.Batch(m.spinner.Tick, loadReposCmd(m.kit, args[0]))

	case "/select":
		if len(args) != 1 {
			m.appendHistory(m.styles.error.Render("USAGE: /select [name]"))
			return nil
		}
		repo := m.findRepo(args[0])
		if repo == nil {
			m.appendHistory(m.styles.error.Render(
				fmt.Sprintf("Repository '%s' not found. Use /repos [owner] to load the list first.", args[0])))
			return nil
		}
		m.repoFullName = repo.FullName
		m.repoName = repo.Name
		m.branch = repo.DefaultBranch
		m.isLoading = true
		m.appendHistory("", m.styles.command.Render(fmt.Sprintf("→ Opening %s@%s...", repo.FullName, repo.DefaultBranch)))
		return tea.Batch(m.spinner.Tick, loadTreeCmd(m.kit, m.owner, m.repoName, m.branch))

	case "/branch":
		if len(args) != 1 {
			m.appendHistory(m.styles.error.Render("USAGE: /branch [name]"))
			return nil
		}
		if m.repoFullName == "" {
			m.appendHistory(m.styles.error.Render("No repository selected. Use /select first."))
			return nil
		}
		m.isLoading = true
		m.appendHistory("", m.styles.command.Render(fmt.Sprintf("→ Switching to branch %s...", args[0])))
		return tea.Batch(m.spinner.Tick, loadTreeCmd(m.kit, m.owner, m.repoName, args[0]))

	case "/ls":
		if len(m.tree) == 0 {
			m.appendHistory(m.styles.inactive.Render("No file tree loaded. Use /select to open a repository."))
			return nil
		}
		prefix := ""
		if len(args) > 0 {
			prefix = args[0]
		}
		var b strings.Builder
		b.WriteString(m.styles.success.Render("FILES:"))
		shown := 0
		for _, entry := range m.tree {
			if entry.Type != "blob" || !strings.HasPrefix(entry.Path, prefix) {
				continue
			}
			b.WriteString(fmt.Sprintf("\n  %s %s", entry.Path, m.styles.inactive.Render(fmt.Sprintf("(%d bytes)", entry.Size))))
			shown++
			if shown >= 100 {
				b.WriteString("\n  " + m.styles.inactive.Render("... narrowed to first 100 matches, refine the prefix"))
				break
			}
		}
		if shown == 0 {
			b.WriteString("\n  " + m.styles.inactive.Render("no matches"))
		}
		m.appendHistory("", b.String())
		return nil

	case "/view":
		if len(args) != 1 {
			m.appendHistory(m.styles.error.Render("USAGE: /view [path]"))
			return nil
		}
		if m.repoFullName == "" {
			m.appendHistory(m.styles.error.Render("No repository selected. Use /select first."))
			return nil
		}
		m.isLoading = true
		if sha := m.findBlobSHA(args[0]); sha != "" {
			return tea.Batch(m.spinner.Tick, loadBlobCmd(m.kit, m.owner, m.repoName, args[0], sha))
		}
		return tea.Batch(m.spinner.Tick, loadFileCmd(m.kit, m.owner, m.repoName, args[0], m.branch))

	case "/review":
		if len(args) < 1 {
			m.appendHistory(m.styles.error.Render("USAGE: /review [path] [agents...]"))
			return nil
		}
		if m.repoFullName == "" {
			m.appendHistory(m.styles.error.Render("No repository selected. Use /select first."))
			return nil
		}
		var agents []core.AgentType
		for _, name := range args[1:] {
			agent := core.AgentType(name)
			if !agent.Valid() {
				m.appendHistory(m.styles.error.Render(
					fmt.Sprintf("Unknown agent '%s'. Use /agents to see the available ones.", name)))
				return nil
			}
			agents = append(agents, agent)
		}
		m.isLoading = true
		if len(agents) > 0 {
			m.appendHistory("", m.styles.command.Render(
				fmt.Sprintf("→ Reviewing %s with %d specialized agents...", args[0], len(agents))))
		} else {
			m.appendHistory("", m.styles.command.Render(fmt.Sprintf("→ Reviewing %s...", args[0])))
		}
		return tea.Batch(m.spinner.Tick, startReviewCmd(m.kit, m.owner, m.repoName, m.branch, args[0], agents))

	case "/agents":
		var b strings.Builder
		b.WriteString(m.styles.success.Render("AVAILABLE AGENTS:"))
		for _, agent := range core.AllAgentTypes() {
			b.WriteString(fmt.Sprintf("\n  %s  %s", m.styles.prompt.Render(string(agent)), agent.Label()))
		}
		m.appendHistory("", b.String())
		return nil

	case "/help", "/h":
		helpText := m.styles.success.Render("AVAILABLE COMMANDS:") + `

  /repos [owner]            Load the repositories of a GitHub user.
  /select [name]            Open a repository at its default branch.
  /branch [name]            Switch the active branch.
  /ls [prefix]              List files, optionally filtered by path prefix.
  /view [path]              Show the content of a file.
  /review [path] [agents]   Review a file; extra args select specialized agents.
  /agents                   List the specialized review agents.
  /help                     Show this help message.
  /exit, /quit              Exit Review Pilot.

  ` + m.styles.inactive.Render("TIP: /review src/api/users.ts security logic runs two agents and merges their findings")
		m.appendHistory("", helpText)
		return nil

	case "/exit", "/quit":
		return tea.Quit

	default:
		m.appendHistory("",
			m.styles.error.Render(fmt.Sprintf("UNKNOWN COMMAND: %s", command)),
			m.styles.inactive.Render("Type /help for assistance."))
		return nil
	}
}

// findBlobSHA resolves a path to its blob SHA from the loaded tree so the
// file can be fetched directly, without a second path lookup.
func (m *model) findBlobSHA(path string) string {
	for _, entry := range m.tree {
		if entry.Type == "blob" && entry.Path == path {
			return entry.SHA
		}
	}
	return ""
}

func (m *model) findRepo(name string) *github.Repository {
	for i := range m.availableRepos {
		if m.availableRepos[i].FullName == name || m.availableRepos[i].Name == name {
			return &m.availableRepos[i]
		}
	}
	return nil
}
