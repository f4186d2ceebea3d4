package initui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/eduardofuncao/connstring/internal/engine"
	"github.com/eduardofuncao/connstring/internal/styles"
)

const (
	fieldName = iota
	fieldEngine
	fieldHost
	fieldPort
	fieldDatabase
	fieldUser
	fieldTimeout
	fieldSecurity
	fieldCount
)

const (
	securityNone = iota
	securityEncrypt
	securityEncryptTrust
)

var securityLabels = []string{"none", "encrypt", "encrypt + trust certificate"}

var fieldLabels = [fieldCount]string{
	fieldName:     "Profile name",
	fieldEngine:   "Engine",
	fieldHost:     "Host",
	fieldPort:     "Port",
	fieldDatabase: "Database",
	fieldUser:     "User",
	fieldTimeout:  "Connect timeout (s)",
	fieldSecurity: "Security",
}

var ErrAborted = errors.New("init input aborted")

type InitInputModel struct {
	inputs      [fieldCount]textinput.Model // engine and security slots are unused
	engine      string
	engines     []string
	security    int
	cursorIndex int
	err         error
	aborted     bool
	submitted   bool
}

func NewInitInputModel(name, engineName string, p engine.Params) InitInputModel {
	m := InitInputModel{
		engines: engine.GetSupportedEngines(),
	}
	if normalized, err := engine.Normalize(engineName); err == nil {
		m.engine = normalized
	}

	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 256
		m.inputs[i] = ti
	}
	m.inputs[fieldPort].CharLimit = 5
	m.inputs[fieldTimeout].CharLimit = 10

	m.inputs[fieldName].SetValue(name)
	m.inputs[fieldHost].SetValue(p.Host)
	m.inputs[fieldDatabase].SetValue(p.Database)
	m.inputs[fieldUser].SetValue(p.User)
	if p.Port != 0 {
		m.inputs[fieldPort].SetValue(strconv.FormatUint(uint64(p.Port), 10))
	}
	if p.ConnectTimeout != 0 {
		m.inputs[fieldTimeout].SetValue(strconv.FormatUint(uint64(p.ConnectTimeout), 10))
	}

	switch {
	case p.TrustServerCertificate:
		m.security = securityEncryptTrust
	case p.Encrypt:
		m.security = securityEncrypt
	}

	m.updatePlaceholders()
	m.focus(fieldName)
	return m
}

func (m InitInputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m InitInputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateFocusedInput(msg)
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		m.aborted = true
		return m, tea.Quit

	case "enter":
		if field, err := m.validate(); err != nil {
			m.err = err
			m.focus(field)
			return m, nil
		}
		m.err = nil
		m.submitted = true
		return m, tea.Quit

	case "down", "tab":
		if m.cursorIndex < fieldCount-1 {
			m.focus(m.cursorIndex + 1)
		}
		return m, nil

	case "up", "shift+tab":
		if m.cursorIndex > fieldName {
			m.focus(m.cursorIndex - 1)
		}
		return m, nil

	case "right":
		if m.cycle(1) {
			return m, nil
		}

	case "left":
		if m.cycle(-1) {
			return m, nil
		}
	}

	switch m.cursorIndex {
	case fieldEngine:
		m.selectEngineByNumber(keyMsg.String())
		return m, nil
	case fieldSecurity:
		return m, nil
	}

	return m.updateFocusedInput(msg)
}

func (m InitInputModel) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.cursorIndex == fieldEngine || m.cursorIndex == fieldSecurity {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.cursorIndex], cmd = m.inputs[m.cursorIndex].Update(msg)
	return m, cmd
}

func (m *InitInputModel) focus(field int) {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.cursorIndex = field
	if field != fieldEngine && field != fieldSecurity {
		m.inputs[field].Focus()
		m.inputs[field].CursorEnd()
	}
}

// cycle steps through the options of the engine or security field.
// It reports whether the focused field is one of them.
func (m *InitInputModel) cycle(dir int) bool {
	switch m.cursorIndex {
	case fieldEngine:
		m.cycleEngine(dir)
		return true
	case fieldSecurity:
		m.security = (m.security + dir + len(securityLabels)) % len(securityLabels)
		return true
	}
	return false
}

func (m *InitInputModel) cycleEngine(dir int) {
	if len(m.engines) == 0 {
		return
	}

	currentIdx := -1
	for i, e := range m.engines {
		if e == m.engine {
			currentIdx = i
			break
		}
	}

	if currentIdx == -1 {
		m.engine = m.engines[0]
	} else {
		newIdx := (currentIdx + dir + len(m.engines)) % len(m.engines)
		m.engine = m.engines[newIdx]
	}
	m.updatePlaceholders()
}

func (m *InitInputModel) selectEngineByNumber(key string) {
	if len(key) != 1 || key < "1" || key > "9" {
		return
	}
	idx := int(key[0] - '1')
	if idx < len(m.engines) {
		m.engine = m.engines[idx]
		m.updatePlaceholders()
	}
}

func (m *InitInputModel) updatePlaceholders() {
	m.inputs[fieldPort].Placeholder = "default"
	if m.engine != "" {
		m.inputs[fieldPort].Placeholder = fmt.Sprintf("%d", engine.DefaultPort(m.engine))
	}
	m.inputs[fieldTimeout].Placeholder = "none"
}

// validate returns the first field that blocks submission.
func (m InitInputModel) validate() (int, error) {
	if strings.TrimSpace(m.inputs[fieldName].Value()) == "" {
		return fieldName, errors.New("profile name is required")
	}
	if m.engine == "" {
		return fieldEngine, errors.New("select an engine")
	}
	if _, err := parsePort(m.inputs[fieldPort].Value()); err != nil {
		return fieldPort, err
	}
	if _, err := parseTimeout(m.inputs[fieldTimeout].Value()); err != nil {
		return fieldTimeout, err
	}
	return m.cursorIndex, nil
}

func parsePort(s string) (uint16, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	port, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("port must be a number between 0 and 65535: %q", s)
	}
	return uint16(port), nil
}

func parseTimeout(s string) (uint, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	timeout, err := strconv.ParseUint(s, 10, 0)
	if err != nil {
		return 0, fmt.Errorf("connect timeout must be a whole number of seconds: %q", s)
	}
	return uint(timeout), nil
}

func (m InitInputModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Create connection profile"))
	b.WriteString("\n")

	for field := fieldName; field < fieldCount; field++ {
		switch field {
		case fieldEngine:
			m.renderChoice(&b, field, m.engine, m.engines)
		case fieldSecurity:
			m.renderChoice(&b, field, securityLabels[m.security], securityLabels)
		default:
			m.renderField(&b, field)
		}
	}

	if m.err != nil {
		b.WriteString(styles.Error.Render("✗ " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.Faint.Render("↑/↓: move  ←/→: move cursor/cycle option  Enter: submit  Esc: cancel"))

	return b.String()
}

func (m InitInputModel) label(field int) string {
	focused := field == m.cursorIndex
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(styles.ActiveScheme.Muted))
	suffix := "   "
	if focused {
		style = lipgloss.NewStyle().
			Foreground(lipgloss.Color(styles.ActiveScheme.Primary)).
			Bold(true)
		suffix = " > "
	}
	return style.Render(fmt.Sprintf("%-20s", fieldLabels[field]) + suffix)
}

func (m InitInputModel) renderField(b *strings.Builder, field int) {
	b.WriteString(m.label(field))
	if field == m.cursorIndex {
		b.WriteString(m.inputs[field].View())
	} else {
		value := m.inputs[field].Value()
		if value == "" {
			value = m.inputs[field].Placeholder
		}
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(styles.ActiveScheme.Muted)).
			Render(value))
	}
	b.WriteString("\n")
}

func (m InitInputModel) renderChoice(b *strings.Builder, field int, current string, options []string) {
	b.WriteString(m.label(field))

	displayValue := current
	if displayValue == "" {
		displayValue = "<select>"
	}

	if field != m.cursorIndex {
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(styles.ActiveScheme.Muted)).
			Render(displayValue))
		b.WriteString("\n")
		return
	}

	b.WriteString(displayValue + " ▼\n")
	b.WriteString(styles.Faint.Render("  Available: "))
	for i, o := range options {
		if i > 0 {
			b.WriteString(styles.Faint.Render(", "))
		}
		if o == current {
			b.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(styles.ActiveScheme.Primary)).
				Bold(true).
				Render(o))
		} else {
			b.WriteString(styles.Faint.Render(o))
		}
	}
	b.WriteString("\n")
}

func (m InitInputModel) WasAborted() bool {
	return m.aborted
}

// Result returns the collected profile. It fails when the form holds
// values that do not validate.
func (m InitInputModel) Result() (string, string, engine.Params, error) {
	if _, err := m.validate(); err != nil {
		return "", "", engine.Params{}, err
	}

	port, _ := parsePort(m.inputs[fieldPort].Value())
	timeout, _ := parseTimeout(m.inputs[fieldTimeout].Value())

	p := engine.Params{
		Host:                   strings.TrimSpace(m.inputs[fieldHost].Value()),
		Port:                   port,
		Database:               strings.TrimSpace(m.inputs[fieldDatabase].Value()),
		User:                   strings.TrimSpace(m.inputs[fieldUser].Value()),
		ConnectTimeout:         timeout,
		Encrypt:                m.security != securityNone,
		TrustServerCertificate: m.security == securityEncryptTrust,
	}
	return strings.TrimSpace(m.inputs[fieldName].Value()), m.engine, p, nil
}

// CollectInitParameters runs the form pre-filled with the given values.
func CollectInitParameters(name, engineName string, p engine.Params) (string, string, engine.Params, error) {
	model := NewInitInputModel(name, engineName, p)
	program := tea.NewProgram(model)

	finalModel, err := program.Run()
	if err != nil {
		return "", "", engine.Params{}, err
	}

	inputModel := finalModel.(InitInputModel)
	if inputModel.WasAborted() {
		return "", "", engine.Params{}, ErrAborted
	}

	name, engineName, params, err := inputModel.Result()
	if err != nil {
		return "", "", engine.Params{}, err
	}
	params.SSLMode = p.SSLMode
	params.Extra = p.Extra
	return name, engineName, params, nil
}
