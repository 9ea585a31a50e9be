package ui

import (
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ukm/parcel/internal/session"
	"github.com/ukm/parcel/internal/state"
)

const (
	fieldUser = iota
	fieldSecret
	fieldCount
)

type loginState struct {
	inputs  [fieldCount]textinput.Model
	focused int
	pending bool
}

func newLoginState() loginState {
	user := textinput.New()
	user.Placeholder = "usuario"
	user.CharLimit = 64
	user.Width = 32
	user.Prompt = ""

	secret := textinput.New()
	secret.Placeholder = "contraseña"
	secret.CharLimit = 64
	secret.Width = 32
	secret.Prompt = ""
	secret.EchoMode = textinput.EchoPassword
	secret.EchoCharacter = '•'

	s := loginState{inputs: [fieldCount]textinput.Model{user, secret}}
	s.focus()
	return s
}

// focus moves the cursor to the focused field and blurs the other.
func (s *loginState) focus() tea.Cmd {
	var cmd tea.Cmd
	for i := range s.inputs {
		if i == s.focused {
			cmd = s.inputs[i].Focus()
		} else {
			s.inputs[i].Blur()
		}
	}
	return cmd
}

// reset clears both fields and returns focus to the user name.
func (s *loginState) reset() {
	for i := range s.inputs {
		s.inputs[i].Reset()
	}
	s.focused = fieldUser
	s.pending = false
	s.focus()
}

func (s loginState) credentials() session.Credentials {
	return session.Credentials{
		User:   strings.TrimSpace(s.inputs[fieldUser].Value()),
		Secret: s.inputs[fieldSecret].Value(),
	}
}

// handleLoginKey handles the sign-in form.
func (m Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		creds := m.login.credentials()
		if m.login.focused == fieldUser && creds.User != "" && creds.Secret == "" {
			m.login.focused = fieldSecret
			cmd := m.login.focus()
			return m, cmd
		}
		return m.submitLogin()

	case key.Matches(msg, m.keys.Tab), msg.String() == "down":
		m.login.focused = (m.login.focused + 1) % fieldCount
		cmd := m.login.focus()
		return m, cmd

	case key.Matches(msg, m.keys.ShiftTab), msg.String() == "up":
		m.login.focused = (m.login.focused - 1 + fieldCount) % fieldCount
		cmd := m.login.focus()
		return m, cmd

	case key.Matches(msg, m.keys.Forgot):
		cmd := m.notify("Te enviamos un enlace para recuperar tu contraseña.")
		return m, cmd

	case key.Matches(msg, m.keys.Register):
		cmd := m.notify("El registro estará disponible pronto.")
		return m, cmd

	case key.Matches(msg, m.keys.Social):
		cmd := m.notify("Inicio de sesión con Google no disponible.")
		return m, cmd

	case msg.String() == "esc":
		return m, nil
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focused], cmd = m.login.inputs[m.login.focused].Update(msg)
	return m, cmd
}

// submitLogin validates locally and authenticates in the background.
// Blank fields are rejected by the store without calling the authenticator.
func (m Model) submitLogin() (tea.Model, tea.Cmd) {
	if m.login.pending {
		return m, nil
	}
	creds := m.login.credentials()
	if err := creds.Validate(); err != nil {
		cmd := m.dispatch(state.Login{Credentials: creds})
		return m, cmd
	}
	m.login.pending = true
	return m, authenticateCmd(m.ctx, m.auth, creds, m.requestTimeout)
}

func (m Model) handleAuthResult(msg authResultMsg) (tea.Model, tea.Cmd) {
	m.login.pending = false
	if msg.err != nil {
		log.Printf("sign-in failed: %v", msg.err)
		m.login.inputs[fieldSecret].Reset()
		cmd := m.notify(state.Notice(msg.err))
		return m, cmd
	}
	cmd := m.dispatch(state.SessionStarted{Identity: msg.identity})
	return m, cmd
}

// renderLogin renders the sign-in card centered on screen.
func (m Model) renderLogin() string {
	styles := m.theme.Styles()

	label := func(i int, text string) string {
		if m.login.focused == i {
			return styles.AccentText.Bold(true).Render(text)
		}
		return styles.MutedText.Render(text)
	}

	var b strings.Builder
	b.WriteString(styles.Logo.Render(appName))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Sigue tus pedidos en un solo lugar"))
	b.WriteString(m.gap())

	b.WriteString(label(fieldUser, "Usuario"))
	b.WriteString("\n")
	b.WriteString(m.login.inputs[fieldUser].View())
	b.WriteString(m.gap())

	b.WriteString(label(fieldSecret, "Contraseña"))
	b.WriteString("\n")
	b.WriteString(m.login.inputs[fieldSecret].View())
	b.WriteString(m.gap())

	if m.login.pending {
		b.WriteString(styles.WarningText.Render("Verificando..."))
	} else {
		b.WriteString(styles.AccentText.Render("enter") + " " + styles.Text.Render("Iniciar sesión"))
	}
	b.WriteString("\n\n")

	for _, k := range []key.Binding{m.keys.Forgot, m.keys.Register, m.keys.Social} {
		h := k.Help()
		b.WriteString(styles.FaintText.Render(h.Key+"  "+h.Desc) + "\n")
	}

	card := styles.Modal.Width(44).Render(b.String())
	if toast := m.renderToast(); toast != "" {
		card = lipgloss.JoinVertical(lipgloss.Center, card, toast)
	}

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		card,
		lipgloss.WithWhitespaceChars(" "),
	)
}
