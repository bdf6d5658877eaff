package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ainatrbl/aina/internal/auth"
	"github.com/ainatrbl/aina/internal/nav"
)

// authForm drives the welcome/login/signup flow. Signup is two-step: roster
// eligibility first, then password choice.
type authForm struct {
	welcomeCursor int
	step          int
	inputs        []textinput.Model
	focus         int
	busy          bool
	errLine       string
	eligibility   auth.Eligibility
}

func (f *authForm) beginLogin(demoMode bool) {
	id := textinput.New()
	id.Placeholder = "PPMK ID"
	id.CharLimit = 40
	id.Width = 32
	pw := textinput.New()
	pw.Placeholder = "Password"
	pw.CharLimit = 72
	pw.Width = 32
	pw.EchoMode = textinput.EchoPassword
	if demoMode {
		id.SetValue("demo")
		pw.SetValue("demo123")
	}
	*f = authForm{inputs: []textinput.Model{id, pw}}
	f.inputs[0].Focus()
}

func (f *authForm) beginSignup() {
	id := textinput.New()
	id.Placeholder = "PPMK ID"
	id.CharLimit = 40
	id.Width = 32
	ic := textinput.New()
	ic.Placeholder = "National ID (IC number)"
	ic.CharLimit = 20
	ic.Width = 32
	*f = authForm{inputs: []textinput.Model{id, ic}}
	f.inputs[0].Focus()
}

// beginPasswordStep swaps in the password fields once eligibility verified.
func (f *authForm) beginPasswordStep(el auth.Eligibility) {
	pw := textinput.New()
	pw.Placeholder = "Choose a password (min 6 chars)"
	pw.CharLimit = 72
	pw.Width = 32
	pw.EchoMode = textinput.EchoPassword
	confirm := textinput.New()
	confirm.Placeholder = "Confirm password"
	confirm.CharLimit = 72
	confirm.Width = 32
	confirm.EchoMode = textinput.EchoPassword
	f.step = 1
	f.eligibility = el
	f.inputs = []textinput.Model{pw, confirm}
	f.focus = 0
	f.errLine = ""
	f.inputs[0].Focus()
}

func (f *authForm) cycleFocus(delta int) {
	if len(f.inputs) == 0 {
		return
	}
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *authForm) updateFocused(msg tea.Msg) tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (a *App) updateWelcome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k", "down", "j", "tab":
		a.authForm.welcomeCursor = 1 - a.authForm.welcomeCursor
	case "enter":
		if a.authForm.welcomeCursor == 0 {
			a.authForm.beginLogin(a.cfg.UI.DemoMode)
			a.nav.Select(nav.ScreenLogin)
		} else {
			a.authForm.beginSignup()
			a.nav.Select(nav.ScreenSignup)
		}
	case "q":
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := &a.authForm
	switch msg.String() {
	case "esc":
		a.nav.GoBack()
		*f = authForm{}
		return a, nil
	case "tab", "down":
		f.cycleFocus(1)
		return a, nil
	case "shift+tab", "up":
		f.cycleFocus(-1)
		return a, nil
	case "enter":
		if f.busy {
			// A sign-in is already in flight; ignore re-submission.
			return a, nil
		}
		if f.focus < len(f.inputs)-1 {
			f.cycleFocus(1)
			return a, nil
		}
		id := strings.TrimSpace(f.inputs[0].Value())
		pw := f.inputs[1].Value()
		if id == "" || pw == "" {
			f.errLine = "Please enter your PPMK ID and password"
			return a, nil
		}
		f.busy = true
		f.errLine = ""
		return a, a.signIn(id, pw)
	}
	return a, f.updateFocused(msg)
}

func (a *App) updateSignup(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := &a.authForm
	switch msg.String() {
	case "esc":
		a.nav.GoBack()
		*f = authForm{}
		return a, nil
	case "tab", "down":
		f.cycleFocus(1)
		return a, nil
	case "shift+tab", "up":
		f.cycleFocus(-1)
		return a, nil
	case "enter":
		if f.busy {
			return a, nil
		}
		if f.focus < len(f.inputs)-1 {
			f.cycleFocus(1)
			return a, nil
		}
		if f.step == 0 {
			id := strings.TrimSpace(f.inputs[0].Value())
			ic := strings.TrimSpace(f.inputs[1].Value())
			if id == "" || ic == "" {
				f.errLine = "Please enter your PPMK ID and IC number"
				return a, nil
			}
			f.busy = true
			f.errLine = ""
			return a, a.verifyEligibility(id, ic)
		}
		pw := f.inputs[0].Value()
		confirm := f.inputs[1].Value()
		if len(pw) < auth.MinPasswordLen {
			f.errLine = "Password must be at least 6 characters long"
			return a, nil
		}
		if pw != confirm {
			f.errLine = "Passwords do not match"
			return a, nil
		}
		f.busy = true
		f.errLine = ""
		return a, a.signUp(f.eligibility.PPMKID, pw)
	}
	return a, f.updateFocused(msg)
}

func (a *App) viewWelcome() string {
	options := []string{"Log in", "Sign up"}
	var b strings.Builder
	b.WriteString(titleStyle.Render("AINA") + "\n")
	b.WriteString(statusStyle.Render("PPMK · Malaysian Students in Korea") + "\n\n")
	for i, opt := range options {
		prefix := "  "
		line := opt
		if i == a.authForm.welcomeCursor {
			prefix = cursorStyle.Render("> ")
			line = cursorStyle.Render(opt)
		}
		b.WriteString(prefix + line + "\n")
	}
	b.WriteString("\n" + dimStyle.Render(renderHelp(a.keys.formHelp())))
	return a.centered(boxStyle.Render(b.String()))
}

func (a *App) viewLogin() string {
	f := &a.authForm
	var b strings.Builder
	b.WriteString(titleStyle.Render("LOG IN") + "\n")
	b.WriteString(statusStyle.Render("Welcome back to PPMK apps") + "\n\n")
	for i := range f.inputs {
		b.WriteString(f.inputs[i].View() + "\n")
	}
	b.WriteString(a.formStatusLine("Signing in..."))
	return a.centered(boxStyle.Render(b.String()))
}

func (a *App) viewSignup() string {
	f := &a.authForm
	var b strings.Builder
	b.WriteString(titleStyle.Render("SIGN UP") + "\n")
	if f.step == 0 {
		b.WriteString(statusStyle.Render("Verify your PPMK membership first") + "\n\n")
	} else {
		b.WriteString(successStyle.Render("Verified: "+f.eligibility.FullName) +
			statusStyle.Render(" · "+f.eligibility.University) + "\n\n")
	}
	for i := range f.inputs {
		b.WriteString(f.inputs[i].View() + "\n")
	}
	busyText := "Checking eligibility..."
	if f.step == 1 {
		busyText = "Creating account..."
	}
	b.WriteString(a.formStatusLine(busyText))
	return a.centered(boxStyle.Render(b.String()))
}

func (a *App) formStatusLine(busyText string) string {
	f := &a.authForm
	out := "\n"
	switch {
	case f.busy:
		out += statusStyle.Render(busyText)
	case f.errLine != "":
		out += errorStyle.Render(f.errLine)
	default:
		out += dimStyle.Render(renderHelp(a.keys.formHelp()))
	}
	return out
}

func (a *App) centered(content string) string {
	if a.width == 0 || a.height == 0 {
		return content
	}
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, content)
}
