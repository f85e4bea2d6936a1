// Package ui is the interactive terminal front-end: an auth menu, the
// employee directory, and the admin panel, all driven by a single input
// loop. Views hold no state of their own: every render re-fetches from the
// collaborator API.
package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/adrsh79086/adarsh-contractor-frontend/internal/apierror"
	"github.com/adrsh79086/adarsh-contractor-frontend/internal/model"
	"github.com/adrsh79086/adarsh-contractor-frontend/internal/service"
)

type UI struct {
	sessions  service.SessionService
	directory service.DirectoryService
	admin     service.AdminService
	exportDir string

	in  *bufio.Reader
	out io.Writer
}

func New(sessions service.SessionService, directory service.DirectoryService, admin service.AdminService, exportDir string, in *bufio.Reader, out io.Writer) *UI {
	return &UI{
		sessions:  sessions,
		directory: directory,
		admin:     admin,
		exportDir: exportDir,
		in:        in,
		out:       out,
	}
}

// NewConfirmer builds the confirmation prompt used for destructive actions
// (reject, delete). Anything other than y/yes aborts.
func NewConfirmer(in *bufio.Reader, out io.Writer) service.Confirmer {
	return func(prompt string) bool {
		fmt.Fprint(out, prompt+" (y/N): ")
		line, _ := in.ReadString('\n')
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes"
	}
}

// Run drives the whole client: resume the stored session, then loop between
// the auth menu and the session menu until the user quits or ctx ends.
func (ui *UI) Run(ctx context.Context) error {
	fmt.Fprintln(ui.out, "Adarsh Contractor - Employee Records")

	user, err := ui.sessions.Resume(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("session resume failed")
	}

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if user == nil {
			user = ui.authMenu(ctx)
			if user == nil {
				return nil // quit
			}
			fmt.Fprintf(ui.out, "\nWelcome back, %s!\n", user.Username)
		}
		ui.sessionMenu(ctx, *user)
		user = nil
	}
}

func (ui *UI) authMenu(ctx context.Context) *model.User {
	for {
		fmt.Fprintln(ui.out, "\n1) Login")
		fmt.Fprintln(ui.out, "2) Sign up")
		fmt.Fprintln(ui.out, "0) Quit")
		switch ui.prompt("> ") {
		case "1":
			if user := ui.handleLogin(ctx); user != nil {
				return user
			}
		case "2":
			if user := ui.handleSignup(ctx); user != nil {
				return user
			}
		case "0":
			return nil
		}
	}
}

func (ui *UI) handleLogin(ctx context.Context) *model.User {
	username := ui.prompt("Username: ")
	password := ui.prompt("Password: ")
	user, err := ui.sessions.Login(ctx, username, password)
	if err != nil {
		fmt.Fprintln(ui.out, "Login failed:", err)
		return nil
	}
	return user
}

func (ui *UI) handleSignup(ctx context.Context) *model.User {
	username := ui.prompt("Username: ")
	email := ui.prompt("Email: ")
	password := ui.prompt("Password: ")
	user, err := ui.sessions.Signup(ctx, username, email, password)
	if err != nil {
		fmt.Fprintln(ui.out, "Signup failed:", err)
		return nil
	}
	return user
}

// sessionMenu returns when the session ends (logout or credential
// rejected), sending Run back to the auth menu.
func (ui *UI) sessionMenu(ctx context.Context, user model.User) {
	for {
		fmt.Fprintln(ui.out, "\n1) Dashboard")
		fmt.Fprintln(ui.out, "2) Employees")
		if user.IsAdmin() {
			fmt.Fprintln(ui.out, "3) Admin Panel")
		}
		fmt.Fprintln(ui.out, "0) Logout")
		switch ui.prompt("> ") {
		case "1":
			if ui.showDashboard(ctx, user) {
				return
			}
		case "2":
			if ui.directoryView(ctx, user) {
				return
			}
		case "3":
			// Role-gated even when selected directly: non-admins get an
			// access-denied state, not a redirect.
			if !user.IsAdmin() {
				fmt.Fprintln(ui.out, "Access Denied. Admin privileges required.")
				continue
			}
			if ui.adminPanel(ctx) {
				return
			}
		case "0":
			if err := ui.sessions.Logout(); err != nil {
				log.Error().Err(err).Msg("logout")
			}
			return
		}
	}
}

// sessionLost reports (and handles) a rejected credential. All other errors
// are surfaced to the operator without ending the session.
func (ui *UI) sessionLost(err error) bool {
	if errors.Is(err, apierror.ErrUnauthorized) {
		fmt.Fprintln(ui.out, "Session expired. Please log in again.")
		_ = ui.sessions.Logout()
		return true
	}
	return false
}

func (ui *UI) prompt(label string) string {
	fmt.Fprint(ui.out, label)
	line, err := ui.in.ReadString('\n')
	if err != nil && line == "" {
		// Input closed; behave like "back/quit" so the loops unwind.
		return "0"
	}
	return strings.TrimSpace(line)
}
