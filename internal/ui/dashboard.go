package ui

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/adrsh79086/adarsh-contractor-frontend/internal/model"
)

// showDashboard greets the user and, for admins, renders the server-computed
// aggregates. Returns true when the session was lost.
func (ui *UI) showDashboard(ctx context.Context, user model.User) bool {
	fmt.Fprintf(ui.out, "\nWelcome back, %s!\n", user.Username)
	fmt.Fprintf(ui.out, "Role: %s\n", user.Role)

	if !user.IsAdmin() {
		return false
	}

	fmt.Fprintln(ui.out, "Loading stats...")
	stats, err := ui.admin.Stats(ctx)
	if err != nil {
		if ui.sessionLost(err) {
			return true
		}
		// Degrade to the greeting only; the fetch failure is already logged
		// by the service.
		log.Debug().Err(err).Msg("dashboard stats unavailable")
		return false
	}

	ui.printStats(*stats)
	return false
}

func (ui *UI) printStats(stats model.DashboardStats) {
	fmt.Fprintf(ui.out, "\nTotal Employees:   %d\n", stats.TotalEmployees)
	fmt.Fprintf(ui.out, "Pending Approvals: %d\n", stats.PendingApprovals)
	fmt.Fprintf(ui.out, "Total Salary:      %s\n", Rupees(stats.TotalSalary))
	fmt.Fprintf(ui.out, "Total Advances:    %s\n", Rupees(stats.TotalAdvances))
}
