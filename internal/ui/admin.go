package ui

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/adrsh79086/adarsh-contractor-frontend/internal/apierror"
	"github.com/adrsh79086/adarsh-contractor-frontend/internal/model"
	"github.com/adrsh79086/adarsh-contractor-frontend/internal/service"
)

// statusFilters maps menu input to the admin listing filter. Empty means all.
var statusFilters = map[string]model.Status{
	"1": "",
	"2": model.StatusPending,
	"3": model.StatusApproved,
	"4": model.StatusRejected,
}

// adminPanel is the admin surface: aggregates, status-filtered listing,
// approve/reject, and exports. Every filter change and every successful
// mutation re-fetches both the listing and the stats. Returns true when the
// session was lost.
func (ui *UI) adminPanel(ctx context.Context) bool {
	var filter model.Status
	for {
		fmt.Fprintln(ui.out, "\nLoading admin panel...")
		overview, err := ui.admin.Overview(ctx, filter)
		if err != nil {
			if ui.sessionLost(err) {
				return true
			}
			if errors.Is(err, apierror.ErrForbidden) {
				fmt.Fprintln(ui.out, "Access Denied. Admin privileges required.")
				return false
			}
			fmt.Fprintln(ui.out, "Could not load admin panel.")
			overview = &service.Overview{}
		}

		ui.printStats(overview.Stats)
		ui.printAdminList(overview.Employees, filter)

		fmt.Fprintln(ui.out, "\nf) filter by status  a) approve  j) reject")
		fmt.Fprintln(ui.out, "c) export CSV  x) export XLSX  p) print PDF  r) refresh  0) back")

		switch ui.prompt("> ") {
		case "f":
			fmt.Fprintln(ui.out, "1) All  2) Pending  3) Approved  4) Rejected")
			if status, ok := statusFilters[ui.prompt("> ")]; ok {
				filter = status
			}
		case "a":
			if emp, ok := ui.pickEmployee(overview.Employees); ok {
				if err := ui.admin.Approve(ctx, emp); err != nil {
					if ui.sessionLost(err) {
						return true
					}
					fmt.Fprintln(ui.out, "Failed to approve employee:", err)
				}
			}
		case "j":
			if emp, ok := ui.pickEmployee(overview.Employees); ok {
				if _, err := ui.admin.Reject(ctx, emp); err != nil {
					if ui.sessionLost(err) {
						return true
					}
					fmt.Fprintln(ui.out, "Failed to reject employee:", err)
				}
			}
		case "c":
			ui.runExport(ctx, "CSV", ui.admin.ExportCSV)
		case "x":
			ui.runExport(ctx, "XLSX", ui.admin.ExportXLSX)
		case "p":
			ui.runExport(ctx, "PDF", ui.admin.ExportPDF)
		case "r":
			// loop re-fetches
		case "0":
			return false
		}
	}
}

func (ui *UI) printAdminList(employees []model.Employee, filter model.Status) {
	if filter != "" {
		fmt.Fprintf(ui.out, "\nFilter: %s\n", filter)
	}
	if len(employees) == 0 {
		fmt.Fprintln(ui.out, "No employees match the current filter criteria.")
		return
	}
	w := tabwriter.NewWriter(ui.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tName\tAge\tMobile\tUAN\tAadhaar\tBank\tSalary\tAdvance\tStatus\tActions")
	for i, emp := range employees {
		actions := "-"
		if emp.Status == model.StatusPending {
			// Approve/reject are only offered while the record is pending.
			actions = "approve/reject"
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			i+1, emp.Name, emp.Age, emp.MobileNumber, emp.UANNumber,
			emp.AadhaarNumber, emp.BankName,
			Rupees(emp.SalaryAmount), Rupees(emp.AdvanceAmount),
			StatusBadge(emp.Status), actions)
	}
	_ = w.Flush()
}

func (ui *UI) runExport(ctx context.Context, kind string, export func(context.Context, string) (string, error)) {
	fmt.Fprintf(ui.out, "Exporting %s...\n", kind)
	path, err := export(ctx, ui.exportDir)
	if err != nil {
		fmt.Fprintln(ui.out, "Failed to export data:", err)
		return
	}
	fmt.Fprintln(ui.out, "Saved", path)
}
