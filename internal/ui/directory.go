package ui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/adrsh79086/adarsh-contractor-frontend/internal/api"
	"github.com/adrsh79086/adarsh-contractor-frontend/internal/apierror"
	"github.com/adrsh79086/adarsh-contractor-frontend/internal/form"
	"github.com/adrsh79086/adarsh-contractor-frontend/internal/model"
)

// directoryView is the employee directory: server-filtered listing, create,
// edit, delete, and approve/reject on pending records. Every filter change
// and every successful mutation re-fetches the list. Returns true when the
// session was lost.
func (ui *UI) directoryView(ctx context.Context, user model.User) bool {
	filter := api.Filter{}
	for {
		fmt.Fprintln(ui.out, "\nLoading employees...")
		employees, err := ui.directory.List(ctx, filter)
		if err != nil {
			if ui.sessionLost(err) {
				return true
			}
			// Degraded view: show an empty listing, keep the menu alive.
			fmt.Fprintln(ui.out, "Could not load employees.")
			employees = nil
		}
		ui.printDirectory(employees, filter)

		fmt.Fprintln(ui.out, "\ns) search  u) filter by UAN  a) add  e) edit  d) delete")
		if user.IsAdmin() {
			fmt.Fprintln(ui.out, "v) approve  x) reject")
		}
		fmt.Fprintln(ui.out, "r) refresh  0) back")

		switch ui.prompt("> ") {
		case "s":
			filter.Search = ui.prompt("Search by name, mobile, Aadhaar (empty to clear): ")
		case "u":
			filter.UAN = ui.prompt("UAN number (empty to clear): ")
		case "a":
			ui.runForm(ctx, form.NewCreate())
		case "e":
			if emp, ok := ui.pickEmployee(employees); ok {
				ui.runForm(ctx, form.NewEdit(emp))
			}
		case "d":
			if emp, ok := ui.pickEmployee(employees); ok {
				if _, err := ui.directory.Delete(ctx, emp.ID); err != nil {
					if ui.sessionLost(err) {
						return true
					}
					fmt.Fprintln(ui.out, "Failed to delete employee:", err)
				}
			}
		case "v":
			if emp, ok := ui.pickEmployee(employees); ok {
				if err := ui.directory.Approve(ctx, emp); err != nil {
					if ui.sessionLost(err) {
						return true
					}
					fmt.Fprintln(ui.out, "Failed to approve employee:", err)
				}
			}
		case "x":
			if emp, ok := ui.pickEmployee(employees); ok {
				if _, err := ui.directory.Reject(ctx, emp); err != nil {
					if ui.sessionLost(err) {
						return true
					}
					fmt.Fprintln(ui.out, "Failed to reject employee:", err)
				}
			}
		case "r":
			// loop re-fetches
		case "0":
			return false
		}
	}
}

func (ui *UI) printDirectory(employees []model.Employee, filter api.Filter) {
	if filter.Search != "" || filter.UAN != "" {
		fmt.Fprintf(ui.out, "Filters: search=%q uan=%q\n", filter.Search, filter.UAN)
	}
	if len(employees) == 0 {
		fmt.Fprintln(ui.out, "No employees found.")
		return
	}
	w := tabwriter.NewWriter(ui.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tName\tAge\tMobile\tUAN\tAadhaar\tSalary\tAdvance\tStatus")
	for i, emp := range employees {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			i+1, emp.Name, emp.Age, emp.MobileNumber, emp.UANNumber,
			emp.AadhaarNumber, Rupees(emp.SalaryAmount), Rupees(emp.AdvanceAmount),
			StatusBadge(emp.Status))
	}
	_ = w.Flush()
}

// pickEmployee selects a listed record by its row number.
func (ui *UI) pickEmployee(employees []model.Employee) (model.Employee, bool) {
	if len(employees) == 0 {
		fmt.Fprintln(ui.out, "Nothing to select.")
		return model.Employee{}, false
	}
	n, err := strconv.Atoi(ui.prompt("Row #: "))
	if err != nil || n < 1 || n > len(employees) {
		fmt.Fprintln(ui.out, "Invalid row.")
		return model.Employee{}, false
	}
	return employees[n-1], true
}

// runForm prompts every field and submits. On failure the form keeps its
// state and the operator may edit again; success closes it.
func (ui *UI) runForm(ctx context.Context, f *form.Form) {
	if f.Editing() {
		fmt.Fprintln(ui.out, "\nEdit Employee (empty input keeps the current value)")
	} else {
		fmt.Fprintln(ui.out, "\nAdd New Employee")
	}

	for {
		for _, field := range form.Fields {
			if f.Locked(field) {
				fmt.Fprintf(ui.out, "%s: %s (locked)\n", field, f.Get(field))
				continue
			}
			label := string(field)
			if current := f.Get(field); current != "" {
				label += " [" + current + "]"
			}
			raw := ui.prompt(label + ": ")
			if raw == "" && f.Editing() {
				continue // keep current value
			}
			if err := f.Set(field, raw); err != nil {
				fmt.Fprintln(ui.out, err)
			}
		}

		_, err := ui.directory.Save(ctx, f)
		if err == nil {
			fmt.Fprintln(ui.out, "Saved.")
			return
		}

		var fieldErrs form.FieldErrors
		switch {
		case errors.As(err, &fieldErrs):
			for field, rule := range fieldErrs {
				fmt.Fprintf(ui.out, "  %s %s\n", field, rule)
			}
		case errors.Is(err, apierror.ErrValidation):
			// Server-reported message (e.g. duplicate Aadhaar/UAN), verbatim.
			fmt.Fprintln(ui.out, err)
		default:
			fmt.Fprintln(ui.out, "Failed to save employee:", err)
		}
		if ui.prompt("Edit again? (y/N): ") != "y" {
			return
		}
	}
}
