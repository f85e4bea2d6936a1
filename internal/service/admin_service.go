package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/adrsh79086/adarsh-contractor-frontend/internal/export"
	"github.com/adrsh79086/adarsh-contractor-frontend/internal/model"
)

// AdminAPI is the slice of the collaborator API behind the admin panel.
type AdminAPI interface {
	TransitionAPI
	AdminEmployees(ctx context.Context, status model.Status) ([]model.Employee, error)
	Dashboard(ctx context.Context) (*model.DashboardStats, error)
	ExportEmployees(ctx context.Context) ([]model.Employee, error)
}

// Overview is one admin-panel render: the filtered listing plus the current
// aggregates, fetched together so they describe the same server state.
type Overview struct {
	Employees []model.Employee
	Stats     model.DashboardStats
}

type AdminService interface {
	// Overview re-fetches listing and stats. Called on every filter change
	// and after every successful mutation.
	Overview(ctx context.Context, status model.Status) (*Overview, error)

	// Stats re-fetches the aggregates alone (dashboard view).
	Stats(ctx context.Context) (*model.DashboardStats, error)

	// Approve and Reject go through the approval workflow. A nil error from
	// Approve, or issued=true from Reject, obliges the caller to call
	// Overview again before rendering.
	Approve(ctx context.Context, emp model.Employee) error
	Reject(ctx context.Context, emp model.Employee) (bool, error)

	// Exports fetch the full unfiltered set themselves, independent of the
	// status filter currently applied in the view.
	ExportCSV(ctx context.Context, dir string) (string, error)
	ExportXLSX(ctx context.Context, dir string) (string, error)
	ExportPDF(ctx context.Context, dir string) (string, error)
}

type adminService struct {
	api      AdminAPI
	workflow *Workflow
	now      func() time.Time
}

func NewAdminService(api AdminAPI, workflow *Workflow) AdminService {
	return &adminService{api: api, workflow: workflow, now: time.Now}
}

func (s *adminService) Overview(ctx context.Context, status model.Status) (*Overview, error) {
	employees, err := s.api.AdminEmployees(ctx, status)
	if err != nil {
		log.Error().Err(err).Str("status", string(status)).Msg("admin: list employees")
		return nil, err
	}
	stats, err := s.api.Dashboard(ctx)
	if err != nil {
		log.Error().Err(err).Msg("admin: fetch dashboard stats")
		return nil, err
	}
	return &Overview{Employees: employees, Stats: *stats}, nil
}

func (s *adminService) Stats(ctx context.Context) (*model.DashboardStats, error) {
	stats, err := s.api.Dashboard(ctx)
	if err != nil {
		log.Error().Err(err).Msg("admin: fetch dashboard stats")
		return nil, err
	}
	return stats, nil
}

func (s *adminService) Approve(ctx context.Context, emp model.Employee) error {
	return s.workflow.Approve(ctx, emp)
}

func (s *adminService) Reject(ctx context.Context, emp model.Employee) (bool, error) {
	return s.workflow.Reject(ctx, emp)
}

func (s *adminService) ExportCSV(ctx context.Context, dir string) (string, error) {
	employees, err := s.fetchAll(ctx)
	if err != nil {
		return "", err
	}
	return export.WriteCSVFile(dir, employees, s.now())
}

func (s *adminService) ExportXLSX(ctx context.Context, dir string) (string, error) {
	employees, err := s.fetchAll(ctx)
	if err != nil {
		return "", err
	}
	return export.WriteXLSXFile(dir, employees, s.now())
}

func (s *adminService) ExportPDF(ctx context.Context, dir string) (string, error) {
	employees, err := s.fetchAll(ctx)
	if err != nil {
		return "", err
	}
	stats, err := s.api.Dashboard(ctx)
	if err != nil {
		return "", fmt.Errorf("export: fetch stats: %w", err)
	}
	return export.WritePDFFile(dir, employees, *stats, s.now())
}

func (s *adminService) fetchAll(ctx context.Context) ([]model.Employee, error) {
	employees, err := s.api.ExportEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("export: fetch employees: %w", err)
	}
	return employees, nil
}
