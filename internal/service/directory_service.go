package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/adrsh79086/adarsh-contractor-frontend/internal/api"
	"github.com/adrsh79086/adarsh-contractor-frontend/internal/dto"
	"github.com/adrsh79086/adarsh-contractor-frontend/internal/form"
	"github.com/adrsh79086/adarsh-contractor-frontend/internal/model"
)

// EmployeeAPI is the slice of the collaborator API behind the directory view.
type EmployeeAPI interface {
	ListEmployees(ctx context.Context, filter api.Filter) ([]model.Employee, error)
	CreateEmployee(ctx context.Context, req dto.EmployeeRequest) (*model.Employee, error)
	UpdateEmployee(ctx context.Context, id string, req dto.EmployeeRequest) (*model.Employee, error)
	DeleteEmployee(ctx context.Context, id string) error
}

type DirectoryService interface {
	// List re-queries the server with the given filters. Called on every
	// filter change; the previous list is always replaced wholesale.
	List(ctx context.Context, filter api.Filter) ([]model.Employee, error)

	// Save validates the form client-side, then submits create or update.
	// On any error the form keeps its state so the caller can leave it open.
	Save(ctx context.Context, f *form.Form) (*model.Employee, error)

	// Delete removes a record after confirmation. Reports whether the
	// request was actually issued.
	Delete(ctx context.Context, id string) (bool, error)

	// Approve and Reject go through the same approval workflow as the admin
	// panel. Both surfaces must converge on the server's truth, so a
	// successful transition obliges the caller to List again.
	Approve(ctx context.Context, emp model.Employee) error
	Reject(ctx context.Context, emp model.Employee) (bool, error)
}

type directoryService struct {
	api      EmployeeAPI
	workflow *Workflow
	confirm  Confirmer
}

func NewDirectoryService(api EmployeeAPI, workflow *Workflow, confirm Confirmer) DirectoryService {
	return &directoryService{api: api, workflow: workflow, confirm: confirm}
}

func (s *directoryService) List(ctx context.Context, filter api.Filter) ([]model.Employee, error) {
	employees, err := s.api.ListEmployees(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("directory: list employees")
		return nil, err
	}
	return employees, nil
}

func (s *directoryService) Save(ctx context.Context, f *form.Form) (*model.Employee, error) {
	// Client-side rules first: no network call for a payload the server
	// would reject anyway.
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if f.Editing() {
		emp, err := s.api.UpdateEmployee(ctx, f.ID(), f.Payload())
		if err != nil {
			return nil, fmt.Errorf("update employee: %w", err)
		}
		return emp, nil
	}
	emp, err := s.api.CreateEmployee(ctx, f.Payload())
	if err != nil {
		return nil, fmt.Errorf("create employee: %w", err)
	}
	return emp, nil
}

func (s *directoryService) Delete(ctx context.Context, id string) (bool, error) {
	if !s.confirm("Are you sure you want to delete this employee?") {
		return false, nil
	}
	if err := s.api.DeleteEmployee(ctx, id); err != nil {
		return false, fmt.Errorf("delete employee %s: %w", id, err)
	}
	return true, nil
}

func (s *directoryService) Approve(ctx context.Context, emp model.Employee) error {
	return s.workflow.Approve(ctx, emp)
}

func (s *directoryService) Reject(ctx context.Context, emp model.Employee) (bool, error) {
	return s.workflow.Reject(ctx, emp)
}
