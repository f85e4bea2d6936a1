package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/adrsh79086/adarsh-contractor-frontend/internal/dto"
	"github.com/adrsh79086/adarsh-contractor-frontend/internal/model"
)

// Filter narrows the directory listing. The server computes the
// intersection; empty fields are omitted from the query entirely.
type Filter struct {
	UAN    string // exact UAN match
	Search string // free text over name / mobile / aadhaar
}

func (f Filter) values() url.Values {
	q := url.Values{}
	if f.UAN != "" {
		q.Set("uan", f.UAN)
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	return q
}

// ListEmployees fetches the directory listing, server-filtered.
func (c *Client) ListEmployees(ctx context.Context, filter Filter) ([]model.Employee, error) {
	var resp dto.EmployeeListResponse
	if err := c.do(ctx, http.MethodGet, "/api/employees", filter.values(), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Employees, nil
}

// CreateEmployee submits a new record; the server assigns the id and sets
// status to pending. Duplicate aadhaar/UAN comes back as a validation error.
func (c *Client) CreateEmployee(ctx context.Context, req dto.EmployeeRequest) (*model.Employee, error) {
	var resp dto.EmployeeResponse
	if err := c.do(ctx, http.MethodPost, "/api/employees", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp.Employee, nil
}

func (c *Client) UpdateEmployee(ctx context.Context, id string, req dto.EmployeeRequest) (*model.Employee, error) {
	var resp dto.EmployeeResponse
	if err := c.do(ctx, http.MethodPut, "/api/employees/"+id, nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp.Employee, nil
}

func (c *Client) DeleteEmployee(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/employees/"+id, nil, nil, nil)
}
