package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/adrsh79086/adarsh-contractor-frontend/internal/dto"
	"github.com/adrsh79086/adarsh-contractor-frontend/internal/model"
)

// AdminEmployees fetches the admin listing, optionally filtered to one
// status. An empty status means all records.
func (c *Client) AdminEmployees(ctx context.Context, status model.Status) ([]model.Employee, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", string(status))
	}
	var resp dto.EmployeeListResponse
	if err := c.do(ctx, http.MethodGet, "/api/admin/employees", q, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Employees, nil
}

// Dashboard fetches the server-computed aggregates. Always re-fetched after
// a mutation. Staleness is not tolerated.
func (c *Client) Dashboard(ctx context.Context) (*model.DashboardStats, error) {
	var resp dto.StatsResponse
	if err := c.do(ctx, http.MethodGet, "/api/admin/dashboard", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Stats, nil
}

// ApproveEmployee transitions a pending record to approved.
func (c *Client) ApproveEmployee(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPut, "/api/admin/employees/"+id+"/approve", nil, nil, nil)
}

// RejectEmployee transitions a pending record to rejected.
func (c *Client) RejectEmployee(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPut, "/api/admin/employees/"+id+"/reject", nil, nil, nil)
}

// ExportEmployees fetches the full unfiltered record set for export,
// independent of any filter currently applied in a view.
func (c *Client) ExportEmployees(ctx context.Context) ([]model.Employee, error) {
	var resp dto.EmployeeListResponse
	if err := c.do(ctx, http.MethodGet, "/api/admin/export", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Employees, nil
}
