// Package calendarapi implements the calendar service contract over HTTP.
// It talks to a remote deployment of the REST API in adapters/in/http and
// is the composition used when the board runs apart from the backend.
package calendarapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	httpapi "hireboard/internal/adapters/in/http"
	"hireboard/internal/core/application/usecases/commands"
	"hireboard/internal/core/domain/model/job"
	"hireboard/internal/core/domain/model/kernel"
	"hireboard/internal/core/domain/model/route"
	"hireboard/internal/core/domain/services"
	"hireboard/internal/pkg/errs"
)

// Client implements ports.CalendarService against a remote backend.
// Wire DTOs are the ones the server in adapters/in/http speaks, so the two
// sides cannot drift apart.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a calendar API client.
// baseURL is the backend root, e.g. "http://localhost:8080"; timeout bounds
// every request including body read.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// JobsForDateRange fetches every job inside the range in stable fetch order.
func (c *Client) JobsForDateRange(ctx context.Context, rng kernel.DateRange) ([]*job.Job, error) {
	if err := rng.Validate(); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/api/v1/jobs?start=%s&end=%s",
		c.baseURL, url.QueryEscape(rng.Start().String()), url.QueryEscape(rng.End().String()))

	var responses []httpapi.JobResponse
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &responses); err != nil {
		return nil, err
	}

	jobs := make([]*job.Job, 0, len(responses))
	for _, resp := range responses {
		aggregate, err := decodeJob(resp)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, aggregate)
	}
	return jobs, nil
}

// Routes fetches the route list in board row order.
func (c *Client) Routes(ctx context.Context) ([]*route.Route, error) {
	var responses []httpapi.RouteResponse
	if err := c.do(ctx, http.MethodGet, c.baseURL+"/api/v1/routes", nil, &responses); err != nil {
		return nil, err
	}

	routes := make([]*route.Route, 0, len(responses))
	for _, resp := range responses {
		id, err := kernel.UUIDFromString(resp.ID)
		if err != nil {
			return nil, err
		}
		r, err := route.NewRoute(id, resp.Name, resp.Color, resp.Capacity)
		if err != nil {
			return nil, err
		}
		routes = append(routes, r)
	}
	return routes, nil
}

// ValidateAssignment checks a prospective placement without persisting.
func (c *Client) ValidateAssignment(
	ctx context.Context,
	jobID kernel.UUID,
	target job.Placement,
) (services.Decision, error) {
	endpoint := fmt.Sprintf("%s/api/v1/jobs/%s/validate-assignment", c.baseURL, jobID)

	var resp httpapi.ValidationResponse
	if err := c.do(ctx, http.MethodPost, endpoint, placementRequest(target), &resp); err != nil {
		return services.Decision{}, err
	}

	return services.Decision{IsValid: resp.IsValid, Message: resp.Message}, nil
}

// UpdateJobAssignment persists a reassignment and returns the authoritative
// job record. A business refusal surfaces as *commands.MoveRejectedError,
// matching the in-process service.
func (c *Client) UpdateJobAssignment(
	ctx context.Context,
	jobID kernel.UUID,
	target job.Placement,
) (*job.Job, error) {
	endpoint := fmt.Sprintf("%s/api/v1/jobs/%s/move", c.baseURL, jobID)

	var resp httpapi.JobResponse
	if err := c.do(ctx, http.MethodPost, endpoint, placementRequest(target), &resp); err != nil {
		return nil, err
	}
	return decodeJob(resp)
}

// ReassignDriver puts a different driver on the job.
func (c *Client) ReassignDriver(ctx context.Context, jobID, driverID kernel.UUID) (*job.Job, error) {
	endpoint := fmt.Sprintf("%s/api/v1/jobs/%s/driver", c.baseURL, jobID)
	body := httpapi.ReassignDriverRequest{DriverID: driverID.String()}

	var resp httpapi.JobResponse
	if err := c.do(ctx, http.MethodPost, endpoint, body, &resp); err != nil {
		return nil, err
	}
	return decodeJob(resp)
}

// MarkOffHire records the end of the hire.
func (c *Client) MarkOffHire(ctx context.Context, jobID kernel.UUID, offHireDate kernel.Date) (*job.Job, error) {
	endpoint := fmt.Sprintf("%s/api/v1/jobs/%s/off-hire", c.baseURL, jobID)
	body := httpapi.MarkOffHireRequest{OffHireDate: offHireDate.String()}

	var resp httpapi.JobResponse
	if err := c.do(ctx, http.MethodPost, endpoint, body, &resp); err != nil {
		return nil, err
	}
	return decodeJob(resp)
}

// CancelJob calls the job off.
func (c *Client) CancelJob(ctx context.Context, jobID kernel.UUID) (*job.Job, error) {
	endpoint := fmt.Sprintf("%s/api/v1/jobs/%s/cancel", c.baseURL, jobID)

	var resp httpapi.JobResponse
	if err := c.do(ctx, http.MethodPost, endpoint, nil, &resp); err != nil {
		return nil, err
	}
	return decodeJob(resp)
}

// do runs one request and decodes the answer into out.
// Non-2xx answers become typed errors: 404 maps to the not-found sentinel,
// 409 to the move rejection the in-process service raises.
func (c *Client) do(ctx context.Context, method, endpoint string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calendar api request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("calendar api sent a malformed answer: %w", err)
	}
	return nil
}

func (c *Client) decodeError(resp *http.Response) error {
	var apiErr httpapi.Error
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil {
		apiErr.Message = resp.Status
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return errs.NewObjectNotFoundError("job", apiErr.Message)
	case http.StatusConflict:
		return &commands.MoveRejectedError{Message: apiErr.Message}
	default:
		return fmt.Errorf("calendar api answered %d: %s", resp.StatusCode, apiErr.Message)
	}
}

// placementRequest maps a placement to its wire shape.
func placementRequest(target job.Placement) httpapi.PlacementRequest {
	req := httpapi.PlacementRequest{Date: target.Date().String()}
	if id := target.RouteID(); id != nil {
		s := id.String()
		req.RouteID = &s
	}
	return req
}

// decodeJob reconstructs the aggregate from its wire representation.
func decodeJob(resp httpapi.JobResponse) (*job.Job, error) {
	id, err := kernel.UUIDFromString(resp.ID)
	if err != nil {
		return nil, err
	}

	var routeID *kernel.UUID
	if resp.RouteID != nil {
		rid, routeErr := kernel.UUIDFromString(*resp.RouteID)
		if routeErr != nil {
			return nil, routeErr
		}
		routeID = &rid
	}

	date, err := kernel.DateFromString(resp.Date)
	if err != nil {
		return nil, err
	}
	jobType, err := job.TypeFromString(resp.Type)
	if err != nil {
		return nil, err
	}
	status, err := job.StatusFromString(resp.Status)
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if resp.DriverID != nil {
		did, driverErr := kernel.UUIDFromString(*resp.DriverID)
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &did
	}

	var offHire *kernel.Date
	if resp.OffHireDate != nil {
		d, offErr := kernel.DateFromString(*resp.OffHireDate)
		if offErr != nil {
			return nil, offErr
		}
		offHire = &d
	}

	return job.RestoreJob(id, routeID, date, jobType, status, job.Details{
		CustomerName:  resp.CustomerName,
		OrderNumber:   resp.OrderNumber,
		ScheduledTime: resp.ScheduledTime,
		Address:       resp.Address,
		Notes:         resp.Notes,
		IsRecurring:   resp.IsRecurring,
	}, driverID, offHire)
}
