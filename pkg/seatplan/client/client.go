// Package client sends allocation requests to the remote seating service.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"path/filepath"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"seatplan/pkg/seatplan/models"
)

// TransportError indicates the request could not be completed or its
// response could not be decoded.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("allocation request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ServiceError is a well-formed failure reported by the allocation service.
type ServiceError struct {
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

// Client calls the remote seating allocation service.
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

// New creates a Client for the service at baseURL.
func New(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &Client{
		http:   httpClient,
		logger: logger,
	}
}

// Allocate uploads the two roster files and the selected years and returns
// the decoded allocation result. The request is issued exactly once, with
// no retry; the response is JSON-decoded but not otherwise validated.
func (c *Client) Allocate(ctx context.Context, p models.ValidatedParameters) (*models.AllocationResult, error) {
	requestID := uuid.NewString()
	log := c.logger.With(zap.String("request_id", requestID))

	log.Info("Sending allocation request",
		zap.Strings("years", p.Years),
		zap.String("exam_date", p.Date),
	)

	resp, err := c.http.R().
		SetContext(ctx).
		SetFile("students_csv", p.StudentsPath).
		SetFile("classrooms_csv", p.ClassroomsPath).
		SetFormDataFromValues(url.Values{"years[]": p.Years}).
		Post("/allocate")
	if err != nil {
		log.Error("Allocation request failed", zap.Error(err))
		return nil, &TransportError{Err: err}
	}
	if resp.IsError() {
		log.Error("Allocation service returned error status",
			zap.Int("status_code", resp.StatusCode()),
		)
		return nil, &TransportError{Err: fmt.Errorf("service returned status %s", resp.Status())}
	}

	var result models.AllocationResult
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		log.Error("Failed to decode allocation response", zap.Error(err))
		return nil, &TransportError{Err: fmt.Errorf("decoding response: %w", err)}
	}

	if !result.Success {
		log.Warn("Allocation service reported failure", zap.String("message", result.Error))
		return nil, &ServiceError{Message: result.Error}
	}

	log.Info("Allocation succeeded",
		zap.Int("rooms_used", result.RoomsUsed),
		zap.Int("total_allocated", result.TotalAllocated),
		zap.Int("records", len(result.Allocation)),
		zap.String("students_file", filepath.Base(p.StudentsPath)),
		zap.String("classrooms_file", filepath.Base(p.ClassroomsPath)),
	)
	return &result, nil
}
