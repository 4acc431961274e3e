// Package gcalendar mirrors task due dates into a Google Calendar so users
// see their deadlines next to their meetings.
package gcalendar

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"ai-task-manager/internal/model"
)

// Client wraps the Google Calendar API service.
type Client struct {
	service    *calendar.Service
	calendarID string
	timezone   string
}

// NewFromCredentialsFile creates a client from a service-account JSON file.
func NewFromCredentialsFile(ctx context.Context, path, calendarID, timezone string) (*Client, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	config, err := google.JWTConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	svc, err := calendar.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}

	if calendarID == "" {
		calendarID = "primary"
	}
	if timezone == "" {
		timezone = "UTC"
	}

	return &Client{service: svc, calendarID: calendarID, timezone: timezone}, nil
}

// CreateDueEvent creates a one-hour calendar event ending at the task's due
// time and returns the event ID for later updates.
func (c *Client) CreateDueEvent(ctx context.Context, task model.Task) (string, error) {
	if task.DueDate == nil {
		return "", fmt.Errorf("task %s has no due date", task.ID)
	}

	event := c.buildEvent(task)
	created, err := c.service.Events.Insert(c.calendarID, event).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create calendar event: %w", err)
	}
	return created.Id, nil
}

// UpdateDueEvent rewrites an existing due-date event to match the task.
func (c *Client) UpdateDueEvent(ctx context.Context, eventID string, task model.Task) error {
	if task.DueDate == nil {
		return fmt.Errorf("task %s has no due date", task.ID)
	}

	event := c.buildEvent(task)
	if _, err := c.service.Events.Update(c.calendarID, eventID, event).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to update calendar event: %w", err)
	}
	return nil
}

// DeleteDueEvent removes the calendar event for a task.
func (c *Client) DeleteDueEvent(ctx context.Context, eventID string) error {
	if err := c.service.Events.Delete(c.calendarID, eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete calendar event: %w", err)
	}
	return nil
}

func (c *Client) buildEvent(task model.Task) *calendar.Event {
	end := *task.DueDate
	start := end.Add(-time.Hour)

	return &calendar.Event{
		Summary:     "Due: " + task.Title,
		Description: task.Description,
		Start: &calendar.EventDateTime{
			DateTime: start.Format(time.RFC3339),
			TimeZone: c.timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: end.Format(time.RFC3339),
			TimeZone: c.timezone,
		},
	}
}
