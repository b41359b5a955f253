package sanctum

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// CreateTimer schedules a new timer.
func (c *Client) CreateTimer(ctx context.Context, payload Payload) (any, error) {
	return c.Request(ctx, http.MethodPut, "/timers", nil, payload)
}

// DeleteTimer removes a timer by ID.
func (c *Client) DeleteTimer(ctx context.Context, id int64) (any, error) {
	return c.Request(ctx, http.MethodDelete, fmt.Sprintf("/timers/%d", id), nil, nil)
}

// GetTimer returns a single timer by ID.
func (c *Client) GetTimer(ctx context.Context, id int64) (any, error) {
	return c.Request(ctx, http.MethodGet, fmt.Sprintf("/timers/%d", id), nil, nil)
}

// GetTimers lists up to limit pending timers. A limit of zero or less is never
// sent to the server; DefaultTimersLimit is sent instead.
func (c *Client) GetTimers(ctx context.Context, limit int) (any, error) {
	if limit <= 0 {
		limit = DefaultTimersLimit
	}
	return c.Request(ctx, http.MethodGet, "/timers", limitParams(limit), nil)
}

// GetUserReminders lists up to limit reminders owned by a user. A limit of
// zero or less is never sent to the server; DefaultRemindersLimit is sent
// instead.
func (c *Client) GetUserReminders(ctx context.Context, userID int64, limit int) (any, error) {
	if limit <= 0 {
		limit = DefaultRemindersLimit
	}
	return c.Request(ctx, http.MethodGet, fmt.Sprintf("/users/%d/reminders", userID), limitParams(limit), nil)
}

// DeleteUserReminder removes one of a user's reminders.
func (c *Client) DeleteUserReminder(ctx context.Context, userID, reminderID int64) (any, error) {
	return c.Request(ctx, http.MethodDelete, fmt.Sprintf("/users/%d/reminders/%d", userID, reminderID), nil, nil)
}

func limitParams(limit int) url.Values {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	return params
}
