package sanctum

import (
	"context"
	"fmt"
	"net/http"
)

// CreateInfraction records a new moderation action in a guild
func (c *Client) CreateInfraction(ctx context.Context, guildID int64, payload Payload) (any, error) {
	return c.Request(ctx, http.MethodPut, fmt.Sprintf("/guilds/%d/infractions", guildID), nil, payload)
}

// GetInfraction retrieves a single infraction
func (c *Client) GetInfraction(ctx context.Context, guildID, infractionID int64) (any, error) {
	return c.Request(ctx, http.MethodGet, infractionPath(guildID, infractionID), nil, nil)
}

// GetInfractions lists every infraction in a guild
func (c *Client) GetInfractions(ctx context.Context, guildID int64) (any, error) {
	return c.Request(ctx, http.MethodGet, fmt.Sprintf("/guilds/%d/infractions", guildID), nil, nil)
}

// DeleteInfraction removes a single infraction
func (c *Client) DeleteInfraction(ctx context.Context, guildID, infractionID int64) (any, error) {
	return c.Request(ctx, http.MethodDelete, infractionPath(guildID, infractionID), nil, nil)
}

// EditInfraction applies a partial update to an infraction
func (c *Client) EditInfraction(ctx context.Context, guildID, infractionID int64, payload Payload) (any, error) {
	return c.Request(ctx, http.MethodPatch, infractionPath(guildID, infractionID), nil, payload)
}

// BulkDeleteUserInfractions removes every infraction a user has in a guild
func (c *Client) BulkDeleteUserInfractions(ctx context.Context, guildID, userID int64) (any, error) {
	return c.Request(ctx, http.MethodDelete, userInfractionsPath(guildID, userID), nil, nil)
}

// GetUserInfractions lists the infractions a user has in a guild
func (c *Client) GetUserInfractions(ctx context.Context, guildID, userID int64) (any, error) {
	return c.Request(ctx, http.MethodGet, userInfractionsPath(guildID, userID), nil, nil)
}

func infractionPath(guildID, infractionID int64) string {
	return fmt.Sprintf("/guilds/%d/infractions/%d", guildID, infractionID)
}

func userInfractionsPath(guildID, userID int64) string {
	return fmt.Sprintf("/guilds/%d/users/%d/infractions", guildID, userID)
}
