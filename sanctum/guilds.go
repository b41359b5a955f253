package sanctum

import (
	"context"
	"fmt"
	"net/http"
)

// GetGuild retrieves the stored state of a guild
func (c *Client) GetGuild(ctx context.Context, guildID int64) (any, error) {
	return c.Request(ctx, http.MethodGet, fmt.Sprintf("/guilds/%d", guildID), nil, nil)
}

// CreateGuild creates or replaces the stored state of a guild
func (c *Client) CreateGuild(ctx context.Context, guildID int64, payload Payload) (any, error) {
	return c.Request(ctx, http.MethodPut, fmt.Sprintf("/guilds/%d", guildID), nil, payload)
}

// UpdateGuild is CreateGuild; the route has upsert semantics.
func (c *Client) UpdateGuild(ctx context.Context, guildID int64, payload Payload) (any, error) {
	return c.CreateGuild(ctx, guildID, payload)
}

// LeaveGuild marks the bot as having left a guild
func (c *Client) LeaveGuild(ctx context.Context, guildID int64) (any, error) {
	return c.Request(ctx, http.MethodDelete, fmt.Sprintf("/guilds/%d/leave", guildID), nil, nil)
}

// GetGuildBotConfig retrieves a guild's bot configuration. A guild that was
// never configured yields an error matching ErrNotFound.
func (c *Client) GetGuildBotConfig(ctx context.Context, guildID int64) (any, error) {
	return c.Request(ctx, http.MethodGet, fmt.Sprintf("/guilds/%d/config", guildID), nil, nil)
}

// BulkUpsertGuildPrefixes replaces a guild's command prefixes. The prefixes
// are sent as a bare JSON array; a nil or empty slice is sent as [] and clears
// them.
func (c *Client) BulkUpsertGuildPrefixes(ctx context.Context, guildID int64, prefixes []string) (any, error) {
	if prefixes == nil {
		prefixes = []string{}
	}
	return c.Request(ctx, http.MethodPut, fmt.Sprintf("/guilds/%d/prefixes", guildID), nil, prefixes)
}
