package sanctum

import (
	"context"
)

// API defines the interface for Sanctum operations
type API interface {
	// Guild state
	GetGuild(ctx context.Context, guildID int64) (any, error)
	CreateGuild(ctx context.Context, guildID int64, payload Payload) (any, error)
	UpdateGuild(ctx context.Context, guildID int64, payload Payload) (any, error)
	LeaveGuild(ctx context.Context, guildID int64) (any, error)

	// Timers and reminders
	CreateTimer(ctx context.Context, payload Payload) (any, error)
	DeleteTimer(ctx context.Context, id int64) (any, error)
	GetTimer(ctx context.Context, id int64) (any, error)
	GetTimers(ctx context.Context, limit int) (any, error)
	GetUserReminders(ctx context.Context, userID int64, limit int) (any, error)
	DeleteUserReminder(ctx context.Context, userID, reminderID int64) (any, error)

	// Infractions
	CreateInfraction(ctx context.Context, guildID int64, payload Payload) (any, error)
	GetInfraction(ctx context.Context, guildID, infractionID int64) (any, error)
	GetInfractions(ctx context.Context, guildID int64) (any, error)
	DeleteInfraction(ctx context.Context, guildID, infractionID int64) (any, error)
	EditInfraction(ctx context.Context, guildID, infractionID int64, payload Payload) (any, error)
	BulkDeleteUserInfractions(ctx context.Context, guildID, userID int64) (any, error)
	GetUserInfractions(ctx context.Context, guildID, userID int64) (any, error)

	// Configuration
	GetGuildBotConfig(ctx context.Context, guildID int64) (any, error)
	BulkUpsertGuildPrefixes(ctx context.Context, guildID int64, prefixes []string) (any, error)
}

var _ API = (*Client)(nil)
