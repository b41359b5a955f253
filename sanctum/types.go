package sanctum

// Payload is a JSON object sent as a request body. The API defines its
// schema; the client passes it through unchanged.
type Payload map[string]any

const (
	// DefaultTimersLimit is the number of timers GetTimers asks for when no
	// positive limit is given.
	DefaultTimersLimit = 1
	// DefaultRemindersLimit is the number of reminders GetUserReminders asks
	// for when no positive limit is given.
	DefaultRemindersLimit = 10
)
