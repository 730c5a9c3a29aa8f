package models

// User lifecycle event types published to Kafka.
const (
	EventUserRegistered = "user_registered"
	EventUserCreated    = "user_created"
	EventUserUpdated    = "user_updated"
	EventUserDeleted    = "user_deleted"
	EventUsersCleared   = "users_cleared"
)

// UserEvent represents a user lifecycle event, including the affected user and when it occurred.
type UserEvent struct {
	EventID   string `json:"event_id"`         // EventID is a unique identifier for the event.
	Type      string `json:"type"`             // Type is one of the Event* constants above.
	Timestamp int64  `json:"timestamp"`        // Timestamp is the Unix timestamp (in seconds) when the event occurred.
	UserID    string `json:"user_id"`          // UserID is the identifier of the affected user, empty for bulk events.
	Email     string `json:"email,omitempty"`  // Email of the affected user, when applicable.
	Count     int64  `json:"count,omitempty"`  // Count of affected records for bulk events.
}
