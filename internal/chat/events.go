package chat

import "time"

// Event is a decoded event delivered by the chat transport. The set of
// implementations is closed: only types in this package satisfy it.
type Event interface {
	// Kind returns a short, stable name used in logs.
	Kind() string
	isEvent()
}

// MessageEvent is a standard text message. Any of the fields may be empty
// when the transport delivered a partial payload.
type MessageEvent struct {
	Channel string
	User    string
	Text    string
}

// UserChangeEvent signals that a user's profile changed. Origin is empty for
// events coming from the transport and names the job for scheduled refreshes.
type UserChangeEvent struct {
	UserID string
	Origin string
}

// TeamJoinEvent signals that a new user joined the team.
type TeamJoinEvent struct {
	UserID string
}

// PingEvent is a keepalive round trip observed on the connection.
type PingEvent struct {
	Latency time.Duration
}

// CloseEvent reports that the connection was closed.
type CloseEvent struct {
	Intentional bool
	Cause       error
}

// ConnectEvent reports a successful connection.
type ConnectEvent struct {
	ConnectionCount int
}

// OtherEvent covers every transport event without handling logic.
type OtherEvent struct {
	Type string
}

func (MessageEvent) Kind() string    { return "message" }
func (UserChangeEvent) Kind() string { return "user_change" }
func (TeamJoinEvent) Kind() string   { return "team_join" }
func (PingEvent) Kind() string       { return "ping" }
func (CloseEvent) Kind() string      { return "close" }
func (ConnectEvent) Kind() string    { return "connect" }
func (e OtherEvent) Kind() string {
	if e.Type == "" {
		return "other"
	}
	return e.Type
}

func (MessageEvent) isEvent()    {}
func (UserChangeEvent) isEvent() {}
func (TeamJoinEvent) isEvent()   {}
func (PingEvent) isEvent()       {}
func (CloseEvent) isEvent()      {}
func (ConnectEvent) isEvent()    {}
func (OtherEvent) isEvent()      {}
