// Package chat defines the transport-neutral types exchanged between the chat
// transport adapter and the relay: events, users, and the outbound surface.
package chat

import "context"

// User is a roster entry.
type User struct {
	ID   string
	Name string
}

// Team describes the workspace the bot is connected to.
type Team struct {
	ID     string
	Name   string
	Domain string
}

// Transport is the outbound surface of a connected chat client.
type Transport interface {
	// Users returns the full current roster.
	Users(ctx context.Context) ([]User, error)

	// SendMessage posts text to the given channel.
	SendMessage(ctx context.Context, channelID, text string) error

	// BotName returns the bot's own display name once connected.
	BotName() (string, bool)

	// Team returns the connected team once connected.
	Team() (Team, bool)
}

// HandlerFunc processes one event. Implementations run on the transport's
// event loop and block further delivery until they return.
type HandlerFunc func(ctx context.Context, t Transport, ev Event)

// Middleware wraps a HandlerFunc.
type Middleware func(next HandlerFunc) HandlerFunc

// Chain applies middleware so that the first element is the outermost.
func Chain(h HandlerFunc, mw ...Middleware) HandlerFunc {
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	return h
}
