package slack

import (
	"github.com/slack-go/slack"

	"github.com/edgard/sakurako/internal/chat"
)

// translate maps an RTM event onto the closed chat event set. It returns nil
// for connection bookkeeping events that carry nothing for the dispatcher.
func translate(msg slack.RTMEvent) chat.Event {
	switch data := msg.Data.(type) {
	case *slack.ConnectedEvent:
		return chat.ConnectEvent{ConnectionCount: data.ConnectionCount}
	case *slack.MessageEvent:
		if data.SubType != "" {
			return chat.OtherEvent{Type: "message/" + data.SubType}
		}
		return chat.MessageEvent{Channel: data.Channel, User: data.User, Text: data.Text}
	case *slack.UserChangeEvent:
		return chat.UserChangeEvent{UserID: data.User.ID}
	case *slack.TeamJoinEvent:
		return chat.TeamJoinEvent{UserID: data.User.ID}
	case *slack.LatencyReport:
		return chat.PingEvent{Latency: data.Value}
	case *slack.DisconnectedEvent:
		return chat.CloseEvent{Intentional: data.Intentional, Cause: data.Cause}
	case *slack.ConnectingEvent, *slack.HelloEvent:
		return nil
	default:
		return chat.OtherEvent{Type: msg.Type}
	}
}
