package relay

import (
	"context"
	"io"
	"log/slog"

	"github.com/edgard/sakurako/internal/chat"
	"github.com/edgard/sakurako/internal/dialogue"
)

type sentMessage struct {
	Channel string
	Text    string
}

type fakeTransport struct {
	rosters   [][]chat.User
	usersErr  error
	sendErr   error
	botName   string
	hasName   bool
	team      chat.Team
	hasTeam   bool
	userCalls int
	sent      []sentMessage
}

func (f *fakeTransport) Users(context.Context) ([]chat.User, error) {
	f.userCalls++
	if f.usersErr != nil {
		return nil, f.usersErr
	}
	if len(f.rosters) == 0 {
		return nil, nil
	}
	idx := f.userCalls - 1
	if idx >= len(f.rosters) {
		idx = len(f.rosters) - 1
	}
	return f.rosters[idx], nil
}

func (f *fakeTransport) SendMessage(_ context.Context, channelID, text string) error {
	f.sent = append(f.sent, sentMessage{Channel: channelID, Text: text})
	return f.sendErr
}

func (f *fakeTransport) BotName() (string, bool) { return f.botName, f.hasName }

func (f *fakeTransport) Team() (chat.Team, bool) { return f.team, f.hasTeam }

type fakeDialogue struct {
	res  *dialogue.Response
	err  error
	reqs []dialogue.Request
}

func (f *fakeDialogue) Request(_ context.Context, req *dialogue.Request) (*dialogue.Response, error) {
	f.reqs = append(f.reqs, *req)
	if f.err != nil {
		return nil, f.err
	}
	return f.res, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
