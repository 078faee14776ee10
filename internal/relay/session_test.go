package relay

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgard/sakurako/internal/chat"
	"github.com/edgard/sakurako/internal/dialogue"
)

func TestNewSessionIsEmpty(t *testing.T) {
	t.Parallel()

	s := NewSession(&fakeDialogue{}, nil)
	assert.Empty(t, s.Name())
	assert.Empty(t, s.Team())
	_, ok := s.ResolveName("U1")
	assert.False(t, ok)
}

func TestRefreshUsersReplacesRoster(t *testing.T) {
	t.Parallel()

	tr := &fakeTransport{rosters: [][]chat.User{
		{{ID: "U1", Name: "alice"}, {ID: "U2", Name: "bob"}},
		{{ID: "U1", Name: "alice2"}, {ID: "U3", Name: "carol"}},
	}}
	s := NewSession(&fakeDialogue{}, discardLogger())
	ctx := context.Background()

	require.NoError(t, s.RefreshUsers(ctx, tr))
	name, ok := s.ResolveName("U2")
	require.True(t, ok)
	assert.Equal(t, "bob", name)

	require.NoError(t, s.RefreshUsers(ctx, tr))

	name, ok = s.ResolveName("U1")
	require.True(t, ok)
	assert.Equal(t, "alice2", name)

	name, ok = s.ResolveName("U3")
	require.True(t, ok)
	assert.Equal(t, "carol", name)

	_, ok = s.ResolveName("U2")
	assert.False(t, ok, "entries from a previous roster must not leak")
}

func TestRefreshUsersErrorKeepsRoster(t *testing.T) {
	t.Parallel()

	tr := &fakeTransport{rosters: [][]chat.User{{{ID: "U1", Name: "alice"}}}}
	s := NewSession(&fakeDialogue{}, discardLogger())
	require.NoError(t, s.RefreshUsers(context.Background(), tr))

	tr.usersErr = errors.New("rate limited")
	require.Error(t, s.RefreshUsers(context.Background(), tr))

	name, ok := s.ResolveName("U1")
	require.True(t, ok)
	assert.Equal(t, "alice", name)
}

func TestBuildReply(t *testing.T) {
	t.Parallel()

	roster := []chat.User{{ID: "U1", Name: "alice"}, {ID: "U9", Name: "Sakurako"}}

	tests := []struct {
		name      string
		sender    string
		dialogErr error
		wantErr   error
		wantCalls int
	}{
		{name: "known sender", sender: "U1", wantCalls: 1},
		{name: "unknown sender", sender: "U404", wantErr: ErrNameNotFound, wantCalls: 0},
		{name: "sender shares bot name", sender: "U9", wantErr: ErrNameNotFound, wantCalls: 0},
		{name: "dialogue failure", sender: "U1", dialogErr: errors.New("timeout"), wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dlg := &fakeDialogue{res: &dialogue.Response{Utt: "hello"}, err: tt.dialogErr}
			tr := &fakeTransport{rosters: [][]chat.User{roster}, botName: "Sakurako", hasName: true}
			s := NewSession(dlg, discardLogger())
			s.HandleEvent(context.Background(), tr, chat.ConnectEvent{})

			res, err := s.BuildReply(context.Background(), "hi", tt.sender)
			assert.Len(t, dlg.reqs, tt.wantCalls)

			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, res)
			case tt.dialogErr != nil:
				require.ErrorIs(t, err, tt.dialogErr)
			default:
				require.NoError(t, err)
				assert.Equal(t, "hello", res.Utt)
				assert.Equal(t, dialogue.Request{Utt: "hi", Nickname: "alice"}, dlg.reqs[0])
			}
		})
	}
}
