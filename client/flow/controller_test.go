package flow

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	mocks "github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/mocks/github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/authority"
	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/authority"
	gametypes "github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/game/types"
	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeHealth struct {
	failures int
	err      error
}

func (h *fakeHealth) ConsecutiveFailures() int {
	return h.failures
}

func (h *fakeHealth) LastError() error {
	return h.err
}

type testFlow struct {
	authority  *mocks.Authority
	manager    *session.Manager
	health     *fakeHealth
	controller *Controller
}

func newTestFlow(t *testing.T, maxTickFailures int) *testFlow {
	t.Helper()
	f := &testFlow{
		authority: mocks.NewAuthority(t),
		health:    &fakeHealth{},
	}
	var err error
	f.manager, err = session.NewManager(session.NewManagerOptions{
		Authority:    f.authority,
		StartTimeout: time.Second,
	})
	require.NoError(t, err)
	f.controller, err = NewController(NewControllerOptions{
		Sessions:        f.manager,
		Health:          f.health,
		MaxTickFailures: maxTickFailures,
	})
	require.NoError(t, err)
	return f
}

func (f *testFlow) expectStart(id gametypes.SessionID) {
	f.authority.EXPECT().StartGame(mock.Anything, mock.Anything).
		Return(&authority.StartGameResponse{SessionID: id}, nil).Once()
}

// waitStart polls until the latest start has a result.
func (f *testFlow) waitStart(t *testing.T) StartResult {
	t.Helper()
	var result StartResult
	require.Eventually(t, func() bool {
		var ok bool
		result, ok = f.controller.PollStart()
		return ok
	}, time.Second, time.Millisecond)
	return result
}

// play starts a session and waits until the controller is in Play.
func (f *testFlow) play(t *testing.T) session.Session {
	t.Helper()
	f.expectStart(`"abc"`)
	f.controller.StartGame(1, 1)
	result := f.waitStart(t)
	require.NoError(t, result.Err)
	require.Equal(t, GameModePlay, f.controller.Mode())
	return result.Session
}

func TestNewController_validation(t *testing.T) {
	_, err := NewController(NewControllerOptions{Health: &fakeHealth{}})
	assert.Error(t, err)
}

func TestController_StartGame(t *testing.T) {
	f := newTestFlow(t, 0)
	assert.Equal(t, GameModeMenu, f.controller.Mode())

	s := f.play(t)
	assert.Equal(t, "abc", s.ID.String())
	assert.Equal(t, session.RunPhaseRunning, f.manager.Phase())
}

func TestController_StartGame_failure(t *testing.T) {
	f := newTestFlow(t, 0)
	cause := errors.New("connection refused")
	f.authority.EXPECT().StartGame(mock.Anything, mock.Anything).Return(nil, cause).Once()

	f.controller.StartGame(2, 1)
	assert.Equal(t, GameModeStarting, f.controller.Mode())

	result := f.waitStart(t)
	assert.True(t, session.IsStartFailed(result.Err))
	assert.ErrorIs(t, result.Err, cause)
	assert.Equal(t, GameModeNetworkError, f.controller.Mode())
}

func TestController_PollStart_ignoresOutdatedResult(t *testing.T) {
	f := newTestFlow(t, 0)
	f.authority.EXPECT().StartGame(mock.Anything, mock.Anything).Return(nil, errors.New("boom")).Once()

	f.controller.StartGame(1, 1)
	require.Eventually(t, func() bool {
		return f.manager.Phase() == session.RunPhaseIdle
	}, time.Second, time.Millisecond)

	// a second start replaces the first before its failure is picked up
	f.expectStart(`"second"`)
	f.controller.StartGame(1, 2)

	result := f.waitStart(t)
	require.NoError(t, result.Err)
	assert.Equal(t, "second", result.Session.ID.String())
	assert.Equal(t, 2, result.Session.Level)
	assert.Equal(t, GameModePlay, f.controller.Mode())

	_, ok := f.controller.PollStart()
	assert.False(t, ok)
}

func TestController_PollStart_ignoresCancelledStart(t *testing.T) {
	f := newTestFlow(t, 0)
	entered := make(chan struct{})
	f.authority.EXPECT().StartGame(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, req *authority.StartGameRequest) (*authority.StartGameResponse, error) {
			close(entered)
			<-ctx.Done()
			return nil, ctx.Err()
		}).Once()

	f.controller.StartGame(1, 1)
	<-entered
	f.controller.ToMenu()

	assert.Never(t, func() bool {
		_, ok := f.controller.PollStart()
		return ok
	}, 100*time.Millisecond, 5*time.Millisecond)
	assert.Equal(t, GameModeMenu, f.controller.Mode())
	assert.Equal(t, session.RunPhaseTerminated, f.manager.Phase())
}

func TestController_CheckTicks(t *testing.T) {
	notFound := &authority.StatusError{StatusCode: http.StatusNotFound, Body: `{"error": "Session not found"}`}
	timeout := errors.New("context deadline exceeded")

	tests := []struct {
		name            string
		maxTickFailures int
		failures        int
		err             error
		wantAbandon     bool
	}{
		{
			name:            "healthy",
			maxTickFailures: 3,
		},
		{
			name:            "zero threshold retries forever",
			maxTickFailures: 0,
			failures:        100,
			err:             timeout,
		},
		{
			name:            "below threshold",
			maxTickFailures: 3,
			failures:        2,
			err:             timeout,
		},
		{
			name:            "threshold reached",
			maxTickFailures: 3,
			failures:        3,
			err:             timeout,
			wantAbandon:     true,
		},
		{
			name:            "session not found is fatal",
			maxTickFailures: 0,
			failures:        1,
			err:             notFound,
			wantAbandon:     true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFlow(t, tt.maxTickFailures)
			f.play(t)
			f.health.failures = tt.failures
			f.health.err = tt.err

			cause := f.controller.CheckTicks()
			if !tt.wantAbandon {
				assert.NoError(t, cause)
				assert.Equal(t, GameModePlay, f.controller.Mode())
				assert.Equal(t, session.RunPhaseRunning, f.manager.Phase())
				return
			}
			assert.ErrorIs(t, cause, tt.err)
			assert.Equal(t, GameModeNetworkError, f.controller.Mode())
			assert.Equal(t, session.RunPhaseTerminated, f.manager.Phase())
		})
	}
}

func TestController_CheckTicks_onlyWhilePlaying(t *testing.T) {
	f := newTestFlow(t, 1)
	f.health.failures = 5
	f.health.err = errors.New("boom")

	assert.NoError(t, f.controller.CheckTicks())
	assert.Equal(t, GameModeMenu, f.controller.Mode())
}

func TestController_Back(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T, f *testFlow)
		back     bool
		confirm  bool
		wantMenu bool
		wantMode GameMode
	}{
		{
			name:     "escape in menu stays",
			setup:    func(t *testing.T, f *testFlow) {},
			back:     true,
			wantMode: GameModeMenu,
		},
		{
			name:     "escape while playing",
			setup:    func(t *testing.T, f *testFlow) { f.play(t) },
			back:     true,
			wantMenu: true,
			wantMode: GameModeMenu,
		},
		{
			name:     "confirm while playing does nothing",
			setup:    func(t *testing.T, f *testFlow) { f.play(t) },
			confirm:  true,
			wantMode: GameModePlay,
		},
		{
			name:     "confirm after network error",
			setup:    func(t *testing.T, f *testFlow) { f.controller.Fail() },
			confirm:  true,
			wantMenu: true,
			wantMode: GameModeMenu,
		},
		{
			name:     "no input",
			setup:    func(t *testing.T, f *testFlow) { f.play(t) },
			wantMode: GameModePlay,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFlow(t, 0)
			tt.setup(t, f)

			assert.Equal(t, tt.wantMenu, f.controller.Back(tt.back, tt.confirm))
			assert.Equal(t, tt.wantMode, f.controller.Mode())
			if tt.wantMenu {
				_, ok := f.manager.Current()
				assert.False(t, ok)
				assert.Equal(t, session.RunPhaseTerminated, f.manager.Phase())
			}
		})
	}
}
