package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/authority"
	gametypes "github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/game/types"
	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/log"
	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/state"
	"github.com/google/uuid"
)

const (
	DefaultStartTimeout = 5 * time.Second
	// DefaultHistoryTimeout bounds recording play history before a start.
	DefaultHistoryTimeout = time.Second
)

// Session is one run of a level against the authority.
type Session struct {
	// ID is the authority's opaque token, echoed verbatim on every tick.
	ID          gametypes.SessionID
	PlayerCount int
	Level       int
	// Handle is unique per Start and tags work issued for this session.
	Handle    uuid.UUID
	StartedAt time.Time
}

// Is reports whether other refers to the same session.
func (s Session) Is(other Session) bool {
	return s.Handle == other.Handle && s.ID == other.ID
}

// PlayHistory records that the local user has played.
type PlayHistory interface {
	MarkPlayed(ctx context.Context) error
}

// Manager owns the session, its run phase and the world state store.
// All transitions happen under a single lock.
type Manager struct {
	authority      authority.Authority
	store          *state.Store
	history        PlayHistory
	startTimeout   time.Duration
	historyTimeout time.Duration

	lock       sync.Mutex
	phase      RunPhase
	session    *Session
	ctx        context.Context
	cancel     context.CancelFunc
	generation uint64
}

type NewManagerOptions struct {
	Authority authority.Authority
	// Store defaults to a new empty store.
	Store *state.Store
	// History is optional.
	History        PlayHistory
	StartTimeout   time.Duration
	HistoryTimeout time.Duration
}

func NewManager(opts NewManagerOptions) (*Manager, error) {
	if opts.Authority == nil {
		return nil, fmt.Errorf("authority is required")
	}
	store := opts.Store
	if store == nil {
		store = state.NewStore()
	}
	startTimeout := opts.StartTimeout
	if startTimeout <= 0 {
		startTimeout = DefaultStartTimeout
	}
	historyTimeout := opts.HistoryTimeout
	if historyTimeout <= 0 {
		historyTimeout = DefaultHistoryTimeout
	}
	return &Manager{
		authority:      opts.Authority,
		store:          store,
		history:        opts.History,
		startTimeout:   startTimeout,
		historyTimeout: historyTimeout,
		phase:          RunPhaseIdle,
	}, nil
}

// Start asks the authority for a new session. It blocks until the authority
// answers, the start timeout elapses, ctx is done or Teardown is called.
func (m *Manager) Start(ctx context.Context, playerCount int, level int) (Session, error) {
	if playerCount != 1 && playerCount != 2 {
		return Session{}, ErrInvalidPlayerCount
	}
	if level < 1 {
		return Session{}, ErrInvalidLevel
	}

	m.lock.Lock()
	if m.phase.Active() {
		phase := m.phase
		m.lock.Unlock()
		return Session{}, fmt.Errorf("cannot start in phase %s: %w", phase, ErrAlreadyActive)
	}
	m.generation++
	generation := m.generation
	sessionCtx, cancel := context.WithCancel(context.Background())
	m.phase = RunPhaseStarting
	m.cancel = cancel
	m.store.Clear()
	m.lock.Unlock()

	if m.history != nil {
		historyCtx, historyCancel := context.WithTimeout(ctx, m.historyTimeout)
		if err := m.history.MarkPlayed(historyCtx); err != nil {
			log.Warn("Failed to record play history: %v", err)
		}
		historyCancel()
	}

	reqCtx, reqCancel := context.WithTimeout(ctx, m.startTimeout)
	defer reqCancel()
	stop := context.AfterFunc(sessionCtx, reqCancel)
	defer stop()

	log.Debug("Starting session: players=%d level=%d", playerCount, level)
	resp, err := m.authority.StartGame(reqCtx, &authority.StartGameRequest{
		Mode:  playerCount,
		Level: level,
	})

	m.lock.Lock()
	defer m.lock.Unlock()

	if m.generation != generation {
		// Teardown ran while the request was outstanding and already reset the phase.
		cancel()
		return Session{}, &StartFailedError{Cause: ErrStartCancelled}
	}
	if err == nil && (resp == nil || resp.SessionID == "") {
		err = fmt.Errorf("%w: start game response has no session_id", authority.ErrMalformedResponse)
	}
	if err != nil {
		cancel()
		m.cancel = nil
		m.phase = RunPhaseIdle
		return Session{}, &StartFailedError{Cause: err}
	}

	s := &Session{
		ID:          resp.SessionID,
		PlayerCount: playerCount,
		Level:       level,
		Handle:      uuid.New(),
		StartedAt:   time.Now(),
	}
	m.session = s
	m.ctx = sessionCtx
	m.phase = RunPhaseRunning
	log.Info("Session %s started: players=%d level=%d", s.ID, playerCount, level)

	return *s, nil
}

// Teardown destroys the session and the world state together. It cancels
// work issued for the session and may be called any number of times.
func (m *Manager) Teardown() {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.generation++
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	if m.session != nil {
		log.Info("Session %s torn down in phase %s", m.session.ID, m.phase)
	}
	m.session = nil
	m.ctx = nil
	m.store.Clear()
	m.phase = RunPhaseTerminated
}

func (m *Manager) Phase() RunPhase {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.phase
}

// Current returns the session if one exists, whether running or won.
func (m *Manager) Current() (Session, bool) {
	m.lock.Lock()
	defer m.lock.Unlock()
	if m.session == nil {
		return Session{}, false
	}
	return *m.session, true
}

// Running returns the session and its context only while ticks may be issued.
// The context is cancelled by Teardown.
func (m *Manager) Running() (Session, context.Context, bool) {
	m.lock.Lock()
	defer m.lock.Unlock()
	if m.phase != RunPhaseRunning || m.session == nil {
		return Session{}, nil, false
	}
	return *m.session, m.ctx, true
}

// Apply replaces the world state with a tick response issued for s. Responses
// for any other session, or arriving outside Running, are discarded. won
// reports whether this response moved the phase to Won.
func (m *Manager) Apply(s Session, worldState *gametypes.WorldState) (applied bool, won bool) {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.phase != RunPhaseRunning || m.session == nil || !m.session.Is(s) {
		return false, false
	}

	m.store.Replace(worldState)
	if worldState.Win {
		m.phase = RunPhaseWon
		log.Info("Session %s won", s.ID)
		return true, true
	}
	return true, false
}

// Store gives read-only access to the latest world state.
func (m *Manager) Store() state.Reader {
	return m.store
}
