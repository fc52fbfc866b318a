// Package daemon serves one session ledger over HTTP, with SSE and WebSocket
// event streams for appended days.
package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/theirongolddev/econopsych/internal/model"
	"github.com/theirongolddev/econopsych/internal/nudge"
	"github.com/theirongolddev/econopsych/internal/pipeline"
	"github.com/theirongolddev/econopsych/internal/simulate"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Config controls the service runtime behavior.
type Config struct {
	Seed         uint64
	Days         int
	Empty        bool
	Currency     string
	Addr         string
	EventsBuffer int
}

// Snapshot is a compact ledger state for status and event payloads.
type Snapshot struct {
	At           time.Time       `json:"at"`
	Days         int             `json:"days"`
	BiasedDays   int             `json:"biased_days"`
	TotalPlanned decimal.Decimal `json:"total_planned"`
	TotalActual  decimal.Decimal `json:"total_actual"`
	TotalGoal    decimal.Decimal `json:"total_goal"`
	NetSavings   decimal.Decimal `json:"net_savings"`
	AvgImpulse   float64         `json:"avg_impulse"`
}

// Delta captures the change between two snapshots.
type Delta struct {
	Days       int             `json:"days"`
	BiasedDays int             `json:"biased_days"`
	NetSavings decimal.Decimal `json:"net_savings"`
}

// Event types.
const (
	EventSnapshot = "snapshot"
	EventDayAdded = "day_added"
)

// Event is emitted when the session starts and whenever a day is appended.
type Event struct {
	ID        int64            `json:"id"`
	Type      string           `json:"type"`
	Timestamp time.Time        `json:"timestamp"`
	Snapshot  Snapshot         `json:"snapshot"`
	Delta     Delta            `json:"delta"`
	Day       *model.DayRecord `json:"day,omitempty"`
	Nudges    []nudge.Nudge    `json:"nudges,omitempty"`
}

// Status is served at /v1/status.
type Status struct {
	SessionID       string    `json:"session_id"`
	StartedAt       time.Time `json:"started_at"`
	Seed            uint64    `json:"seed"`
	LastAppendAt    time.Time `json:"last_append_at"`
	AppendCount     int64     `json:"append_count"`
	RejectCount     int64     `json:"reject_count"`
	LastError       string    `json:"last_error,omitempty"`
	Summary         Snapshot  `json:"summary"`
	EventCount      int       `json:"event_count"`
	SubscriberCount int       `json:"subscriber_count"`
}

// SavingsPoint is one entry of /v1/savings.
type SavingsPoint struct {
	Day        int             `json:"day"`
	Net        decimal.Decimal `json:"net"`
	Cumulative decimal.Decimal `json:"cumulative"`
}

// AppendResult is the body of a successful POST /v1/days.
type AppendResult struct {
	Day               model.DayRecord `json:"day"`
	Nudges            []nudge.Nudge   `json:"nudges"`
	CumulativeSavings decimal.Decimal `json:"cumulative_savings"`
}

// Service owns one session ledger and its HTTP API. Handlers run on
// separate goroutines, so ledger access is guarded by mu.
type Service struct {
	cfg       Config
	sessionID string
	upgrader  websocket.Upgrader

	mu           sync.RWMutex
	ledger       pipeline.Ledger
	startedAt    time.Time
	lastAppendAt time.Time
	appendCount  int64
	rejectCount  int64
	lastError    string
	snapshot     Snapshot
	nextEventID  int64
	events       []Event

	nextSubID int
	subs      map[int]chan Event
}

// New returns a service with a freshly seeded session ledger.
func New(cfg Config) (*Service, error) {
	if cfg.EventsBuffer < 1 {
		cfg.EventsBuffer = 200
	}
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8790"
	}
	if cfg.Currency == "" {
		cfg.Currency = "$"
	}

	l, err := simulate.NewLedger(simulate.SourceFor(cfg.Seed, cfg.Empty), cfg.Days)
	if err != nil {
		return nil, fmt.Errorf("seeding session: %w", err)
	}

	now := time.Now()
	s := &Service{
		cfg:       cfg,
		sessionID: uuid.NewString(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		ledger:    l,
		startedAt: now,
		subs:      make(map[int]chan Event),
	}
	s.snapshot = snapshotFromLedger(l, now)
	s.nextEventID++
	s.events = append(s.events, Event{
		ID:        s.nextEventID,
		Type:      EventSnapshot,
		Timestamp: now,
		Snapshot:  s.snapshot,
	})
	return s, nil
}

// SessionID identifies this service lifetime's ledger.
func (s *Service) SessionID() string {
	return s.sessionID
}

// Handler returns the HTTP API.
func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /v1/status", s.handleStatus)
	mux.HandleFunc("GET /v1/ledger", s.handleLedger)
	mux.HandleFunc("GET /v1/savings", s.handleSavings)
	mux.HandleFunc("GET /v1/nudges", s.handleNudges)
	mux.HandleFunc("POST /v1/days", s.handleAppend)
	mux.HandleFunc("GET /v1/events", s.handleEvents)
	mux.HandleFunc("GET /v1/stream", s.handleStream)
	mux.HandleFunc("GET /v1/ws", s.handleWebSocket)
	return mux
}

// Run serves the API until ctx is canceled.
func (s *Service) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.WithFields(log.Fields{
			"addr":    s.cfg.Addr,
			"session": s.sessionID,
			"days":    s.snapshotStatus().Summary.Days,
		}).Info("serving session ledger")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Info("shutting down")
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// Append classifies raw as the session's next day and publishes a
// day_added event. Rejected input leaves the ledger unchanged.
func (s *Service) Append(raw model.RawDay) (AppendResult, error) {
	now := time.Now()

	s.mu.Lock()
	next, err := s.ledger.Append(raw)
	if err != nil {
		s.rejectCount++
		s.lastError = err.Error()
		s.mu.Unlock()
		log.WithError(err).Warn("append rejected")
		return AppendResult{}, err
	}

	prev := s.snapshot
	s.ledger = next
	s.snapshot = snapshotFromLedger(next, now)
	s.lastAppendAt = now
	s.appendCount++
	s.lastError = ""

	day, _ := next.Last()
	cum := pipeline.CumulativeSavings(next)
	res := AppendResult{
		Day:               day,
		Nudges:            nudge.ForDay(day, s.cfg.Currency),
		CumulativeSavings: cum[len(cum)-1],
	}

	s.nextEventID++
	ev := Event{
		ID:        s.nextEventID,
		Type:      EventDayAdded,
		Timestamp: now,
		Snapshot:  s.snapshot,
		Delta:     diffSnapshots(prev, s.snapshot),
		Day:       &day,
		Nudges:    res.Nudges,
	}
	s.publishLocked(ev)
	s.mu.Unlock()

	log.WithFields(log.Fields{
		"day":    day.Day,
		"biases": day.Biases.String(),
		"net":    day.Net().String(),
	}).Info("day appended")
	return res, nil
}

func snapshotFromLedger(l pipeline.Ledger, at time.Time) Snapshot {
	stats := pipeline.Aggregate(l)
	return Snapshot{
		At:           at,
		Days:         stats.Days,
		BiasedDays:   stats.BiasedDays,
		TotalPlanned: stats.TotalPlanned,
		TotalActual:  stats.TotalActual,
		TotalGoal:    stats.TotalGoal,
		NetSavings:   stats.NetSavings,
		AvgImpulse:   stats.AvgImpulse,
	}
}

func diffSnapshots(prev, curr Snapshot) Delta {
	return Delta{
		Days:       curr.Days - prev.Days,
		BiasedDays: curr.BiasedDays - prev.BiasedDays,
		NetSavings: curr.NetSavings.Sub(prev.NetSavings),
	}
}

// publishLocked appends ev to the ring buffer and fans it out. The caller
// holds mu, so event IDs reach the buffer and subscribers in order.
func (s *Service) publishLocked(ev Event) {
	s.events = append(s.events, ev)
	if len(s.events) > s.cfg.EventsBuffer {
		s.events = s.events[len(s.events)-s.cfg.EventsBuffer:]
	}
	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

func (s *Service) snapshotStatus() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Status{
		SessionID:       s.sessionID,
		StartedAt:       s.startedAt,
		Seed:            s.cfg.Seed,
		LastAppendAt:    s.lastAppendAt,
		AppendCount:     s.appendCount,
		RejectCount:     s.rejectCount,
		LastError:       s.lastError,
		Summary:         s.snapshot,
		EventCount:      len(s.events),
		SubscriberCount: len(s.subs),
	}
}

func (s *Service) currentLedger() pipeline.Ledger {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, map[string]string{"error": err.Error()})
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.snapshotStatus())
}

func (s *Service) handleLedger(w http.ResponseWriter, _ *http.Request) {
	l := s.currentLedger()
	writeJSON(w, http.StatusOK, map[string]any{
		"days":               l.Days(),
		"cumulative_savings": pipeline.CumulativeSavings(l),
	})
}

func (s *Service) handleSavings(w http.ResponseWriter, _ *http.Request) {
	l := s.currentLedger()
	days := l.Days()
	cum := pipeline.CumulativeSavings(l)

	points := make([]SavingsPoint, len(days))
	for i, d := range days {
		points[i] = SavingsPoint{Day: d.Day, Net: d.Net(), Cumulative: cum[i]}
	}
	writeJSON(w, http.StatusOK, points)
}

func (s *Service) handleNudges(w http.ResponseWriter, _ *http.Request) {
	nudges := nudge.ForLedger(s.currentLedger(), s.cfg.Currency)
	if nudges == nil {
		nudges = []nudge.Nudge{}
	}
	writeJSON(w, http.StatusOK, nudges)
}

func (s *Service) handleAppend(w http.ResponseWriter, r *http.Request) {
	var raw model.RawDay
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decoding day: %w", err))
		return
	}

	res, err := s.Append(raw)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, pipeline.ErrInvalidInput) {
			code = http.StatusBadRequest
		}
		writeError(w, code, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (s *Service) handleEvents(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	events := make([]Event, len(s.events))
	copy(events, s.events)
	s.mu.RUnlock()

	writeJSON(w, http.StatusOK, events)
}

func (s *Service) currentEvent() Event {
	return Event{
		Type:      EventSnapshot,
		Timestamp: time.Now(),
		Snapshot:  s.snapshotStatus().Summary,
	}
}

func (s *Service) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := make(chan Event, 16)
	id := s.addSubscriber(ch)
	defer s.removeSubscriber(id)

	writeSSE(w, s.currentEvent())
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev := <-ch:
			writeSSE(w, ev)
			flusher.Flush()
		}
	}
}

func writeSSE(w http.ResponseWriter, ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	_, _ = fmt.Fprintf(w, "event: %s\n", ev.Type)
	_, _ = fmt.Fprintf(w, "data: %s\n\n", data)
}

func (s *Service) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer func() { _ = conn.Close() }()

	ch := make(chan Event, 16)
	id := s.addSubscriber(ch)
	defer s.removeSubscriber(id)

	// The client sends nothing; reading only detects disconnects.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := conn.WriteJSON(s.currentEvent()); err != nil {
		return
	}
	for {
		select {
		case <-r.Context().Done():
			return
		case <-closed:
			return
		case ev := <-ch:
			_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
			if err := conn.WriteJSON(ev); err != nil {
				return
			}
		}
	}
}

func (s *Service) addSubscriber(ch chan Event) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSubID++
	id := s.nextSubID
	s.subs[id] = ch
	return id
}

func (s *Service) removeSubscriber(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, id)
}
