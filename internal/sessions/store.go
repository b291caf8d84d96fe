package sessions

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/lexi/internal/assistant"
	"github.com/JaimeStill/lexi/internal/classifications"
	"github.com/JaimeStill/lexi/internal/documents"
	"github.com/JaimeStill/lexi/internal/uploads"
	"github.com/JaimeStill/lexi/pkg/lifecycle"
	"github.com/JaimeStill/lexi/pkg/pagination"
)

// revealOrder lists the samples revealed by successive mock uploads.
var revealOrder = []string{documents.LoanAgreementID, documents.RentAgreementID}

// Deps are the systems a session store delegates to.
type Deps struct {
	Documents       documents.System
	Classifications classifications.System
	Assistant       assistant.System
	Pagination      pagination.Config
	MaxPasteSize    int64
	MaxUploadSize   int64
	Metrics         *Metrics
	Logger          *slog.Logger
}

type store struct {
	cfg  Config
	deps Deps

	mu      sync.Mutex
	entries map[uuid.UUID]*entry

	ctx     context.Context
	cancel  context.CancelFunc
	pending sync.WaitGroup

	now    func() time.Time
	logger *slog.Logger
}

// New creates an in-memory session store. cfg must already be finalized.
func New(cfg *Config, deps Deps) System {
	ctx, cancel := context.WithCancel(context.Background())
	return &store{
		cfg:     *cfg,
		deps:    deps,
		entries: make(map[uuid.UUID]*entry),
		ctx:     ctx,
		cancel:  cancel,
		now:     time.Now,
		logger:  deps.Logger.With("system", "sessions"),
	}
}

func (s *store) Handler() *Handler {
	return NewHandler(s, s.deps.Pagination, s.deps.MaxPasteSize, s.deps.MaxUploadSize, s.logger)
}

func (s *store) Create() (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cfg.MaxSessions > 0 && len(s.entries) >= s.cfg.MaxSessions {
		return nil, fmt.Errorf("%w: %d", ErrLimit, s.cfg.MaxSessions)
	}

	now := s.now()
	e := &entry{
		id:        uuid.New(),
		revealed:  []string{},
		createdAt: now,
		touchedAt: now,
	}
	s.entries[e.id] = e
	s.deps.Metrics.setActive(len(s.entries))

	s.logger.Info("session created", "id", e.id)
	return e.snapshot(), nil
}

func (s *store) Find(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.get(id)
	if err != nil {
		return nil, err
	}
	return e.snapshot(), nil
}

func (s *store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.get(id)
	if err != nil {
		return err
	}
	delete(s.entries, e.id)
	s.deps.Metrics.setActive(len(s.entries))

	s.logger.Info("session deleted", "id", e.id)
	return nil
}

func (s *store) LoadDocument(id, documentID string) (*LoadResult, error) {
	doc, ok := s.deps.Documents.Lookup(documentID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", documents.ErrNotFound, documentID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.idle(id)
	if err != nil {
		return nil, err
	}
	e.setDocument(doc)

	s.logger.Info("document loaded", "id", e.id, "document", doc.ID)
	return &LoadResult{
		Session:     e.snapshot(),
		Suggestions: s.deps.Assistant.Suggest(doc),
	}, nil
}

func (s *store) Paste(id, text string) (*Session, error) {
	if err := s.deps.Classifications.Validate(text); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.idle(id)
	if err != nil {
		return nil, err
	}
	e.busy = true
	e.lastError = ""

	s.pending.Go(func() { s.synthesize(e.id, text) })

	return e.snapshot(), nil
}

func (s *store) synthesize(id uuid.UUID, text string) {
	category := s.deps.Classifications.Classify(text)
	doc, err := s.deps.Classifications.Synthesize(s.ctx, text, category)

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return
	}
	e.busy = false
	e.touchedAt = s.now()

	if err != nil {
		e.lastError = err.Error()
		return
	}
	e.setDocument(doc)
}

func (s *store) Upload(id string, u *uploads.Upload) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.idle(id)
	if err != nil {
		return nil, err
	}

	n := e.uploads
	e.uploads++

	if n < len(revealOrder) {
		docID := revealOrder[n]
		doc, ok := s.deps.Documents.Lookup(docID)
		if !ok {
			return nil, fmt.Errorf("%w: %s", documents.ErrNotFound, docID)
		}
		e.revealed = append(e.revealed, docID)
		e.setDocument(doc)
	}

	s.logger.Info("upload accepted",
		"id", e.id,
		"upload", u.ID,
		"content_type", u.ContentType,
		"size", u.Size,
		"revealed", len(e.revealed),
	)
	return e.snapshot(), nil
}

func (s *store) Ask(id, question string) (*Exchange, error) {
	if strings.TrimSpace(question) == "" {
		return nil, ErrEmptyQuestion
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.idle(id)
	if err != nil {
		return nil, err
	}
	if e.document == nil {
		return nil, ErrNoDocument
	}

	asked := s.now()
	ans := s.deps.Assistant.Ask(e.document, question)

	ex := &Exchange{
		Question: Message{
			ID:        uuid.New(),
			Role:      RoleUser,
			Text:      question,
			CreatedAt: asked,
		},
		Answer: Message{
			ID:             uuid.New(),
			Role:           RoleAssistant,
			Text:           s.deps.Assistant.Display(ans),
			SourceClauseID: ans.SourceClauseID,
			Confidence:     ans.Confidence,
			CreatedAt:      s.now(),
		},
	}
	e.messages = append(e.messages, ex.Question, ex.Answer)

	return ex, nil
}

func (s *store) Messages(id string, page pagination.PageRequest) (*pagination.PageResult[Message], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.get(id)
	if err != nil {
		return nil, err
	}

	page.Normalize(s.deps.Pagination)
	result := pagination.Paginate(e.messages, page)
	return &result, nil
}

func (s *store) Suggestions(id string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.get(id)
	if err != nil {
		return nil, err
	}
	return s.deps.Assistant.Suggest(e.document), nil
}

func (s *store) Sweep(now time.Time) int {
	cutoff := now.Add(-s.cfg.TTLDuration())

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, e := range s.entries {
		if e.busy || e.touchedAt.After(cutoff) {
			continue
		}
		delete(s.entries, id)
		removed++
	}

	s.deps.Metrics.setActive(len(s.entries))
	s.deps.Metrics.addEvicted(removed)

	if removed > 0 {
		s.logger.Info("idle sessions evicted", "count", removed, "remaining", len(s.entries))
	}
	return removed
}

func (s *store) Start(lc *lifecycle.Coordinator) {
	lc.OnStartup(func() error {
		go s.sweepLoop(lc.Context())
		return nil
	})

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		s.Close()
		s.logger.Info("sessions closed")
	})
}

func (s *store) Close() {
	s.cancel()
	s.pending.Wait()
}

func (s *store) sweepLoop(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.SweepIntervalDuration())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case t := <-ticker.C:
			s.Sweep(t)
		}
	}
}

// get resolves id and marks the session as touched. Callers hold s.mu.
func (s *store) get(id string) (*entry, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	e, ok := s.entries[uid]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	e.touchedAt = s.now()
	return e, nil
}

// idle is get for operations that must wait out a pending paste.
func (s *store) idle(id string) (*entry, error) {
	e, err := s.get(id)
	if err != nil {
		return nil, err
	}
	if e.busy {
		return nil, fmt.Errorf("%w: %s", ErrBusy, id)
	}
	return e, nil
}
