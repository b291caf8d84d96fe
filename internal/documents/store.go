package documents

import (
	"fmt"
	"log/slog"
)

// store is an immutable, ordered collection of documents indexed by id.
type store struct {
	order  []*Document
	index  map[string]*Document
	logger *slog.Logger
}

// New creates the store seeded with the sample agreements.
func New(logger *slog.Logger) System {
	s, err := NewStore(logger, Samples()...)
	if err != nil {
		panic(err)
	}
	return s
}

// NewStore creates a store from the given documents. Identifiers must be
// unique; the store keeps private copies so later mutation of docs has no effect.
func NewStore(logger *slog.Logger, docs ...*Document) (System, error) {
	s := &store{
		order:  make([]*Document, 0, len(docs)),
		index:  make(map[string]*Document, len(docs)),
		logger: logger.With("system", "documents"),
	}

	for _, d := range docs {
		if _, exists := s.index[d.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicate, d.ID)
		}
		c := d.Clone()
		s.order = append(s.order, c)
		s.index[c.ID] = c
	}

	s.logger.Info("document store loaded", "count", len(s.order))
	return s, nil
}

func (s *store) Handler() *Handler {
	return NewHandler(s, s.logger)
}

func (s *store) List() []Summary {
	out := make([]Summary, 0, len(s.order))
	for _, d := range s.order {
		out = append(out, d.Summarize())
	}
	return out
}

func (s *store) Lookup(id string) (*Document, bool) {
	d, ok := s.index[id]
	if !ok {
		return nil, false
	}
	return d.Clone(), true
}
