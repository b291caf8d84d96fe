package sessions

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/lexi/internal/documents"
)

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry of a session's chat history. Assistant messages carry
// the rendered answer and, when present, its citation and confidence.
type Message struct {
	ID             uuid.UUID            `json:"id"`
	Role           Role                 `json:"role"`
	Text           string               `json:"text"`
	SourceClauseID string               `json:"source_clause_id,omitempty"`
	Confidence     documents.Confidence `json:"confidence,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
}

// Session is a snapshot of one viewer's state.
type Session struct {
	ID           uuid.UUID           `json:"id"`
	Document     *documents.Document `json:"document,omitempty"`
	Revealed     []string            `json:"revealed"`
	Uploads      int                 `json:"uploads"`
	Busy         bool                `json:"busy"`
	LastError    string              `json:"last_error,omitempty"`
	MessageCount int                 `json:"message_count"`
	CreatedAt    time.Time           `json:"created_at"`
	TouchedAt    time.Time           `json:"touched_at"`
}

// Exchange is the result of asking a question: the user's message followed
// by the assistant's reply.
type Exchange struct {
	Question Message `json:"question"`
	Answer   Message `json:"answer"`
}

// LoadResult reports the session after a document change together with the
// example questions for the new document.
type LoadResult struct {
	Session     *Session `json:"session"`
	Suggestions []string `json:"suggestions"`
}

// entry is the mutable state behind a Session. Guarded by the store mutex.
type entry struct {
	id        uuid.UUID
	document  *documents.Document
	revealed  []string
	uploads   int
	busy      bool
	lastError string
	messages  []Message
	createdAt time.Time
	touchedAt time.Time
}

func (e *entry) snapshot() *Session {
	var doc *documents.Document
	if e.document != nil {
		doc = e.document.Clone()
	}
	return &Session{
		ID:           e.id,
		Document:     doc,
		Revealed:     slices.Clone(e.revealed),
		Uploads:      e.uploads,
		Busy:         e.busy,
		LastError:    e.lastError,
		MessageCount: len(e.messages),
		CreatedAt:    e.createdAt,
		TouchedAt:    e.touchedAt,
	}
}

// setDocument replaces the loaded document. History belongs to the previous
// document and is cleared.
func (e *entry) setDocument(doc *documents.Document) {
	e.document = doc
	e.messages = nil
	e.lastError = ""
}
