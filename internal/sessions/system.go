// Package sessions holds per-viewer state for the HTTP host: the loaded
// document, samples revealed by mock uploads, a pending paste, and the chat
// history. Sessions live in memory and expire after an idle TTL.
package sessions

import (
	"time"

	"github.com/JaimeStill/lexi/internal/uploads"
	"github.com/JaimeStill/lexi/pkg/lifecycle"
	"github.com/JaimeStill/lexi/pkg/pagination"
)

// System defines the public contract for viewing sessions.
type System interface {
	Handler() *Handler

	Create() (*Session, error)
	Find(id string) (*Session, error)
	Delete(id string) error

	// LoadDocument replaces the session's document with a stored one.
	LoadDocument(id, documentID string) (*LoadResult, error)
	// Paste validates text and synthesizes a document from it in the
	// background. The session is busy until synthesis finishes.
	Paste(id, text string) (*Session, error)
	// Upload records an accepted mock upload. The first two uploads reveal
	// and load the loan and rent samples in turn.
	Upload(id string, u *uploads.Upload) (*Session, error)

	// Ask answers question against the loaded document and appends the
	// exchange to the history.
	Ask(id, question string) (*Exchange, error)
	Messages(id string, page pagination.PageRequest) (*pagination.PageResult[Message], error)
	Suggestions(id string) ([]string, error)

	// Sweep removes idle sessions last touched before now minus the TTL.
	Sweep(now time.Time) int
	// Start registers the sweeper and shutdown hooks with lc.
	Start(lc *lifecycle.Coordinator)
	// Close cancels pending syntheses and waits for them to return.
	Close()
}
