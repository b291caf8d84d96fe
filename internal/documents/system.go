package documents

// System defines the public contract of the document store.
type System interface {
	Handler() *Handler

	// List returns the list view of every stored document in insertion order.
	List() []Summary
	// Lookup returns a copy of the document with the given id. Unknown ids
	// report ok=false; lookup never fails otherwise.
	Lookup(id string) (doc *Document, ok bool)
}
