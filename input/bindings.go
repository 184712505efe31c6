package input

// Handler receives the event that matched its binding.
type Handler func(evt Event)

// Bindings is the gameplay dispatch table. Each identity maps to at most
// one handler; binding an identity again replaces the earlier handler.
type Bindings struct {
	handlers map[ID]Handler
}

// NewBindings returns an empty dispatch table.
func NewBindings() *Bindings {
	return &Bindings{handlers: make(map[ID]Handler)}
}

// Bind installs h for id.
func (b *Bindings) Bind(id ID, h Handler) {
	b.handlers[id] = h
}

// Has reports whether id is bound.
func (b *Bindings) Has(id ID) bool {
	_, ok := b.handlers[id]
	return ok
}

// Dispatch calls the handler bound to evt's identity, if any.
func (b *Bindings) Dispatch(evt Event) bool {
	h, ok := b.handlers[evt.ID()]
	if !ok {
		return false
	}
	h(evt)
	return true
}

// Len returns the number of bound identities.
func (b *Bindings) Len() int {
	return len(b.handlers)
}

// Reset removes every binding.
func (b *Bindings) Reset() {
	clear(b.handlers)
}
