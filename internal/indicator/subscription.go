package indicator

import "github.com/rxtech-lab/argo-indicator/internal/types"

// Subscription is the handle returned by Subscribe.
type Subscription struct {
	id       uint64
	registry *callbacks
}

// Dispose stops future notifications. It is safe to call more than once.
func (s *Subscription) Dispose() {
	if s == nil || s.registry == nil {
		return
	}

	s.registry.remove(s.id)
	s.registry = nil
}

type callbackEntry struct {
	id      uint64
	handler ChangeHandler
}

// callbacks keeps handlers in registration order. Handlers removed while an
// emit is running are skipped and compacted once the outermost emit returns.
type callbacks struct {
	nextID   uint64
	entries  []callbackEntry
	emitting int
	dirty    bool
}

func (c *callbacks) add(handler ChangeHandler) *Subscription {
	c.nextID++
	c.entries = append(c.entries, callbackEntry{id: c.nextID, handler: handler})

	return &Subscription{id: c.nextID, registry: c}
}

func (c *callbacks) remove(id uint64) {
	for i := range c.entries {
		if c.entries[i].id != id {
			continue
		}

		if c.emitting > 0 {
			c.entries[i].handler = nil
			c.dirty = true

			return
		}

		c.entries = append(c.entries[:i], c.entries[i+1:]...)

		return
	}
}

func (c *callbacks) emit(index int, value types.Value) {
	c.emitting++

	// handlers added during the emit are not called for this change
	n := len(c.entries)
	for i := 0; i < n && i < len(c.entries); i++ {
		if h := c.entries[i].handler; h != nil {
			h(index, value)
		}
	}

	c.emitting--
	if c.emitting == 0 && c.dirty {
		c.compact()
	}
}

func (c *callbacks) compact() {
	kept := c.entries[:0]
	for _, e := range c.entries {
		if e.handler != nil {
			kept = append(kept, e)
		}
	}

	c.entries = kept
	c.dirty = false
}

func (c *callbacks) len() int {
	count := 0

	for _, e := range c.entries {
		if e.handler != nil {
			count++
		}
	}

	return count
}
