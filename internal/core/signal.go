package core

// Signal is a synchronous, payload-free event.
// Listeners run inside Emit, in the order they subscribed.
type Signal struct {
	listeners []func()
}

// NewSignal creates a signal with no listeners.
func NewSignal() *Signal {
	return &Signal{}
}

// Subscribe registers fn. A nil fn is ignored.
func (s *Signal) Subscribe(fn func()) {
	if fn == nil {
		return
	}
	s.listeners = append(s.listeners, fn)
}

// Emit calls every listener before returning.
func (s *Signal) Emit() {
	for _, fn := range s.listeners {
		fn()
	}
}
