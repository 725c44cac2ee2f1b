package glimmer

// Signal is a typed notification channel fired when widget state changes.
// Each widget exposes its signals as struct fields (ComboBox.OnItemSelect,
// SpinControl.OnValueChange, ...), so connecting to a signal that doesn't
// exist is a compile error rather than a runtime lookup failure.
//
// Signals fire synchronously, on the thread that delivered the event, and
// in the order the state changes occur. Handlers run before the triggering
// call returns.
//
// Usage:
//
//	id := combo.OnItemSelect.Connect(func(item glimmer.ItemEvent) {
//	    fmt.Println("selected", item.Name)
//	})
//	combo.OnItemSelect.Disconnect(id)
type Signal[T any] struct {
	nextID   int
	handlers []signalHandler[T]
}

type signalHandler[T any] struct {
	id int
	fn func(T)
}

// Connect registers a handler and returns an id that can be passed to
// Disconnect.
func (s *Signal[T]) Connect(fn func(T)) int {
	s.nextID++
	s.handlers = append(s.handlers, signalHandler[T]{id: s.nextID, fn: fn})
	return s.nextID
}

// Disconnect removes a previously connected handler.
// Returns false if no handler with the given id exists.
func (s *Signal[T]) Disconnect(id int) bool {
	for i, h := range s.handlers {
		if h.id == id {
			s.handlers = append(s.handlers[:i], s.handlers[i+1:]...)
			return true
		}
	}
	return false
}

// DisconnectAll removes every connected handler.
func (s *Signal[T]) DisconnectAll() {
	s.handlers = nil
}

// HandlerCount returns the number of connected handlers.
func (s *Signal[T]) HandlerCount() int {
	return len(s.handlers)
}

// emit invokes all handlers in connection order.
// Only widgets fire their own signals.
func (s *Signal[T]) emit(v T) {
	// Handlers may connect or disconnect during the emission, so iterate a
	// copy of the list; Disconnect mutates the backing array in place.
	handlers := append([]signalHandler[T](nil), s.handlers...)
	for _, h := range handlers {
		h.fn(v)
	}
}
