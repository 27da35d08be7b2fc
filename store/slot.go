package store

import (
	"context"
	"sync"
)

// Slot holds the latest snapshot of one piece of view state and broadcasts
// every new snapshot to its subscribers.
//
// Subscribers are called synchronously on the publishing goroutine, in
// registration order, and must not block or touch the slot. Watch adapts a
// slot to a channel for consumers that cannot meet that rule.
type Slot[T any] struct {
	mu     sync.Mutex
	value  T
	set    bool
	closed bool
	nextID int
	subs   []subscriber[T]
}

type subscriber[T any] struct {
	id     int
	fn     func(T)
	onDone func()
}

// Get returns the current snapshot. ok is false until the first Publish.
func (s *Slot[T]) Get() (value T, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, s.set
}

// Publish replaces the snapshot and delivers it to all current subscribers.
func (s *Slot[T]) Publish(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = v
	s.set = true
	for _, sub := range s.subs {
		sub.fn(v)
	}
}

// Subscribe registers fn and immediately replays the current snapshot, if
// any. The returned func stops further deliveries.
func (s *Slot[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	return s.subscribe(fn, nil)
}

func (s *Slot[T]) subscribe(fn func(T), onDone func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		if onDone != nil {
			onDone()
		}
		return func() {}
	}
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriber[T]{id: id, fn: fn, onDone: onDone})
	if s.set {
		fn(s.value)
	}
	var once sync.Once
	return func() {
		once.Do(func() { s.remove(id) })
	}
}

func (s *Slot[T]) remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sub := range s.subs {
		if sub.id == id {
			s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
			return
		}
	}
}

// Watch returns a channel carrying the current snapshot followed by every
// later one, in publish order and without coalescing. The channel is closed
// once ctx is done or the slot is closed.
func (s *Slot[T]) Watch(ctx context.Context) <-chan T {
	q := newQueue[T]()
	unsubscribe := s.subscribe(q.push, q.close)
	out := make(chan T)
	go func() {
		defer close(out)
		defer unsubscribe()
		for {
			v, ok := q.pop(ctx)
			if !ok {
				return
			}
			select {
			case out <- v:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// Subscribers reports how many subscribers are registered.
func (s *Slot[T]) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

func (s *Slot[T]) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for _, sub := range s.subs {
		if sub.onDone != nil {
			sub.onDone()
		}
	}
	s.subs = nil
}

// queue is an unbounded FIFO so a slow reader never blocks a publisher.
type queue[T any] struct {
	mu     sync.Mutex
	items  []T
	closed bool
	signal chan struct{}
}

func newQueue[T any]() *queue[T] {
	return &queue[T]{signal: make(chan struct{}, 1)}
}

func (q *queue[T]) push(v T) {
	q.mu.Lock()
	q.items = append(q.items, v)
	q.mu.Unlock()
	q.wake()
}

func (q *queue[T]) close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.wake()
}

func (q *queue[T]) wake() {
	select {
	case q.signal <- struct{}{}:
	default:
	}
}

func (q *queue[T]) pop(ctx context.Context) (T, bool) {
	for {
		q.mu.Lock()
		if len(q.items) > 0 {
			v := q.items[0]
			var zero T
			q.items[0] = zero
			q.items = q.items[1:]
			q.mu.Unlock()
			return v, true
		}
		closed := q.closed
		q.mu.Unlock()
		if closed {
			var zero T
			return zero, false
		}
		select {
		case <-q.signal:
		case <-ctx.Done():
			var zero T
			return zero, false
		}
	}
}
