package docstore

import (
	"context"
	"sync"
)

// Subscription is a live query against one collection. The current match
// set is delivered once on registration and again after every commit to
// the collection. Deliveries are ordered; rapid consecutive commits may be
// coalesced, but the final state is always delivered. Callers must Close
// the subscription to stop delivery.
type Subscription struct {
	coll  *Collection
	query Query
	out   chan []Document
	poke  chan struct{}
	done  chan struct{}
	once  sync.Once
}

// Subscribe registers a live query. The initial snapshot is delivered
// asynchronously on the returned subscription's channel.
func (c *Collection) Subscribe(q Query) *Subscription {
	s := &Subscription{
		coll:  c,
		query: q,
		out:   make(chan []Document, 1),
		poke:  make(chan struct{}, 1),
		done:  make(chan struct{}),
	}
	c.notifier.add(s)
	go s.run()
	s.signal()
	return s
}

// C returns the delivery channel. It is closed after Close.
func (s *Subscription) C() <-chan []Document { return s.out }

// Close cancels the subscription. No deliveries occur afterward.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.coll.notifier.remove(s)
		close(s.done)
	})
}

// signal requests a recomputation. The one-slot buffer coalesces bursts.
func (s *Subscription) signal() {
	select {
	case s.poke <- struct{}{}:
	default:
	}
}

// run recomputes and delivers snapshots. A single goroutine per
// subscription keeps deliveries strictly ordered.
func (s *Subscription) run() {
	defer close(s.out)
	for {
		select {
		case <-s.done:
			return
		case <-s.poke:
		}

		docs, err := s.coll.Find(context.Background(), s.query)
		if err != nil {
			s.coll.logger.Error("subscription recompute", "collection", s.coll.name, "error", err)
			continue
		}

		// Replace an undelivered stale snapshot rather than blocking on a
		// slow consumer; the consumer always sees the newest state.
		select {
		case s.out <- docs:
			continue
		case <-s.done:
			return
		default:
		}
		select {
		case <-s.out:
		default:
		}
		select {
		case s.out <- docs:
		case <-s.done:
			return
		}
	}
}

// notifier tracks the live subscriptions of one collection.
type notifier struct {
	mu   sync.RWMutex
	subs map[*Subscription]struct{}
}

func newNotifier() *notifier {
	return &notifier{subs: make(map[*Subscription]struct{})}
}

func (n *notifier) add(s *Subscription) {
	n.mu.Lock()
	n.subs[s] = struct{}{}
	n.mu.Unlock()
}

func (n *notifier) remove(s *Subscription) {
	n.mu.Lock()
	delete(n.subs, s)
	n.mu.Unlock()
}

// commit pokes every live subscription. Whether the change affects a given
// match set is decided by the recomputation, not here.
func (n *notifier) commit() {
	n.mu.RLock()
	defer n.mu.RUnlock()
	for s := range n.subs {
		s.signal()
	}
}
