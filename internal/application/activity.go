package application

import (
	"sync"

	"github.com/linskybing/fyp-portal/internal/domain/audit"
)

const defaultSubscriberBuffer = 64

// ActivityHub fans committed audit entries out to live subscribers.
// Sends never block: a subscriber whose buffer is full misses the entry.
type ActivityHub struct {
	mu      sync.RWMutex
	subs    map[chan audit.AuditLog]struct{}
	buffer  int
	dropped uint64
}

func NewActivityHub(buffer int) *ActivityHub {
	if buffer <= 0 {
		buffer = defaultSubscriberBuffer
	}
	return &ActivityHub{
		subs:   make(map[chan audit.AuditLog]struct{}),
		buffer: buffer,
	}
}

// Subscribe returns a feed and a function that ends the subscription.
func (h *ActivityHub) Subscribe() (<-chan audit.AuditLog, func()) {
	ch := make(chan audit.AuditLog, h.buffer)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, ch)
			h.mu.Unlock()
			close(ch)
		})
	}
}

func (h *ActivityHub) Publish(entries ...*audit.AuditLog) {
	if h == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, e := range entries {
		if e == nil {
			continue
		}
		for ch := range h.subs {
			select {
			case ch <- *e:
			default:
				h.dropped++
			}
		}
	}
}

func (h *ActivityHub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

func (h *ActivityHub) Dropped() uint64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.dropped
}
