package observer

import (
	"sync"

	"github.com/AnDrELuIzzz/RealStateNeeds/internal/property/domain"
)

// PropertyChangeNotifier keeps an ordered registry of listeners and fans
// change events out to all of them. Registration is deduplicated by
// listener identity and notification runs in insertion order.
//
// Dispatch iterates over a snapshot of the registry, so a listener that
// panics mid-callback leaves the registry itself intact.
type PropertyChangeNotifier struct {
	mu        sync.Mutex
	listeners []PropertyListener
}

func NewPropertyChangeNotifier() *PropertyChangeNotifier {
	return &PropertyChangeNotifier{}
}

// Subscribe adds a listener. Nil listeners and listeners already present
// are ignored.
func (n *PropertyChangeNotifier) Subscribe(listener PropertyListener) {
	if listener == nil {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, l := range n.listeners {
		if l == listener {
			return
		}
	}
	n.listeners = append(n.listeners, listener)
}

// Unsubscribe removes a listener if present.
func (n *PropertyChangeNotifier) Unsubscribe(listener PropertyListener) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, l := range n.listeners {
		if l == listener {
			n.listeners = append(n.listeners[:i], n.listeners[i+1:]...)
			return
		}
	}
}

// UnsubscribeAll clears the registry.
func (n *PropertyChangeNotifier) UnsubscribeAll() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.listeners = nil
}

func (n *PropertyChangeNotifier) NotifyPropertyCreated(property *domain.Property) {
	for _, l := range n.snapshot() {
		l.OnPropertyCreated(property)
	}
}

func (n *PropertyChangeNotifier) NotifyPropertyRemoved(property *domain.Property) {
	for _, l := range n.snapshot() {
		l.OnPropertyRemoved(property)
	}
}

func (n *PropertyChangeNotifier) NotifyPriceChange(property *domain.Property, oldPrice, newPrice float64) {
	for _, l := range n.snapshot() {
		l.OnPriceChanged(property, oldPrice, newPrice)
	}
}

// ListenerCount returns the number of registered listeners.
func (n *PropertyChangeNotifier) ListenerCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.listeners)
}

// Listeners returns a copy of the registry in insertion order.
func (n *PropertyChangeNotifier) Listeners() []PropertyListener {
	return n.snapshot()
}

func (n *PropertyChangeNotifier) snapshot() []PropertyListener {
	n.mu.Lock()
	defer n.mu.Unlock()
	listeners := make([]PropertyListener, len(n.listeners))
	copy(listeners, n.listeners)
	return listeners
}
