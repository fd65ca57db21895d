package observer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnDrELuIzzz/RealStateNeeds/internal/property/domain"
)

type recordingListener struct {
	created []string
	removed []string
	changes []priceChange
}

type priceChange struct {
	propertyID string
	oldPrice   float64
	newPrice   float64
}

func (l *recordingListener) OnPropertyCreated(p *domain.Property) {
	l.created = append(l.created, p.ID)
}

func (l *recordingListener) OnPropertyRemoved(p *domain.Property) {
	l.removed = append(l.removed, p.ID)
}

func (l *recordingListener) OnPriceChanged(p *domain.Property, oldPrice, newPrice float64) {
	l.changes = append(l.changes, priceChange{p.ID, oldPrice, newPrice})
}

type panickingListener struct{}

func (l *panickingListener) OnPropertyCreated(p *domain.Property)            { panic("boom") }
func (l *panickingListener) OnPropertyRemoved(p *domain.Property)            {}
func (l *panickingListener) OnPriceChanged(p *domain.Property, o, n float64) {}

func mustProperty(t *testing.T, price float64) *domain.Property {
	t.Helper()
	p, err := domain.NewProperty("Rua Tabor, 10, Ipiranga", price)
	require.NoError(t, err)
	return p
}

func TestSubscribe_Deduplicates(t *testing.T) {
	notifier := NewPropertyChangeNotifier()
	listener := &recordingListener{}

	notifier.Subscribe(listener)
	notifier.Subscribe(listener)

	assert.Equal(t, 1, notifier.ListenerCount())
}

func TestSubscribe_NilIsNoOp(t *testing.T) {
	notifier := NewPropertyChangeNotifier()

	notifier.Subscribe(nil)

	assert.Equal(t, 0, notifier.ListenerCount())
}

func TestUnsubscribe(t *testing.T) {
	notifier := NewPropertyChangeNotifier()
	first := &recordingListener{}
	second := &recordingListener{}

	notifier.Subscribe(first)
	notifier.Subscribe(second)
	notifier.Unsubscribe(first)

	assert.Equal(t, 1, notifier.ListenerCount())
	assert.Same(t, second, notifier.Listeners()[0].(*recordingListener))
}

func TestUnsubscribe_AbsentIsNoOp(t *testing.T) {
	notifier := NewPropertyChangeNotifier()
	notifier.Subscribe(&recordingListener{})

	notifier.Unsubscribe(&recordingListener{})

	assert.Equal(t, 1, notifier.ListenerCount())
}

func TestUnsubscribeAll(t *testing.T) {
	notifier := NewPropertyChangeNotifier()
	notifier.Subscribe(&recordingListener{})
	notifier.Subscribe(&recordingListener{})

	notifier.UnsubscribeAll()

	assert.Equal(t, 0, notifier.ListenerCount())
}

func TestNotify_EachListenerExactlyOnce(t *testing.T) {
	notifier := NewPropertyChangeNotifier()
	first := &recordingListener{}
	second := &recordingListener{}
	notifier.Subscribe(first)
	notifier.Subscribe(second)

	property := mustProperty(t, 9000)
	notifier.NotifyPropertyCreated(property)
	notifier.NotifyPriceChange(property, 9000, 10000)
	notifier.NotifyPropertyRemoved(property)

	for _, l := range []*recordingListener{first, second} {
		require.Len(t, l.created, 1)
		assert.Equal(t, property.ID, l.created[0])
		require.Len(t, l.changes, 1)
		assert.Equal(t, priceChange{property.ID, 9000, 10000}, l.changes[0])
		require.Len(t, l.removed, 1)
	}
}

func TestNotify_NoListeners(t *testing.T) {
	notifier := NewPropertyChangeNotifier()

	assert.NotPanics(t, func() {
		notifier.NotifyPropertyCreated(mustProperty(t, 9000))
	})
}

func TestListeners_DefensiveCopy(t *testing.T) {
	notifier := NewPropertyChangeNotifier()
	listener := &recordingListener{}
	notifier.Subscribe(listener)

	listeners := notifier.Listeners()
	listeners[0] = nil

	assert.Equal(t, 1, notifier.ListenerCount())
	assert.Same(t, listener, notifier.Listeners()[0].(*recordingListener))
}

func TestNotify_PanicLeavesRegistryIntact(t *testing.T) {
	notifier := NewPropertyChangeNotifier()
	notifier.Subscribe(&panickingListener{})
	notifier.Subscribe(&recordingListener{})

	assert.Panics(t, func() {
		notifier.NotifyPropertyCreated(mustProperty(t, 9000))
	})

	// The failing callback must not corrupt the registry
	assert.Equal(t, 2, notifier.ListenerCount())
}
