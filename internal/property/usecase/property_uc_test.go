package usecase

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnDrELuIzzz/RealStateNeeds/internal/adapter/repository/memory"
	"github.com/AnDrELuIzzz/RealStateNeeds/internal/platform/logger"
	"github.com/AnDrELuIzzz/RealStateNeeds/internal/property/domain"
	"github.com/AnDrELuIzzz/RealStateNeeds/internal/property/filter"
	"github.com/AnDrELuIzzz/RealStateNeeds/internal/property/strategy"
)

type recordingListener struct {
	created []*domain.Property
	removed []*domain.Property
	changes []priceChange
}

type priceChange struct {
	property *domain.Property
	oldPrice float64
	newPrice float64
}

func (l *recordingListener) OnPropertyCreated(p *domain.Property) {
	l.created = append(l.created, p)
}

func (l *recordingListener) OnPropertyRemoved(p *domain.Property) {
	l.removed = append(l.removed, p)
}

func (l *recordingListener) OnPriceChanged(p *domain.Property, oldPrice, newPrice float64) {
	l.changes = append(l.changes, priceChange{p, oldPrice, newPrice})
}

func newTestUsecase() *PropertyUsecase {
	return NewPropertyUsecase(memory.NewPropertyRepository(), logger.NewLoggerWithOutput(io.Discard))
}

func mustProperty(t *testing.T, address string, price float64) *domain.Property {
	t.Helper()
	p, err := domain.NewProperty(address, price)
	require.NoError(t, err)
	return p
}

func TestAddProperty(t *testing.T) {
	uc := newTestUsecase()
	listener := &recordingListener{}
	uc.Subscribe(listener)

	property := mustProperty(t, "Rua Bom Pastor, 300, Ipiranga", 9500.00)
	uc.AddProperty(context.Background(), property)

	assert.Equal(t, 1, uc.PropertyCount(context.Background()))
	require.Len(t, listener.created, 1)
	assert.Same(t, property, listener.created[0])
}

func TestAddProperty_InvalidPriceRejectedSilently(t *testing.T) {
	uc := newTestUsecase()
	listener := &recordingListener{}
	uc.Subscribe(listener)

	property := mustProperty(t, "Rua Bom Pastor, 300, Ipiranga", 12000.00)
	uc.AddProperty(context.Background(), property)

	assert.Equal(t, 0, uc.PropertyCount(context.Background()))
	assert.Empty(t, listener.created)
}

func TestAddProperty_NilIsNoOp(t *testing.T) {
	uc := newTestUsecase()
	listener := &recordingListener{}
	uc.Subscribe(listener)

	uc.AddProperty(context.Background(), nil)

	assert.Equal(t, 0, uc.PropertyCount(context.Background()))
	assert.Empty(t, listener.created)
}

func TestRemoveProperty(t *testing.T) {
	uc := newTestUsecase()
	listener := &recordingListener{}
	uc.Subscribe(listener)

	property := mustProperty(t, "Rua Tabor, 40, Ipiranga", 9000.00)
	uc.AddProperty(context.Background(), property)
	uc.RemoveProperty(context.Background(), property)

	assert.Equal(t, 0, uc.PropertyCount(context.Background()))
	require.Len(t, listener.removed, 1)

	// Removing again takes nothing out, so nothing is notified
	uc.RemoveProperty(context.Background(), property)
	assert.Len(t, listener.removed, 1)
}

func TestRemoveProperty_AbsentIsSilent(t *testing.T) {
	uc := newTestUsecase()
	listener := &recordingListener{}
	uc.Subscribe(listener)

	uc.RemoveProperty(context.Background(), mustProperty(t, "Rua Tabor, 40, Ipiranga", 9000.00))
	uc.RemoveProperty(context.Background(), nil)

	assert.Empty(t, listener.removed)
}

func TestUpdatePropertyPrice(t *testing.T) {
	uc := newTestUsecase()
	listener := &recordingListener{}
	uc.Subscribe(listener)

	property := mustProperty(t, "Rua Tabor, 40, Ipiranga", 9000.00)
	uc.AddProperty(context.Background(), property)
	updatedBefore := property.UpdatedAt

	uc.UpdatePropertyPrice(context.Background(), property, 10000.00)

	require.Len(t, listener.changes, 1)
	assert.Same(t, property, listener.changes[0].property)
	assert.Equal(t, 9000.00, listener.changes[0].oldPrice)
	assert.Equal(t, 10000.00, listener.changes[0].newPrice)

	assert.Equal(t, 10000.00, property.Price)
	assert.False(t, property.UpdatedAt.Before(updatedBefore))

	// The change durably applied before the notification fired
	stored := uc.FindPropertyByID(context.Background(), property.ID)
	require.NotNil(t, stored)
	assert.Equal(t, 10000.00, stored.Price)
}

func TestUpdatePropertyPrice_NilIsNoOp(t *testing.T) {
	uc := newTestUsecase()
	listener := &recordingListener{}
	uc.Subscribe(listener)

	uc.UpdatePropertyPrice(context.Background(), nil, 10000.00)

	assert.Empty(t, listener.changes)
}

func TestUpdatePropertyPrice_UnknownPropertyNotNotified(t *testing.T) {
	uc := newTestUsecase()
	listener := &recordingListener{}
	uc.Subscribe(listener)

	// Never added, so persisting the update fails and nothing is notified
	property := mustProperty(t, "Rua Tabor, 40, Ipiranga", 9000.00)
	uc.UpdatePropertyPrice(context.Background(), property, 10000.00)

	assert.Empty(t, listener.changes)
}

func TestFilterProperties(t *testing.T) {
	uc := newTestUsecase()
	for _, price := range []float64{8500.00, 9500.00, 10500.00, 11000.00} {
		uc.AddProperty(context.Background(), mustProperty(t, "Rua Tabor, 40, Ipiranga", price))
	}

	result := uc.FilterProperties(context.Background(), filter.NewPriceRangeFilter(9000, 9999.99))

	require.Len(t, result, 1)
	assert.Equal(t, 9500.00, result[0].Price)
}

func TestFilterProperties_NilFilterReturnsSnapshot(t *testing.T) {
	uc := newTestUsecase()
	uc.AddProperty(context.Background(), mustProperty(t, "Rua Tabor, 40, Ipiranga", 9000.00))

	result := uc.FilterProperties(context.Background(), nil)

	assert.Len(t, result, 1)
}

func TestSortProperties(t *testing.T) {
	uc := newTestUsecase()
	for _, price := range []float64{10000, 8500, 11000, 9000} {
		uc.AddProperty(context.Background(), mustProperty(t, "Rua Tabor, 40, Ipiranga", price))
	}

	sorted := uc.SortProperties(context.Background(), strategy.NewPriceSortStrategy(strategy.Ascending))

	require.Len(t, sorted, 4)
	assert.Equal(t, 8500.00, sorted[0].Price)
	assert.Equal(t, 9000.00, sorted[1].Price)
	assert.Equal(t, 10000.00, sorted[2].Price)
	assert.Equal(t, 11000.00, sorted[3].Price)
}

func TestFilterAndSort(t *testing.T) {
	uc := newTestUsecase()
	for _, price := range []float64{10000, 8500, 11000, 9000} {
		uc.AddProperty(context.Background(), mustProperty(t, "Rua Tabor, 40, Ipiranga", price))
	}

	f := filter.NewPriceRangeFilter(8600, 11000)
	s := strategy.NewPriceSortStrategy(strategy.Descending)

	result := uc.FilterAndSort(context.Background(), f, s)

	require.Len(t, result, 3)
	assert.Equal(t, 11000.00, result[0].Price)
	assert.Equal(t, 10000.00, result[1].Price)
	assert.Equal(t, 9000.00, result[2].Price)

	// filterThenSort is exactly sort(filter(...))
	assert.Equal(t, s.Sort(uc.FilterProperties(context.Background(), f)), result)
}

func TestFindPropertyByID(t *testing.T) {
	uc := newTestUsecase()
	property := mustProperty(t, "Rua Tabor, 40, Ipiranga", 9000.00)
	uc.AddProperty(context.Background(), property)

	found := uc.FindPropertyByID(context.Background(), property.ID)
	require.NotNil(t, found)
	assert.Equal(t, property.ID, found.ID)

	// Absence is an empty result, not an error
	assert.Nil(t, uc.FindPropertyByID(context.Background(), "no-such-id"))
}

func TestAllProperties_DefensiveCopy(t *testing.T) {
	uc := newTestUsecase()
	property := mustProperty(t, "Rua Tabor, 40, Ipiranga", 9000.00)
	uc.AddProperty(context.Background(), property)

	snapshot := uc.AllProperties(context.Background())
	require.Len(t, snapshot, 1)
	snapshot[0].Price = 1.00

	fresh := uc.FindPropertyByID(context.Background(), property.ID)
	require.NotNil(t, fresh)
	assert.Equal(t, 9000.00, fresh.Price)
}

func TestSubscribe_DedupAndUnsubscribe(t *testing.T) {
	uc := newTestUsecase()
	listener := &recordingListener{}

	uc.Subscribe(listener)
	uc.Subscribe(listener)
	assert.Equal(t, 1, uc.ListenerCount())

	uc.Unsubscribe(listener)
	assert.Equal(t, 0, uc.ListenerCount())

	uc.Subscribe(listener)
	uc.UnsubscribeAll()
	assert.Equal(t, 0, uc.ListenerCount())
}
