package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Valid price band for catalog admission, in BRL.
const (
	MinValidPrice = 8000.00
	MaxValidPrice = 11999.99
)

// Property is a single real-estate record. ID is assigned once at
// construction and never reassigned; UpdatedAt only moves forward.
type Property struct {
	ID        string
	Address   string
	Price     float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewProperty builds a property with a fresh ID and both timestamps set to
// now. Address must be non-empty. The valid-price band is deliberately not
// checked here: out-of-range properties may exist, the catalog refuses them
// at admission time instead.
func NewProperty(address string, price float64) (*Property, error) {
	if address == "" {
		return nil, fmt.Errorf("%w: address is required", ErrInvalidPropertyData)
	}
	now := time.Now()
	return &Property{
		ID:        uuid.New().String(),
		Address:   address,
		Price:     price,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// IsValidPrice reports whether the price falls inside the closed interval
// [MinValidPrice, MaxValidPrice].
func (p *Property) IsValidPrice() bool {
	return p.Price >= MinValidPrice && p.Price <= MaxValidPrice
}

// Touch refreshes UpdatedAt. Every mutation that changes the price must
// call it.
func (p *Property) Touch() {
	p.UpdatedAt = time.Now()
}

// Clone returns an independent copy of the property.
func (p *Property) Clone() *Property {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

// CloneAll copies every element of a property slice. Repositories use it to
// hand out snapshots instead of references into their own storage.
func CloneAll(properties []*Property) []*Property {
	cloned := make([]*Property, len(properties))
	for i, p := range properties {
		cloned[i] = p.Clone()
	}
	return cloned
}

func (p *Property) String() string {
	return fmt.Sprintf("%s | R$ %.2f", p.Address, p.Price)
}
