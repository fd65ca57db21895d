package mongodb

import (
	"time"

	"github.com/AnDrELuIzzz/RealStateNeeds/internal/property/domain"
)

type propertyModel struct {
	ID        string    `bson:"_id"`
	Address   string    `bson:"address"`
	Price     float64   `bson:"price"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func toModel(p *domain.Property) *propertyModel {
	return &propertyModel{
		ID:        p.ID,
		Address:   p.Address,
		Price:     p.Price,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (m *propertyModel) toDomain() *domain.Property {
	return &domain.Property{
		ID:        m.ID,
		Address:   m.Address,
		Price:     m.Price,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
