// Package generator produces seed properties for the catalog, either fully
// random over a fixed street list or expanded around a CSV base record.
package generator

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/AnDrELuIzzz/RealStateNeeds/internal/csvimport"
	"github.com/AnDrELuIzzz/RealStateNeeds/internal/property/domain"
)

var streets = []string{
	"Rua Vicente da Costa",
	"Rua Moreira e Costa",
	"Rua Xavier de Almeida",
	"Rua Rodrigues do Prado",
	"Rua Clóvis Bueno de Azevedo",
	"Rua Dom Luiz de Lasanha",
	"Rua Bom Pastor",
	"Rua Agostinho Gomes",
	"Rua Cipriano Barata",
	"Rua Tabor",
	"Rua Lucas Obes",
}

const (
	minNumber = 30
	maxNumber = 900

	// Draw budget per requested property. Generation stops once the budget
	// is spent, so a count beyond the reachable address space returns fewer
	// properties instead of spinning on duplicates forever.
	attemptFactor = 20
)

type PropertyGenerator struct {
	neighborhood string
	rng          *rand.Rand
}

func NewPropertyGenerator(neighborhood string, seed int64) *PropertyGenerator {
	return &PropertyGenerator{
		neighborhood: neighborhood,
		rng:          rand.New(rand.NewSource(seed)),
	}
}

// Generate builds up to count properties with unique addresses and prices
// inside the valid band. Fewer are returned when the draw budget runs out
// before count unique addresses are found.
func (g *PropertyGenerator) Generate(count int) []*domain.Property {
	seen := make(map[string]struct{})
	properties := make([]*domain.Property, 0, count)

	for attempts := 0; len(properties) < count && attempts < count*attemptFactor; attempts++ {
		address := g.GenerateAddress()
		if _, dup := seen[address]; dup {
			continue
		}
		seen[address] = struct{}{}

		property, err := domain.NewProperty(address, g.GeneratePrice())
		if err != nil {
			continue
		}
		properties = append(properties, property)
	}
	return properties
}

// GenerateAddress returns "<street>, <number>, <neighborhood>" with a
// random street and house number.
func (g *PropertyGenerator) GenerateAddress() string {
	street := streets[g.rng.Intn(len(streets))]
	number := minNumber + g.rng.Intn(maxNumber-minNumber+1)
	return fmt.Sprintf("%s, %d, %s", street, number, g.neighborhood)
}

// GeneratePrice returns a two-decimal price inside the valid band.
func (g *PropertyGenerator) GeneratePrice() float64 {
	price := domain.MinValidPrice + g.rng.Float64()*(domain.MaxValidPrice-domain.MinValidPrice)
	return roundToCents(price)
}

// ExpandRecord builds up to count properties on the record's street with
// house numbers near the base number and prices shifted in the direction
// the record's price interval asks for. Prices are clamped to the valid
// band. The house-number window only holds ~101 distinct addresses, so a
// larger count returns every reachable address and stops.
func (g *PropertyGenerator) ExpandRecord(record *csvimport.Record, count int) []*domain.Property {
	seen := make(map[string]struct{})
	properties := make([]*domain.Property, 0, count)

	for attempts := 0; len(properties) < count && attempts < count*attemptFactor; attempts++ {
		number := record.Number + g.rng.Intn(101) - 50
		if number < 1 {
			number = 1 + g.rng.Intn(maxNumber)
		}
		address := fmt.Sprintf("%s, %d, %s", record.Street, number, g.neighborhood)
		if _, dup := seen[address]; dup {
			continue
		}
		seen[address] = struct{}{}

		property, err := domain.NewProperty(address, g.priceAround(record))
		if err != nil {
			continue
		}
		properties = append(properties, property)
	}
	return properties
}

func (g *PropertyGenerator) priceAround(record *csvimport.Record) float64 {
	// Up to 10% away from the base price
	offset := record.Price * 0.10 * g.rng.Float64()
	var price float64
	switch record.PriceInterval {
	case csvimport.IntervalAbove:
		price = record.Price + offset
	case csvimport.IntervalBelow:
		price = record.Price - offset
	default:
		if g.rng.Intn(2) == 0 {
			price = record.Price + offset
		} else {
			price = record.Price - offset
		}
	}

	if price < domain.MinValidPrice {
		price = domain.MinValidPrice
	}
	if price > domain.MaxValidPrice {
		price = domain.MaxValidPrice
	}
	return roundToCents(price)
}

func roundToCents(price float64) float64 {
	return math.Round(price*100) / 100
}
