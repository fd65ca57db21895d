// Package export renders catalog snapshots as plain-text reports for
// files, S3 uploads or the console. Rendering is out of the query core:
// the exporter only consumes the copies the catalog hands out.
package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/AnDrELuIzzz/RealStateNeeds/internal/property/domain"
)

type Exporter struct{}

func NewExporter() *Exporter {
	return &Exporter{}
}

// Render produces the report as a byte slice.
func (e *Exporter) Render(title string, properties []*domain.Property) []byte {
	var b strings.Builder

	b.WriteString(strings.Repeat("=", 64) + "\n")
	b.WriteString(fmt.Sprintf("  %s\n", title))
	b.WriteString(strings.Repeat("=", 64) + "\n\n")

	for i, p := range properties {
		b.WriteString(fmt.Sprintf("%3d. %s | R$ %.2f\n", i+1, p.Address, p.Price))
		b.WriteString(fmt.Sprintf("     id: %s | created: %s | updated: %s\n",
			p.ID,
			p.CreatedAt.Format("2006-01-02 15:04:05"),
			p.UpdatedAt.Format("2006-01-02 15:04:05")))
	}

	b.WriteString(fmt.Sprintf("\nTotal properties: %d\n", len(properties)))
	if len(properties) > 0 {
		var sum, min, max float64
		min = properties[0].Price
		max = properties[0].Price
		for _, p := range properties {
			sum += p.Price
			if p.Price < min {
				min = p.Price
			}
			if p.Price > max {
				max = p.Price
			}
		}
		b.WriteString(fmt.Sprintf("Price range: R$ %.2f - R$ %.2f | average: R$ %.2f\n",
			min, max, sum/float64(len(properties))))
	}

	return []byte(b.String())
}

// WriteFile renders the report and writes it to the given path.
func (e *Exporter) WriteFile(path, title string, properties []*domain.Property) error {
	return os.WriteFile(path, e.Render(title, properties), 0644)
}
