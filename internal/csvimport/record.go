package csvimport

import "fmt"

// Price intervals a CSV row can request for generated neighbors.
const (
	IntervalAbove = "above"
	IntervalBelow = "below"
	IntervalBoth  = "both"
)

// Record is one parsed CSV row: a base address plus the direction in which
// neighbor prices should be generated.
type Record struct {
	Street        string
	Number        int
	Price         float64
	PriceInterval string
	FullAddress   string
}

// FormatFullAddress fills FullAddress as "<street>, <number>, <neighborhood>".
func (r *Record) FormatFullAddress(neighborhood string) {
	r.FullAddress = fmt.Sprintf("%s, %d, %s", r.Street, r.Number, neighborhood)
}
