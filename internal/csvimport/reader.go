// Package csvimport reads seed data for the catalog from CSV files with
// the columns: street, number, price, price_interval.
package csvimport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/AnDrELuIzzz/RealStateNeeds/internal/platform/logger"
)

var ErrNoValidRecords = errors.New("no valid records found in file")

type Reader struct {
	neighborhood string
	logger       *logger.Logger
}

func NewReader(neighborhood string, log *logger.Logger) *Reader {
	return &Reader{neighborhood: neighborhood, logger: log}
}

// ReadFile parses a CSV file. Malformed rows are logged and skipped; the
// read only fails when the file is unreadable or yields no valid record.
func (r *Reader) ReadFile(path string) ([]*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv file %s: %w", path, err)
	}
	defer f.Close()
	return r.Read(f)
}

func (r *Reader) Read(src io.Reader) ([]*Record, error) {
	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var records []*Record
	line := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			r.logger.Warn("Reader.Read: skipping malformed line", "line", line, "error", err.Error())
			continue
		}
		// Skip blank lines and the header row
		if len(row) == 0 || row[0] == "" || strings.EqualFold(row[0], "street") {
			continue
		}

		record, err := r.parseRow(row)
		if err != nil {
			r.logger.Warn("Reader.Read: skipping invalid line", "line", line, "error", err.Error())
			continue
		}
		record.FormatFullAddress(r.neighborhood)
		records = append(records, record)
	}

	if len(records) == 0 {
		return nil, ErrNoValidRecords
	}
	r.logger.Info("Reader.Read: records loaded", "count", len(records))
	return records, nil
}

func (r *Reader) parseRow(row []string) (*Record, error) {
	if len(row) < 4 {
		return nil, fmt.Errorf("expected 4 columns, got %d", len(row))
	}

	street := strings.TrimSpace(row[0])
	if street == "" {
		return nil, errors.New("street must not be empty")
	}

	number, err := strconv.Atoi(strings.TrimSpace(row[1]))
	if err != nil {
		return nil, fmt.Errorf("invalid number %q: %w", row[1], err)
	}
	if number <= 0 {
		return nil, errors.New("number must be greater than 0")
	}

	// Accept comma as decimal separator, spreadsheet exports use it
	priceStr := strings.ReplaceAll(strings.TrimSpace(row[2]), ",", ".")
	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q: %w", row[2], err)
	}
	if price <= 0 {
		return nil, errors.New("price must be greater than 0")
	}

	interval := strings.ToLower(strings.TrimSpace(row[3]))
	if interval != IntervalAbove && interval != IntervalBelow && interval != IntervalBoth {
		return nil, fmt.Errorf("price_interval must be %q, %q or %q", IntervalAbove, IntervalBelow, IntervalBoth)
	}

	return &Record{
		Street:        street,
		Number:        number,
		Price:         price,
		PriceInterval: interval,
	}, nil
}
