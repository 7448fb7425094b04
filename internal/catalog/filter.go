package catalog

import (
	"strconv"
	"strings"
)

// Filters narrows a result list after normalization. Zero values mean the
// filter is not applied.
type Filters struct {
	// Year keeps records whose year is known and contains its decimal
	// form as a substring. This is deliberately a loose match, not
	// equality.
	Year int
	// MinRating keeps records rated at or above the threshold. Records
	// with a sentinel or unparsable rating are kept, not dropped.
	MinRating float64
}

// IsZero reports whether no filter is set.
func (f Filters) IsZero() bool {
	return f.Year == 0 && f.MinRating == 0
}

// Apply returns the records matching the filters, preserving order.
func (f Filters) Apply(records []Record) []Record {
	if f.IsZero() {
		return records
	}

	filtered := make([]Record, 0, len(records))
	for _, record := range records {
		if f.matches(record) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

func (f Filters) matches(record Record) bool {
	if f.Year != 0 {
		if record.Year == Sentinel {
			return false
		}
		if !strings.Contains(record.Year, strconv.Itoa(f.Year)) {
			return false
		}
	}

	if f.MinRating != 0 && record.Rating != Sentinel {
		// An unparsable rating silently disables the filter for this record.
		if rating, err := strconv.ParseFloat(record.Rating, 64); err == nil && rating < f.MinRating {
			return false
		}
	}

	return true
}
