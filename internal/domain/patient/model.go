package patient

import (
	"github.com/ehr/patientdesk/internal/platform/bounded"
)

// Record is one registered patient. Records are immutable once registered.
type Record struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Disease string `json:"disease"`
}

// NewRecord builds a Record, truncating name and disease to
// bounded.TextLimit characters.
func NewRecord(id int, name string, age int, disease string) Record {
	return Record{
		ID:      id,
		Name:    Truncate(name, bounded.TextLimit),
		Age:     age,
		Disease: Truncate(disease, bounded.TextLimit),
	}
}

// Truncate keeps at most limit runes of s.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	n := 0
	for i := range s {
		if n == limit {
			return s[:i]
		}
		n++
	}
	return s
}
