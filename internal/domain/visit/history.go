package visit

import (
	"github.com/ehr/patientdesk/internal/platform/bounded"
)

const containerName = "visit history"

var (
	ErrStackFull  = bounded.NewFull(containerName)
	ErrStackEmpty = bounded.NewEmpty(containerName)
)

// History is a fixed-capacity LIFO of patient ids a doctor has visited. The
// zero value is an empty history.
type History struct {
	ids [bounded.Capacity]int
	n   int
}

func NewHistory() *History {
	return &History{}
}

func (h *History) Push(patientID int) error {
	if h.n == len(h.ids) {
		return ErrStackFull
	}
	h.ids[h.n] = patientID
	h.n++
	return nil
}

// Pop removes and returns the most recently visited id.
func (h *History) Pop() (int, error) {
	if h.n == 0 {
		return 0, ErrStackEmpty
	}
	h.n--
	return h.ids[h.n], nil
}

func (h *History) Len() int {
	return h.n
}

func (h *History) Capacity() int {
	return len(h.ids)
}

// top is the index of the most recent entry, -1 when empty.
func (h *History) top() int {
	return h.n - 1
}
