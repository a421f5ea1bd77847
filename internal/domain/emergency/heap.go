package emergency

import (
	"github.com/ehr/patientdesk/internal/platform/bounded"
)

const containerName = "emergency heap"

var (
	ErrHeapFull  = bounded.NewFull(containerName)
	ErrHeapEmpty = bounded.NewEmpty(containerName)
)

// Heap is a fixed-capacity binary min-heap of cases ordered by severity.
// Every parent's severity is <= both children's. Equal severities have no
// defined order.
type Heap struct {
	cases [bounded.Capacity]Case
	size  int
}

func NewHeap() *Heap {
	return &Heap{}
}

// Insert adds a case and sifts it up while it is strictly more urgent than
// its parent.
func (h *Heap) Insert(patientID, severity int) error {
	if h.size == len(h.cases) {
		return ErrHeapFull
	}
	i := h.size
	h.cases[i] = Case{Severity: severity, PatientID: patientID}
	h.size++

	for i > 0 {
		parent := (i - 1) / 2
		if h.cases[i].Severity >= h.cases[parent].Severity {
			break
		}
		h.cases[i], h.cases[parent] = h.cases[parent], h.cases[i]
		i = parent
	}
	return nil
}

// ExtractMin removes and returns the most urgent case.
func (h *Heap) ExtractMin() (Case, error) {
	if h.size == 0 {
		return Case{}, ErrHeapEmpty
	}
	root := h.cases[0]
	h.size--
	h.cases[0] = h.cases[h.size]
	h.cases[h.size] = Case{}

	i := 0
	for {
		smallest := 2*i + 1
		if smallest >= h.size {
			break
		}
		if right := smallest + 1; right < h.size && h.cases[right].Severity < h.cases[smallest].Severity {
			smallest = right
		}
		if h.cases[i].Severity <= h.cases[smallest].Severity {
			break
		}
		h.cases[i], h.cases[smallest] = h.cases[smallest], h.cases[i]
		i = smallest
	}
	return root, nil
}

// Peek returns the most urgent case without removing it.
func (h *Heap) Peek() (Case, bool) {
	if h.size == 0 {
		return Case{}, false
	}
	return h.cases[0], true
}

// Cases returns a copy of the occupied slots in array order.
func (h *Heap) Cases() []Case {
	out := make([]Case, h.size)
	copy(out, h.cases[:h.size])
	return out
}

func (h *Heap) Len() int {
	return h.size
}

func (h *Heap) Capacity() int {
	return len(h.cases)
}
