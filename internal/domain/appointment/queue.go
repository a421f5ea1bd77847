package appointment

import (
	"github.com/ehr/patientdesk/internal/platform/bounded"
)

const containerName = "appointment queue"

var (
	ErrQueueFull  = bounded.NewFull(containerName)
	ErrQueueEmpty = bounded.NewEmpty(containerName)
)

// Queue is a single-pass FIFO of patient ids. Slots are never reused: after
// Capacity successful schedules the queue stays full even once every entry
// has been processed. The zero value is an empty queue.
type Queue struct {
	items [bounded.Capacity]int
	head  int // next slot to process
	tail  int // next slot to fill; also the number of schedules so far
}

func NewQueue() *Queue {
	return &Queue{}
}

// Schedule appends patientID at the rear. The id is not checked against the
// patient registry.
func (q *Queue) Schedule(patientID int) error {
	if q.tail == len(q.items) {
		return ErrQueueFull
	}
	q.items[q.tail] = patientID
	q.tail++
	return nil
}

// ProcessNext removes and returns the id at the front.
func (q *Queue) ProcessNext() (int, error) {
	if q.head == q.tail {
		return 0, ErrQueueEmpty
	}
	id := q.items[q.head]
	q.head++
	return id, nil
}

// Pending is the number of scheduled ids not yet processed.
func (q *Queue) Pending() int {
	return q.tail - q.head
}

// Remaining is the number of Schedule calls that can still succeed.
func (q *Queue) Remaining() int {
	return len(q.items) - q.tail
}

func (q *Queue) Capacity() int {
	return len(q.items)
}
