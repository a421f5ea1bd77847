package patient

// Registry is the append-only patient list. Each registration becomes the new
// head, so traversal is newest-first. Ids are not required to be unique.
type Registry struct {
	head *node
	size int
}

type node struct {
	rec  Record
	next *node
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Register stores a new record at the head of the list and returns it.
func (r *Registry) Register(id int, name string, age int, disease string) Record {
	rec := NewRecord(id, name, age, disease)
	r.head = &node{rec: rec, next: r.head}
	r.size++
	return rec
}

// ListAll returns every record, newest first. An empty registry yields an
// empty, non-nil slice.
func (r *Registry) ListAll() []Record {
	out := make([]Record, 0, r.size)
	for n := r.head; n != nil; n = n.next {
		out = append(out, n.rec)
	}
	return out
}

func (r *Registry) Len() int {
	return r.size
}
