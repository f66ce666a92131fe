package provider

// Store is the read-only in-memory provider directory. Records never change
// after construction, so concurrent reads need no locking.
type Store struct {
	records []Record
}

// NewStore creates a store over the given records.
func NewStore(records []Record) *Store {
	owned := make([]Record, len(records))
	for i, r := range records {
		owned[i] = r.clone()
	}
	return &Store{records: owned}
}

// NewSeedStore creates a store over the fixed seed corpus.
func NewSeedStore() *Store {
	return NewStore(Seed())
}

// Len returns the number of records in the store.
func (s *Store) Len() int {
	return len(s.records)
}

// All returns a copy of every record in seed order.
func (s *Store) All() []Record {
	out := make([]Record, len(s.records))
	for i, r := range s.records {
		out[i] = r.clone()
	}
	return out
}

// Filter returns the ordered subset of records satisfying every supplied
// criterion, truncated to the criteria's limit. Order is the store's seed
// order; identical inputs always yield identical output.
func (s *Store) Filter(c Criteria) []Record {
	limit := c.limit()
	out := make([]Record, 0, min(limit, len(s.records)))
	for _, rec := range s.records {
		if len(out) >= limit {
			break
		}
		if c.matches(rec) {
			out = append(out, rec.clone())
		}
	}
	return out
}
