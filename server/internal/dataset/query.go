package dataset

// Predicate selects records in Where.
type Predicate func(LaunchRecord) bool

// AtSite keeps records launched from site.
func AtSite(site string) Predicate {
	return func(r LaunchRecord) bool { return r.LaunchSite == site }
}

// PayloadWithin keeps records with low <= payload <= high. A reversed range
// keeps nothing.
func PayloadWithin(low, high float64) Predicate {
	return func(r LaunchRecord) bool {
		return r.PayloadMassKg >= low && r.PayloadMassKg <= high
	}
}

// Len returns the number of records.
func (t *Table) Len() int { return len(t.records) }

// At returns the i-th record in load order.
func (t *Table) At(i int) LaunchRecord { return t.records[i] }

// Records returns a copy of every record in load order.
func (t *Table) Records() []LaunchRecord {
	out := make([]LaunchRecord, len(t.records))
	copy(out, t.records)
	return out
}

// Sites returns the distinct launch sites in first-seen order.
func (t *Table) Sites() []string {
	out := make([]string, len(t.sites))
	copy(out, t.sites)
	return out
}

// PayloadBounds returns the smallest and largest payload mass in the table.
func (t *Table) PayloadBounds() (min, max float64) {
	return t.min, t.max
}

// Where returns, in load order, the records matching every predicate.
// With no predicates it returns a copy of the whole table.
func (t *Table) Where(preds ...Predicate) []LaunchRecord {
	out := make([]LaunchRecord, 0, len(t.records))
next:
	for _, r := range t.records {
		for _, p := range preds {
			if !p(r) {
				continue next
			}
		}
		out = append(out, r)
	}
	return out
}
