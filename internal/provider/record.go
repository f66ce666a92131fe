package provider

// Record is a single healthcare-provider listing.
// Records are immutable once seeded; Notes is documented as editable but
// stays read-only until a real mutation contract exists.
type Record struct {
	ID               string   `json:"id" bson:"_id"`
	Name             string   `json:"name" bson:"name"`
	Specialty        string   `json:"specialty" bson:"specialty"`
	City             string   `json:"city" bson:"city"`
	State            string   `json:"state" bson:"state"`
	Rating           float64  `json:"rating" bson:"rating"`
	AcceptsInsurance []string `json:"accepts_insurance" bson:"accepts_insurance"`
	Notes            string   `json:"notes" bson:"notes"`
}

// clone returns a deep copy so callers cannot alias the store's slices.
func (r Record) clone() Record {
	out := r
	out.AcceptsInsurance = append([]string(nil), r.AcceptsInsurance...)
	return out
}
