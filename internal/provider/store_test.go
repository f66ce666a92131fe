package provider

import (
	"reflect"
	"testing"
)

func TestFilterNoCriteria(t *testing.T) {
	s := NewSeedStore()
	got := s.Filter(Criteria{})
	if len(got) != 4 {
		t.Fatalf("expected all 4 seed records, got %d", len(got))
	}
	// Seed order is preserved.
	wantIDs := []string{"prov-0001", "prov-0002", "prov-0003", "prov-0004"}
	for i, rec := range got {
		if rec.ID != wantIDs[i] {
			t.Errorf("position %d: expected %s, got %s", i, wantIDs[i], rec.ID)
		}
	}
}

func TestFilterByState(t *testing.T) {
	s := NewSeedStore()
	tests := []struct {
		name  string
		state string
		want  int
	}{
		{"exact", "CA", 4},
		{"case insensitive", "ca", 4},
		{"padded", "  CA  ", 4},
		{"no match", "NY", 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := s.Filter(Criteria{State: tc.state})
			if len(got) != tc.want {
				t.Errorf("state %q: expected %d records, got %d", tc.state, tc.want, len(got))
			}
		})
	}
}

func TestFilterBySpecialtySubstring(t *testing.T) {
	s := NewSeedStore()
	got := s.Filter(Criteria{Specialty: "cardio"})
	if len(got) != 1 {
		t.Fatalf("expected exactly 1 cardiology record, got %d", len(got))
	}
	if got[0].ID != "prov-0003" {
		t.Errorf("expected prov-0003, got %s", got[0].ID)
	}
}

func TestFilterByCitySubstring(t *testing.T) {
	s := NewSeedStore()
	got := s.Filter(Criteria{City: "monica"})
	if len(got) != 1 || got[0].ID != "prov-0002" {
		t.Fatalf("expected only prov-0002 for city 'monica', got %v", ids(got))
	}
}

func TestFilterByInsuranceExact(t *testing.T) {
	s := NewSeedStore()

	got := s.Filter(Criteria{Insurance: "Cigna"})
	if len(got) != 1 || got[0].ID != "prov-0002" {
		t.Fatalf("expected only prov-0002 for Cigna, got %v", ids(got))
	}

	// Membership is case-sensitive.
	if got := s.Filter(Criteria{Insurance: "cigna"}); len(got) != 0 {
		t.Errorf("expected no records for lowercase 'cigna', got %v", ids(got))
	}

	// Unknown plans yield an empty result, not a failure.
	if got := s.Filter(Criteria{Insurance: "Humana"}); len(got) != 0 {
		t.Errorf("expected no records for unknown plan, got %v", ids(got))
	}
}

func TestFilterConjunction(t *testing.T) {
	s := NewSeedStore()
	got := s.Filter(Criteria{State: "CA", Insurance: "Aetna", Specialty: "family"})
	if len(got) != 1 || got[0].ID != "prov-0001" {
		t.Fatalf("expected only prov-0001, got %v", ids(got))
	}
}

func TestFilterLimit(t *testing.T) {
	s := NewSeedStore()
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"unset defaults to 50", 0, 4},
		{"truncates", 2, 2},
		{"negative floors to 1", -5, 1},
		{"exact", 4, 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := s.Filter(Criteria{Limit: tc.limit})
			if len(got) != tc.want {
				t.Errorf("limit %d: expected %d records, got %d", tc.limit, tc.want, len(got))
			}
		})
	}
}

func TestFilterIdempotent(t *testing.T) {
	s := NewSeedStore()
	c := Criteria{State: "CA", Insurance: "United", Limit: 10}
	first := s.Filter(c)
	second := s.Filter(c)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical criteria produced different results:\n%v\n%v", first, second)
	}
}

func TestFilterResultIsACopy(t *testing.T) {
	s := NewSeedStore()
	got := s.Filter(Criteria{})
	got[0].Notes = "mutated"
	got[0].AcceptsInsurance[0] = "mutated"

	again := s.Filter(Criteria{})
	if again[0].Notes != "" {
		t.Error("mutating a result leaked into the store")
	}
	if again[0].AcceptsInsurance[0] != "Aetna" {
		t.Error("mutating a result's insurance list leaked into the store")
	}
}

func TestAllReturnsSeedOrder(t *testing.T) {
	s := NewSeedStore()
	all := s.All()
	if len(all) != s.Len() {
		t.Fatalf("All() length %d != Len() %d", len(all), s.Len())
	}
	if all[0].ID != "prov-0001" || all[3].ID != "prov-0004" {
		t.Errorf("unexpected order: %v", ids(all))
	}
}

func ids(records []Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}
