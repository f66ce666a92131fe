package provider

import (
	"encoding/json"
	"testing"
)

func TestBuildTablePaginationLaw(t *testing.T) {
	records := Seed()
	tests := []struct {
		name     string
		page     int
		pageSize int
		wantIDs  []string
	}{
		{"first page", 1, 2, []string{"prov-0001", "prov-0002"}},
		{"second page", 2, 2, []string{"prov-0003", "prov-0004"}},
		{"partial last page", 2, 3, []string{"prov-0004"}},
		{"page past end", 5, 2, []string{}},
		{"size covers all", 1, 25, []string{"prov-0001", "prov-0002", "prov-0003", "prov-0004"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tv := BuildTable(records, tc.page, tc.pageSize)
			if tv.Total != len(records) {
				t.Errorf("total: expected %d, got %d", len(records), tv.Total)
			}
			if len(tv.Rows) != len(tc.wantIDs) {
				t.Fatalf("expected %d rows, got %d", len(tc.wantIDs), len(tv.Rows))
			}
			for i, id := range tc.wantIDs {
				if tv.Rows[i].ID != id {
					t.Errorf("row %d: expected %s, got %s", i, id, tv.Rows[i].ID)
				}
			}
			if len(tv.Rows) > tv.PageSize {
				t.Errorf("rows %d exceed page_size %d", len(tv.Rows), tv.PageSize)
			}
		})
	}
}

func TestBuildTableClampsToOne(t *testing.T) {
	records := Seed()
	tv := BuildTable(records, 0, -3)
	if tv.Page != 1 {
		t.Errorf("expected page clamped to 1, got %d", tv.Page)
	}
	if tv.PageSize != 1 {
		t.Errorf("expected page_size clamped to 1, got %d", tv.PageSize)
	}
	if len(tv.Rows) != 1 || tv.Rows[0].ID != "prov-0001" {
		t.Errorf("expected single first row, got %v", tv.Rows)
	}
}

func TestBuildTableEmptyList(t *testing.T) {
	tv := BuildTable(nil, 1, 25)
	if tv.Total != 0 {
		t.Errorf("expected total 0, got %d", tv.Total)
	}
	if tv.Rows == nil || len(tv.Rows) != 0 {
		t.Errorf("expected empty (non-nil) rows, got %v", tv.Rows)
	}
}

func TestBuildTableShape(t *testing.T) {
	tv := BuildTable(Seed(), 1, 25)
	if tv.Type != "provider-table" {
		t.Errorf("expected type provider-table, got %q", tv.Type)
	}

	wantKeys := []string{"name", "specialty", "city", "state", "rating", "notes"}
	if len(tv.Headers) != len(wantKeys) {
		t.Fatalf("expected %d headers, got %d", len(wantKeys), len(tv.Headers))
	}
	for i, key := range wantKeys {
		if tv.Headers[i].Key != key {
			t.Errorf("header %d: expected key %s, got %s", i, key, tv.Headers[i].Key)
		}
	}
	if !tv.Headers[0].Sortable || tv.Headers[0].Editable {
		t.Error("name column must be sortable and not editable")
	}
	last := tv.Headers[len(tv.Headers)-1]
	if last.Sortable || !last.Editable {
		t.Error("notes column must be editable and not sortable")
	}
}

func TestTableViewJSONFieldNames(t *testing.T) {
	raw, err := json.Marshal(BuildTable(Seed(), 1, 2))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, field := range []string{"type", "page", "page_size", "total", "headers", "rows"} {
		if _, ok := decoded[field]; !ok {
			t.Errorf("wire shape missing field %q", field)
		}
	}
}
