package provider

// Header describes one column of the provider table.
type Header struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Sortable bool   `json:"sortable"`
	Editable bool   `json:"editable"`
}

// Row is the display projection of one provider record.
type Row struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Specialty string  `json:"specialty"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	Rating    float64 `json:"rating"`
	Notes     string  `json:"notes"`
}

// TableView is the paginated, display-ready projection of a filtered
// provider list. It is recomputed per request and never cached.
type TableView struct {
	Type     string   `json:"type"`
	Page     int      `json:"page"`
	PageSize int      `json:"page_size"`
	Total    int      `json:"total"`
	Headers  []Header `json:"headers"`
	Rows     []Row    `json:"rows"`
}

// tableHeaders is the fixed column set, in display order.
func tableHeaders() []Header {
	return []Header{
		{Key: "name", Label: "Provider Name", Sortable: true},
		{Key: "specialty", Label: "Specialty", Sortable: true},
		{Key: "city", Label: "City", Sortable: true},
		{Key: "state", Label: "State", Sortable: true},
		{Key: "rating", Label: "Rating", Sortable: true},
		{Key: "notes", Label: "Notes", Editable: true},
	}
}

// BuildTable projects a filtered record list into a TableView. Page and
// pageSize are clamped to a minimum of 1; a start offset past the end of
// the list yields an empty row set, not an error. Total always reflects
// the pre-slice count so clients can compute ceil(total/page_size) pages.
func BuildTable(records []Record, page, pageSize int) TableView {
	page = max(1, page)
	pageSize = max(1, pageSize)

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(records) {
		start = len(records)
	}
	if end > len(records) {
		end = len(records)
	}

	rows := make([]Row, 0, end-start)
	for _, rec := range records[start:end] {
		rows = append(rows, Row{
			ID:        rec.ID,
			Name:      rec.Name,
			Specialty: rec.Specialty,
			City:      rec.City,
			State:     rec.State,
			Rating:    rec.Rating,
			Notes:     rec.Notes,
		})
	}

	return TableView{
		Type:     "provider-table",
		Page:     page,
		PageSize: pageSize,
		Total:    len(records),
		Headers:  tableHeaders(),
		Rows:     rows,
	}
}
