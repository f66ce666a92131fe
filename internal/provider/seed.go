package provider

// Seed returns the fixed mock provider corpus created at process start.
// Replace with a Mongo-backed source once real datasets are wired in.
func Seed() []Record {
	return []Record{
		{
			ID:               "prov-0001",
			Name:             "Ava Chen, MD",
			Specialty:        "Family Medicine",
			City:             "Los Angeles",
			State:            "CA",
			Rating:           4.7,
			AcceptsInsurance: []string{"Aetna", "Blue Shield", "United"},
		},
		{
			ID:               "prov-0002",
			Name:             "Noah Patel, DO",
			Specialty:        "Dermatology",
			City:             "Santa Monica",
			State:            "CA",
			Rating:           4.6,
			AcceptsInsurance: []string{"Cigna", "Blue Shield"},
		},
		{
			ID:               "prov-0003",
			Name:             "Mia Johnson, MD",
			Specialty:        "Cardiology",
			City:             "Pasadena",
			State:            "CA",
			Rating:           4.8,
			AcceptsInsurance: []string{"Aetna", "United"},
		},
		{
			ID:               "prov-0004",
			Name:             "Ethan Park, MD",
			Specialty:        "Orthopedic Surgery",
			City:             "Burbank",
			State:            "CA",
			Rating:           4.5,
			AcceptsInsurance: []string{"Blue Shield", "United"},
		},
	}
}
