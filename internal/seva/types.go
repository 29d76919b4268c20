package seva

// Type is one of the fixed catalog of service categories
type Type struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Types is the catalog of seva categories members can check into.
// The catalog is fixed; check-ins against unknown ids are rejected.
var Types = []Type{
	{ID: "bhojan", Name: "Dining (Bhojan Seva)"},
	{ID: "saucha", Name: "Cleaning (Saucha Seva)"},
	{ID: "garden", Name: "Garden Seva"},
	{ID: "puja", Name: "Temple / Altar (Puja Seva)"},
	{ID: "reception", Name: "Welcome (Reception Seva)"},
	{ID: "laundry", Name: "Laundry Seva"},
	{ID: "maintenance", Name: "Maintenance Seva"},
	{ID: "gurubhai", Name: "Teaching (Gurubhai Seva)"},
	{ID: "admin", Name: "Admin Seva"},
	{ID: "rakhwali", Name: "Night Watch (Rakhwali Seva)"},
}

// TypeByID looks up a catalog entry, nil when unknown
func TypeByID(id string) *Type {
	for i := range Types {
		if Types[i].ID == id {
			return &Types[i]
		}
	}
	return nil
}
