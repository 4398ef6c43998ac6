package task

// CatalogEntry is one predefined task a respondent can attempt. The catalog
// is static study content; submissions may still name ad-hoc tasks.
type CatalogEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Catalog returns the tasks of the current study in presentation order.
func Catalog() []CatalogEntry {
	return []CatalogEntry{
		{
			Name: "Task 1: Create a team of 6 members",
			Description: "Using the application, search for and add six entries " +
				"to build a full team.",
		},
		{
			Name: "Task 2: Edit your team by adding and removing members",
			Description: "After building a full team, clear entries one by one or " +
				"all at once, then add a replacement.",
		},
		{
			Name: "Task 3: Use all features of the application without running into issues",
			Description: "Exercise every feature: search with each filter option, " +
				"open all tabs, and navigate to every view.",
		},
	}
}
