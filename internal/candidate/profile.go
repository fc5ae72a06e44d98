// Package candidate holds the candidate profile and its append-only
// file store.
package candidate

// Profile is the candidate's submitted information. Field formats are
// deliberately unvalidated free text except Experience, which the form
// constrains to a non-negative integer. A Profile is created once on
// form submission and is immutable for the rest of the session.
type Profile struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Experience int    `json:"experience"`
	Position   string `json:"position"`
	Location   string `json:"location"`
	TechStack  string `json:"tech_stack"`
}
