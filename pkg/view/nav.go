package view

// NavState is the rendered navigation: which tabs exist for the role and
// which one is active.
type NavState struct {
	Active    string   `json:"active"`
	Available []string `json:"available"`
}

type Header struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
