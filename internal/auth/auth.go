package auth

// Role determines which claim status transitions a user may trigger in the UI.
type Role string

const (
	RoleSubmitter Role = "submitter"
	RoleReviewer  Role = "reviewer"
)

// User is a mock client-local identity. There is no real authentication:
// the backend trusts whatever actor id the client sends.
type User struct {
	ID   string `json:"userId"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// MockUsers is the fixed directory of identities the switcher offers.
var MockUsers = []User{
	{ID: "user-1", Name: "Alice", Role: RoleSubmitter},
	{ID: "user-2", Name: "Bob", Role: RoleReviewer},
}
