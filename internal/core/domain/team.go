package domain

// Team is a named group of users. Members are derived by querying users
// whose TeamID matches; no member list is stored on the team itself.
type Team struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
