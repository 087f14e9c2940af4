package venues

// Venue is a team's home ballpark.
type Venue struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}
