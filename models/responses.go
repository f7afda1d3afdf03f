package models

// HealthResponse is the JSON body of GET /api/health.
type HealthResponse struct {
	Status     string `json:"status"`
	Version    string `json:"version"`
	RosterSize int    `json:"roster_size"`
	Users      int    `json:"users"`
}
