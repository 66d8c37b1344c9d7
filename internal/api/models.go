package api

type HealthResponse struct {
	Status  string `json:"status" description:"Service status"`
	Version string `json:"version" description:"API version"`
	// Semantic is "ready" or "unavailable" when no credential was configured.
	Semantic string `json:"semantic" description:"Semantic stage availability"`
}

type CategoryInfo struct {
	Name   string   `json:"name" description:"Canonical category name"`
	Labels []string `json:"labels" description:"Labels that resolve to this category"`
}
