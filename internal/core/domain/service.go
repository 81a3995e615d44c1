package domain

// Service is a catalog entry shown on the public site. The catalog is seeded
// at startup and read-only through the API.
type Service struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Icon        string `json:"icon"`
	IconClass   string `json:"iconClass"`
}
