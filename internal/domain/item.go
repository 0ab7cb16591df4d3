package domain

type Item struct {
	ID          string `json:"itemId"`
	Name        string `json:"name"`
	PriceCents  int64  `json:"priceCents"`
	Description string `json:"description,omitempty"`
}
