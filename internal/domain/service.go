package domain

import "time"

// ServiceStatus enumerates catalog entry states.
type ServiceStatus string

const (
	ServiceStatusActive   ServiceStatus = "active"
	ServiceStatusInactive ServiceStatus = "inactive"
)

// Service is a catalog entry on the public site.
type Service struct {
	ID             int64         `json:"id"`
	Name           string        `json:"name"`
	CategoryID     *int64        `json:"categoryId"`
	CategoryTypeID *int64        `json:"categoryTypeId"`
	Description    *string       `json:"description"`
	Price          *float64      `json:"price"`
	PriceUnit      *string       `json:"priceUnit"`
	ImageURL       *string       `json:"image"`
	Features       []string      `json:"features"`
	Status         ServiceStatus `json:"status"`
	Priority       int           `json:"priority"`
	OwnerID        *int64        `json:"ownerId,omitempty"`

	// Loaded relations.
	Category     *Category     `json:"category,omitempty"`
	CategoryType *CategoryType `json:"categoryType,omitempty"`
	Owner        *UserSummary  `json:"owner,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
