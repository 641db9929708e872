package model

import "time"

// Company represents a business entity whose ledger is managed by the application.
type Company struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	BusinessType    string     `json:"businessType,omitempty"`
	EstablishedDate string     `json:"establishedDate,omitempty"` // YYYY-MM-DD
	Representative  string     `json:"representative,omitempty"`
	Address         string     `json:"address,omitempty"`
	Phone           string     `json:"phone,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
}
