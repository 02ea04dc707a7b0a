package models

import (
	"time"
)

type Product struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Category    string     `json:"category"`
	Stock       int        `json:"stock"`
	Images      []string   `json:"images,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

type ProductFilter struct {
	Category string
	Search   string
	Limit    int
	Offset   int
}
