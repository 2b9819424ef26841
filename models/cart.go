package models

import (
	"time"

	"github.com/google/uuid"
)

type CartItem struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"addedAt"`
}

type CartItemCreate struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type CartItemUpdate struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

type Cart struct {
	ID        string     `json:"id"`
	Items     []CartItem `json:"items"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func NewCart() *Cart {
	now := time.Now().UTC()
	return &Cart{
		ID:        uuid.NewString(),
		Items:     []CartItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
