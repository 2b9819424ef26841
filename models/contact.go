package models

import (
	"time"

	"github.com/google/uuid"
)

type ContactMessage struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Subject   string    `bson:"subject" json:"subject"`
	Message   string    `bson:"message" json:"message"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
	Read      bool      `bson:"read" json:"read"`
}

type ContactMessageCreate struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

func NewContactMessage(in ContactMessageCreate) *ContactMessage {
	return &ContactMessage{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		Timestamp: time.Now().UTC(),
	}
}

// StatusCheck is a lightweight uptime ping record.
type StatusCheck struct {
	ID         string    `bson:"id" json:"id"`
	ClientName string    `bson:"client_name" json:"client_name"`
	Timestamp  time.Time `bson:"timestamp" json:"timestamp"`
}

type StatusCheckCreate struct {
	ClientName string `json:"client_name" binding:"required"`
}
