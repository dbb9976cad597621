package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateJobRequest struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Salary       string   `json:"salary"`
	Type         string   `json:"type"`
	Description  string   `json:"description"`
	Requirements string   `json:"requirements"`
	Skills       []string `json:"skills"`
	TxHash       string   `json:"tx_hash"`
}

type JobResponse struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Location     string    `json:"location"`
	Salary       string    `json:"salary"`
	Type         string    `json:"type"`
	Description  string    `json:"description"`
	Requirements string    `json:"requirements"`
	Skills       []string  `json:"skills"`
	TxHash       string    `json:"tx_hash"`
	PostedBy     uuid.UUID `json:"posted_by"`
	CreatedAt    time.Time `json:"created_at"`
}
