package dto

import "github.com/google/uuid"

type MatchJobsRequest struct {
	ResumeText string `json:"resume_text"`
}

type JobMatchResponse struct {
	JobID      uuid.UUID `json:"job_id"`
	Title      string    `json:"title"`
	Company    string    `json:"company"`
	Location   string    `json:"location"`
	MatchScore float64   `json:"match_score"`
}

type MatchesResponse struct {
	Matches []JobMatchResponse `json:"matches"`
}
