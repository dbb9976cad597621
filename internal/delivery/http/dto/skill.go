package dto

type ExtractSkillsRequest struct {
	Text string `json:"text"`
}

type SkillsResponse struct {
	Skills []string `json:"skills"`
}
