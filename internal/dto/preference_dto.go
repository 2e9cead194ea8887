package dto

type CreatePreferenceRequest struct {
	UserID         uint     `json:"user_id" binding:"required"`
	PreferredMajor *string  `json:"preferred_major"`
	CurrentScore   *float64 `json:"current_score"`
	ExpectedScore  *float64 `json:"expected_score"`
}

type UpdatePreferenceRequest struct {
	PreferredMajor *string  `json:"preferred_major"`
	CurrentScore   *float64 `json:"current_score"`
	ExpectedScore  *float64 `json:"expected_score"`
}

type PreferenceResponse struct {
	ID             uint     `json:"id"`
	UserID         uint     `json:"user_id"`
	PreferredMajor *string  `json:"preferred_major,omitempty"`
	CurrentScore   *float64 `json:"current_score,omitempty"`
	ExpectedScore  *float64 `json:"expected_score,omitempty"`
}
