package dto

type CreateUniversityRequest struct {
	Name        string  `json:"name" binding:"required"`
	Location    *string `json:"location"`
	Type        *string `json:"type"`
	Description *string `json:"description"`
}

type UpdateUniversityRequest struct {
	Name        *string `json:"name"`
	Location    *string `json:"location"`
	Type        *string `json:"type"`
	Description *string `json:"description"`
}

type UniversityResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Location    *string `json:"location,omitempty"`
	Type        *string `json:"type,omitempty"`
	Description *string `json:"description,omitempty"`
}
