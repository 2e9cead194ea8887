package dto

import "time"

type CreateTestRequest struct {
	Title                   string `json:"title" binding:"required"`
	Description             string `json:"description"`
	CreatedBy               *uint  `json:"created_by"`
	SupportsMultipleAnswers bool   `json:"supports_multiple_answers"`
}

type UpdateTestRequest struct {
	Title                   *string `json:"title"`
	Description             *string `json:"description"`
	SupportsMultipleAnswers *bool   `json:"supports_multiple_answers"`
}

type CreateQuestionRequest struct {
	QuestionText   string   `json:"question_text" binding:"required"`
	OptionA        *string  `json:"option_a"`
	OptionB        *string  `json:"option_b"`
	OptionC        *string  `json:"option_c"`
	OptionD        *string  `json:"option_d"`
	QuestionType   string   `json:"question_type" binding:"omitempty,oneof=single multiple"`
	CorrectOptions []string `json:"correct_options"`
	Points         *float64 `json:"points"`
}

type UpdateQuestionRequest struct {
	QuestionText   *string   `json:"question_text"`
	OptionA        *string   `json:"option_a"`
	OptionB        *string   `json:"option_b"`
	OptionC        *string   `json:"option_c"`
	OptionD        *string   `json:"option_d"`
	QuestionType   *string   `json:"question_type" binding:"omitempty,oneof=single multiple"`
	CorrectOptions *[]string `json:"correct_options"`
	Points         *float64  `json:"points"`
}

type QuestionResponse struct {
	ID             uint     `json:"id"`
	QuestionText   string   `json:"question_text"`
	OptionA        *string  `json:"option_a,omitempty"`
	OptionB        *string  `json:"option_b,omitempty"`
	OptionC        *string  `json:"option_c,omitempty"`
	OptionD        *string  `json:"option_d,omitempty"`
	QuestionType   string   `json:"question_type"`
	CorrectOptions []string `json:"correct_options"`
	Points         float64  `json:"points"`
}

type TestResponse struct {
	ID                      uint               `json:"id"`
	Title                   string             `json:"title"`
	Description             string             `json:"description,omitempty"`
	CreatedBy               *uint              `json:"created_by,omitempty"`
	SupportsMultipleAnswers bool               `json:"supports_multiple_answers"`
	CreatedAt               time.Time          `json:"created_at"`
	Questions               []QuestionResponse `json:"questions"`
}
