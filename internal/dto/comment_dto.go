package dto

import "github.com/google/uuid"

type CreateCommentRequest struct {
	Text            string     `json:"text"`
	ParentCommentID *uuid.UUID `json:"parent_comment_id"`
}

type UpdateCommentRequest struct {
	Text string `json:"text"`
}
