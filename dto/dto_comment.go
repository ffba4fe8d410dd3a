package dto

import "github.com/ZeltraX007/AkasaWingsBlog/internal/models"

type CreateCommentReq struct {
	PostID      string `json:"postId" form:"postId"`
	CommentText string `json:"commentText" form:"commentText" validate:"required" msg:"The post comment cannot be empty."`
}

type UpdateCommentReq struct {
	CommentText string `json:"commentText" form:"commentText" validate:"required" msg:"The post comment cannot be empty."`
}

type CommentResponse struct {
	Message string          `json:"message"`
	Comment *models.Comment `json:"comment,omitempty"`
}
