package dto

import "github.com/ZeltraX007/AkasaWingsBlog/internal/models"

// PostReq carries the text fields of a post; the image arrives as a
// multipart file.
type PostReq struct {
	Title   string `json:"title" form:"title" validate:"required" msg:"The post title is mandatory."`
	Content string `json:"content" form:"content" validate:"required" msg:"The content of the post is mandatory."`
	Tags    string `json:"tags" form:"tags" validate:"required" msg:"Add at least one tag to the post."`
}

type PostResponse struct {
	Message string       `json:"message"`
	Post    *models.Post `json:"post,omitempty"`
}
