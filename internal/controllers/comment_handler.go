package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ZeltraX007/AkasaWingsBlog/dto"
	"github.com/ZeltraX007/AkasaWingsBlog/internal/middleware"
	"github.com/ZeltraX007/AkasaWingsBlog/internal/services"
)

type CommentHandler struct {
	Comments *services.CommentService
}

// @Summary      Create a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.CreateCommentReq  true  "postId, commentText"
// @Success      201   {object}  dto.CommentResponse
// @Failure      401   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.MessageResponse
// @Failure      422   {object}  dto.MessageResponse
// @Router       /comments [post]
func (h *CommentHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCommentReq
	if err := parseBody(c, &req); err != nil {
		return err
	}
	com, err := h.Comments.Create(c.Context(), middleware.Viewer(c), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CommentResponse{
		Message: "Comment created successfully!",
		Comment: com,
	})
}

// @Summary      List comments
// @Tags         comments
// @Produce      json
// @Success      200  {array}  models.Comment
// @Router       /comments [get]
func (h *CommentHandler) List(c *fiber.Ctx) error {
	items, err := h.Comments.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// @Summary      List my comments
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.Comment
// @Failure      401  {object}  dto.MessageResponse
// @Router       /comments/mine [get]
func (h *CommentHandler) Mine(c *fiber.Ctx) error {
	items, err := h.Comments.ListByUser(c.Context(), middleware.Viewer(c))
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// @Summary      List comments of a post
// @Tags         comments
// @Produce      json
// @Param        id   path      string  true  "Post ID (hex ObjectID)"
// @Success      200  {array}   models.Comment
// @Failure      401  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.MessageResponse
// @Router       /comments/post/{id} [get]
func (h *CommentHandler) ListByPost(c *fiber.Ctx) error {
	items, err := h.Comments.ListByPost(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// @Summary      Update a comment
// @Description  Only the owner can update a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Comment ID (hex ObjectID)"
// @Param        body  body      dto.UpdateCommentReq  true  "commentText"
// @Success      200   {object}  dto.CommentResponse
// @Failure      401   {object}  dto.MessageResponse
// @Failure      403   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.MessageResponse
// @Failure      422   {object}  dto.MessageResponse
// @Router       /comments/{id} [patch]
func (h *CommentHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateCommentReq
	if err := parseBody(c, &req); err != nil {
		return err
	}
	com, err := h.Comments.Update(c.Context(), middleware.Viewer(c), c.Params("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(dto.CommentResponse{Message: "Comment updated successfully!", Comment: com})
}

// @Summary      Delete a comment
// @Description  Only the owner can delete a comment
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Comment ID (hex ObjectID)"
// @Success      200  {object}  dto.MessageResponse
// @Failure      401  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.MessageResponse
// @Router       /comments/{id} [delete]
func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	if err := h.Comments.Delete(c.Context(), middleware.Viewer(c), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Comment successfully removed."})
}
