package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ZeltraX007/AkasaWingsBlog/dto"
	"github.com/ZeltraX007/AkasaWingsBlog/internal/middleware"
	"github.com/ZeltraX007/AkasaWingsBlog/internal/services"
)

type PostHandler struct {
	Posts *services.PostService
}

// @Summary      Create a post
// @Tags         posts
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        title    formData  string  true  "Title"
// @Param        content  formData  string  true  "Content"
// @Param        tags     formData  string  true  "Hashtags, e.g. \"#go #rust\""
// @Param        image    formData  file    true  "Cover image (png/jpg)"
// @Success      201  {object}  dto.PostResponse
// @Failure      401  {object}  dto.MessageResponse
// @Failure      422  {object}  dto.MessageResponse
// @Failure      500  {object}  dto.MessageResponse
// @Router       /posts [post]
func (h *PostHandler) Create(c *fiber.Ctx) error {
	var req dto.PostReq
	if err := parseBody(c, &req); err != nil {
		return err
	}
	post, err := h.Posts.Create(c.Context(), middleware.Viewer(c), req, formImage(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.PostResponse{
		Message: "Post created successfully!",
		Post:    post,
	})
}

// @Summary      List posts
// @Description  All posts newest first, optionally only those carrying a tag
// @Tags         posts
// @Produce      json
// @Param        tag  query     string  false  "Tag, with or without '#'"
// @Success      200  {array}   models.Post
// @Router       /posts [get]
func (h *PostHandler) List(c *fiber.Ctx) error {
	posts, err := h.Posts.List(c.Context(), c.Query("tag"))
	if err != nil {
		return err
	}
	return c.JSON(posts)
}

// @Summary      List my posts
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.Post
// @Failure      401  {object}  dto.MessageResponse
// @Router       /posts/mine [get]
func (h *PostHandler) Mine(c *fiber.Ctx) error {
	posts, err := h.Posts.ListByUser(c.Context(), middleware.Viewer(c))
	if err != nil {
		return err
	}
	return c.JSON(posts)
}

// @Summary      Get a post
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post ID (hex ObjectID)"
// @Success      200  {object}  models.Post
// @Failure      401  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.MessageResponse
// @Router       /posts/{id} [get]
func (h *PostHandler) GetByID(c *fiber.Ctx) error {
	post, err := h.Posts.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(post)
}

// @Summary      Update a post
// @Description  Only the author can update; the image is replaced only when sent
// @Tags         posts
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string  true   "Post ID (hex ObjectID)"
// @Param        title    formData  string  true   "Title"
// @Param        content  formData  string  true   "Content"
// @Param        tags     formData  string  true   "Hashtags"
// @Param        image    formData  file    false  "New cover image"
// @Success      200  {object}  dto.PostResponse
// @Failure      401  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.MessageResponse
// @Failure      422  {object}  dto.MessageResponse
// @Router       /posts/{id} [patch]
func (h *PostHandler) Update(c *fiber.Ctx) error {
	var req dto.PostReq
	if err := parseBody(c, &req); err != nil {
		return err
	}
	post, err := h.Posts.Update(c.Context(), middleware.Viewer(c), c.Params("id"), req, formImage(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.PostResponse{Message: "Post updated successfully!", Post: post})
}

// @Summary      Delete a post
// @Description  Only the author can delete; the post's comments go with it
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post ID (hex ObjectID)"
// @Success      200  {object}  dto.MessageResponse
// @Failure      401  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.MessageResponse
// @Router       /posts/{id} [delete]
func (h *PostHandler) Delete(c *fiber.Ctx) error {
	if err := h.Posts.Delete(c.Context(), middleware.Viewer(c), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Post successfully removed."})
}
