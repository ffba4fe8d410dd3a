package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ZeltraX007/AkasaWingsBlog/dto"
	"github.com/ZeltraX007/AkasaWingsBlog/internal/auth"
	"github.com/ZeltraX007/AkasaWingsBlog/internal/middleware"
	"github.com/ZeltraX007/AkasaWingsBlog/internal/services"
)

type UserHandler struct {
	Users *services.UserService
}

// @Summary      Register
// @Description  Create an account and open a session
// @Tags         users
// @Accept       json,mpfd
// @Produce      json
// @Param        body  body      dto.RegisterReq  true  "name, email, password, confirmpassword"
// @Success      201   {object}  dto.AuthResponse
// @Failure      422   {object}  dto.MessageResponse
// @Failure      500   {object}  dto.MessageResponse
// @Router       /users/register [post]
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterReq
	if err := parseBody(c, &req); err != nil {
		return err
	}
	res, err := h.Users.Register(c.Context(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

// @Summary      Login
// @Tags         users
// @Accept       json,mpfd
// @Produce      json
// @Param        body  body      dto.LoginReq  true  "email, password"
// @Success      200   {object}  dto.AuthResponse
// @Failure      422   {object}  dto.MessageResponse
// @Failure      500   {object}  dto.MessageResponse
// @Router       /users/login [post]
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginReq
	if err := parseBody(c, &req); err != nil {
		return err
	}
	res, err := h.Users.Login(c.Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// @Summary      Logout
// @Description  Revoke the presented token
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.MessageResponse
// @Failure      401  {object}  dto.MessageResponse
// @Router       /users/logout [post]
func (h *UserHandler) Logout(c *fiber.Ctx) error {
	if err := h.Users.Logout(c.Context(), middleware.Claims(c)); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "You have been logged out."})
}

// @Summary      Current user
// @Description  Resolve the session of the request; currentUser is null without a valid token
// @Tags         users
// @Produce      json
// @Success      200  {object}  dto.CheckUserResponse
// @Router       /users/checkuser [get]
func (h *UserHandler) CheckUser(c *fiber.Ctx) error {
	token, _ := auth.BearerToken(c.Get(fiber.HeaderAuthorization))
	user, err := h.Users.CheckUser(c.Context(), token)
	if err != nil {
		return err
	}
	return c.JSON(dto.CheckUserResponse{CurrentUser: user})
}

// @Summary      Get user
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID (hex ObjectID)"
// @Success      200  {object}  models.User
// @Failure      401  {object}  dto.MessageResponse
// @Router       /users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	user, err := h.Users.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(user)
}

// @Summary      Edit profile
// @Description  Update the caller's name, email, password or image
// @Tags         users
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        name             formData  string  true   "Name"
// @Param        email            formData  string  true   "Email"
// @Param        password         formData  string  false  "New password"
// @Param        confirmpassword  formData  string  false  "New password again"
// @Param        image            formData  file    false  "Profile image (png/jpg)"
// @Success      200  {object}  dto.MessageResponse
// @Failure      401  {object}  dto.MessageResponse
// @Failure      422  {object}  dto.MessageResponse
// @Failure      500  {object}  dto.MessageResponse
// @Router       /users/edit [patch]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateUserReq
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if _, err := h.Users.Update(c.Context(), middleware.Viewer(c), req, formImage(c)); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Data updated successfully!"})
}
