package dto

import "github.com/ZeltraX007/AkasaWingsBlog/internal/models"

// RegisterReq is accepted as JSON, urlencoded or multipart form.
type RegisterReq struct {
	Name            string `json:"name" form:"name" validate:"required" msg:"Please fill in the name field."`
	Email           string `json:"email" form:"email" validate:"required" msg:"Please fill in the email field."`
	Password        string `json:"password" form:"password" validate:"required" msg:"Please fill in the password field."`
	ConfirmPassword string `json:"confirmpassword" form:"confirmpassword" validate:"required,eqfield=Password" msg:"Please fill in the password confirmation field." msg_eqfield:"Passwords do not match."`
}

type LoginReq struct {
	Email    string `json:"email" form:"email" validate:"required" msg:"Please fill in the email field."`
	Password string `json:"password" form:"password" validate:"required" msg:"Please fill in the password field."`
}

// UpdateUserReq edits the caller's profile. Password is changed only when
// both password fields are present and equal.
type UpdateUserReq struct {
	Name            string `json:"name" form:"name" validate:"required" msg:"Please fill in the name field."`
	Email           string `json:"email" form:"email" validate:"required" msg:"Please fill in the email field."`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirmpassword" form:"confirmpassword"`
}

type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	UserID  string `json:"userId"`
}

type CheckUserResponse struct {
	CurrentUser *models.User `json:"currentUser"`
}
