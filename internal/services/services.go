// Package services holds the blog's use cases: accounts, posts and comments.
// Every failure returned from here is an *apperr.Error carrying the message
// shown to the caller.
package services

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/ZeltraX007/AkasaWingsBlog/internal/apperr"
	"github.com/ZeltraX007/AkasaWingsBlog/internal/models"
	"github.com/ZeltraX007/AkasaWingsBlog/internal/repository"
	"github.com/ZeltraX007/AkasaWingsBlog/internal/uploads"
)

const (
	msgAccessDenied = "Access denied!"
	msgImageType    = "Please send only png or jpg images!"
)

// Stores bundles the repositories a service may touch.
type Stores struct {
	Users    repository.UserRepository
	Posts    repository.PostRepository
	Comments repository.CommentRepository
	Tx       repository.Transactor
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// checkFields validates a request DTO. The first failing field decides the
// message: its msg_<tag> struct tag when present, else its msg tag.
func checkFields(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperr.Internal("Invalid request.", err)
	}

	fe := fieldErrs[0]
	t := reflect.TypeOf(req)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if f, ok := t.FieldByName(fe.StructField()); ok {
		if m := f.Tag.Get("msg_" + fe.Tag()); m != "" {
			return apperr.Validation(m)
		}
		if m := f.Tag.Get("msg"); m != "" {
			return apperr.Validation(m)
		}
	}
	return apperr.Validation(fe.Error())
}

func trim(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}

func requireCaller(caller *models.User) error {
	if caller == nil || caller.ID.IsZero() {
		return apperr.Unauthorized(msgAccessDenied)
	}
	return nil
}

// asAppErr keeps application errors as they are and wraps anything else
// as an internal failure with msg.
func asAppErr(err error, msg string) error {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		return ae
	}
	return apperr.Internal(msg, err)
}

func imageErr(err error, internalMsg string) error {
	if errors.Is(err, uploads.ErrUnsupportedImage) {
		return apperr.Validation(msgImageType)
	}
	return apperr.Internal(internalMsg, err)
}

func nowUTC() time.Time {
	return time.Now().UTC()
}
