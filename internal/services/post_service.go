package services

import (
	"context"
	"errors"
	"mime/multipart"

	"github.com/ZeltraX007/AkasaWingsBlog/dto"
	"github.com/ZeltraX007/AkasaWingsBlog/internal/apperr"
	"github.com/ZeltraX007/AkasaWingsBlog/internal/models"
	"github.com/ZeltraX007/AkasaWingsBlog/internal/repository"
	"github.com/ZeltraX007/AkasaWingsBlog/internal/uploads"
	"github.com/ZeltraX007/AkasaWingsBlog/internal/utils"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	msgPostInvalidID  = "Invalid ID!"
	msgPostNotFound   = "Post not found!"
	msgPostPermission = "You do not have permission to access or modify this post."
	msgPostListFailed = "Unable to load posts. Please try again later."
)

type PostService struct {
	st     Stores
	images uploads.Store
}

func NewPostService(st Stores, images uploads.Store) *PostService {
	return &PostService{st: st, images: images}
}

// validatePost checks the text fields and returns the extracted tags.
func validatePost(req *dto.PostReq) ([]string, error) {
	trim(&req.Title, &req.Content, &req.Tags)
	if err := checkFields(req); err != nil {
		return nil, err
	}
	tags := utils.ExtractHashtags(req.Tags)
	if len(tags) == 0 {
		return nil, apperr.Validation("the tag field cannot be empty.")
	}
	return tags, nil
}

func (s *PostService) Create(ctx context.Context, caller *models.User, req dto.PostReq, image *multipart.FileHeader) (*models.Post, error) {
	const failMsg = "Unable to create post. Please try again later."

	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	tags, err := validatePost(&req)
	if err != nil {
		return nil, err
	}
	if image == nil {
		return nil, apperr.Validation("Please add an image to the post.")
	}
	path, err := s.images.Save(image, uploads.FolderPosts)
	if err != nil {
		return nil, imageErr(err, failMsg)
	}

	now := nowUTC()
	post := &models.Post{
		Title:     req.Title,
		Content:   req.Content,
		Tags:      tags,
		Image:     path,
		User:      caller.PostAuthor(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.st.Posts.Insert(ctx, post); err != nil {
		return nil, apperr.Internal(failMsg, err)
	}
	return post, nil
}

// List returns every post newest first, or only those carrying tag when
// it is not empty. The tag is normalized like extracted hashtags.
func (s *PostService) List(ctx context.Context, tag string) ([]models.Post, error) {
	posts, err := s.st.Posts.List(ctx, models.PostFilter{Tag: utils.NormalizeTag(tag)})
	if err != nil {
		return nil, apperr.Internal(msgPostListFailed, err)
	}
	return posts, nil
}

func (s *PostService) ListByUser(ctx context.Context, caller *models.User) ([]models.Post, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	posts, err := s.st.Posts.List(ctx, models.PostFilter{AuthorID: caller.ID})
	if err != nil {
		return nil, apperr.Internal(msgPostListFailed, err)
	}
	return posts, nil
}

func (s *PostService) GetByID(ctx context.Context, id string) (*models.Post, error) {
	oid, err := utils.Oid(id)
	if err != nil {
		return nil, apperr.InvalidID(msgPostInvalidID)
	}
	return s.find(ctx, oid)
}

// Update replaces the text fields and tags of the caller's post. The image
// changes only when a new one is supplied.
func (s *PostService) Update(ctx context.Context, caller *models.User, id string, req dto.PostReq, image *multipart.FileHeader) (*models.Post, error) {
	const failMsg = "There was an error updating the post."

	post, err := s.owned(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	tags, err := validatePost(&req)
	if err != nil {
		return nil, err
	}

	upd := models.PostUpdate{Title: req.Title, Content: req.Content, Tags: tags}
	if image != nil {
		path, err := s.images.Save(image, uploads.FolderPosts)
		if err != nil {
			return nil, imageErr(err, failMsg)
		}
		upd.Image = &path
	}

	updated, err := s.st.Posts.Update(ctx, post.ID, upd)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound(msgPostNotFound)
		}
		return nil, apperr.Internal(failMsg, err)
	}
	return updated, nil
}

// Delete removes the caller's post together with its comments.
func (s *PostService) Delete(ctx context.Context, caller *models.User, id string) error {
	post, err := s.owned(ctx, caller, id)
	if err != nil {
		return err
	}

	err = s.st.Tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.st.Posts.Delete(ctx, post.ID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return apperr.NotFound(msgPostNotFound)
			}
			return err
		}
		_, err := s.st.Comments.DeleteByPost(ctx, post.ID)
		return err
	})
	if err != nil {
		return asAppErr(err, "An error occurred while removing the post.")
	}
	return nil
}

// owned loads the post behind id and checks the caller wrote it.
func (s *PostService) owned(ctx context.Context, caller *models.User, id string) (*models.Post, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	oid, err := utils.Oid(id)
	if err != nil {
		return nil, apperr.InvalidID(msgPostInvalidID)
	}
	post, err := s.find(ctx, oid)
	if err != nil {
		return nil, err
	}
	if post.User.ID != caller.ID {
		return nil, apperr.Permission(msgPostPermission)
	}
	return post, nil
}

func (s *PostService) find(ctx context.Context, id bson.ObjectID) (*models.Post, error) {
	post, err := s.st.Posts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound(msgPostNotFound)
		}
		return nil, apperr.Internal("Unable to load the post. Please try again later.", err)
	}
	return post, nil
}
