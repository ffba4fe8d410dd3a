package services

import (
	"context"
	"errors"

	"github.com/ZeltraX007/AkasaWingsBlog/dto"
	"github.com/ZeltraX007/AkasaWingsBlog/internal/apperr"
	"github.com/ZeltraX007/AkasaWingsBlog/internal/models"
	"github.com/ZeltraX007/AkasaWingsBlog/internal/repository"
	"github.com/ZeltraX007/AkasaWingsBlog/internal/utils"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	msgCommentPostInvalidID = "Invalid post ID!"
	msgCommentInvalidID     = "Invalid comment ID!"
	msgCommentNotFound      = "Comment not found!"
	msgCommentPermission    = "You do not have permission to access or modify this comment."
	msgCommentListFailed    = "Unable to load comments. Please try again later."
)

type CommentService struct {
	st Stores
}

func NewCommentService(st Stores) *CommentService {
	return &CommentService{st: st}
}

func (s *CommentService) Create(ctx context.Context, caller *models.User, req dto.CreateCommentReq) (*models.Comment, error) {
	const failMsg = "There was an error creating the comment."

	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	post, err := s.post(ctx, req.PostID)
	if err != nil {
		return nil, err
	}
	trim(&req.CommentText)
	if err := checkFields(req); err != nil {
		return nil, err
	}

	now := nowUTC()
	comment := &models.Comment{
		CommentText: req.CommentText,
		User:        caller.CommentAuthor(),
		Post:        models.PostRef{ID: post.ID},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.st.Comments.Insert(ctx, comment); err != nil {
		return nil, apperr.Internal(failMsg, err)
	}
	return comment, nil
}

func (s *CommentService) List(ctx context.Context) ([]models.Comment, error) {
	return s.list(ctx, models.CommentFilter{})
}

func (s *CommentService) ListByUser(ctx context.Context, caller *models.User) ([]models.Comment, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	return s.list(ctx, models.CommentFilter{AuthorID: caller.ID})
}

// ListByPost checks the post exists before listing its comments.
func (s *CommentService) ListByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	post, err := s.post(ctx, postID)
	if err != nil {
		return nil, err
	}
	return s.list(ctx, models.CommentFilter{PostID: post.ID})
}

func (s *CommentService) Update(ctx context.Context, caller *models.User, id string, req dto.UpdateCommentReq) (*models.Comment, error) {
	const failMsg = "There was an error updating the comment."

	comment, err := s.owned(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	trim(&req.CommentText)
	if err := checkFields(req); err != nil {
		return nil, err
	}

	updated, err := s.st.Comments.UpdateText(ctx, comment.ID, req.CommentText)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound(msgCommentNotFound)
		}
		return nil, apperr.Internal(failMsg, err)
	}
	return updated, nil
}

func (s *CommentService) Delete(ctx context.Context, caller *models.User, id string) error {
	comment, err := s.owned(ctx, caller, id)
	if err != nil {
		return err
	}
	if err := s.st.Comments.Delete(ctx, comment.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound(msgCommentNotFound)
		}
		return apperr.Internal("An error occurred while removing the comment.", err)
	}
	return nil
}

func (s *CommentService) list(ctx context.Context, f models.CommentFilter) ([]models.Comment, error) {
	comments, err := s.st.Comments.List(ctx, f)
	if err != nil {
		return nil, apperr.Internal(msgCommentListFailed, err)
	}
	return comments, nil
}

func (s *CommentService) post(ctx context.Context, postID string) (*models.Post, error) {
	oid, err := utils.Oid(postID)
	if err != nil {
		return nil, apperr.InvalidID(msgCommentPostInvalidID)
	}
	post, err := s.st.Posts.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound(msgPostNotFound)
		}
		return nil, apperr.Internal("Unable to load the post. Please try again later.", err)
	}
	return post, nil
}

func (s *CommentService) owned(ctx context.Context, caller *models.User, id string) (*models.Comment, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	oid, err := utils.Oid(id)
	if err != nil {
		return nil, apperr.InvalidID(msgCommentInvalidID)
	}
	comment, err := s.find(ctx, oid)
	if err != nil {
		return nil, err
	}
	if comment.User.ID != caller.ID {
		return nil, apperr.Permission(msgCommentPermission)
	}
	return comment, nil
}

func (s *CommentService) find(ctx context.Context, id bson.ObjectID) (*models.Comment, error) {
	comment, err := s.st.Comments.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound(msgCommentNotFound)
		}
		return nil, apperr.Internal("Unable to load the comment. Please try again later.", err)
	}
	return comment, nil
}
