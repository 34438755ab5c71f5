// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/mock"
	"github.com/MKhiriev/go-blog-api/internal/store"
	"github.com/MKhiriev/go-blog-api/models"
)

func newTestCommentSvc(t *testing.T) (CommentService, *mock.MockCommentRepository, *mock.MockPostRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	comments := mock.NewMockCommentRepository(ctrl)
	posts := mock.NewMockPostRepository(ctrl)
	return NewCommentService(comments, posts, logger.Nop()), comments, posts
}

func bobComment() models.CommentWithOwner {
	return models.CommentWithOwner{
		Comment: models.Comment{CommentID: 20, Body: "hi", OwnerID: bob.UserID, PostID: 10},
		Owner:   bob.Public(),
	}
}

func TestCommentService_CreateComment(t *testing.T) {
	svc, comments, posts := newTestCommentSvc(t)

	gomock.InOrder(
		posts.EXPECT().GetPost(gomock.Any(), int64(10)).Return(alicePost(), nil),
		comments.EXPECT().CreateComment(gomock.Any(), models.Comment{Body: "hi", OwnerID: bob.UserID, PostID: 10}).
			Return(bobComment().Comment, nil),
	)

	c, err := svc.CreateComment(context.Background(), bob, 10, models.CommentCreate{Body: "hi"})
	require.NoError(t, err)
	assert.Equal(t, bob.UserID, c.OwnerID)
	assert.Equal(t, int64(10), c.PostID)
}

func TestCommentService_CreateComment_PostMissing(t *testing.T) {
	svc, _, posts := newTestCommentSvc(t)

	posts.EXPECT().GetPost(gomock.Any(), int64(999)).Return(models.PostWithOwner{}, store.ErrPostNotFound)

	_, err := svc.CreateComment(context.Background(), bob, 999, models.CommentCreate{Body: "hi"})
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestCommentService_CreateComment_PostDeletedConcurrently(t *testing.T) {
	svc, comments, posts := newTestCommentSvc(t)

	posts.EXPECT().GetPost(gomock.Any(), int64(10)).Return(alicePost(), nil)
	comments.EXPECT().CreateComment(gomock.Any(), gomock.Any()).Return(models.Comment{}, store.ErrReferenceNotFound)

	_, err := svc.CreateComment(context.Background(), bob, 10, models.CommentCreate{Body: "hi"})
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestCommentService_ListComments(t *testing.T) {
	svc, comments, posts := newTestCommentSvc(t)

	posts.EXPECT().GetPost(gomock.Any(), int64(10)).Return(alicePost(), nil)
	comments.EXPECT().ListCommentsByPost(gomock.Any(), int64(10)).Return([]models.CommentWithOwner{bobComment()}, nil)

	list, err := svc.ListComments(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, bob.Email, list[0].Owner.Email)
}

func TestCommentService_ListComments_PostMissing(t *testing.T) {
	svc, _, posts := newTestCommentSvc(t)

	posts.EXPECT().GetPost(gomock.Any(), int64(999)).Return(models.PostWithOwner{}, store.ErrPostNotFound)

	_, err := svc.ListComments(context.Background(), 999)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestCommentService_GetComment_NotFound(t *testing.T) {
	svc, comments, _ := newTestCommentSvc(t)

	comments.EXPECT().GetComment(gomock.Any(), int64(404)).Return(models.CommentWithOwner{}, store.ErrCommentNotFound)

	_, err := svc.GetComment(context.Background(), 404)
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestCommentService_UpdateComment(t *testing.T) {
	svc, comments, _ := newTestCommentSvc(t)

	comments.EXPECT().GetComment(gomock.Any(), int64(20)).Return(bobComment(), nil)
	comments.EXPECT().UpdateComment(gomock.Any(), models.Comment{CommentID: 20, Body: "edited", OwnerID: bob.UserID, PostID: 10}).
		Return(models.Comment{CommentID: 20, Body: "edited", OwnerID: bob.UserID, PostID: 10}, nil)

	c, err := svc.UpdateComment(context.Background(), bob, 20, models.CommentUpdate{Body: strPtr("edited")})
	require.NoError(t, err)
	assert.Equal(t, "edited", c.Body)
}

func TestCommentService_UpdateComment_Empty(t *testing.T) {
	svc, comments, _ := newTestCommentSvc(t)

	comments.EXPECT().GetComment(gomock.Any(), int64(20)).Return(bobComment(), nil)

	c, err := svc.UpdateComment(context.Background(), bob, 20, models.CommentUpdate{})
	require.NoError(t, err)
	assert.Equal(t, bobComment().Comment, c)
}

func TestCommentService_UpdateComment_NonOwner(t *testing.T) {
	svc, comments, _ := newTestCommentSvc(t)

	comments.EXPECT().GetComment(gomock.Any(), int64(20)).Return(bobComment(), nil)

	_, err := svc.UpdateComment(context.Background(), alice, 20, models.CommentUpdate{Body: strPtr("x")})
	assert.ErrorIs(t, err, ErrForbiddenCommentUpdate)
}

func TestCommentService_DeleteComment(t *testing.T) {
	svc, comments, _ := newTestCommentSvc(t)

	comments.EXPECT().GetComment(gomock.Any(), int64(20)).Return(bobComment(), nil)
	comments.EXPECT().DeleteComment(gomock.Any(), int64(20), bob.UserID).Return(nil)

	require.NoError(t, svc.DeleteComment(context.Background(), bob, 20))
}

func TestCommentService_DeleteComment_NonOwner(t *testing.T) {
	svc, comments, _ := newTestCommentSvc(t)

	comments.EXPECT().GetComment(gomock.Any(), int64(20)).Return(bobComment(), nil)

	assert.ErrorIs(t, svc.DeleteComment(context.Background(), alice, 20), ErrForbiddenCommentDelete)
}

func TestCommentService_DeleteComment_NotFound(t *testing.T) {
	svc, comments, _ := newTestCommentSvc(t)

	comments.EXPECT().GetComment(gomock.Any(), int64(20)).Return(models.CommentWithOwner{}, store.ErrCommentNotFound)

	assert.ErrorIs(t, svc.DeleteComment(context.Background(), bob, 20), ErrCommentNotFound)
}
