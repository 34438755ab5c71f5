package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/models"
)

var commentColumns = []string{"id", "body", "owner_id", "post_id"}

// commentOwnerRow is a comments row joined with its author's email.
type commentOwnerRow struct {
	models.Comment
	OwnerEmail string `db:"owner_email"`
}

func (r commentOwnerRow) toModel() models.CommentWithOwner {
	return models.CommentWithOwner{
		Comment: r.Comment,
		Owner:   models.UserPublic{ID: r.OwnerID, Email: r.OwnerEmail},
	}
}

type commentRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewCommentRepository(db *DB, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("creating comment repository")
	return &commentRepository{
		db:     db,
		logger: logger,
	}
}

func (r *commentRepository) selectWithOwner() sq.SelectBuilder {
	return r.db.builder.
		Select("c.id", "c.body", "c.owner_id", "c.post_id", "u.email AS owner_email").
		From("comments c").
		Join("users u ON u.id = c.owner_id")
}

// CreateComment inserts a comment. A missing post or owner surfaces as
// [ErrReferenceNotFound].
func (r *commentRepository) CreateComment(ctx context.Context, comment models.Comment) (created models.Comment, err error) {
	ctx, done := r.db.obs.start(ctx, "comments.create")
	defer func() { done(err) }()
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert("comments").
		Columns("body", "owner_id", "post_id").
		Values(comment.Body, comment.OwnerID, comment.PostID).
		Suffix("RETURNING id, body, owner_id, post_id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.CreateComment").Msg("error building query")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.GetContext(ctx, &created, query, args...); err != nil {
		log.Err(err).Str("func", "*commentRepository.CreateComment").Msg("error inserting comment")
		if r.db.classify(err) == ForeignKeyViolation {
			return models.Comment{}, ErrReferenceNotFound
		}
		return models.Comment{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *commentRepository) ListCommentsByPost(ctx context.Context, postID int64) (comments []models.CommentWithOwner, err error) {
	ctx, done := r.db.obs.start(ctx, "comments.list_by_post")
	defer func() { done(err) }()
	log := logger.FromContext(ctx)

	query, args, err := r.selectWithOwner().
		Where(sq.Eq{"c.post_id": postID}).
		OrderBy("c.id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.ListCommentsByPost").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var rows []commentOwnerRow
	if err = r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		log.Err(err).Str("func", "*commentRepository.ListCommentsByPost").Msg("error selecting comments")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	comments = make([]models.CommentWithOwner, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, row.toModel())
	}
	return comments, nil
}

func (r *commentRepository) GetComment(ctx context.Context, commentID int64) (comment models.CommentWithOwner, err error) {
	ctx, done := r.db.obs.start(ctx, "comments.get")
	defer func() { done(err) }()
	log := logger.FromContext(ctx)

	query, args, err := r.selectWithOwner().Where(sq.Eq{"c.id": commentID}).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.GetComment").Msg("error building query")
		return models.CommentWithOwner{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var row commentOwnerRow
	if err = r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CommentWithOwner{}, ErrCommentNotFound
		}
		log.Err(err).Str("func", "*commentRepository.GetComment").Msg("error selecting comment")
		return models.CommentWithOwner{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return row.toModel(), nil
}

// UpdateComment overwrites the body of the comment matching both
// comment.CommentID and comment.OwnerID.
func (r *commentRepository) UpdateComment(ctx context.Context, comment models.Comment) (updated models.Comment, err error) {
	ctx, done := r.db.obs.start(ctx, "comments.update")
	defer func() { done(err) }()
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update("comments").
		Set("body", comment.Body).
		Where(sq.And{sq.Eq{"id": comment.CommentID}, sq.Eq{"owner_id": comment.OwnerID}}).
		Suffix("RETURNING id, body, owner_id, post_id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.UpdateComment").Msg("error building query")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.GetContext(ctx, &updated, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Comment{}, ErrCommentNotFound
		}
		log.Err(err).Str("func", "*commentRepository.UpdateComment").Msg("error updating comment")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

func (r *commentRepository) DeleteComment(ctx context.Context, commentID, ownerID int64) (err error) {
	ctx, done := r.db.obs.start(ctx, "comments.delete")
	defer func() { done(err) }()
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Delete("comments").
		Where(sq.And{sq.Eq{"id": commentID}, sq.Eq{"owner_id": ownerID}}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.DeleteComment").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.DeleteComment").Msg("error deleting comment")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if rowsAffected, _ := result.RowsAffected(); rowsAffected == 0 {
		return ErrCommentNotFound
	}

	return nil
}
