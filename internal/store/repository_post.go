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

// postOwnerRow is a posts row joined with its owner's email.
type postOwnerRow struct {
	models.Post
	OwnerEmail string `db:"owner_email"`
}

func (r postOwnerRow) toModel() models.PostWithOwner {
	return models.PostWithOwner{
		Post:  r.Post,
		Owner: models.UserPublic{ID: r.OwnerID, Email: r.OwnerEmail},
	}
}

type postRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

func (r *postRepository) selectWithOwner() sq.SelectBuilder {
	return r.db.builder.
		Select("p.id", "p.title", "p.content", "p.owner_id", "u.email AS owner_email").
		From("posts p").
		Join("users u ON u.id = p.owner_id")
}

func (r *postRepository) CreatePost(ctx context.Context, post models.Post) (created models.Post, err error) {
	ctx, done := r.db.obs.start(ctx, "posts.create")
	defer func() { done(err) }()
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert("posts").
		Columns("title", "content", "owner_id").
		Values(post.Title, post.Content, post.OwnerID).
		Suffix("RETURNING id, title, content, owner_id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error building query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.GetContext(ctx, &created, query, args...); err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error inserting post")
		if r.db.classify(err) == ForeignKeyViolation {
			return models.Post{}, ErrReferenceNotFound
		}
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *postRepository) ListPosts(ctx context.Context) (posts []models.PostWithOwner, err error) {
	ctx, done := r.db.obs.start(ctx, "posts.list")
	defer func() { done(err) }()
	log := logger.FromContext(ctx)

	query, args, err := r.selectWithOwner().OrderBy("p.id").ToSql()
	if err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var rows []postOwnerRow
	if err = r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error selecting posts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	posts = make([]models.PostWithOwner, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, row.toModel())
	}
	return posts, nil
}

func (r *postRepository) GetPost(ctx context.Context, postID int64) (post models.PostWithOwner, err error) {
	ctx, done := r.db.obs.start(ctx, "posts.get")
	defer func() { done(err) }()
	log := logger.FromContext(ctx)

	query, args, err := r.selectWithOwner().Where(sq.Eq{"p.id": postID}).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*postRepository.GetPost").Msg("error building query")
		return models.PostWithOwner{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var row postOwnerRow
	if err = r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PostWithOwner{}, ErrPostNotFound
		}
		log.Err(err).Str("func", "*postRepository.GetPost").Msg("error selecting post")
		return models.PostWithOwner{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return row.toModel(), nil
}

func (r *postRepository) GetPostWithComments(ctx context.Context, postID int64) (models.PostWithComments, error) {
	post, err := r.GetPost(ctx, postID)
	if err != nil {
		return models.PostWithComments{}, err
	}

	ctx, done := r.db.obs.start(ctx, "comments.list_by_post_plain")
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(commentColumns...).
		From("comments").
		Where(sq.Eq{"post_id": postID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		done(err)
		log.Err(err).Str("func", "*postRepository.GetPostWithComments").Msg("error building query")
		return models.PostWithComments{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	comments := make([]models.Comment, 0)
	err = r.db.SelectContext(ctx, &comments, query, args...)
	done(err)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.GetPostWithComments").Msg("error selecting comments")
		return models.PostWithComments{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return models.PostWithComments{PostWithOwner: post, Comments: comments}, nil
}

func (r *postRepository) UpdatePost(ctx context.Context, post models.Post) (updated models.Post, err error) {
	ctx, done := r.db.obs.start(ctx, "posts.update")
	defer func() { done(err) }()
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update("posts").
		Set("title", post.Title).
		Set("content", post.Content).
		Where(sq.And{sq.Eq{"id": post.PostID}, sq.Eq{"owner_id": post.OwnerID}}).
		Suffix("RETURNING id, title, content, owner_id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*postRepository.UpdatePost").Msg("error building query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.GetContext(ctx, &updated, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrPostNotFound
		}
		log.Err(err).Str("func", "*postRepository.UpdatePost").Msg("error updating post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

// DeletePost removes the post's comments and then the post itself in one
// transaction. Nothing is deleted unless the post exists and belongs to ownerID.
func (r *postRepository) DeletePost(ctx context.Context, postID, ownerID int64) (err error) {
	ctx, done := r.db.obs.start(ctx, "posts.delete")
	defer func() { done(err) }()
	log := logger.FromContext(ctx)

	deleteComments, commentArgs, err := r.db.builder.
		Delete("comments").
		Where(sq.Eq{"post_id": postID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Msg("error building comments query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	deletePost, postArgs, err := r.db.builder.
		Delete("posts").
		Where(sq.And{sq.Eq{"id": postID}, sq.Eq{"owner_id": ownerID}}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Msg("error building post query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	// begin transaction
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Msg("error during opening transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteComments, commentArgs...); err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Msg("error deleting comments")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	result, err := tx.ExecContext(ctx, deletePost, postArgs...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Msg("error deleting post")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	// missing or foreign post: the rollback restores the comments
	if rowsAffected, _ := result.RowsAffected(); rowsAffected == 0 {
		return ErrPostNotFound
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
