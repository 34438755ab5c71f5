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

var userColumns = []string{"id", "email", "password_hash"}

// userRepository is the SQL implementation of [UserRepository].
// It handles user account creation, lookup and removal against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with the id assigned
// by the database.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (created models.User, err error) {
	ctx, done := r.db.obs.start(ctx, "users.create")
	defer func() { done(err) }()
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(user.TableName()).
		Columns("email", "password_hash").
		Values(user.Email, user.PasswordHash).
		Suffix("RETURNING id, email, password_hash").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.GetContext(ctx, &created, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		if r.db.classify(err) == UniqueViolation {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// FindUserByEmail retrieves the user whose email equals email exactly.
// Normalisation is the caller's job.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (user models.User, err error) {
	ctx, done := r.db.obs.start(ctx, "users.find_by_email")
	defer func() { done(err) }()
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.GetContext(ctx, &user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error selecting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

func (r *userRepository) ListUsers(ctx context.Context) (users []models.User, err error) {
	ctx, done := r.db.obs.start(ctx, "users.list")
	defer func() { done(err) }()
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(userColumns...).
		From("users").
		OrderBy("id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	users = make([]models.User, 0)
	if err = r.db.SelectContext(ctx, &users, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error selecting users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return users, nil
}

// DeleteUser counts the user's posts and comments and deletes the user only
// when there are none, both inside one transaction. A restrict violation
// raised by a concurrent insert is reported the same way.
func (r *userRepository) DeleteUser(ctx context.Context, userID int64) (err error) {
	ctx, done := r.db.obs.start(ctx, "users.delete")
	defer func() { done(err) }()
	log := logger.FromContext(ctx)

	countQuery, countArgs, err := r.db.builder.
		Select().
		Column(sq.Expr("(SELECT COUNT(*) FROM posts WHERE owner_id = ?) + (SELECT COUNT(*) FROM comments WHERE owner_id = ?)", userID, userID)).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error building count query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	deleteQuery, deleteArgs, err := r.db.builder.
		Delete("users").
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	// begin transaction
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error during opening transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var dependents int64
	if err = tx.GetContext(ctx, &dependents, countQuery, countArgs...); err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error counting dependents")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if dependents > 0 {
		return ErrUserHasDependents
	}

	result, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error deleting user")
		if r.db.classify(err) == ForeignKeyViolation {
			return ErrUserHasDependents
		}
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrUserNotFound
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
