package store

import (
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (name, email, password_hash, is_admin)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, name, email, password_hash, is_admin, created_at;`

	findUserByID = `SELECT user_id, name, email, password_hash, is_admin, created_at
    FROM users
    WHERE user_id = $1;`

	findUserByEmail = `SELECT user_id, name, email, password_hash, is_admin, created_at
    FROM users
    WHERE email = $1;`

	getSession = `SELECT data
    FROM sessions
    WHERE session_id = $1 AND expires_at > $2;`

	saveSession = `INSERT INTO sessions (session_id, data, expires_at)
    VALUES ($1, $2, $3)
    ON CONFLICT (session_id) DO UPDATE
    SET data = EXCLUDED.data, expires_at = EXCLUDED.expires_at;`

	deleteSession = `DELETE FROM sessions WHERE session_id = $1;`

	deleteExpiredSessions = `DELETE FROM sessions WHERE expires_at <= $1;`
)

var productColumns = []string{
	"product_id", "title", "price", "description", "image_path", "user_id", "created_at",
}

// psql is the squirrel builder configured for PostgreSQL placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func buildCreateProductQuery(title string, price int64, description, imagePath string, userID int64, createdAt time.Time) (string, []any, error) {
	query, args, err := psql.
		Insert("products").
		Columns("title", "price", "description", "image_path", "user_id", "created_at").
		Values(title, price, description, imagePath, userID, createdAt).
		Suffix("RETURNING product_id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildFindProductQuery(productID int64) (string, []any, error) {
	query, args, err := psql.
		Select(productColumns...).
		From("products").
		Where(sq.Eq{"product_id": productID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildListProductsQuery selects products newest first, narrowed by the
// non-zero fields of filter.
func buildListProductsQuery(filter ProductFilter) (string, []any, error) {
	builder := psql.
		Select(productColumns...).
		From("products").
		OrderBy("created_at DESC", "product_id DESC")

	if filter.UserID != 0 {
		builder = builder.Where(sq.Eq{"user_id": filter.UserID})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		builder = builder.Offset(filter.Offset)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildDeleteProductQuery(productID, userID int64) (string, []any, error) {
	query, args, err := psql.
		Delete("products").
		Where(sq.Eq{"product_id": productID, "user_id": userID}).
		Suffix("RETURNING " + strings.Join(productColumns, ", ")).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
