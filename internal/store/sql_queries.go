package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (username, email, full_name, hashed_password, disabled)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING user_id, username, email, full_name, hashed_password, disabled, created_at;`

	findUserByUsername = `SELECT user_id, username, email, full_name, hashed_password, disabled, created_at
    FROM users
    WHERE username = $1;`

	createItem = `INSERT INTO items (name, price, description, tax)
    VALUES ($1, $2, $3, $4)
    RETURNING id, name, price, description, tax;`

	findItemByID = `SELECT id, name, price, description, tax
    FROM items
    WHERE id = $1;`

	updateItem = `UPDATE items
    SET name = $2, price = $3, description = $4, tax = $5
    WHERE id = $1
    RETURNING id, name, price, description, tax;`

	deleteItem = `DELETE FROM items
    WHERE id = $1;`
)

// buildFindItemsQuery constructs the item listing query. When nameQuery is
// non-empty a case-insensitive substring filter on the name column is added.
func buildFindItemsQuery(nameQuery string) (string, []any, error) {
	builder := sq.
		Select("id", "name", "price", "description", "tax").
		From("items").
		OrderBy("id").
		PlaceholderFormat(sq.Dollar)

	if nameQuery != "" {
		builder = builder.Where(sq.ILike{"name": fmt.Sprintf("%%%s%%", nameQuery)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
