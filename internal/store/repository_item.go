package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/inventory-master/internal/logger"
	"github.com/MKhiriev/inventory-master/models"
	"github.com/jackc/pgerrcode"
)

// itemRepository is the PostgreSQL-backed implementation of [ItemRepository].
// It executes all item CRUD operations against the "items" table.
type itemRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewItemRepository constructs an [ItemRepository] backed by the provided
// database connection and logger.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		db:     db,
		logger: logger,
	}
}

// CreateItem persists a new item and returns it with the server-assigned ID.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) on the name column → [ErrItemAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *itemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createItem, item.Name, item.Price, item.Description, item.Tax)

	var created models.Item
	err := row.Scan(&created.ID, &created.Name, &created.Price, &created.Description, &created.Tax)
	if err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			log.Err(err).Str("func", "*itemRepository.CreateItem").Str("name", item.Name).Msg("item name taken")
			return models.Item{}, ErrItemAlreadyExists
		default:
			log.Err(err).Str("func", "*itemRepository.CreateItem").Msg("error: scanning error")
			return models.Item{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindItemByID retrieves a single item by its identifier.
//
// Returns [ErrItemNotFound] when no row matches.
func (r *itemRepository) FindItemByID(ctx context.Context, id int64) (models.Item, error) {
	log := logger.FromContext(ctx)

	var item models.Item
	row := r.db.QueryRowContext(ctx, findItemByID, id)

	err := row.Scan(&item.ID, &item.Name, &item.Price, &item.Description, &item.Tax)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, ErrItemNotFound
		}

		log.Err(err).Str("func", "*itemRepository.FindItemByID").Int64("id", id).Msg("error: scanning error")
		return models.Item{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return item, nil
}

// UpdateItem overwrites the stored row for item.ID and returns the updated
// record.
//
// Error handling:
//   - No row with that ID → [ErrItemNotFound].
//   - Rename collides with another item's name → [ErrItemAlreadyExists].
func (r *itemRepository) UpdateItem(ctx context.Context, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateItem, item.ID, item.Name, item.Price, item.Description, item.Tax)

	var updated models.Item
	err := row.Scan(&updated.ID, &updated.Name, &updated.Price, &updated.Description, &updated.Tax)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, ErrItemNotFound
		}

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			log.Err(err).Str("func", "*itemRepository.UpdateItem").Str("name", item.Name).Msg("item name taken")
			return models.Item{}, ErrItemAlreadyExists
		default:
			log.Err(err).Str("func", "*itemRepository.UpdateItem").Int64("id", item.ID).Msg("error: scanning error")
			return models.Item{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return updated, nil
}

// DeleteItem removes an item by its identifier.
//
// Returns [ErrItemNotFound] when no row was deleted.
func (r *itemRepository) DeleteItem(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteItem, id)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.DeleteItem").Int64("id", id).Msg("failed to execute query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.DeleteItem").Msg("failed to read affected rows")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}

// FindItems lists items, optionally filtered by a case-insensitive substring
// match on the name column. The query is built with squirrel so the filter
// clause is only present when requested.
//
// Returns an empty slice when no records match.
func (r *itemRepository) FindItems(ctx context.Context, nameQuery string) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindItemsQuery(nameQuery)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.FindItems").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.FindItems").Str("name_query", nameQuery).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0, 20)

	for rows.Next() {
		var item models.Item

		scanErr := rows.Scan(&item.ID, &item.Name, &item.Price, &item.Description, &item.Tax)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*itemRepository.FindItems").Msg("failed to scan item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*itemRepository.FindItems").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}
