package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/inventory-master/internal/logger"
	"github.com/MKhiriev/inventory-master/models"
	"github.com/jackc/pgerrcode"
)

func newTestItemRepo(t *testing.T) (*itemRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &itemRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

var itemColumns = []string{"id", "name", "price", "description", "tax"}

func TestCreateItem_Success(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	item := models.Item{Name: "Widget", Price: 9.99, Description: "A widget", Tax: 0.2}

	rows := sqlmock.NewRows(itemColumns).
		AddRow(1, item.Name, item.Price, item.Description, item.Tax)

	mock.ExpectQuery("INSERT INTO items").
		WithArgs(item.Name, item.Price, item.Description, item.Tax).
		WillReturnRows(rows)

	created, err := repo.CreateItem(context.Background(), item)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected server-assigned ID=1, got %d", created.ID)
	}
}

func TestCreateItem_DuplicateName(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO items").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateItem(context.Background(), models.Item{Name: "Widget"})
	if !errors.Is(err, ErrItemAlreadyExists) {
		t.Fatalf("expected ErrItemAlreadyExists, got %v", err)
	}
}

func TestFindItemByID_Success(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows(itemColumns).
		AddRow(3, "Widget", 9.99, "A widget", 0.2)

	mock.ExpectQuery("SELECT (.+) FROM items").
		WithArgs(int64(3)).
		WillReturnRows(rows)

	item, err := repo.FindItemByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.ID != 3 || item.Name != "Widget" {
		t.Errorf("unexpected item returned: %+v", item)
	}
}

func TestFindItemByID_NotFound(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM items").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindItemByID(context.Background(), 404)
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestUpdateItem_Success(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	item := models.Item{ID: 3, Name: "Widget v2", Price: 12.99, Description: "A better widget", Tax: 0.2}

	rows := sqlmock.NewRows(itemColumns).
		AddRow(item.ID, item.Name, item.Price, item.Description, item.Tax)

	mock.ExpectQuery("UPDATE items").
		WithArgs(item.ID, item.Name, item.Price, item.Description, item.Tax).
		WillReturnRows(rows)

	updated, err := repo.UpdateItem(context.Background(), item)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "Widget v2" {
		t.Errorf("unexpected item returned: %+v", updated)
	}
}

func TestUpdateItem_NotFound(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE items").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateItem(context.Background(), models.Item{ID: 404, Name: "Widget"})
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestUpdateItem_DuplicateName(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE items").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.UpdateItem(context.Background(), models.Item{ID: 3, Name: "Gadget"})
	if !errors.Is(err, ErrItemAlreadyExists) {
		t.Fatalf("expected ErrItemAlreadyExists, got %v", err)
	}
}

func TestDeleteItem_Success(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM items").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteItem(context.Background(), 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteItem_NotFound(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM items").
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteItem(context.Background(), 404)
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestFindItems_All(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows(itemColumns).
		AddRow(1, "Widget", 9.99, "", 0.0).
		AddRow(2, "Gadget", 19.99, "Shiny", 0.1)

	mock.ExpectQuery("SELECT (.+) FROM items").
		WillReturnRows(rows)

	items, err := repo.FindItems(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
}

func TestFindItems_Filtered(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows(itemColumns).
		AddRow(1, "Widget", 9.99, "", 0.0)

	mock.ExpectQuery("SELECT (.+) FROM items WHERE name ILIKE").
		WithArgs("%wid%").
		WillReturnRows(rows)

	items, err := repo.FindItems(context.Background(), "wid")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Widget" {
		t.Errorf("unexpected items returned: %+v", items)
	}
}

func TestFindItems_QueryError(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM items").
		WillReturnError(errors.New("boom"))

	_, err := repo.FindItems(context.Background(), "")
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestBuildFindItemsQuery(t *testing.T) {
	query, args, err := buildFindItemsQuery("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(query, "WHERE") {
		t.Errorf("expected no WHERE clause for empty filter, got %q", query)
	}
	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}

	query, args, err = buildFindItemsQuery("wid")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(query, "name ILIKE $1") {
		t.Errorf("expected ILIKE filter with dollar placeholder, got %q", query)
	}
	if len(args) != 1 || args[0] != "%wid%" {
		t.Errorf("expected args [%%wid%%], got %v", args)
	}
}
