package repository

import (
	"context"
	"testing"
	"time"

	"github.com/loadouthq/setups/internal/database"
	"github.com/loadouthq/setups/internal/model"
)

type mockDB struct {
	database.Database

	queryFunc    func(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error)
	queryOneFunc func(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error)
	executeFunc  func(ctx context.Context, query string, vars map[string]interface{}) error
}

func (m *mockDB) Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error) {
	return m.queryFunc(ctx, query, vars)
}

func (m *mockDB) QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error) {
	return m.queryOneFunc(ctx, query, vars)
}

func (m *mockDB) Execute(ctx context.Context, query string, vars map[string]interface{}) error {
	return m.executeFunc(ctx, query, vars)
}

func wrapOK(rows ...interface{}) []interface{} {
	return []interface{}{
		map[string]interface{}{
			"status": "OK",
			"result": rows,
		},
	}
}

func setupRecord(id, owner, title string) map[string]interface{} {
	return map[string]interface{}{
		"id":         id,
		"owner":      owner,
		"title":      title,
		"tags":       []interface{}{"desk", "audio"},
		"created_on": "2026-08-01T10:00:00Z",
		"updated_on": "2026-08-02T10:00:00Z",
	}
}

func TestSetupRepository_List(t *testing.T) {
	t.Parallel()
	db := &mockDB{
		queryFunc: func(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error) {
			return wrapOK(
				setupRecord("setup:b", "user:1", "Second"),
				setupRecord("setup:a", "user:2", "First"),
			), nil
		},
	}
	repo := NewSetupRepository(db)

	setups, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(setups) != 2 {
		t.Fatalf("expected 2 setups, got %d", len(setups))
	}
	if setups[0].ID != "setup:b" || setups[1].ID != "setup:a" {
		t.Errorf("result order not preserved: %q, %q", setups[0].ID, setups[1].ID)
	}
	if len(setups[0].Tags) != 2 || setups[0].Tags[0] != "desk" {
		t.Errorf("tags not parsed: %v", setups[0].Tags)
	}
}

func TestSetupRepository_List_Empty(t *testing.T) {
	t.Parallel()
	db := &mockDB{
		queryFunc: func(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error) {
			return wrapOK(), nil
		},
	}
	repo := NewSetupRepository(db)

	setups, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if setups == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(setups) != 0 {
		t.Errorf("expected 0 setups, got %d", len(setups))
	}
}

func TestSetupRepository_GetByID_Found(t *testing.T) {
	t.Parallel()
	db := &mockDB{
		queryOneFunc: func(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error) {
			if vars["id"] != "setup:abc" {
				t.Errorf("expected id var 'setup:abc', got %v", vars["id"])
			}
			return setupRecord("setup:abc", "user:1", "My Desk"), nil
		},
	}
	repo := NewSetupRepository(db)

	setup, err := repo.GetByID(context.Background(), "setup:abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if setup == nil {
		t.Fatal("expected a setup")
	}
	if setup.Owner != "user:1" {
		t.Errorf("expected owner 'user:1', got %q", setup.Owner)
	}
	want := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	if !setup.CreatedOn.Equal(want) {
		t.Errorf("expected created_on %v, got %v", want, setup.CreatedOn)
	}
}

func TestSetupRepository_GetByID_Missing(t *testing.T) {
	t.Parallel()
	db := &mockDB{
		queryOneFunc: func(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error) {
			return nil, database.ErrNotFound
		},
	}
	repo := NewSetupRepository(db)

	setup, err := repo.GetByID(context.Background(), "setup:nope")
	if err != nil {
		t.Fatalf("absence should not be an error, got %v", err)
	}
	if setup != nil {
		t.Errorf("expected nil setup, got %+v", setup)
	}
}

func TestSetupRepository_Create_AssignsServerFields(t *testing.T) {
	t.Parallel()
	db := &mockDB{
		queryFunc: func(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error) {
			if vars["owner"] != "user:1" {
				t.Errorf("expected owner var 'user:1', got %v", vars["owner"])
			}
			return wrapOK(setupRecord("setup:new", "user:1", "Fresh")), nil
		},
	}
	repo := NewSetupRepository(db)

	setup := &model.Setup{Owner: "user:1", Title: "Fresh"}
	if err := repo.Create(context.Background(), setup); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if setup.ID != "setup:new" {
		t.Errorf("expected assigned ID 'setup:new', got %q", setup.ID)
	}
	if setup.CreatedOn.IsZero() || setup.UpdatedOn.IsZero() {
		t.Error("expected timestamps to be written back")
	}
}

func TestSetupRepository_Update_RefreshesTimestamp(t *testing.T) {
	t.Parallel()
	var captured map[string]interface{}
	db := &mockDB{
		executeFunc: func(ctx context.Context, query string, vars map[string]interface{}) error {
			captured = vars
			return nil
		},
	}
	repo := NewSetupRepository(db)

	err := repo.Update(context.Background(), "setup:abc", map[string]interface{}{"title": "Renamed"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, ok := captured["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected data var, got %v", captured["data"])
	}
	if data["title"] != "Renamed" {
		t.Errorf("expected title in merge payload, got %v", data["title"])
	}
	if _, ok := data["updated_on"]; !ok {
		t.Error("expected updated_on in merge payload")
	}
}

func TestSetupRepository_Delete(t *testing.T) {
	t.Parallel()
	var captured map[string]interface{}
	db := &mockDB{
		executeFunc: func(ctx context.Context, query string, vars map[string]interface{}) error {
			captured = vars
			return nil
		},
	}
	repo := NewSetupRepository(db)

	if err := repo.Delete(context.Background(), "setup:abc"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if captured["id"] != "setup:abc" {
		t.Errorf("expected id var 'setup:abc', got %v", captured["id"])
	}
}
