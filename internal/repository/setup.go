package repository

import (
	"context"
	"errors"
	"time"

	"github.com/loadouthq/setups/internal/database"
	"github.com/loadouthq/setups/internal/model"
)

// SetupRepository handles setup data access.
type SetupRepository struct {
	db database.Database
}

// NewSetupRepository creates a new setup repository.
func NewSetupRepository(db database.Database) *SetupRepository {
	return &SetupRepository{db: db}
}

// List retrieves all setups, newest first.
func (r *SetupRepository) List(ctx context.Context) ([]*model.Setup, error) {
	query := `SELECT * FROM setup ORDER BY created_on DESC`

	results, err := r.db.Query(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	records := allRecords(results)
	setups := make([]*model.Setup, 0, len(records))
	for _, record := range records {
		setups = append(setups, parseSetupRecord(record))
	}
	return setups, nil
}

// GetByID retrieves a setup by record ID. A missing record yields (nil, nil).
func (r *SetupRepository) GetByID(ctx context.Context, id string) (*model.Setup, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	record, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}
	return parseSetupRecord(record), nil
}

// Create persists a new setup. The database assigns the record ID and both
// timestamps; they are written back onto the given setup.
func (r *SetupRepository) Create(ctx context.Context, setup *model.Setup) error {
	query := `
		CREATE setup SET
			owner = $owner,
			title = $title,
			description = $description,
			category = $category,
			image_url = $image_url,
			tags = $tags,
			created_on = time::now(),
			updated_on = time::now()
	`

	tags := setup.Tags
	if tags == nil {
		tags = []string{}
	}

	vars := map[string]interface{}{
		"owner":       setup.Owner,
		"title":       setup.Title,
		"description": setup.Description,
		"category":    setup.Category,
		"image_url":   setup.ImageURL,
		"tags":        tags,
	}

	results, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	record, err := firstRecord(results)
	if err != nil {
		return err
	}

	created := parseSetupRecord(record)
	setup.ID = created.ID
	setup.CreatedOn = created.CreatedOn
	setup.UpdatedOn = created.UpdatedOn
	return nil
}

// Update merges the given fields into an existing setup and refreshes
// updated_on. Callers are responsible for stripping reserved keys first.
func (r *SetupRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	merged := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		merged[k] = v
	}
	merged["updated_on"] = time.Now().UTC()

	query := `UPDATE type::record($id) MERGE $data`
	vars := map[string]interface{}{
		"id":   id,
		"data": merged,
	}

	return r.db.Execute(ctx, query, vars)
}

// Delete removes a setup by record ID.
func (r *SetupRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE type::record($id)`
	return r.db.Execute(ctx, query, map[string]interface{}{"id": id})
}

// parseSetupRecord maps a raw record onto the domain model.
func parseSetupRecord(record map[string]interface{}) *model.Setup {
	return &model.Setup{
		ID:          recordIDString(record["id"]),
		Owner:       recordIDString(record["owner"]),
		Title:       getString(record, "title"),
		Description: getString(record, "description"),
		Category:    getString(record, "category"),
		ImageURL:    getString(record, "image_url"),
		Tags:        getStringSlice(record, "tags"),
		CreatedOn:   getTime(record, "created_on"),
		UpdatedOn:   getTime(record, "updated_on"),
	}
}
