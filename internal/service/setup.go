package service

import (
	"context"
	"strings"

	"github.com/loadouthq/setups/internal/model"
)

// SetupStore is the persistence surface the service depends on.
type SetupStore interface {
	List(ctx context.Context) ([]*model.Setup, error)
	GetByID(ctx context.Context, id string) (*model.Setup, error)
	Create(ctx context.Context, setup *model.Setup) error
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

// SetupService implements setup business logic.
type SetupService struct {
	store SetupStore
}

// NewSetupService creates a new setup service.
func NewSetupService(store SetupStore) *SetupService {
	return &SetupService{store: store}
}

// reservedFields may never be set through an update payload. Owner is
// immutable post-creation; the rest are server-assigned.
var reservedFields = []string{"owner", "id", "created_on", "updated_on"}

// List returns all setups.
func (s *SetupService) List(ctx context.Context) ([]*model.Setup, error) {
	return s.store.List(ctx)
}

// Get returns a setup by ID. Reads are not restricted to the owner.
func (s *SetupService) Get(ctx context.Context, id string) (*model.Setup, error) {
	setup, err := s.store.GetByID(ctx, normalizeID(id))
	if err != nil {
		return nil, err
	}
	if setup == nil {
		return nil, ErrSetupNotFound
	}
	return setup, nil
}

// Create validates and persists a new setup owned by the caller. Any owner
// value in the request is discarded.
func (s *SetupService) Create(ctx context.Context, ownerID string, req *model.CreateSetupRequest) (*model.Setup, error) {
	if err := validateFields(req.Title, req.Description, req.Category, req.Tags, true); err != nil {
		return nil, err
	}

	setup := &model.Setup{
		Owner:       ownerID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Tags:        req.Tags,
	}

	if err := s.store.Create(ctx, setup); err != nil {
		return nil, err
	}
	return setup, nil
}

// Update merges the given fields into the caller's setup. Blank values are
// expected to be stripped before this point; reserved fields are discarded
// here. The existence check runs before the ownership check so a missing
// record never surfaces as a permission failure.
func (s *SetupService) Update(ctx context.Context, callerID, id string, fields map[string]interface{}) error {
	setup, err := s.store.GetByID(ctx, normalizeID(id))
	if err != nil {
		return err
	}
	if setup == nil {
		return ErrSetupNotFound
	}
	if setup.Owner != callerID {
		return ErrNotSetupOwner
	}

	patch := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		patch[k] = v
	}
	for _, key := range reservedFields {
		delete(patch, key)
	}

	if err := validatePatch(patch); err != nil {
		return err
	}

	if len(patch) == 0 {
		return nil
	}

	return s.store.Update(ctx, setup.ID, patch)
}

// Delete removes the caller's setup. Same gate order as Update.
func (s *SetupService) Delete(ctx context.Context, callerID, id string) error {
	setup, err := s.store.GetByID(ctx, normalizeID(id))
	if err != nil {
		return err
	}
	if setup == nil {
		return ErrSetupNotFound
	}
	if setup.Owner != callerID {
		return ErrNotSetupOwner
	}

	return s.store.Delete(ctx, setup.ID)
}

// normalizeID accepts both bare IDs and full "setup:xxx" record IDs.
func normalizeID(id string) string {
	if strings.Contains(id, ":") {
		return id
	}
	return "setup:" + id
}

// validateFields checks setup field constraints. Title presence is only
// enforced on create.
func validateFields(title, description, category string, tags []string, requireTitle bool) error {
	title = strings.TrimSpace(title)
	if requireTitle && title == "" {
		return ErrTitleRequired
	}
	if len(title) > model.MaxTitleLength {
		return ErrTitleTooLong
	}
	if len(description) > model.MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	if len(category) > model.MaxCategoryLength {
		return ErrCategoryTooLong
	}
	if len(tags) > model.MaxTagsPerSetup {
		return ErrTooManyTags
	}
	return nil
}

// validatePatch applies the same constraints to whichever known fields an
// update payload carries. Unknown keys pass through untouched.
func validatePatch(patch map[string]interface{}) error {
	if v, ok := patch["title"].(string); ok && len(v) > model.MaxTitleLength {
		return ErrTitleTooLong
	}
	if v, ok := patch["description"].(string); ok && len(v) > model.MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	if v, ok := patch["category"].(string); ok && len(v) > model.MaxCategoryLength {
		return ErrCategoryTooLong
	}
	if v, ok := patch["tags"].([]interface{}); ok && len(v) > model.MaxTagsPerSetup {
		return ErrTooManyTags
	}
	return nil
}
