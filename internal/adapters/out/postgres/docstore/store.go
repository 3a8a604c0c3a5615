package docstore

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormDocumentStore implements ports.DocumentStore using GORM.
type GormDocumentStore struct {
	db *gorm.DB
}

// NewGormDocumentStore creates a new GORM document store.
func NewGormDocumentStore(db *gorm.DB) (*GormDocumentStore, error) {
	if db == nil {
		return nil, errs.NewValueIsRequiredError("db")
	}
	return &GormDocumentStore{db: db}, nil
}

// Get retrieves a document by collection and identifier.
func (s *GormDocumentStore) Get(ctx context.Context, collection string, id string) (kernel.Document, error) {
	var dto DocumentDTO
	err := s.db.WithContext(ctx).
		First(&dto, "collection = ? AND id = ?", collection, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(collection, id)
		}
		return nil, err
	}

	return unmarshalDocument(dto.Data)
}

// Update merges the patch into an existing document. Fields present in the
// patch overwrite their counterparts, all other fields stay untouched.
func (s *GormDocumentStore) Update(ctx context.Context, collection string, id string, fields kernel.Document) error {
	payload, err := marshalDocument(fields)
	if err != nil {
		return err
	}

	result := s.db.WithContext(ctx).Exec(`
		UPDATE documents
		SET data = data || ?::jsonb
		WHERE collection = ? AND id = ?
	`, payload, collection, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(collection, id)
	}

	return nil
}

// AppendChild adds a document with a generated identifier to a child
// collection of an existing parent document.
func (s *GormDocumentStore) AppendChild(ctx context.Context, collection string, parentID string, subcollection string, doc kernel.Document) error {
	var parents int64
	err := s.db.WithContext(ctx).
		Model(&DocumentDTO{}).
		Where("collection = ? AND id = ?", collection, parentID).
		Count(&parents).Error
	if err != nil {
		return err
	}
	if parents == 0 {
		return errs.NewObjectNotFoundError(collection, parentID)
	}

	payload, err := marshalDocument(doc)
	if err != nil {
		return err
	}

	dto := ChildDocumentDTO{
		Collection:    collection,
		ParentID:      parentID,
		Subcollection: subcollection,
		ID:            uuid.NewString(),
		Data:          payload,
	}
	return s.db.WithContext(ctx).Create(&dto).Error
}

// Add inserts a new document with a generated identifier.
func (s *GormDocumentStore) Add(ctx context.Context, collection string, doc kernel.Document) error {
	payload, err := marshalDocument(doc)
	if err != nil {
		return err
	}

	dto := DocumentDTO{
		Collection: collection,
		ID:         uuid.NewString(),
		Data:       payload,
	}
	return s.db.WithContext(ctx).Create(&dto).Error
}
