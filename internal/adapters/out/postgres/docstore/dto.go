// Package docstore implements the DocumentStore port on PostgreSQL. Documents
// are stored as jsonb rows keyed by collection and identifier, and child
// collections live in a separate table keyed by the parent. Each store method
// is one independent statement; the adapter deliberately offers no
// transactions across calls.
package docstore

import (
	"encoding/json"

	"marketplace/internal/core/domain/model/kernel"
)

// DocumentDTO represents one top-level document row.
type DocumentDTO struct {
	Collection string `gorm:"primaryKey;type:varchar(64)"`
	ID         string `gorm:"primaryKey;type:varchar(128)"`
	Data       string `gorm:"type:jsonb"`
}

// TableName specifies the database table name for top-level documents.
func (DocumentDTO) TableName() string {
	return "documents"
}

// ChildDocumentDTO represents one document row in a child collection of a
// parent document.
type ChildDocumentDTO struct {
	Collection    string `gorm:"primaryKey;type:varchar(64)"`
	ParentID      string `gorm:"primaryKey;type:varchar(128)"`
	Subcollection string `gorm:"primaryKey;type:varchar(64)"`
	ID            string `gorm:"primaryKey;type:varchar(128)"`
	Data          string `gorm:"type:jsonb"`
}

// TableName specifies the database table name for child documents.
func (ChildDocumentDTO) TableName() string {
	return "document_children"
}

func marshalDocument(doc kernel.Document) (string, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func unmarshalDocument(data string) (kernel.Document, error) {
	var doc kernel.Document
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
