package domain

import (
	"time"

	"github.com/google/uuid"
)

// Document is source material for RAG chunks.
type Document struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID  uuid.UUID `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Title     string    `gorm:"type:text;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	UpdatedAt time.Time `gorm:"type:timestamp with time zone;autoUpdateTime" json:"updated_at"`
}

func (Document) TableName() string {
	return "documents"
}

type DocumentFilter struct {
	TenantID uuid.UUID
	Limit    int
	Offset   int
}
