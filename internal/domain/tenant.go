package domain

import (
	"time"

	"github.com/google/uuid"
)

// Tenant is a shop account. PublicToken is the tenant's only credential and is
// never serialized back to clients after provisioning.
type Tenant struct {
	ID          uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	PublicToken string    `gorm:"type:text;not null;uniqueIndex" json:"-"`
	CreatedAt   time.Time `gorm:"type:timestamp with time zone;autoCreateTime" json:"created_at"`
}

func (Tenant) TableName() string {
	return "tenants"
}
