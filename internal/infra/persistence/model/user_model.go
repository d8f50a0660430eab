package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. The password hash lives here, in the
// same row as the profile, but the repository only surfaces it through the
// credential lookup.
type UserModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email        string     `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	FirstName    string     `gorm:"type:varchar(100);not null"`
	LastName     string     `gorm:"type:varchar(100);not null"`
	DateOfBirth  *time.Time `gorm:"type:date"`
	Street       string     `gorm:"type:varchar(255)"`
	City         string     `gorm:"type:varchar(100)"`
	State        string     `gorm:"type:varchar(100)"`
	ZipCode      string     `gorm:"type:varchar(20)"`
	CreditScore  int        `gorm:"not null;default:300"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	CreditHistory []CreditHistoryModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// CreditHistoryModel mirrors the 'credit_history' table. Rows are append-only:
// there is no update or delete path anywhere in the codebase, and the
// monotonically increasing primary key preserves insertion order.
type CreditHistoryModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	UserID     uuid.UUID `gorm:"type:uuid;index;not null"`
	RecordedAt time.Time `gorm:"not null"`
	Score      int       `gorm:"not null"`
	Note       string    `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (CreditHistoryModel) TableName() string {
	return "credit_history"
}
