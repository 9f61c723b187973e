package sql

import (
	"time"

	"github.com/wellness/portal/internal/core/domain"
)

type accountModel struct {
	ID             uint      `gorm:"primaryKey"`
	Email          string    `gorm:"size:255;not null;uniqueIndex"`
	PasswordDigest string    `gorm:"size:255;not null"`
	Role           string    `gorm:"size:16;not null;default:user"`
	CreatedAt      time.Time `gorm:"not null"`
}

func (accountModel) TableName() string { return "accounts" }

func (m *accountModel) toDomain() *domain.Account {
	return &domain.Account{
		Email:          m.Email,
		PasswordDigest: m.PasswordDigest,
		Role:           domain.Role(m.Role),
		CreatedAt:      m.CreatedAt.UTC(),
	}
}

type articleModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Title       string    `gorm:"size:255;not null"`
	Description string    `gorm:"type:text;not null"`
	ImageURL    string    `gorm:"size:1024;not null"`
	Link        string    `gorm:"size:1024;not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

func (articleModel) TableName() string { return "articles" }

func (m *articleModel) toDomain() domain.Article {
	return domain.Article{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		ImageURL:    m.ImageURL,
		Link:        m.Link,
		CreatedAt:   m.CreatedAt.UTC(),
	}
}

type auditModel struct {
	ID     uint      `gorm:"primaryKey"`
	Kind   string    `gorm:"size:32;not null;index"`
	Email  string    `gorm:"size:255;index"`
	Detail string    `gorm:"type:text"`
	At     time.Time `gorm:"not null"`
}

func (auditModel) TableName() string { return "audit_events" }
