package model

import (
	"time"

	"gorm.io/gorm"
)

type Book struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Title       string    `gorm:"not null;index"`
	ReleaseDate time.Time `gorm:"type:date;index"`
	WriterID    *int64    `gorm:"index"`
	Writer      *Writer   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Book) TableName() string {
	return "books"
}

func (b *Book) BeforeSave(tx *gorm.DB) (err error) {
	b.ReleaseDate = DateOf(b.ReleaseDate)
	return
}
