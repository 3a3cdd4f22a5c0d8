package model

import (
	"time"

	"gorm.io/gorm"
)

type Writer struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"not null;index"`
	BirthDate time.Time `gorm:"type:date;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Writer) TableName() string {
	return "writers"
}

func (w *Writer) BeforeSave(tx *gorm.DB) (err error) {
	w.BirthDate = DateOf(w.BirthDate)
	return
}
