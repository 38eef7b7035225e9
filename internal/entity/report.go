package entity

import (
	"time"
)

// WindowReport is the rendered summary of one finished monitoring window.
type WindowReport struct {
	Id         int64     `gorm:"primaryKey;autoIncrement"`
	StartedAt  time.Time `gorm:"index"`
	EndedAt    time.Time
	Candidates int
	Movements  int
	Summary    string
	CreatedAt  time.Time `gorm:"index"`
}
