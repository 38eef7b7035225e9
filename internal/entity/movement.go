package entity

import (
	"time"
)

// Movement is one confirmed spread movement, appended when the tracker credits
// a candidate with one or more steps.
type Movement struct {
	Id        int64  `gorm:"primaryKey;autoIncrement"`
	Symbol    string `gorm:"index"`
	Spread    float64
	Reference float64
	Steps     int
	CreatedAt time.Time `gorm:"index"`
}
