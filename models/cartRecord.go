package models

import "gorm.io/gorm"

// CartRecord holds one serialized cart under its storage key.
type CartRecord struct {
	gorm.Model
	RecordKey string `gorm:"size:191;uniqueIndex;not null"`
	Payload   string `gorm:"type:text;not null"`
}
