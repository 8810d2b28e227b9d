package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// Difficulty labels accepted on recipes and order snapshots.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

type Recipe struct {
	ID           uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	DeletedAt    gorm.DeletedAt   `gorm:"index" json:"-"`
	Title        string           `gorm:"size:255;not null" json:"title"`
	Description  string           `gorm:"type:text" json:"description"`
	CuisineType  string           `gorm:"size:50" json:"cuisine_type"`
	ImageURL     string           `gorm:"size:255" json:"image_url"`
	Ingredients  JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Instructions JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"instructions"`
	Difficulty   string           `gorm:"size:20;not null;default:'easy'" json:"difficulty"`
	Price        float64          `gorm:"type:numeric(10,2);not null;default:0;check:price >= 0" json:"price"`
	Calories     *float64         `gorm:"type:float" json:"calories,omitempty"`
	Protein      *float64         `gorm:"type:float" json:"protein,omitempty"`
	AuthorID     uuid.UUID        `gorm:"type:uuid;not null;index" json:"author_id"`
}
