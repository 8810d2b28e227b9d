package models

import (
	"time"

	"github.com/google/uuid"
)

// Order is written once at checkout. Its items are snapshots of the recipes at
// that instant, so a later edit to a recipe never changes a historical order.
// RewardClaimed is the only field mutated after creation.
type Order struct {
	ID            uuid.UUID   `gorm:"type:uuid;primarykey" json:"id"`
	UserID        uuid.UUID   `gorm:"type:uuid;not null;index" json:"user_id"`
	Items         []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	TotalPrice    float64     `gorm:"type:numeric(10,2);not null" json:"total_price"`
	TimeSlot      string      `gorm:"size:50" json:"time_slot"`
	Difficulty    string      `gorm:"size:20;not null" json:"difficulty"`
	RewardClaimed bool        `gorm:"not null;default:false" json:"reward_claimed"`
	ProofImageURL string      `gorm:"size:255" json:"proof_image_url,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
}

// OrderItem is a denormalized line snapshot captured at checkout.
type OrderItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index" json:"order_id"`
	RecipeID   uuid.UUID `gorm:"type:uuid;not null" json:"recipe_id"`
	Title      string    `gorm:"size:255;not null" json:"title"`
	Price      float64   `gorm:"type:numeric(10,2);not null" json:"price"`
	ImageURL   string    `gorm:"size:255" json:"image_url"`
	Difficulty string    `gorm:"size:20" json:"difficulty"`
}

// Redemption records a gift-card purchase made with coins.
type Redemption struct {
	ID        uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	CardType  string    `gorm:"size:50;not null" json:"card_type"`
	CardValue string    `gorm:"size:50;not null" json:"card_value"`
	CoinCost  int       `gorm:"not null" json:"coin_cost"`
	CreatedAt time.Time `json:"created_at"`
}
