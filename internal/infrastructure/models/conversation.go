package models

import (
	"time"

	"github.com/google/uuid"
)

type Conversation struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:conversations_participants_key"`
	BuyerID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:conversations_participants_key"`
	SellerID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:conversations_participants_key"`
	LastMessageAt time.Time
	CreatedAt     time.Time
}

func (Conversation) TableName() string { return "conversations" }

type Message struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	ConversationID uuid.UUID `gorm:"type:uuid;not null;index"`
	SenderID       uuid.UUID `gorm:"type:uuid;not null"`
	Content        string    `gorm:"type:text;not null"`
	IsRead         bool      `gorm:"not null;default:false"`
	CreatedAt      time.Time
}

func (Message) TableName() string { return "messages" }
