package models

import "gorm.io/gorm"

type RoomStatus string

const (
	RoomStatusOpen RoomStatus = "open"
)

// Room represents an open invitation to play a specific game.
// CreatorID and CreatorName are a snapshot of the authenticated user at
// creation time; the creator is always the member at position 0.
type Room struct {
	gorm.Model
	Title         string     `gorm:"size:255;not null"`
	Game          string     `gorm:"size:255;not null;index"`
	PlayersNeeded int        `gorm:"not null"`
	Description   string     `gorm:"not null"`
	CreatorID     uint       `gorm:"not null"`
	CreatorName   string     `gorm:"size:255;not null"`
	Status        RoomStatus `gorm:"size:50;not null;default:'open'"`

	Creator User         `gorm:"foreignKey:CreatorID"`
	Members []RoomMember `gorm:"foreignKey:RoomID"`
}

// RoomMember is one entry of a room's ordered member list.
type RoomMember struct {
	RoomID   uint `gorm:"primaryKey"`
	UserID   uint `gorm:"primaryKey"`
	Position int  `gorm:"not null"`
}
