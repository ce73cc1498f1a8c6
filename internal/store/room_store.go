package store

import (
	"strings"

	"gamesquad/backend/internal/models"

	"gorm.io/gorm"
)

// Creator identifies the authenticated user a room is created on behalf of.
type Creator struct {
	ID       uint
	Username string
}

// RoomStore persists game rooms.
type RoomStore struct {
	db *gorm.DB
}

func NewRoomStore(db *gorm.DB) *RoomStore {
	return &RoomStore{db: db}
}

// Create persists a new open room with the creator as its first member.
func (s *RoomStore) Create(title, game string, playersNeeded int, description string, creator Creator) (*models.Room, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ValidationError("title is required")
	}
	if strings.TrimSpace(game) == "" {
		return nil, ValidationError("game is required")
	}
	if playersNeeded <= 0 {
		return nil, ValidationError("playersNeeded must be a positive integer")
	}
	if strings.TrimSpace(description) == "" {
		return nil, ValidationError("description is required")
	}

	room := models.Room{
		Title:         title,
		Game:          game,
		PlayersNeeded: playersNeeded,
		Description:   description,
		CreatorID:     creator.ID,
		CreatorName:   creator.Username,
		Status:        models.RoomStatusOpen,
		Members: []models.RoomMember{
			{UserID: creator.ID, Position: 0},
		},
	}
	if err := s.db.Create(&room).Error; err != nil {
		return nil, err
	}

	return &room, nil
}

// ListByGame returns all rooms whose game matches exactly, oldest first.
// Creation-time ascending is the documented order; members are loaded in
// position order so the creator is always first.
func (s *RoomStore) ListByGame(game string) ([]models.Room, error) {
	if strings.TrimSpace(game) == "" {
		return nil, ValidationError("game is required")
	}

	var rooms []models.Room
	err := s.db.
		Preload("Members", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("game = ?", game).
		Order("created_at ASC, id ASC").
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}

	return rooms, nil
}
