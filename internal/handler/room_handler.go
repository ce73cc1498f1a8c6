package handler

import (
	"net/http"
	"strconv"
	"time"

	"gamesquad/backend/internal/auth"
	"gamesquad/backend/internal/models"
	"gamesquad/backend/internal/store"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// RoomInput defines the structure for room creation.
type RoomInput struct {
	Title         string `json:"title" binding:"required" example:"looking for a fifth"`
	Game          string `json:"game" binding:"required" example:"cs2"`
	PlayersNeeded int    `json:"playersNeeded" binding:"required" example:"5"`
	Description   string `json:"description" binding:"required" example:"ranked, mic required"`
}

// CreatorResponse is the identity snapshot of the user who created a room.
type CreatorResponse struct {
	ID       string `json:"id" example:"1"`
	Username string `json:"username" example:"testuser"`
}

// RoomResponse defines the wire shape of a room. Identifiers and timestamps
// are rendered as strings.
type RoomResponse struct {
	ID            string          `json:"_id" example:"1"`
	Title         string          `json:"title"`
	Game          string          `json:"game"`
	PlayersNeeded int             `json:"playersNeeded"`
	Description   string          `json:"description"`
	Creator       CreatorResponse `json:"creator"`
	Members       []string        `json:"members"`
	Status        string          `json:"status" example:"open"`
	CreatedAt     string          `json:"created_at" example:"2026-01-02T15:04:05Z"`
	UpdatedAt     string          `json:"updated_at" example:"2026-01-02T15:04:05Z"`
}

func newRoomResponse(room models.Room) RoomResponse {
	members := make([]string, 0, len(room.Members))
	for _, member := range room.Members {
		members = append(members, formatID(member.UserID))
	}

	return RoomResponse{
		ID:            formatID(room.ID),
		Title:         room.Title,
		Game:          room.Game,
		PlayersNeeded: room.PlayersNeeded,
		Description:   room.Description,
		Creator: CreatorResponse{
			ID:       formatID(room.CreatorID),
			Username: room.CreatorName,
		},
		Members:   members,
		Status:    string(room.Status),
		CreatedAt: room.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: room.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// endregion

// RoomHandler serves the room listing and creation endpoints.
type RoomHandler struct {
	rooms *store.RoomStore
}

func NewRoomHandler(rooms *store.RoomStore) *RoomHandler {
	return &RoomHandler{rooms: rooms}
}

// ListRooms godoc
// @Summary      List rooms for a game
// @Description  Returns all rooms for the given game, oldest first.
// @Tags         rooms
// @Produce      json
// @Param        game query string true "Game to filter by"
// @Success      200 {array} RoomResponse
// @Failure      400 {object} ErrorResponse "Missing game parameter"
// @Failure      500 {object} ErrorResponse
// @Router       /rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	rooms, err := h.rooms.ListByGame(c.Query("game"))
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	response := make([]RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		response = append(response, newRoomResponse(room))
	}

	c.JSON(http.StatusOK, response)
}

// CreateRoom godoc
// @Summary      Create a new room
// @Description  Creates an open room, making the authenticated user the creator and first member.
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body RoomInput true "Room Info"
// @Success      201 {object} RoomResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse "Missing, expired or invalid token"
// @Failure      500 {object} ErrorResponse
// @Router       /rooms [post]
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
		return
	}

	var input RoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	creatorID, err := strconv.ParseUint(claims.UserID, 10, 32)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	room, err := h.rooms.Create(input.Title, input.Game, input.PlayersNeeded, input.Description, store.Creator{
		ID:       uint(creatorID),
		Username: claims.Username,
	})
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newRoomResponse(*room))
}
