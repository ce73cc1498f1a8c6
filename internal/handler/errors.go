package handler

import (
	"errors"
	"log"
	"net/http"

	"gamesquad/backend/internal/store"

	"github.com/gin-gonic/gin"
)

// abortWithStoreError maps store errors to HTTP statuses. Anything outside
// the known taxonomy is a 500 with a generic body; the detail stays in the
// server log.
func abortWithStoreError(c *gin.Context, err error) {
	var verr store.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
	case errors.Is(err, store.ErrConflict):
		c.JSON(http.StatusBadRequest, gin.H{"error": store.ErrConflict.Error()})
	case errors.Is(err, store.ErrCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": store.ErrCredentials.Error()})
	default:
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
