package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"vitrine/database"
	"vitrine/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContactStore is the record-store surface the contact handlers need.
// *database.DB implements it.
type ContactStore interface {
	InsertContactMessage(ctx context.Context, req models.CreateContactRequest) (*models.ContactMessage, error)
	ListContactMessages(ctx context.Context) ([]models.ContactMessage, error)
	DeleteContactMessage(ctx context.Context, id uuid.UUID) error
	DeleteContactMessages(ctx context.Context, ids []uuid.UUID) (int64, error)
}

func CreateContactMessage(store ContactStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateContactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "name, email and message are required"})
			return
		}

		if _, err := store.InsertContactMessage(c.Request.Context(), req); err != nil {
			log.Printf("CreateContactMessage: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to save message"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "message saved successfully"})
	}
}

func ListContactMessages(store ContactStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		messages, err := store.ListContactMessages(c.Request.Context())
		if err != nil {
			log.Printf("ListContactMessages: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to fetch messages"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "messages": messages})
	}
}

func DeleteContactMessage(store ContactStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid message ID"})
			return
		}

		if err := store.DeleteContactMessage(c.Request.Context(), id); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "message not found"})
				return
			}
			log.Printf("DeleteContactMessage: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to delete message"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "message deleted successfully"})
	}
}

func DeleteContactMessagesMany(store ContactStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.DeleteManyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "ids are required"})
			return
		}

		deleted, err := store.DeleteContactMessages(c.Request.Context(), req.IDs)
		if err != nil {
			log.Printf("DeleteContactMessagesMany: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to delete messages"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "deleted": deleted})
	}
}
