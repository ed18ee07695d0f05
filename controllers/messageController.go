package controllers

import (
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/woodora/woodora-api/initializers"
	"github.com/woodora/woodora-api/models"
)

// CreateMessage accepts a contact-form submission. Public endpoint.
func CreateMessage(ctx *gin.Context) {
	var message models.Message
	if err := ctx.ShouldBindJSON(&message); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	message.TicketRef = uuid.NewString()
	message.IsRead = false

	if err := initializers.DB.Create(&message).Error; err != nil {
		log.Println("Message creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to save message")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message":   "Message received. We will get back to you.",
		"ticketRef": message.TicketRef,
	})
}

func GetMessages(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	offset := (page - 1) * limit

	query := initializers.DB.Order("created_at desc")
	countQuery := initializers.DB.Model(&models.Message{})

	if unread := ctx.Query("unread"); unread == "true" {
		query = query.Where("is_read = ?", false)
		countQuery = countQuery.Where("is_read = ?", false)
	}

	var messages []models.Message
	if err := query.Limit(limit).Offset(offset).Find(&messages).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch messages", err)
		return
	}

	var count int64
	countQuery.Count(&count)

	previousPage := page - 1
	nextPage := page + 1
	totalPages := math.Ceil(float64(count) / float64(limit))

	ctx.JSON(http.StatusOK, gin.H{
		"messages": messages,
		"metadata": gin.H{
			"total":        count,
			"currentPage":  page,
			"limit":        limit,
			"hasPrevPage":  previousPage > 0,
			"hasNextPage":  int(totalPages) > page,
			"previousPage": previousPage,
			"nextPage":     nextPage,
		},
	})
}

func MarkMessageRead(ctx *gin.Context) {
	messageId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid message id")
		return
	}

	result := initializers.DB.Model(&models.Message{}).
		Where("id = ?", messageId).
		Update("is_read", true)
	if result.Error != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update message")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Message not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Message marked as read."})
}

func DeleteMessage(ctx *gin.Context) {
	messageId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid message id")
		return
	}

	if result := initializers.DB.Delete(&models.Message{}, messageId); result.Error != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to delete message")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Message deleted successfully."})
}
