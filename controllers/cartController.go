package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/woodora/woodora-api/initializers"
	"github.com/woodora/woodora-api/middlewares"
	"github.com/woodora/woodora-api/models"
	"gorm.io/gorm"
)

// findOrCreateCart returns the user's cart, creating one on first use.
func findOrCreateCart(userId int) (models.Cart, error) {
	var cart models.Cart
	err := initializers.DB.Where("user_id = ?", userId).Preload("Items").First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{UserID: userId}
		if err := initializers.DB.Create(&cart).Error; err != nil {
			return cart, err
		}
		return cart, nil
	}
	return cart, err
}

func AddCartItem(ctx *gin.Context) {
	userId, ok := middlewares.UserIDFromContext(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var cartItem models.CartItem
	if err := ctx.ShouldBindJSON(&cartItem); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid input")
		return
	}
	if cartItem.ProductQuantity <= 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "Quantity must be positive")
		return
	}

	cart, err := findOrCreateCart(userId)
	if err != nil {
		log.Println("Cart error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to load cart")
		return
	}
	cartItem.CartID = int(cart.ID)

	var existingCartItem models.CartItem
	err = initializers.DB.
		Where("cart_id = ? AND product_id = ?", cart.ID, cartItem.ProductId).
		First(&existingCartItem).Error

	if err == nil {
		existingCartItem.ProductQuantity += cartItem.ProductQuantity
		if err := initializers.DB.Save(&existingCartItem).Error; err != nil {
			log.Println("Update error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to update cart item quantity.")
			return
		}
		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"message": "Cart item quantity updated",
			"id":      existingCartItem.ID,
		})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("Database error: ", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch cart item")
		return
	}

	if err := initializers.DB.Create(&cartItem).Error; err != nil {
		log.Println("Create error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to create cart item")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": cartItem.ProductName + " added to cart",
		"id":      cartItem.ID,
	})
}

func GetCart(ctx *gin.Context) {
	userId, ok := middlewares.UserIDFromContext(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	cart, err := findOrCreateCart(userId)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"cart": cart})
}

// updateCartItemBody binds the quantity through a pointer: zero is a valid
// value (it removes the item), only an absent field is rejected.
type updateCartItemBody struct {
	ProductQuantity *int `json:"productQuantity" binding:"required"`
}

func UpdateCartItem(ctx *gin.Context) {
	userId, ok := middlewares.UserIDFromContext(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	itemId, err := strconv.Atoi(ctx.Param("itemId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid cart item id")
		return
	}

	var body updateCartItemBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid input")
		return
	}

	cart, err := findOrCreateCart(userId)
	if err != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to load cart")
		return
	}

	var item models.CartItem
	if err := initializers.DB.
		Where("id = ? AND cart_id = ?", itemId, cart.ID).
		First(&item).Error; err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "Cart item not found")
		return
	}

	if *body.ProductQuantity <= 0 {
		if err := initializers.DB.Delete(&item).Error; err != nil {
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to remove cart item")
			return
		}
		sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Cart item removed"})
		return
	}

	item.ProductQuantity = *body.ProductQuantity
	if err := initializers.DB.Save(&item).Error; err != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update cart item")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Cart item updated", "item": item})
}

func DeleteCartItem(ctx *gin.Context) {
	userId, ok := middlewares.UserIDFromContext(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	itemId, err := strconv.Atoi(ctx.Param("itemId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid cart item id")
		return
	}

	cart, err := findOrCreateCart(userId)
	if err != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to load cart")
		return
	}

	if result := initializers.DB.
		Where("id = ? AND cart_id = ?", itemId, cart.ID).
		Delete(&models.CartItem{}); result.Error != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to delete cart item")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Cart item removed"})
}

// ClearCart empties the user's cart. Checkout success calls into the same path.
func ClearCart(ctx *gin.Context) {
	userId, ok := middlewares.UserIDFromContext(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	if err := clearCartForUser(userId); err != nil {
		log.Println("Clear cart error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to clear cart")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Cart cleared"})
}

func clearCartForUser(userId int) error {
	var cart models.Cart
	err := initializers.DB.Where("user_id = ?", userId).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return initializers.DB.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error
}
