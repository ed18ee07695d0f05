package controllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/woodora/woodora-api/initializers"
	"github.com/woodora/woodora-api/models"
	"github.com/woodora/woodora-api/services"
	"gorm.io/gorm"
)

// uploadCategoryImage pushes the multipart "image" file to S3 and returns its
// public URL. A missing file is not an error; categories may have no image.
func uploadCategoryImage(ctx *gin.Context) (string, error) {
	file, err := ctx.FormFile("image")
	if err != nil {
		return "", nil
	}

	uploader, err := getAWSUploader()
	if err != nil {
		return "", err
	}

	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	uniqueFilename := fmt.Sprintf("categories/%s-%s", time.Now().Format("20060102150405"), file.Filename)

	result, err := uploader.Upload(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String("woodora"),
		Key:         aws.String(uniqueFilename),
		Body:        f,
		ACL:         "public-read",
		ContentType: aws.String(file.Header.Get("Content-Type")),
	})
	if err != nil {
		return "", err
	}

	return result.Location, nil
}

func CreateCategory(ctx *gin.Context) {
	name := ctx.PostForm("name")
	if name == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, "name is required")
		return
	}

	imageURL, err := uploadCategoryImage(ctx)
	if err != nil {
		log.Println("Category image upload error:", err)
		respondWithError(ctx, http.StatusInternalServerError, "Failed to upload category image", err)
		return
	}

	category := models.Category{
		Name:        name,
		Description: ctx.PostForm("description"),
		Image:       imageURL,
		Slug:        models.Slugify(name),
	}

	if err := initializers.DB.Create(&category).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create category", err)
		return
	}

	ctx.JSON(http.StatusCreated, category)
}

func GetCategories(ctx *gin.Context) {
	var categories []models.Category
	if err := initializers.DB.Order("name asc").Find(&categories).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch categories", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"categories": categories})
}

func GetCategory(ctx *gin.Context) {
	categoryId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid category ID", err)
		return
	}

	var category models.Category
	if err := initializers.DB.First(&category, categoryId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Category not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve category", err)
		}
		return
	}

	ctx.JSON(http.StatusOK, category)
}

func UpdateCategory(ctx *gin.Context) {
	categoryId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid category ID", err)
		return
	}

	var category models.Category
	if err := initializers.DB.First(&category, categoryId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Category not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve category", err)
		}
		return
	}

	if name := ctx.PostForm("name"); name != "" {
		category.Name = name
		category.Slug = models.Slugify(name)
	}
	if description := ctx.PostForm("description"); description != "" {
		category.Description = description
	}

	imageURL, err := uploadCategoryImage(ctx)
	if err != nil {
		log.Println("Category image upload error:", err)
		respondWithError(ctx, http.StatusInternalServerError, "Failed to upload category image", err)
		return
	}
	if imageURL != "" {
		category.Image = imageURL
	}

	if err := initializers.DB.Save(&category).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update category", err)
		return
	}

	ctx.JSON(http.StatusOK, category)
}

// DeleteCategory removes a category unless products still reference it. The
// check lives here, not in the database schema.
func DeleteCategory(ctx *gin.Context) {
	categoryId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid category ID", err)
		return
	}

	var category models.Category
	if err := initializers.DB.First(&category, categoryId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Category not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve category", err)
		}
		return
	}

	var productCount int64
	if err := initializers.DB.Model(&models.Product{}).
		Where("category_id = ?", categoryId).
		Count(&productCount).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to check category products", err)
		return
	}

	if err := services.EnsureCategoryDeletable(productCount); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	if err := initializers.DB.Delete(&category).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete category", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully."})
}
