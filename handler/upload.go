package handler

import (
	"bakery_store/config"
	"bakery_store/constants"
	"bakery_store/helper"
	"bakery_store/logger"
	"bakery_store/utils"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var uploadCategories = map[string]bool{
	"products": true,
	"blog":     true,
	"orders":   true,
}

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// UploadImage stores an image for a product, post, or custom-order
// reference. When Cloudinary is configured the file goes there; otherwise it
// lands under static/uploads/ and is served by the static route.
func UploadImage(c *fiber.Ctx) error {
	category := c.Params("category")
	if !uploadCategories[category] {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.UPLOAD_INVALID_CATEGORY, nil)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.UPLOAD_INVALID_FILE, nil)
	}

	name := uuid.NewString()[:8] + ext

	if cld := helper.InitCloudinary(); cld != nil {
		reader, err := file.Open()
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		defer reader.Close()

		result, err := cld.Upload.Upload(context.Background(), reader, uploader.UploadParams{
			Folder:   "bakery/" + category,
			PublicID: strings.TrimSuffix(name, ext),
		})
		if err != nil {
			logger.Error("cloudinary upload failed", zap.String("category", category), zap.Error(err))
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
			"url":       result.SecureURL,
			"public_id": result.PublicID,
		})
	}

	dest := filepath.Join("static", "uploads", category, name)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := c.SaveFile(file, dest); err != nil {
		logger.Error("local upload failed", zap.String("path", dest), zap.Error(err))
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"url": "/static/uploads/" + category + "/" + name,
	})
}

// GenerateSignature signs Cloudinary upload parameters so the admin frontend
// can upload directly from the browser.
func GenerateSignature(c *fiber.Ctx) error {
	type sigParams struct {
		Folder       string `json:"folder"`
		PublicID     string `json:"public_id"`
		ResourceType string `json:"resource_type"` // parsed but never signed
	}

	var params sigParams
	if err := c.BodyParser(&params); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
	}

	apiSecret := config.Config("CLOUDINARY_API_SECRET")
	if apiSecret == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.UPLOAD_NOT_CONFIGURED, nil)
	}

	timestamp := time.Now().Unix()

	paramMap := map[string]string{
		"timestamp": fmt.Sprintf("%d", timestamp),
	}
	if params.Folder != "" {
		paramMap["folder"] = params.Folder
	}
	if params.PublicID != "" {
		paramMap["public_id"] = params.PublicID
	}

	keys := make([]string, 0, len(paramMap))
	for k := range paramMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var stringToSign strings.Builder
	for i, k := range keys {
		if i > 0 {
			stringToSign.WriteString("&")
		}
		stringToSign.WriteString(k)
		stringToSign.WriteString("=")
		stringToSign.WriteString(paramMap[k])
	}
	stringToSign.WriteString(apiSecret)

	h := sha1.New()
	h.Write([]byte(stringToSign.String()))
	signature := hex.EncodeToString(h.Sum(nil))

	return c.JSON(fiber.Map{
		"signature": signature,
		"timestamp": timestamp,
		"apiKey":    config.Config("CLOUDINARY_API_KEY"),
		"cloudName": config.Config("CLOUDINARY_CLOUD_NAME"),
	})
}
