package helper

import (
	"bakery_store/config"
	"bakery_store/logger"

	"github.com/cloudinary/cloudinary-go/v2"
	"go.uber.org/zap"
)

// InitCloudinary builds a client from the CLOUDINARY_* environment
// variables. Returns nil when they are not set; uploads then stay on local
// disk.
func InitCloudinary() *cloudinary.Cloudinary {
	cloudName := config.Config("CLOUDINARY_CLOUD_NAME")
	apiKey := config.Config("CLOUDINARY_API_KEY")
	apiSecret := config.Config("CLOUDINARY_API_SECRET")
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil
	}

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		logger.Warn("cloudinary init failed, falling back to local uploads", zap.Error(err))
		return nil
	}
	return cld
}
