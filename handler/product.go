package handler

import (
	"bakery_store/constants"
	"bakery_store/database"
	"bakery_store/helper"
	"bakery_store/logger"
	"bakery_store/model"
	"bakery_store/utils"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"go.uber.org/zap"
)

// GetProducts lists the storefront catalog. Hidden and scheduled-for-later
// products are filtered out; ?category= narrows the list.
func GetProducts(c *fiber.Ctx) error {
	products, err := database.Products.All()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	category := c.Query("category")
	now := time.Now().UTC()
	visible := []model.Product{}
	for _, p := range products {
		if !p.IsPublic(now) {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		visible = append(visible, p)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, visible)
}

// GetFeaturedProducts returns the public products flagged for the homepage.
func GetFeaturedProducts(c *fiber.Ctx) error {
	products, err := database.Products.All()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	now := time.Now().UTC()
	featured := []model.Product{}
	for _, p := range products {
		if p.Featured && p.IsPublic(now) {
			featured = append(featured, p)
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, featured)
}

// GetProductDetail looks a product up by its slug. Admins can see hidden
// products; everyone else gets a 404 for them.
func GetProductDetail(c *fiber.Ctx) error {
	slug := c.Params("slug")

	products, err := database.Products.All()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	claim, logged := helper.GetInfoUserFromToken(c)
	isAdmin := logged && claim.IsAdmin
	now := time.Now().UTC()
	for _, p := range products {
		if p.Slug != slug {
			continue
		}
		if !p.IsPublic(now) && !isAdmin {
			break
		}
		return utils.SuccessResponse(c, fiber.StatusOK, p)
	}

	return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PRODUCT_NOT_FOUND, nil)
}

// GetProductsAdmin lists every product, hidden ones included.
func GetProductsAdmin(c *fiber.Ctx) error {
	products, err := database.Products.All()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, products)
}

func CreateProduct(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateProduct").(model.CreateProductInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, nil)
	}

	slug, err := helper.GenerateUniqueProductSlug(input.Title, "")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	product := model.Product{
		ID:        "prod-" + uuid.NewString()[:8],
		Slug:      slug,
		CreatedAt: time.Now().UTC(),
	}
	if err := copier.Copy(&product, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := database.Products.Append(product); err != nil {
		logger.Error("failed to save product", zap.String("product", product.ID), zap.Error(err))
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, product)
}

// EditProduct applies a partial update. A changed title regenerates the slug,
// keeping it unique against the rest of the catalog.
func EditProduct(c *fiber.Ctx) error {
	productId := c.Locals("inputId").(string)
	input, ok := c.Locals("inputEditProduct").(model.EditProductInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, nil)
	}

	product, err := database.Products.ByID(productId)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PRODUCT_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	titleChanged := input.Title != nil && *input.Title != product.Title
	if err := copier.CopyWithOption(&product, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if titleChanged {
		slug, err := helper.GenerateUniqueProductSlug(product.Title, product.ID)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		product.Slug = slug
	}

	if err := database.Products.Update(productId, product); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

// DeleteProducts removes the given products outright. Past orders keep their
// line-item snapshots, so nothing dangles.
func DeleteProducts(c *fiber.Ctx) error {
	ids, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, nil)
	}

	for _, id := range ids.IDs {
		if err := database.Products.Delete(id); err != nil {
			logger.Error("failed to delete product", zap.String("product", id), zap.Error(err))
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": len(ids.IDs)})
}
