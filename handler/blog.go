package handler

import (
	"bakery_store/constants"
	"bakery_store/database"
	"bakery_store/helper"
	"bakery_store/logger"
	"bakery_store/model"
	"bakery_store/utils"
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"go.uber.org/zap"
)

// GetPosts lists published posts, newest first, paginated.
func GetPosts(c *fiber.Ctx) error {
	posts, err := database.Posts.All()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	now := time.Now().UTC()
	public := []model.BlogPost{}
	for _, p := range posts {
		if p.IsPublic(now) {
			public = append(public, p)
		}
	}
	sort.SliceStable(public, func(i, j int) bool {
		return public[i].SortKey().After(public[j].SortKey())
	})

	limit := queryInt(c, "limit", 10)
	page := queryInt(c, "page", 1)
	rows := utils.Paginate(public, &limit, &page)

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       rows,
		Limit:      &limit,
		Page:       &page,
		TotalCount: len(public),
	})
}

// GetPostDetail fetches one post by slug. Unpublished posts are only visible
// to admins.
func GetPostDetail(c *fiber.Ctx) error {
	slug := c.Params("slug")

	posts, err := database.Posts.All()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	claim, logged := helper.GetInfoUserFromToken(c)
	isAdmin := logged && claim.IsAdmin
	now := time.Now().UTC()
	for _, p := range posts {
		if p.Slug != slug {
			continue
		}
		if !p.IsPublic(now) && !isAdmin {
			break
		}
		return utils.SuccessResponse(c, fiber.StatusOK, p)
	}

	return utils.ErrorResponse(c, fiber.StatusNotFound, constants.POST_NOT_FOUND, nil)
}

// GetPostsAdmin lists every post, drafts included.
func GetPostsAdmin(c *fiber.Ctx) error {
	posts, err := database.Posts.All()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return utils.SuccessResponse(c, fiber.StatusOK, posts)
}

func CreatePost(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreatePost").(model.CreatePostInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, nil)
	}

	slug, err := helper.GenerateUniquePostSlug(input.Title, "")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	post := model.BlogPost{
		ID:        "post-" + uuid.NewString()[:8],
		Slug:      slug,
		CreatedAt: time.Now().UTC(),
	}
	if err := copier.Copy(&post, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := database.Posts.Append(post); err != nil {
		logger.Error("failed to save post", zap.String("post", post.ID), zap.Error(err))
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, post)
}

func EditPost(c *fiber.Ctx) error {
	postId := c.Locals("inputId").(string)
	input, ok := c.Locals("inputEditPost").(model.EditPostInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, nil)
	}

	post, err := database.Posts.ByID(postId)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.POST_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	titleChanged := input.Title != nil && *input.Title != post.Title
	if err := copier.CopyWithOption(&post, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if titleChanged {
		slug, err := helper.GenerateUniquePostSlug(post.Title, post.ID)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		post.Slug = slug
	}

	if err := database.Posts.Update(postId, post); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, post)
}

func DeletePosts(c *fiber.Ctx) error {
	ids, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, nil)
	}

	for _, id := range ids.IDs {
		if err := database.Posts.Delete(id); err != nil {
			logger.Error("failed to delete post", zap.String("post", id), zap.Error(err))
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": len(ids.IDs)})
}

func queryInt(c *fiber.Ctx, key string, fallback int) int {
	if raw := c.Query(key); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
