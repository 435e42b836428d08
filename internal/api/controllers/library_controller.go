package controllers

import (
	"github.com/gin-gonic/gin"
	"pathfinders/internal/services"
	"pathfinders/pkg/utils"
)

type LibraryController struct {
	libraryService services.LibraryServiceInterface
	accountService services.AccountServiceInterface
}

func NewLibraryController(
	libraryService services.LibraryServiceInterface,
	accountService services.AccountServiceInterface,
) *LibraryController {
	return &LibraryController{
		libraryService: libraryService,
		accountService: accountService,
	}
}

// premium resolves whether the caller may read premium bodies. Anonymous or
// failed lookups read as free tier.
func (l *LibraryController) premium(c *gin.Context) bool {
	id := c.GetString("user_id")
	if id == "" {
		return false
	}
	account, err := l.accountService.Me(c.Request.Context(), id)
	if err != nil {
		return false
	}
	return account.IsPremium
}

// List godoc
// @Summary List library articles
// @Description Free items carry full bodies; premium items are teasers unless the caller has premium.
// @Tags Library
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /library [get]
func (l *LibraryController) List(c *gin.Context) {
	items, err := l.libraryService.List(c.Request.Context(), l.premium(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "Library fetched")
}

// Get godoc
// @Summary Get one library article
// @Tags Library
// @Produce json
// @Param id path string true "Item id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /library/{id} [get]
func (l *LibraryController) Get(c *gin.Context) {
	item, err := l.libraryService.Get(c.Request.Context(), c.Param("id"), l.premium(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, item, "Library item fetched")
}

// Reindex godoc
// @Summary Rebuild library embeddings
// @Description Recomputes every item's embedding. Run after seeding or editing content. Admin only.
// @Tags Library
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/library/reindex [post]
func (l *LibraryController) Reindex(c *gin.Context) {
	if err := l.libraryService.Reindex(c.Request.Context()); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Library reindexed")
}

// Related godoc
// @Summary Related articles
// @Description Nearest items by embedding similarity.
// @Tags Library
// @Produce json
// @Param id path string true "Item id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /library/{id}/related [get]
func (l *LibraryController) Related(c *gin.Context) {
	related, err := l.libraryService.Related(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, related, "Related items fetched")
}
