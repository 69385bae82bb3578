package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/leocth/labrinth/internal/domain"
	"github.com/leocth/labrinth/internal/service"
)

// GameVersionHandler serves the game version catalogue.
type GameVersionHandler struct {
	gameVersionService service.GameVersionService
}

// NewGameVersionHandler creates a new GameVersionHandler.
func NewGameVersionHandler(gameVersionService service.GameVersionService) *GameVersionHandler {
	return &GameVersionHandler{gameVersionService: gameVersionService}
}

// List handles GET /api/v1/tag/game_version
// @Summary List game versions
// @Tags tags
// @Produce json
// @Param type query string false "Version type" Enums(release, snapshot, beta, alpha)
// @Param major query bool false "Only major (or only minor) releases"
// @Success 200 {object} Response{data=[]domain.GameVersion}
// @Failure 400 {object} ErrorResponseBody "Invalid filter"
// @Router /tag/game_version [get]
func (h *GameVersionHandler) List(c *gin.Context) {
	var filter service.GameVersionFilter

	if t := c.Query("type"); t != "" {
		vt := domain.GameVersionType(t)
		switch vt {
		case domain.GameVersionRelease, domain.GameVersionSnapshot, domain.GameVersionBeta, domain.GameVersionAlpha:
			filter.Type = &vt
		default:
			RespondError(c, http.StatusBadRequest, "INVALID_FILTER", "type must be one of release, snapshot, beta, alpha")
			return
		}
	}
	if m := c.Query("major"); m != "" {
		major, err := strconv.ParseBool(m)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_FILTER", "major must be a boolean")
			return
		}
		filter.Major = &major
	}

	versions, err := h.gameVersionService.List(c.Request.Context(), filter)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, versions)
}
