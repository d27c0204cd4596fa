package handlers

import (
	"net/http"

	"conduit-api/helper"
	"conduit-api/services"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	favoriteService services.FavoriteService
	Helper          *helper.HTTPHelper
}

func NewFavoriteHandler(favoriteService services.FavoriteService, h *helper.HTTPHelper) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService, Helper: h}
}

func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	userID, _ := c.Get("user_id")

	article, err := h.favoriteService.AddFavorite(c.Param("slug"), userID.(uint))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	userID, _ := c.Get("user_id")

	article, err := h.favoriteService.RemoveFavorite(c.Param("slug"), userID.(uint))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}
