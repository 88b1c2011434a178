package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/NovusX-Dev/RepairBeam/internal/services"
)

type UserHandler struct {
  userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
  return &UserHandler{userService: userService}
}

func (uh *UserHandler) GetMe(c *gin.Context) {
  user, err := uh.userService.GetMe(c.Request.Context())
  if err != nil {
    RespondError(c, http.StatusNotFound, "not_found", err)
    return
  }
  RespondOK(c, user)
}

func (uh *UserHandler) UpdateShopName(c *gin.Context) {
  var req struct {
    ShopName string `json:"shop_name"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }
  user, err := uh.userService.UpdateShopName(c.Request.Context(), req.ShopName)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "bad_request", err)
    return
  }
  RespondOK(c, user)
}
