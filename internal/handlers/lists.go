package handlers

import (
  "errors"
  "fmt"
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/NovusX-Dev/RepairBeam/internal/services"
)

type ListsHandler struct {
  listgenService services.ListGenerationService
}

func NewListsHandler(listgenService services.ListGenerationService) *ListsHandler {
  return &ListsHandler{listgenService: listgenService}
}

func (lh *ListsHandler) GetBrandList(c *gin.Context) {
  category := c.Param("category")
  list, err := lh.listgenService.GetBrandList(c.Request.Context(), category)
  if err != nil {
    RespondError(c, http.StatusInternalServerError, "store_error", err)
    return
  }
  if list == nil {
    RespondError(c, http.StatusNotFound, "not_found", fmt.Errorf("no brand list for category %q", category))
    return
  }
  RespondOK(c, list)
}

func (lh *ListsHandler) GetModelList(c *gin.Context) {
  category := c.Param("category")
  brand := c.Param("brand")
  list, err := lh.listgenService.GetModelList(c.Request.Context(), category, brand)
  if err != nil {
    RespondError(c, http.StatusInternalServerError, "store_error", err)
    return
  }
  if list == nil {
    RespondError(c, http.StatusNotFound, "not_found", fmt.Errorf("no model list for %q/%q", category, brand))
    return
  }
  RespondOK(c, list)
}

func (lh *ListsHandler) Initialize(c *gin.Context) {
  if err := lh.listgenService.InitializeDefaultLists(c.Request.Context()); err != nil {
    RespondError(c, http.StatusInternalServerError, "store_error", err)
    return
  }
  RespondOK(c, gin.H{"message": "default lists initialized"})
}

func (lh *ListsHandler) UpdateBrandList(c *gin.Context) {
  category := c.Param("category")
  list, err := lh.listgenService.RefreshBrandList(c.Request.Context(), category)
  if err != nil {
    if errors.Is(err, services.ErrUnknownCategory) {
      RespondError(c, http.StatusBadRequest, "unknown_category", err)
      return
    }
    RespondError(c, http.StatusInternalServerError, "store_error", err)
    return
  }
  RespondOK(c, gin.H{
    "message": fmt.Sprintf("brand list for %s refreshed", list.Category),
    "brands":  len(list.GetItems()),
  })
}

func (lh *ListsHandler) GenerateModels(c *gin.Context) {
  category := c.Param("category")
  if err := lh.listgenService.RefreshAllModelLists(c.Request.Context(), category); err != nil {
    if errors.Is(err, services.ErrUnknownCategory) {
      RespondError(c, http.StatusBadRequest, "unknown_category", err)
      return
    }
    RespondError(c, http.StatusInternalServerError, "store_error", err)
    return
  }
  RespondOK(c, gin.H{"message": fmt.Sprintf("model lists for %s regenerated", category)})
}

func (lh *ListsHandler) ValidateBrand(c *gin.Context) {
  category := c.Param("category")
  var req struct {
    BrandName string `json:"brandName"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "bad_request", fmt.Errorf("invalid request body"))
    return
  }
  result, err := lh.listgenService.ValidateAndAddBrand(c.Request.Context(), category, req.BrandName)
  if err != nil {
    if errors.Is(err, services.ErrUnknownCategory) {
      RespondError(c, http.StatusBadRequest, "unknown_category", err)
      return
    }
    RespondError(c, http.StatusInternalServerError, "store_error", err)
    return
  }
  RespondOK(c, result)
}
