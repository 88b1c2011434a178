package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/NovusX-Dev/RepairBeam/internal/services"
  "github.com/NovusX-Dev/RepairBeam/internal/types"
)

type InventoryHandler struct {
  inventoryService services.InventoryService
}

func NewInventoryHandler(inventoryService services.InventoryService) *InventoryHandler {
  return &InventoryHandler{inventoryService: inventoryService}
}

func (ih *InventoryHandler) Create(c *gin.Context) {
  var req struct {
    SKU            string `json:"sku"`
    Name           string `json:"name"`
    Quantity       int    `json:"quantity"`
    UnitPriceCents int64  `json:"unit_price_cents"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }
  item := types.InventoryItem{
    SKU:            req.SKU,
    Name:           req.Name,
    Quantity:       req.Quantity,
    UnitPriceCents: req.UnitPriceCents,
  }
  created, err := ih.inventoryService.CreateItem(c.Request.Context(), &item)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "bad_request", err)
    return
  }
  RespondOK(c, created)
}

func (ih *InventoryHandler) Get(c *gin.Context) {
  itemID, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "bad_request", err)
    return
  }
  item, gErr := ih.inventoryService.GetItem(c.Request.Context(), itemID)
  if gErr != nil {
    RespondError(c, http.StatusNotFound, "not_found", gErr)
    return
  }
  RespondOK(c, item)
}

func (ih *InventoryHandler) List(c *gin.Context) {
  items, err := ih.inventoryService.ListItems(c.Request.Context())
  if err != nil {
    RespondError(c, http.StatusInternalServerError, "store_error", err)
    return
  }
  RespondOK(c, items)
}

func (ih *InventoryHandler) Update(c *gin.Context) {
  itemID, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "bad_request", err)
    return
  }
  var fields map[string]any
  if bErr := c.ShouldBindJSON(&fields); bErr != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }
  item, uErr := ih.inventoryService.UpdateItem(c.Request.Context(), itemID, fields)
  if uErr != nil {
    RespondError(c, http.StatusBadRequest, "bad_request", uErr)
    return
  }
  RespondOK(c, item)
}

func (ih *InventoryHandler) AdjustQuantity(c *gin.Context) {
  itemID, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "bad_request", err)
    return
  }
  var req struct {
    Delta int `json:"delta"`
  }
  if bErr := c.ShouldBindJSON(&req); bErr != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }
  item, aErr := ih.inventoryService.AdjustQuantity(c.Request.Context(), itemID, req.Delta)
  if aErr != nil {
    RespondError(c, http.StatusBadRequest, "bad_request", aErr)
    return
  }
  RespondOK(c, item)
}

func (ih *InventoryHandler) Delete(c *gin.Context) {
  itemID, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "bad_request", err)
    return
  }
  if dErr := ih.inventoryService.DeleteItem(c.Request.Context(), itemID); dErr != nil {
    RespondError(c, http.StatusNotFound, "not_found", dErr)
    return
  }
  RespondOK(c, gin.H{"success": "true"})
}
