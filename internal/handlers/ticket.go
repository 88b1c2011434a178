package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"

  "github.com/NovusX-Dev/RepairBeam/internal/services"
  "github.com/NovusX-Dev/RepairBeam/internal/types"
)

type TicketHandler struct {
  ticketService services.TicketService
}

func NewTicketHandler(ticketService services.TicketService) *TicketHandler {
  return &TicketHandler{ticketService: ticketService}
}

func (th *TicketHandler) Create(c *gin.Context) {
  var req struct {
    ClientID       uuid.UUID `json:"client_id"`
    DeviceCategory string    `json:"device_category"`
    DeviceBrand    string    `json:"device_brand"`
    DeviceModel    string    `json:"device_model"`
    Issue          string    `json:"issue"`
    Status         string    `json:"status"`
    QuoteCents     int64     `json:"quote_cents"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }
  ticket := types.RepairTicket{
    ClientID:       req.ClientID,
    DeviceCategory: req.DeviceCategory,
    DeviceBrand:    req.DeviceBrand,
    DeviceModel:    req.DeviceModel,
    Issue:          req.Issue,
    Status:         req.Status,
    QuoteCents:     req.QuoteCents,
  }
  created, err := th.ticketService.CreateTicket(c.Request.Context(), &ticket)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "bad_request", err)
    return
  }
  RespondOK(c, created)
}

func (th *TicketHandler) Get(c *gin.Context) {
  ticketID, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "bad_request", err)
    return
  }
  ticket, gErr := th.ticketService.GetTicket(c.Request.Context(), ticketID)
  if gErr != nil {
    RespondError(c, http.StatusNotFound, "not_found", gErr)
    return
  }
  RespondOK(c, ticket)
}

func (th *TicketHandler) List(c *gin.Context) {
  tickets, err := th.ticketService.ListTickets(c.Request.Context(), c.Query("status"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "bad_request", err)
    return
  }
  RespondOK(c, tickets)
}

func (th *TicketHandler) Update(c *gin.Context) {
  ticketID, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "bad_request", err)
    return
  }
  var fields map[string]any
  if bErr := c.ShouldBindJSON(&fields); bErr != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }
  ticket, uErr := th.ticketService.UpdateTicket(c.Request.Context(), ticketID, fields)
  if uErr != nil {
    RespondError(c, http.StatusBadRequest, "bad_request", uErr)
    return
  }
  RespondOK(c, ticket)
}

func (th *TicketHandler) Move(c *gin.Context) {
  ticketID, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "bad_request", err)
    return
  }
  var req struct {
    Status   string `json:"status"`
    Position int    `json:"position"`
  }
  if bErr := c.ShouldBindJSON(&req); bErr != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }
  ticket, mErr := th.ticketService.MoveTicket(c.Request.Context(), ticketID, req.Status, req.Position)
  if mErr != nil {
    RespondError(c, http.StatusBadRequest, "bad_request", mErr)
    return
  }
  RespondOK(c, ticket)
}

func (th *TicketHandler) Delete(c *gin.Context) {
  ticketID, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "bad_request", err)
    return
  }
  if dErr := th.ticketService.DeleteTicket(c.Request.Context(), ticketID); dErr != nil {
    RespondError(c, http.StatusNotFound, "not_found", dErr)
    return
  }
  RespondOK(c, gin.H{"success": "true"})
}
