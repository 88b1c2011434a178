package handlers

import (
  "fmt"
  "net/http"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"

  "github.com/NovusX-Dev/RepairBeam/internal/services"
  "github.com/NovusX-Dev/RepairBeam/internal/types"
)

type ClientHandler struct {
  clientService services.ClientService
}

func NewClientHandler(clientService services.ClientService) *ClientHandler {
  return &ClientHandler{clientService: clientService}
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, error) {
  id, err := uuid.Parse(c.Param(name))
  if err != nil {
    return uuid.Nil, fmt.Errorf("invalid %s", name)
  }
  return id, nil
}

func (ch *ClientHandler) Create(c *gin.Context) {
  var req struct {
    FirstName string `json:"first_name"`
    LastName  string `json:"last_name"`
    Email     string `json:"email"`
    Phone     string `json:"phone"`
    Notes     string `json:"notes"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }
  client := types.Client{
    FirstName: req.FirstName,
    LastName:  req.LastName,
    Email:     req.Email,
    Phone:     req.Phone,
    Notes:     req.Notes,
  }
  created, err := ch.clientService.CreateClient(c.Request.Context(), &client)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "bad_request", err)
    return
  }
  RespondOK(c, created)
}

func (ch *ClientHandler) Get(c *gin.Context) {
  clientID, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "bad_request", err)
    return
  }
  client, gErr := ch.clientService.GetClient(c.Request.Context(), clientID)
  if gErr != nil {
    RespondError(c, http.StatusNotFound, "not_found", gErr)
    return
  }
  RespondOK(c, client)
}

func (ch *ClientHandler) List(c *gin.Context) {
  clients, err := ch.clientService.ListClients(c.Request.Context())
  if err != nil {
    RespondError(c, http.StatusInternalServerError, "store_error", err)
    return
  }
  RespondOK(c, clients)
}

func (ch *ClientHandler) Update(c *gin.Context) {
  clientID, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "bad_request", err)
    return
  }
  var fields map[string]any
  if bErr := c.ShouldBindJSON(&fields); bErr != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }
  client, uErr := ch.clientService.UpdateClient(c.Request.Context(), clientID, fields)
  if uErr != nil {
    RespondError(c, http.StatusBadRequest, "bad_request", uErr)
    return
  }
  RespondOK(c, client)
}

func (ch *ClientHandler) Delete(c *gin.Context) {
  clientID, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, http.StatusBadRequest, "bad_request", err)
    return
  }
  if dErr := ch.clientService.DeleteClient(c.Request.Context(), clientID); dErr != nil {
    RespondError(c, http.StatusNotFound, "not_found", dErr)
    return
  }
  RespondOK(c, gin.H{"success": "true"})
}
