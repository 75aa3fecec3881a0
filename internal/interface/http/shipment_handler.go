package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/logitrack-io/logitrack/internal/application"
	"github.com/logitrack-io/logitrack/internal/domain/entity"
	"github.com/logitrack-io/logitrack/internal/domain/repository"
	"github.com/logitrack-io/logitrack/internal/interface/middleware"
	"github.com/logitrack-io/logitrack/pkg/response"
	"github.com/logitrack-io/logitrack/pkg/validation"
)

type ShipmentHandler struct {
	Svc    *application.ShipmentService
	Logger *logrus.Logger
}

func NewShipmentHandler(svc *application.ShipmentService, logger *logrus.Logger) *ShipmentHandler {
	return &ShipmentHandler{Svc: svc, Logger: logger}
}

type createShipmentRequest struct {
	TrackingID  string   `json:"trackingId" binding:"required"`
	Origin      string   `json:"origin" binding:"required"`
	Destination string   `json:"destination" binding:"required"`
	Status      string   `json:"status" binding:"required,oneof=Processing 'In Transit' Delivered Cancelled"`
	Weight      *float64 `json:"weight" binding:"omitempty,gte=0"`
	Dimensions  *string  `json:"dimensions"`
	Description *string  `json:"description"`
}

type updateShipmentRequest struct {
	TrackingID  string                     `json:"trackingId"`
	Origin      string                     `json:"origin"`
	Destination string                     `json:"destination"`
	Status      string                     `json:"status"`
	Weight      application.OptionalFloat  `json:"weight"`
	Dimensions  application.OptionalString `json:"dimensions"`
	Description application.OptionalString `json:"description"`
}

func shipmentBody(s *entity.Shipment) gin.H {
	return gin.H{
		"id":          s.ID,
		"trackingId":  s.TrackingID,
		"origin":      s.Origin,
		"destination": s.Destination,
		"status":      s.Status,
		"weight":      s.Weight,
		"dimensions":  s.Dimensions,
		"description": s.Description,
		"userId":      s.OwnerID,
		"createdAt":   s.CreatedAt,
		"updatedAt":   s.UpdatedAt,
	}
}

func shipmentBodies(list []*entity.Shipment) []gin.H {
	out := make([]gin.H, 0, len(list))
	for _, s := range list {
		out = append(out, shipmentBody(s))
	}
	return out
}

func (h *ShipmentHandler) ownerID(c *gin.Context) string {
	return c.GetString(middleware.CtxUserIDKey)
}

// List GET /api/shipments?q=
func (h *ShipmentHandler) List(c *gin.Context) {
	list, err := h.Svc.List(c.Request.Context(), h.ownerID(c), c.Query("q"))
	if err != nil {
		internalError(c, h.Logger, err, "failed to fetch shipments")
		return
	}
	resp := response.Success(c, http.StatusOK, shipmentBodies(list), "shipments", map[string]any{"count": len(list)})
	c.JSON(resp.Status, resp)
}

// Get GET /api/shipments/:id
func (h *ShipmentHandler) Get(c *gin.Context) {
	s, err := h.Svc.Get(c.Request.Context(), h.ownerID(c), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "failed to fetch shipment")
		return
	}
	resp := response.Success(c, http.StatusOK, shipmentBody(s), "shipment", nil)
	c.JSON(resp.Status, resp)
}

// Create POST /api/shipments
func (h *ShipmentHandler) Create(c *gin.Context) {
	var req createShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}

	s, err := h.Svc.Create(c.Request.Context(), h.ownerID(c), application.CreateShipmentInput{
		TrackingID:  req.TrackingID,
		Origin:      req.Origin,
		Destination: req.Destination,
		Status:      entity.ShipmentStatus(req.Status),
		Weight:      req.Weight,
		Dimensions:  req.Dimensions,
		Description: req.Description,
	})
	if err != nil {
		h.writeError(c, err, "failed to create shipment")
		return
	}
	resp := response.Success(c, http.StatusCreated, shipmentBody(s), "shipment created", nil)
	c.JSON(resp.Status, resp)
}

// Update PUT /api/shipments/:id
func (h *ShipmentHandler) Update(c *gin.Context) {
	var req updateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}

	s, err := h.Svc.Update(c.Request.Context(), h.ownerID(c), c.Param("id"), application.UpdateShipmentInput{
		TrackingID:  req.TrackingID,
		Origin:      req.Origin,
		Destination: req.Destination,
		Status:      entity.ShipmentStatus(req.Status),
		Weight:      req.Weight,
		Dimensions:  req.Dimensions,
		Description: req.Description,
	})
	if err != nil {
		h.writeError(c, err, "failed to update shipment")
		return
	}
	resp := response.Success(c, http.StatusOK, shipmentBody(s), "shipment updated", nil)
	c.JSON(resp.Status, resp)
}

// Delete DELETE /api/shipments/:id
func (h *ShipmentHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), h.ownerID(c), c.Param("id")); err != nil {
		h.writeError(c, err, "failed to delete shipment")
		return
	}
	resp := response.Success[any](c, http.StatusOK, map[string]any{"deleted": true}, "shipment deleted successfully", nil)
	c.JSON(resp.Status, resp)
}

// Search GET /api/shipments/search?q= (Elasticsearch-backed)
func (h *ShipmentHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		resp := response.Error[any](c, http.StatusBadRequest, "missing query", map[string]string{"q": "is required"})
		c.JSON(resp.Status, resp)
		return
	}
	hits, err := h.Svc.SearchIndexed(c.Request.Context(), h.ownerID(c), q, 20)
	if err != nil {
		internalError(c, h.Logger, err, "search failed")
		return
	}
	resp := response.Success(c, http.StatusOK, hits, "search results", map[string]any{"count": len(hits)})
	c.JSON(resp.Status, resp)
}

// writeError translates domain errors into the API taxonomy: merged
// 404 for missing-or-foreign records, 400 with a distinct message for
// tracking-id conflicts, 400 with field details for validation, and a
// generic 500 for the rest.
func (h *ShipmentHandler) writeError(c *gin.Context, err error, fallback string) {
	var verr *application.ValidationError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		resp := response.Error[any](c, http.StatusNotFound, "shipment not found", nil)
		c.JSON(resp.Status, resp)
	case errors.Is(err, repository.ErrDuplicateTrackingID):
		resp := response.Error[any](c, http.StatusBadRequest, "tracking id already exists", nil)
		c.JSON(resp.Status, resp)
	case errors.As(err, &verr):
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{verr.Field: verr.Reason})
		c.JSON(resp.Status, resp)
	default:
		internalError(c, h.Logger, err, fallback)
	}
}
