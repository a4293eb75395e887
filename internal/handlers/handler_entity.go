package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tripofis/travel_ledger_app/internal/apperrors"
	"github.com/tripofis/travel_ledger_app/internal/core/domain"
	portssvc "github.com/tripofis/travel_ledger_app/internal/core/ports/services"
	"github.com/tripofis/travel_ledger_app/internal/dto"
	"github.com/tripofis/travel_ledger_app/internal/middleware"
)

// entityHandler handles HTTP requests related to counterparty entities.
type entityHandler struct {
	entityService portssvc.EntitySvcFacade
}

func newEntityHandler(es portssvc.EntitySvcFacade) *entityHandler {
	return &entityHandler{
		entityService: es,
	}
}

// registerEntityRoutes registers routes related to entities.
func registerEntityRoutes(rg *gin.RouterGroup, entityService portssvc.EntitySvcFacade) {
	h := newEntityHandler(entityService)

	entities := rg.Group("/entities")
	{
		entities.POST("", h.createEntity)
		entities.GET("", h.listEntities)
		entities.GET("/:id", h.getEntityByID)
		entities.PUT("/:id", h.updateEntity)
		entities.POST("/:id/toggle", h.toggleEntityActive)
		entities.DELETE("/:id", h.deleteEntity)
	}
}

// createEntity godoc
// @Summary Create a new entity
// @Description Adds a customer, hotel, vehicle owner or sub-agency to the directory
// @Tags entities
// @Accept  json
// @Produce  json
// @Param   entity body dto.CreateEntityRequest true "Entity details"
// @Success 201 {object} dto.EntityResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 409 {object} ErrorResponse "Entity code already exists"
// @Failure 500 {object} ErrorResponse "Failed to create entity"
// @Security BearerAuth
// @Router /entities [post]
func (h *entityHandler) createEntity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEntityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEntity", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	principal, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	entity, err := h.entityService.CreateEntity(c.Request.Context(), req, principal)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Entity code already exists"})
		} else {
			logger.Error("Failed to create entity", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create entity"})
		}
		return
	}

	logger.Info("Entity created", slog.String("entity_id", entity.EntityID))
	c.JSON(http.StatusCreated, dto.ToEntityResponse(entity))
}

// listEntities godoc
// @Summary List entities
// @Description Lists directory entities, optionally filtered by type; inactive entities are hidden unless requested
// @Tags entities
// @Produce  json
// @Param   type query string false "Entity type filter" Enums(customer, hotel, vehicle_owner, sub_agency)
// @Param   includeInactive query bool false "Include deactivated entities"
// @Success 200 {array} dto.EntityResponse
// @Failure 500 {object} ErrorResponse "Failed to list entities"
// @Security BearerAuth
// @Router /entities [get]
func (h *entityHandler) listEntities(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entityType := domain.EntityType(c.Query("type"))
	includeInactive, _ := strconv.ParseBool(c.DefaultQuery("includeInactive", "false"))

	entities, err := h.entityService.ListEntities(c.Request.Context(), entityType, includeInactive)
	if err != nil {
		logger.Error("Failed to list entities", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list entities"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListEntityResponse(entities))
}

// getEntityByID godoc
// @Summary Get an entity by ID
// @Tags entities
// @Produce  json
// @Param   id path string true "Entity ID"
// @Success 200 {object} dto.EntityResponse
// @Failure 404 {object} ErrorResponse "Entity not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve entity"
// @Security BearerAuth
// @Router /entities/{id} [get]
func (h *entityHandler) getEntityByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entity, err := h.entityService.GetEntityByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Entity not found"})
		} else {
			logger.Error("Failed to get entity", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve entity"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToEntityResponse(entity))
}

// updateEntity godoc
// @Summary Update an entity
// @Tags entities
// @Accept  json
// @Produce  json
// @Param   id path string true "Entity ID"
// @Param   entity body dto.UpdateEntityRequest true "Fields to update"
// @Success 200 {object} dto.EntityResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Entity not found"
// @Failure 500 {object} ErrorResponse "Failed to update entity"
// @Security BearerAuth
// @Router /entities/{id} [put]
func (h *entityHandler) updateEntity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	principal, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateEntityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	entity, err := h.entityService.UpdateEntity(c.Request.Context(), c.Param("id"), req, principal)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Entity not found"})
		} else {
			logger.Error("Failed to update entity", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update entity"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToEntityResponse(entity))
}

// toggleEntityActive godoc
// @Summary Toggle an entity's active flag
// @Description Deactivated entities keep their history but reject new ledger entries
// @Tags entities
// @Produce  json
// @Param   id path string true "Entity ID"
// @Success 200 {object} dto.EntityResponse
// @Failure 404 {object} ErrorResponse "Entity not found"
// @Failure 500 {object} ErrorResponse "Failed to toggle entity"
// @Security BearerAuth
// @Router /entities/{id}/toggle [post]
func (h *entityHandler) toggleEntityActive(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	principal, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	entity, err := h.entityService.ToggleEntityActive(c.Request.Context(), c.Param("id"), principal)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Entity not found"})
		} else {
			logger.Error("Failed to toggle entity", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to toggle entity"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToEntityResponse(entity))
}

// deleteEntity godoc
// @Summary Delete an entity
// @Description Removes an entity with no ledger history; entities with entries can only be deactivated
// @Tags entities
// @Produce  json
// @Param   id path string true "Entity ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Entity has ledger history"
// @Failure 404 {object} ErrorResponse "Entity not found"
// @Failure 500 {object} ErrorResponse "Failed to delete entity"
// @Security BearerAuth
// @Router /entities/{id} [delete]
func (h *entityHandler) deleteEntity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	principal, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.entityService.DeleteEntity(c.Request.Context(), c.Param("id"), principal); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Entity not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Entity has ledger history and can only be deactivated"})
		} else {
			logger.Error("Failed to delete entity", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete entity"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
