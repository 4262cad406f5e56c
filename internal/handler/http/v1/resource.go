package v1

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/pop_field_ops/internal/models"
	"github.com/shenikar/pop_field_ops/internal/service"
)

// resource - CRUD-обработчики одного ресурса.
// R - DTO запроса, через него проходят и создание, и слияние при обновлении.
type resource[P models.Entity, R any] struct {
	name      string
	svc       service.CRUDService[P]
	filters   []string
	toModel   func(R) P
	toRequest func(P) R
	logger    *logrus.Logger
	validate  *validator.Validate
}

func (r *resource[P, R]) log(method string) *logrus.Entry {
	return r.logger.WithFields(logrus.Fields{
		"resource": r.name,
		"method":   method,
	})
}

// register вешает обработчики на группу: id принимается и в пути, и в ?id=
func (r *resource[P, R]) register(g *gin.RouterGroup) {
	g.GET("", r.listOrGet)
	g.GET("/:id", r.get)
	g.POST("", r.create)
	g.PUT("", r.update)
	g.PUT("/:id", r.update)
	g.DELETE("", r.delete)
	g.DELETE("/:id", r.delete)
}

func (r *resource[P, R]) requireID(c *gin.Context) (int64, bool) {
	id, present, err := parseID(c)
	if !present {
		badRequest(c, fmt.Sprintf("%s ID is required", r.name))
		return 0, false
	}
	if err != nil {
		badRequest(c, fmt.Sprintf("invalid %s ID", r.name))
		return 0, false
	}
	return id, true
}

// @Summary List resources
// @Description Paginated list with free-text search (busca) and exact filters. With ?id= returns a single record.
// @Tags Resources
// @Produce json
// @Param resource path string true "pops | activities | technicians | supplies | generators | checklists"
// @Param id query int false "Record ID"
// @Param busca query string false "Case-insensitive substring search"
// @Param status query string false "Status filter"
// @Param pop_id query int false "POP filter"
// @Param fuel_type query string false "Fuel type filter"
// @Param especialidade query string false "Technician specialty filter"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} map[string]interface{} "{dados, total, pagina, limite, total_paginas}"
// @Failure 500 {object} ErrorResponse
// @Router /{resource} [get]
func (r *resource[P, R]) listOrGet(c *gin.Context) {
	if c.Query("id") != "" {
		r.get(c)
		return
	}

	log := r.log("list")
	page, err := r.svc.List(c.Request.Context(), parseListQuery(c, r.filters))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// @Summary Get resource by ID
// @Tags Resources
// @Produce json
// @Param resource path string true "Resource collection"
// @Param id path int true "Record ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /{resource}/{id} [get]
func (r *resource[P, R]) get(c *gin.Context) {
	id, ok := r.requireID(c)
	if !ok {
		return
	}
	log := r.log("get").WithField("id", id)

	item, err := r.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// @Summary Create resource
// @Tags Resources
// @Accept json
// @Produce json
// @Param resource path string true "Resource collection"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /{resource} [post]
func (r *resource[P, R]) create(c *gin.Context) {
	log := r.log("create")

	var input R
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		badRequest(c, "invalid request body")
		return
	}

	if err := r.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		badRequest(c, err.Error())
		return
	}

	model := r.toModel(input)
	if err := r.svc.Create(c.Request.Context(), model); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, model)
}

// @Summary Update resource
// @Description Shallow merge: fields absent from the body keep their current values.
// @Tags Resources
// @Accept json
// @Produce json
// @Param resource path string true "Resource collection"
// @Param id path int true "Record ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /{resource}/{id} [put]
func (r *resource[P, R]) update(c *gin.Context) {
	id, ok := r.requireID(c)
	if !ok {
		return
	}
	log := r.log("update").WithField("id", id)

	// сначала запись: на несуществующий id всегда 404, каким бы ни было тело
	existing, err := r.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err)
		return
	}

	body, err := c.GetRawData()
	if err != nil || !json.Valid(body) {
		log.WithError(err).Warn("Failed to read JSON body")
		badRequest(c, "invalid request body")
		return
	}

	// поля, которых нет в теле, остаются от существующей записи
	input := r.toRequest(existing)
	if err := json.Unmarshal(body, &input); err != nil {
		log.WithError(err).Warn("Failed to merge JSON body")
		badRequest(c, "invalid request body")
		return
	}

	if err := r.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		badRequest(c, err.Error())
		return
	}

	model := r.toModel(input)
	model.SetID(id)
	if err := r.svc.Update(c.Request.Context(), model); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, model)
}

// @Summary Delete resource
// @Tags Resources
// @Param resource path string true "Resource collection"
// @Param id path int true "Record ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /{resource}/{id} [delete]
func (r *resource[P, R]) delete(c *gin.Context) {
	id, ok := r.requireID(c)
	if !ok {
		return
	}
	log := r.log("delete").WithField("id", id)

	if err := r.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
