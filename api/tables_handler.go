package api

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type TablesHandler struct {
	tables TableRegistry
}

func NewTablesHandler(tables TableRegistry) *TablesHandler {
	return &TablesHandler{tables: tables}
}

func (h *TablesHandler) Register(router *gin.RouterGroup) {
	router.GET("/:table", h.getAll)
	router.GET("/:table/:id", h.getByID)
	router.POST("/:table", h.add)
	router.POST("/:table/batch", h.addAll)
	router.PUT("/:table/:id", h.update)
	router.DELETE("/:table/:id", h.remove)
}

func (h *TablesHandler) resource(c *gin.Context) (TableResource, bool) {
	name := c.Param("table")
	res, ok := h.tables[name]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no table found for " + name})
		return nil, false
	}
	return res, true
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func (h *TablesHandler) getAll(c *gin.Context) {
	res, ok := h.resource(c)
	if !ok {
		return
	}
	rows, err := res.GetAll(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *TablesHandler) getByID(c *gin.Context) {
	res, ok := h.resource(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	rec, err := res.GetByID(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *TablesHandler) add(c *gin.Context) {
	res, ok := h.resource(c)
	if !ok {
		return
	}
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rec, err := res.Add(c.Request.Context(), payload)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func (h *TablesHandler) addAll(c *gin.Context) {
	res, ok := h.resource(c)
	if !ok {
		return
	}
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := res.AddAll(c.Request.Context(), payload); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

func (h *TablesHandler) update(c *gin.Context) {
	res, ok := h.resource(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rec, err := res.Update(c.Request.Context(), id, payload)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *TablesHandler) remove(c *gin.Context) {
	res, ok := h.resource(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	rec, err := res.Remove(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}
