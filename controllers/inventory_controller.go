package controllers

import (
	"pos-backend/pkg/resp"
	"pos-backend/services"
	"pos-backend/utils"

	"github.com/gin-gonic/gin"
)

type InventoryController struct {
	Service *services.InventoryService
}

func NewInventoryController(s *services.InventoryService) *InventoryController {
	return &InventoryController{Service: s}
}

func (ic *InventoryController) List(c *gin.Context) {
	items, err := ic.Service.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /inventory/expired
func (ic *InventoryController) Expired(c *gin.Context) {
	items, err := ic.Service.Expired()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

func (ic *InventoryController) Get(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	it, err := ic.Service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, it)
}

func (ic *InventoryController) Create(c *gin.Context) {
	var in services.InventoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	it, err := ic.Service.Create(in)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, it)
}

func (ic *InventoryController) Update(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	var in services.InventoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	it, err := ic.Service.Update(id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, it)
}

func (ic *InventoryController) Delete(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := ic.Service.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	resp.Message(c, "inventory item deleted")
}
