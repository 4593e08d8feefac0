package controllers

import (
	"pos-backend/pkg/resp"
	"pos-backend/services"
	"pos-backend/utils"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(s *services.MenuService) *MenuController {
	return &MenuController{Service: s}
}

// GET /menu
func (mc *MenuController) List(c *gin.Context) {
	items, err := mc.Service.ListActive()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /menu/:id
func (mc *MenuController) Get(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	item, err := mc.Service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, item)
}

// POST /menu
func (mc *MenuController) Create(c *gin.Context) {
	var in services.MenuItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := mc.Service.Create(in)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, item)
}

// PUT /menu/:id
func (mc *MenuController) Update(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	var in services.MenuItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := mc.Service.Update(id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /menu/:id → hides the item; past orders still show it
func (mc *MenuController) Delete(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := mc.Service.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	resp.Message(c, "menu item deleted")
}
