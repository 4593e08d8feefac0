package controllers

import (
	"pos-backend/pkg/resp"
	"pos-backend/services"
	"pos-backend/utils"

	"github.com/gin-gonic/gin"
)

type EmployeeController struct {
	Service *services.EmployeeService
}

func NewEmployeeController(s *services.EmployeeService) *EmployeeController {
	return &EmployeeController{Service: s}
}

func (ec *EmployeeController) List(c *gin.Context) {
	list, err := ec.Service.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, list)
}

func (ec *EmployeeController) Get(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	e, err := ec.Service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, e)
}

func (ec *EmployeeController) Create(c *gin.Context) {
	var in services.EmployeeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	e, err := ec.Service.Create(in)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, e)
}

func (ec *EmployeeController) Update(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	var in services.EmployeeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	e, err := ec.Service.Update(id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, e)
}

func (ec *EmployeeController) Delete(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := ec.Service.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	resp.Message(c, "employee deleted")
}
