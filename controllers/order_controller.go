package controllers

import (
	"pos-backend/pkg/resp"
	"pos-backend/services"
	"pos-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type OrderController struct {
	Orders *services.OrderService
	Sales  *services.SalesService
}

func NewOrderController(orders *services.OrderService, sales *services.SalesService) *OrderController {
	return &OrderController{Orders: orders, Sales: sales}
}

type CreateOrderReq struct {
	CustomerName    string              `json:"customerName"`
	CustomerPhone   string              `json:"customerPhone"`
	CustomerAddress string              `json:"customerAddress"`
	Items           []services.CartLine `json:"items"`
	Tax             *decimal.Decimal    `json:"tax"` // percent of subtotal
	Discount        *decimal.Decimal    `json:"discount"`
}

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	var req CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Orders.Create(services.CreateOrderInput{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		Cart:            services.Cart{Lines: req.Items},
		TaxRatePercent:  req.Tax,
		Discount:        req.Discount,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders
func (oc *OrderController) List(c *gin.Context) {
	orders, err := oc.Orders.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	order, err := oc.Orders.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, order)
}

type UpdateStatusReq struct {
	Status string `json:"status"`
}

// PUT /orders/:id/status
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	var req UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := oc.Orders.SetStatus(id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /orders/stats
func (oc *OrderController) Stats(c *gin.Context) {
	st, err := oc.Sales.Stats()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, st)
}
