package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-bankwebapp/service"
)

// CustomerHandler exposes customer CRUD over HTTP.
type CustomerHandler struct {
	customers *service.CustomerService
}

// NewCustomerHandler creates a CustomerHandler for the given service.
func NewCustomerHandler(customers *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

// createCustomer handles POST /customer.
func (h *CustomerHandler) createCustomer(c *gin.Context) {
	var req service.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid request body"}})
		return
	}

	customer, err := h.customers.Create(c.Request.Context(), req)
	if err != nil {
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// getCustomers handles GET /customer.
func (h *CustomerHandler) getCustomers(c *gin.Context) {
	customers, err := h.customers.GetAll(c.Request.Context())
	if err != nil {
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

// getCustomer handles GET /customer/:id. A missing customer still answers
// 200, with every field blank.
func (h *CustomerHandler) getCustomer(c *gin.Context) {
	customer, err := h.customers.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// updateCustomer handles PUT /customer/:id.
func (h *CustomerHandler) updateCustomer(c *gin.Context) {
	var req service.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid request body"}})
		return
	}

	customer, err := h.customers.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// deleteCustomer handles DELETE /customer/:id.
func (h *CustomerHandler) deleteCustomer(c *gin.Context) {
	if err := h.customers.Delete(c.Request.Context(), c.Param("id")); err != nil {
		abortInternal(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// abortInternal reports a store fault. Domain rejections never take this
// path; they are rendered as ordinary 200 responses carrying an empty record.
func abortInternal(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
