package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"go-bankwebapp/service"
)

// AccountHandler exposes account CRUD and money movement over HTTP.
type AccountHandler struct {
	accounts *service.AccountService
}

// NewAccountHandler creates an AccountHandler for the given service.
func NewAccountHandler(accounts *service.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// createAccount handles POST /account. An unknown customerId yields a 200
// with an empty record, not an error status.
func (h *AccountHandler) createAccount(c *gin.Context) {
	var req service.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid request body"}})
		return
	}

	account, err := h.accounts.Create(c.Request.Context(), req)
	if err != nil {
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

// getAccounts handles GET /account.
func (h *AccountHandler) getAccounts(c *gin.Context) {
	accounts, err := h.accounts.GetAll(c.Request.Context())
	if err != nil {
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, accounts)
}

// getAccount handles GET /account/:id.
func (h *AccountHandler) getAccount(c *gin.Context) {
	account, err := h.accounts.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

// updateAccount handles PUT /account/:id.
func (h *AccountHandler) updateAccount(c *gin.Context) {
	var req service.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid request body"}})
		return
	}

	account, err := h.accounts.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

// deleteAccount handles DELETE /account/:id.
func (h *AccountHandler) deleteAccount(c *gin.Context) {
	if err := h.accounts.Delete(c.Request.Context(), c.Param("id")); err != nil {
		abortInternal(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// withdraw handles PUT /account/withdraw/:id/:amount.
func (h *AccountHandler) withdraw(c *gin.Context) {
	amount, ok := parseAmount(c)
	if !ok {
		return
	}

	account, err := h.accounts.Withdraw(c.Request.Context(), c.Param("id"), amount)
	if err != nil {
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

// deposit handles PUT /account/deposit/:id/:amount.
func (h *AccountHandler) deposit(c *gin.Context) {
	amount, ok := parseAmount(c)
	if !ok {
		return
	}

	account, err := h.accounts.Deposit(c.Request.Context(), c.Param("id"), amount)
	if err != nil {
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

// parseAmount reads the :amount path parameter. Negative amounts parse fine
// and pass through; only syntax is checked here.
func parseAmount(c *gin.Context) (decimal.Decimal, bool) {
	amount, err := decimal.NewFromString(c.Param("amount"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid amount"}})
		return decimal.Decimal{}, false
	}
	return amount, true
}
