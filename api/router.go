package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter builds the gin engine with middleware and all routes mounted.
func NewRouter(log *zap.Logger, corsOrigins []string, customers *CustomerHandler, accounts *AccountHandler) *gin.Engine {
	r := gin.New()
	r.Use(RequestID())
	r.Use(RequestLogger(log))
	r.Use(Recovery(log))

	corsCfg := cors.DefaultConfig()
	if len(corsOrigins) == 1 && corsOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = corsOrigins
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	r.Use(cors.New(corsCfg))

	customerRoutes := r.Group("/customer")
	{
		customerRoutes.GET("", customers.getCustomers)
		customerRoutes.GET("/:id", customers.getCustomer)
		customerRoutes.POST("", customers.createCustomer)
		customerRoutes.PUT("/:id", customers.updateCustomer)
		customerRoutes.DELETE("/:id", customers.deleteCustomer)
	}

	accountRoutes := r.Group("/account")
	{
		accountRoutes.GET("", accounts.getAccounts)
		accountRoutes.GET("/:id", accounts.getAccount)
		accountRoutes.POST("", accounts.createAccount)
		accountRoutes.PUT("/:id", accounts.updateAccount)
		accountRoutes.DELETE("/:id", accounts.deleteAccount)
		accountRoutes.PUT("/withdraw/:id/:amount", accounts.withdraw)
		accountRoutes.PUT("/deposit/:id/:amount", accounts.deposit)
	}

	return r
}
