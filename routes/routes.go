package routes

import (
	"github.com/CarlosTarrino98/Gestor-de-negocio/configs"
	"github.com/CarlosTarrino98/Gestor-de-negocio/controllers"
	"github.com/CarlosTarrino98/Gestor-de-negocio/middlewares"
	"github.com/CarlosTarrino98/Gestor-de-negocio/repository"
	"github.com/CarlosTarrino98/Gestor-de-negocio/services"
	"github.com/CarlosTarrino98/Gestor-de-negocio/ws"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config, board *ws.BoardHub) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// Repositorios
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	summaryRepo := repository.NewSummaryRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)

	// Servicios
	authSvc := services.NewAuthService(userRepo, cfg)
	orderSvc := services.NewOrderService(db, orderRepo)
	aggSvc := services.NewAggregationService(db, orderRepo, inventoryRepo, summaryRepo, cfg.ChickenProductID)
	balanceSvc := services.NewBalanceService(db, summaryRepo, expenseRepo)
	invoiceSvc := services.NewInvoiceService(db)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, aggSvc, board)
	productCtrl := controllers.NewProductController(productRepo)
	menuCtrl := controllers.NewMenuController(db, menuRepo)
	inventoryCtrl := controllers.NewInventoryController(inventoryRepo)
	expenseCtrl := controllers.NewExpenseController(expenseRepo)
	balanceCtrl := controllers.NewBalanceController(balanceSvc)
	saleCtrl := controllers.NewSaleController(db)
	purchaseCtrl := controllers.NewPurchaseController(db)
	ledgerCtrl := controllers.NewLedgerController(db)
	capitalCtrl := controllers.NewCapitalController(db)
	clientCtrl := controllers.NewClientController(db)
	invoiceCtrl := controllers.NewInvoiceController(invoiceSvc)

	// Auth
	r.POST("/auth/login", authCtrl.Login)
	r.GET("/auth/me", middlewares.AuthMiddleware(), authCtrl.Me)

	// Asador
	asador := r.Group("/", middlewares.AuthMiddleware())
	{
		asador.GET("/orders", orderCtrl.List)
		asador.POST("/orders", orderCtrl.Create)
		asador.PUT("/orders/:id", orderCtrl.Update)
		asador.PATCH("/orders/:id/delivered", orderCtrl.SetDelivered)
		asador.DELETE("/orders/:id", orderCtrl.Delete)
		asador.POST("/orders/close-day", orderCtrl.CloseDay)

		asador.GET("/products", productCtrl.List)
		asador.POST("/products", productCtrl.Create)
		asador.PUT("/products/:id", productCtrl.Update)
		asador.DELETE("/products/:id", productCtrl.Delete)

		asador.GET("/menus", menuCtrl.List)
		asador.POST("/menus", menuCtrl.Create)
		asador.PUT("/menus/:id", menuCtrl.Update)
		asador.DELETE("/menus/:id", menuCtrl.Delete)

		asador.GET("/inventory", inventoryCtrl.List)
		asador.POST("/inventory", inventoryCtrl.Create)
		asador.PUT("/inventory/:id", inventoryCtrl.Update)
		asador.DELETE("/inventory/:id", inventoryCtrl.Delete)

		asador.GET("/expenses", expenseCtrl.List)
		asador.POST("/expenses", expenseCtrl.Create)
		asador.PUT("/expenses/:id", expenseCtrl.Update)
		asador.DELETE("/expenses/:id", expenseCtrl.Delete)

		asador.GET("/balance/asador", balanceCtrl.Asador)
	}

	// Carnicería
	carniceria := r.Group("/", middlewares.AuthMiddleware())
	{
		carniceria.GET("/sales", saleCtrl.List)
		carniceria.POST("/sales", saleCtrl.Create)
		carniceria.PUT("/sales/:id", saleCtrl.Update)
		carniceria.DELETE("/sales/:id", saleCtrl.Delete)

		carniceria.GET("/purchases", purchaseCtrl.List)
		carniceria.POST("/purchases/supplier", purchaseCtrl.CreateSupplier)
		carniceria.PUT("/purchases/supplier/:id", purchaseCtrl.UpdateSupplier)
		carniceria.DELETE("/purchases/supplier/:id", purchaseCtrl.DeleteSupplier)
		carniceria.POST("/purchases/store", purchaseCtrl.CreateStore)
		carniceria.PUT("/purchases/store/:id", purchaseCtrl.UpdateStore)
		carniceria.DELETE("/purchases/store/:id", purchaseCtrl.DeleteStore)

		carniceria.GET("/ledger", ledgerCtrl.List)
		carniceria.POST("/ledger/store-expenses", ledgerCtrl.CreateStoreExpense)
		carniceria.PUT("/ledger/store-expenses/:id", ledgerCtrl.UpdateStoreExpense)
		carniceria.DELETE("/ledger/store-expenses/:id", ledgerCtrl.DeleteStoreExpense)
		carniceria.POST("/ledger/personal-expenses", ledgerCtrl.CreatePersonalExpense)
		carniceria.PUT("/ledger/personal-expenses/:id", ledgerCtrl.UpdatePersonalExpense)
		carniceria.DELETE("/ledger/personal-expenses/:id", ledgerCtrl.DeletePersonalExpense)
		carniceria.POST("/ledger/bank-payments", ledgerCtrl.CreateBankPayment)
		carniceria.PUT("/ledger/bank-payments/:id", ledgerCtrl.UpdateBankPayment)
		carniceria.DELETE("/ledger/bank-payments/:id", ledgerCtrl.DeleteBankPayment)

		carniceria.GET("/capitals", capitalCtrl.List)
		carniceria.POST("/capitals", capitalCtrl.Create)
		carniceria.PUT("/capitals/:id", capitalCtrl.Update)
		carniceria.DELETE("/capitals/:id", capitalCtrl.Delete)

		carniceria.GET("/clients", clientCtrl.List)
		carniceria.GET("/clients/:id", clientCtrl.Get)
		carniceria.POST("/clients", clientCtrl.Create)
		carniceria.PUT("/clients/:id", clientCtrl.Update)
		carniceria.DELETE("/clients/:id", clientCtrl.Delete)

		carniceria.GET("/invoices", invoiceCtrl.List)
		carniceria.GET("/invoices/:id", invoiceCtrl.Get)
		carniceria.POST("/invoices", invoiceCtrl.Create)
		carniceria.PUT("/invoices/:id", invoiceCtrl.Update)
		carniceria.DELETE("/invoices/:id", invoiceCtrl.Delete)

		carniceria.GET("/balance/carniceria", balanceCtrl.Carniceria)
	}

	// Pizarra en tiempo real
	r.GET("/ws/board", middlewares.WSAuthMiddleware(cfg.JWTSecret), board.Serve)
}
