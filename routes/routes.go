package routes

import (
	"database/sql"

	"estudio-api/handlers"
	"estudio-api/middleware"
	"estudio-api/services"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes monta las rutas públicas de autenticación.
func SetupAuthRoutes(rg *gin.RouterGroup, db *sql.DB) {
	authHandler := &handlers.AuthHandler{DB: db}

	rg.POST("/auth/login", middleware.LoginRateLimiter(), authHandler.Login)
	rg.POST("/auth/refresh", authHandler.Refresh)
	rg.POST("/auth/logout", authHandler.Logout)
}

// SetupClientRoutes monta clientes y sus expedientes.
func SetupClientRoutes(rg *gin.RouterGroup, db *sql.DB, ws *handlers.WSHandler) {
	clientHandler := &handlers.ClientHandler{DB: db, WS: ws}
	caseHandler := &handlers.CaseHandler{DB: db, WS: ws}

	rg.GET("/clients", clientHandler.GetClients)
	rg.POST("/clients", clientHandler.CreateClient)
	rg.GET("/clients/:id", clientHandler.GetClient)
	rg.PUT("/clients/:id", clientHandler.UpdateClient)
	rg.DELETE("/clients/:id", clientHandler.DeleteClient)

	rg.POST("/cases", caseHandler.CreateCase)
	rg.GET("/cases/:id", caseHandler.GetCase)
	rg.PUT("/cases/:id", caseHandler.UpdateCase)
	rg.DELETE("/cases/:id", caseHandler.DeleteCase)
}

// SetupCaseDetailRoutes monta la historia, la agenda y la caja.
func SetupCaseDetailRoutes(rg *gin.RouterGroup, db *sql.DB, ws *handlers.WSHandler) {
	movementHandler := &handlers.MovementHandler{DB: db, WS: ws}
	eventHandler := &handlers.EventHandler{DB: db, WS: ws}
	txHandler := &handlers.TransactionHandler{DB: db, WS: ws}

	rg.POST("/movements", movementHandler.CreateMovement)
	rg.DELETE("/movements/:id", movementHandler.DeleteMovement)

	rg.POST("/events", eventHandler.CreateEvent)
	rg.PATCH("/events/:id/toggle", eventHandler.ToggleEvent)
	rg.DELETE("/events/:id", eventHandler.DeleteEvent)

	rg.POST("/transactions", txHandler.CreateTransaction)
	rg.DELETE("/transactions/:id", txHandler.DeleteTransaction)
}

// SetupDashboardRoutes monta el tablero, los reportes, la búsqueda
// global y los widgets de cotizaciones.
func SetupDashboardRoutes(rg *gin.RouterGroup, db *sql.DB, rates *services.RatesService) {
	dashboardHandler := &handlers.DashboardHandler{DB: db}
	reportsHandler := &handlers.ReportsHandler{DB: db}
	searchHandler := &handlers.SearchHandler{DB: db}
	ratesHandler := &handlers.RatesHandler{Rates: rates}

	rg.GET("/dashboard", dashboardHandler.GetDashboard)
	rg.GET("/reports", reportsHandler.GetReports)
	rg.GET("/search", searchHandler.GlobalSearch)
	rg.GET("/rates/dolar", ratesHandler.GetDolarBlue)
	rg.GET("/rates/jus", ratesHandler.GetJus)
}

// SetupDocumentRoutes monta el generador de escritos.
func SetupDocumentRoutes(rg *gin.RouterGroup, db *sql.DB) {
	docHandler := &handlers.DocumentHandler{DB: db, Docs: services.NewDocumentService()}

	rg.GET("/documents/templates", docHandler.GetTemplates)
	rg.POST("/cases/:id/documents", docHandler.GenerateDocument)
}

// SetupAccountRoutes monta las operaciones sobre la propia cuenta.
func SetupAccountRoutes(rg *gin.RouterGroup, db *sql.DB) {
	accountHandler := &handlers.AccountHandler{DB: db}

	rg.POST("/account/password", accountHandler.ChangePassword)
	rg.POST("/account/2fa/setup", accountHandler.SetupTOTP)
	rg.POST("/account/2fa/verify", accountHandler.VerifyTOTP)
	rg.POST("/account/2fa/disable", accountHandler.DisableTOTP)
}

// SetupTeamRoutes monta la gestión de equipo, solo para ADMIN.
func SetupTeamRoutes(rg *gin.RouterGroup, db *sql.DB) {
	teamHandler := &handlers.TeamHandler{DB: db}

	team := rg.Group("/team")
	team.Use(middleware.AdminOnly())
	{
		team.GET("/users", teamHandler.GetUsers)
		team.POST("/users", teamHandler.CreateUser)
		team.DELETE("/users/:id", teamHandler.DeleteUser)
	}
}
