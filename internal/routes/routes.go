package routes

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/odutech/internal/audit"
	"github.com/BruksfildServices01/odutech/internal/config"
	"github.com/BruksfildServices01/odutech/internal/handlers"
	infraRepo "github.com/BruksfildServices01/odutech/internal/infra/repository"
	"github.com/BruksfildServices01/odutech/internal/middleware"
	"github.com/BruksfildServices01/odutech/internal/ratelimit"
	"github.com/BruksfildServices01/odutech/internal/storage"
	ucAppointment "github.com/BruksfildServices01/odutech/internal/usecase/appointment"
	"github.com/BruksfildServices01/odutech/internal/usecase/attachment"
	ucClient "github.com/BruksfildServices01/odutech/internal/usecase/client"
	"github.com/BruksfildServices01/odutech/internal/usecase/report"
	ucUser "github.com/BruksfildServices01/odutech/internal/usecase/user"
)

// Deps são os singletons montados no main e compartilhados pelas rotas.
type Deps struct {
	DB      *gorm.DB
	Config  *config.Config
	Uploads *storage.Uploads
	Audit   *audit.Dispatcher
	Limiter ratelimit.Limiter
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	// fotos são públicas; documentos só pelo download autenticado
	r.Static(
		"/uploads/"+string(storage.CategoryPhoto),
		filepath.Join(d.Uploads.Root(), string(storage.CategoryPhoto)),
	)

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	userRepo := infraRepo.NewUserGormRepository(d.DB)
	clientRepo := infraRepo.NewClientGormRepository(d.DB)
	productRepo := infraRepo.NewProductGormRepository(d.DB)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(d.DB)
	documentRepo := infraRepo.NewDocumentGormRepository(d.DB)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	accountsUC := ucUser.NewAccounts(userRepo, d.Uploads, d.Audit)

	attachPhotoUC := attachment.NewAttachPhoto(clientRepo, d.Uploads, d.Audit)
	documentsUC := attachment.NewDocuments(clientRepo, documentRepo, d.Uploads, d.Audit)

	saveClientUC := ucClient.NewSaveClient(clientRepo, attachPhotoUC, d.Audit, nil)
	deleteClientUC := ucClient.NewDeleteClient(clientRepo, d.Uploads, d.Audit)

	saveAppointmentUC := ucAppointment.NewSaveAppointment(appointmentRepo, d.Audit)

	summarizeUC := report.NewSummarize(appointmentRepo)
	dashboardUC := report.NewBuildDashboard(userRepo, appointmentRepo, nil)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(accountsUC, cfg)
	meHandler := handlers.NewMeHandler(userRepo, dashboardUC)
	healthHandler := handlers.NewHealthHandler(d.DB)

	clientHandler := handlers.NewClientHandler(
		clientRepo,
		saveClientUC,
		deleteClientUC,
		attachPhotoUC,
	)
	documentHandler := handlers.NewDocumentHandler(documentsUC)
	productHandler := handlers.NewProductHandler(productRepo, d.Audit)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentRepo, saveAppointmentUC)
	reportHandler := handlers.NewReportHandler(summarizeUC)

	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB)

	uploadLimit := middleware.MaxBodySize(cfg.MaxUploadBytes)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/health", healthHandler.Check)

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		auth := api.Group("/auth")
		auth.Use(middleware.LoginRateLimit(d.Limiter))
		{
			auth.POST("/login", authHandler.Login)
			if cfg.AllowSignup {
				auth.POST("/register", authHandler.Register)
			}
		}

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.GET("/me/audit-logs", auditLogsHandler.List)
			secured.GET("/users/:id/dashboard", meHandler.Dashboard)

			// ------------------------------
			// CLIENTS
			// ------------------------------
			secured.GET("/clients", clientHandler.List)
			secured.GET("/clients/options", clientHandler.Options)
			secured.POST("/clients", uploadLimit, clientHandler.Create)
			secured.GET("/clients/:id", clientHandler.Get)
			secured.PUT("/clients/:id", uploadLimit, clientHandler.Update)
			secured.DELETE("/clients/:id", clientHandler.Delete)
			secured.PUT("/clients/:id/rituals", clientHandler.UpdateRituals)
			secured.PUT("/clients/:id/photo", uploadLimit, clientHandler.UpdatePhoto)

			// ------------------------------
			// DOCUMENTS
			// ------------------------------
			secured.GET("/clients/:id/documents", documentHandler.List)
			secured.POST("/clients/:id/documents", uploadLimit, documentHandler.Upload)
			secured.GET("/documents/:id/download", documentHandler.Download)
			secured.DELETE("/documents/:id", documentHandler.Delete)

			// ------------------------------
			// PRODUCTS
			// ------------------------------
			secured.GET("/products", productHandler.List)
			secured.GET("/products/options", productHandler.Options)
			secured.POST("/products", productHandler.Create)
			secured.GET("/products/:id", productHandler.Get)
			secured.PUT("/products/:id", productHandler.Update)
			secured.DELETE("/products/:id", productHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.List)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.PUT("/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			// ------------------------------
			// REPORTS
			// ------------------------------
			secured.GET("/reports/sales", reportHandler.Sales)
		}
	}
}
