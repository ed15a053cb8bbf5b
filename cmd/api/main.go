package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/BruksfildServices01/odutech/internal/audit"
	"github.com/BruksfildServices01/odutech/internal/config"
	dbpkg "github.com/BruksfildServices01/odutech/internal/db"
	infraRepo "github.com/BruksfildServices01/odutech/internal/infra/repository"
	"github.com/BruksfildServices01/odutech/internal/ratelimit"
	"github.com/BruksfildServices01/odutech/internal/routes"
	"github.com/BruksfildServices01/odutech/internal/storage"
	ucUser "github.com/BruksfildServices01/odutech/internal/usecase/user"
)

const shutdownTimeout = 10 * time.Second

func main() {
	addUser := flag.Bool("add-user", false, "cria um usuário lendo username, e-mail e senha da entrada padrão")
	listUsers := flag.Bool("list-users", false, "lista os usuários cadastrados")
	deleteUser := flag.String("delete-user", "", "remove o usuário (username) com todos os seus registros e arquivos")
	flag.Parse()

	// .env é opcional; variáveis de ambiente reais têm precedência
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.CheckSecret(gin.Mode() == gin.ReleaseMode); err != nil {
		log.Fatalf("%v", err)
	}
	if cfg.UsesDefaultSecret() {
		log.Printf("WARNING: JWT_SECRET não definido, usando o segredo padrão (apenas desenvolvimento)")
	}

	db := dbpkg.NewDB(cfg)

	uploads, err := storage.NewUploads(cfg.UploadRoot)
	if err != nil {
		log.Fatalf("failed to prepare upload root: %v", err)
	}

	dispatcher := audit.NewDispatcher(audit.New(db))
	accounts := ucUser.NewAccounts(infraRepo.NewUserGormRepository(db), uploads, dispatcher)

	// ======================================================
	// CLI de administração
	// ======================================================
	if *addUser || *listUsers || *deleteUser != "" {
		ctx := context.Background()
		switch {
		case *addUser:
			err = runAddUser(ctx, accounts, os.Stdin, os.Stdout)
		case *listUsers:
			err = runListUsers(ctx, accounts, os.Stdout)
		default:
			err = runDeleteUser(ctx, accounts, *deleteUser, os.Stdout)
		}
		dispatcher.Close()
		if err != nil {
			log.Fatalf("%v", err)
		}
		return
	}

	if cfg.SeedAdmin {
		seeded, err := accounts.EnsureSeed(context.Background())
		if err != nil {
			log.Fatalf("failed to seed admin: %v", err)
		}
		if seeded != nil {
			log.Printf("default admin created: %s (%s)", seeded.Username, seeded.Email)
		}
	}

	limiter, closeLimiter := newLimiter(cfg)
	defer closeLimiter()

	// ======================================================
	// HTTP
	// ======================================================
	r := gin.Default()
	r.MaxMultipartMemory = cfg.MaxUploadBytes

	routes.RegisterRoutes(r, routes.Deps{
		DB:      db,
		Config:  cfg,
		Uploads: uploads,
		Audit:   dispatcher,
		Limiter: limiter,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Server running on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}

	// eventos de auditoria pendentes são gravados antes de sair
	dispatcher.Close()
}

// newLimiter usa o redis quando REDIS_URL está definido e responde;
// caso contrário, o limitador em memória.
func newLimiter(cfg *config.Config) (ratelimit.Limiter, func()) {
	if cfg.RedisURL != "" {
		rl, err := ratelimit.NewRedis(cfg.RedisURL, cfg.LoginRatePerMin)
		if err == nil {
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err = rl.Ping(ctx)
			cancel()
			if err == nil {
				log.Printf("login rate limit: redis")
				return rl, func() { _ = rl.Close() }
			}
			_ = rl.Close()
		}
		log.Printf("redis unavailable (%v), using in-memory rate limit", err)
	}

	mem := ratelimit.NewMemory(cfg.LoginRatePerMin)
	return mem, mem.Close
}
