package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"

	"github.com/meinhoongagan/backoffice-api/config"
	"github.com/meinhoongagan/backoffice-api/controllers"
	"github.com/meinhoongagan/backoffice-api/cron"
	"github.com/meinhoongagan/backoffice-api/db"
	"github.com/meinhoongagan/backoffice-api/logger"
	"github.com/meinhoongagan/backoffice-api/metrics"
	"github.com/meinhoongagan/backoffice-api/redis"
	"github.com/meinhoongagan/backoffice-api/routes"
	"github.com/meinhoongagan/backoffice-api/services"
	"github.com/meinhoongagan/backoffice-api/store"
	"github.com/meinhoongagan/backoffice-api/utils"
)

func main() {
	migrate := flag.Bool("migrate", false, "run database migrations and exit")
	seed := flag.Bool("seed", false, "create the super admin account and exit")
	flag.Parse()

	cfg := config.Load()
	log := logger.New(cfg.AppName, cfg.LogLevel)
	ctx := context.Background()

	st := openStore(cfg, log, *migrate)
	if *migrate {
		log.Info("✅ Migrations applied successfully!")
		return
	}

	passwords := passwordMatcher(cfg)
	if *seed {
		password, err := passwords.Prepare(cfg.SeedAdminPassword)
		if err != nil {
			log.WithError(err).Fatal("failed to prepare seed password")
		}
		created, err := db.SeedSuperAdmin(ctx, st.SuperAdmins, cfg.SeedAdminEmail, password)
		if err != nil {
			log.WithError(err).Fatal("failed to seed super admin")
		}
		log.WithFields(logrus.Fields{"email": cfg.SeedAdminEmail, "created": created}).Info("super admin seed finished")
		return
	}

	rec := metrics.New()
	deps := services.Deps{
		Store:     st,
		Notifier:  utils.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass, log),
		Passwords: passwords,
		Tokens:    services.NewTokenIssuer(cfg.JWTSecret, nil),
		Metrics:   rec,
		Log:       log,
	}
	if cfg.RedisAddr != "" {
		client, err := redis.Connect(ctx, cfg.RedisAddr)
		if err != nil {
			log.WithError(err).Fatal("failed to connect to redis")
		}
		defer client.Close()
		deps.Limiter = redis.NewLoginLimiter(client, cfg.LoginAttemptLimit, cfg.LoginAttemptWindow)
		log.Info("✅ Connected to Redis, login throttling enabled")
	}
	uploader, err := utils.NewCloudinaryUploader(utils.CloudinaryConfig{
		CloudName:    cfg.CloudinaryCloudName,
		APIKey:       cfg.CloudinaryAPIKey,
		APISecret:    cfg.CloudinaryAPISecret,
		UploadPreset: cfg.CloudinaryUploadPreset,
	})
	if err != nil {
		log.WithError(err).Warn("employee document upload disabled")
	} else {
		deps.Uploader = uploader
	}

	svc := services.New(deps)

	if cfg.OTPSweepEnabled() {
		c, err := cron.StartCronJobs(cfg.OTPSweepSchedule, log, map[string]cron.Sweeper{
			services.RoleCompany:    svc.CompanyLogin,
			services.RoleSuperAdmin: svc.AdminLogin,
		})
		if err != nil {
			log.WithError(err).Fatal("failed to add cron job")
		}
		defer c.Stop()
	}

	app := fiber.New(fiber.Config{
		AppName:   cfg.AppName,
		BodyLimit: 50 * 1024 * 1024,
	})
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	routes.SetupRoutes(app, controllers.NewHandlers(svc, log), cfg.JWTSecret, rec.Registry())

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info("shutting down")
		_ = app.Shutdown()
	}()

	log.WithField("port", cfg.Port).Info("server starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

// openStore builds the storage context shared by every service.
func openStore(cfg config.Config, log *logrus.Logger, migrate bool) *store.Store {
	if cfg.StoreDriver == config.DriverMemory {
		if migrate {
			log.Info("memory store has no schema to migrate")
		}
		log.Warn("using in-memory store, data is lost on exit")
		return store.NewMemory()
	}

	conn, err := db.Init(cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	log.Info("✅ Database connection established successfully!")
	if migrate {
		if err := db.Migrate(conn); err != nil {
			log.WithError(err).Fatal("failed to run migrations")
		}
	}
	return store.NewGorm(conn)
}

func passwordMatcher(cfg config.Config) services.PasswordMatcher {
	if cfg.PasswordMode == config.PasswordBcrypt {
		return services.BcryptPasswords{}
	}
	return services.PlaintextPasswords{}
}
