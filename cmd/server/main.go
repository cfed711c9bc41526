package main

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"medconnect/internal/chat"
	"medconnect/internal/config"
	"medconnect/internal/diagnosis"
	"medconnect/internal/intake"
	"medconnect/internal/interview"
	"medconnect/internal/platform/logger"
	"medconnect/internal/report"
	"medconnect/internal/session"
	"medconnect/internal/user"
)

func main() {
	// 1. Infrastructure
	_ = godotenv.Load()
	cfg := config.Load()

	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	var db *sql.DB
	for i := 0; i < 10; i++ {
		db, err = sql.Open("postgres", cfg.DatabaseURL)
		if err == nil {
			err = db.Ping()
		}
		if err == nil {
			break
		}
		log.Warn("waiting for database", "attempt", i+1, "error", err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		log.Fatal("could not connect to database", "error", err)
	}
	log.Info("connected to database")

	m, err := migrate.New(cfg.MigrationsPath, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("migration init failed", "error", err)
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		log.Fatal("migration up failed", "error", err)
	}
	log.Info("migrations applied")

	// 2. Model artifacts
	artifact, err := diagnosis.LoadArtifact(cfg.ModelPath)
	if err != nil {
		log.Fatal("could not load model artifact", "path", cfg.ModelPath, "error", err)
	}
	log.Info("model artifact loaded",
		"features", len(artifact.Features),
		"classes", len(artifact.Classes))

	// 3. Services
	sessions := session.NewStore()

	engine := interview.NewEngine(interview.DefaultScript())
	encoder := diagnosis.NewEncoder(artifact, interview.ProfileFeatures, log)
	predictor := diagnosis.NewPredictor(diagnosis.NewLinearOracle(artifact), artifact)
	diagnosisSvc := diagnosis.NewService(engine, encoder, predictor, log)

	userSvc := user.NewService(user.NewRepository(db), artifact.Specialties, cfg.BcryptCost, log)
	chatSvc := chat.NewService(chat.NewRepository(db), log)
	reportSvc := report.NewService(log)

	userHandler := user.NewHandler(userSvc, sessions)
	chatHandler := chat.NewHandler(chatSvc, userSvc)
	intakeHandler := intake.NewHandler(diagnosisSvc, reportSvc, log)

	// 4. Router
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS for the frontend
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")
			if r.Method == "OPTIONS" {
				return
			}
			next.ServeHTTP(w, r)
		})
	})

	r.Route("/api", func(r chi.Router) {
		user.RegisterRoutes(r, userHandler)

		r.Group(func(r chi.Router) {
			r.Use(session.RequireRole(sessions, session.RolePatient))
			chat.RegisterPatientRoutes(r, chatHandler)
			intake.RegisterRoutes(r, intakeHandler)
		})

		r.Route("/doctor", func(r chi.Router) {
			r.Use(session.RequireRole(sessions, session.RoleDoctor))
			chat.RegisterDoctorRoutes(r, chatHandler)
		})
	})

	log.Info("server starting", "port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("server stopped", "error", err)
	}
}
