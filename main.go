package main

import (
	auth "Fundament/internal/auth"
	bearing "Fundament/internal/calc/bearing"
	comprehensive "Fundament/internal/calc/comprehensive"
	importer "Fundament/internal/calc/importer"
	pressure "Fundament/internal/calc/pressure"
	report "Fundament/internal/calc/report"
	selfweight "Fundament/internal/calc/selfweight"
	settlement "Fundament/internal/calc/settlement"
	stability "Fundament/internal/calc/stability"
	stiffness "Fundament/internal/calc/stiffness"
	strength "Fundament/internal/calc/strength"
	project "Fundament/internal/project"
	repo "Fundament/internal/repo"
	"context"
	"database/sql"

	"fmt"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, db *sql.DB) {
	userRepo := repo.NewPostgresUserDB(db)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using environment")
	}
	// Load TOKEN_KEY from environment
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: userRepo}
	projectH := &project.ProjectHandler{Repo: userRepo}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	settlementH := &settlement.Handler{}
	pressureH := &pressure.Handler{}
	selfweightH := &selfweight.Handler{}
	bearingH := &bearing.Handler{}
	stabilityH := &stability.Handler{}
	stiffnessH := &stiffness.Handler{}
	strengthH := &strength.Handler{}
	comprehensiveH := &comprehensive.Handler{}
	reportH := &report.Handler{}
	importerH := &importer.Handler{}

	secureApi.HandleFunc("/tools/settlement/calc", settlementH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/pressure/calc", pressureH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/selfweight/calc", selfweightH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/bearing/calc", bearingH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/stability/calc", stabilityH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/stiffness/calc", stiffnessH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/strength/calc", strengthH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/comprehensive/calc", comprehensiveH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")
	secureApi.HandleFunc("/tools/soil/import", importerH.Soil).Methods("POST")

	secureApi.HandleFunc("/projects", projectH.Save).Methods("POST")
	secureApi.HandleFunc("/projects", projectH.List).Methods("GET")
	secureApi.HandleFunc("/projects/{id:[0-9]+}", projectH.Get).Methods("GET")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db := auth.InitDB()
	defer db.Close()
	mux := mux.NewRouter()

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8088"
	}
	log.Println("Starting server on", addr)
	HandleList(mux, db)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Shutdown signal received!")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
