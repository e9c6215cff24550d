package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	auth "github.com/kilickursat/shield-fric/internal/auth"
	batch "github.com/kilickursat/shield-fric/internal/calc/batch"
	friction "github.com/kilickursat/shield-fric/internal/calc/friction"
	importer "github.com/kilickursat/shield-fric/internal/calc/importer"
	report "github.com/kilickursat/shield-fric/internal/calc/report"
	history "github.com/kilickursat/shield-fric/internal/history"
	repo "github.com/kilickursat/shield-fric/internal/repo"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(router *mux.Router, db *sql.DB) {
	userRepo := repo.NewPostgresDB(db)

	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Env{JWTKey: []byte(tokenKey), Repo: userRepo}
	limiter := auth.NewIPRateLimiter(1, 3)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.LoginHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	frictionH := &friction.Handler{Repo: userRepo}
	batchH := &batch.Handler{}
	importerH := &importer.Handler{}
	reportH := &report.Handler{}
	historyH := &history.Handler{Repo: userRepo}

	secureApi.HandleFunc("/tools/friction/calc", frictionH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/friction/batch", batchH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/friction/import", importerH.Friction).Methods("POST")
	secureApi.HandleFunc("/tools/friction/report", reportH.Generate).Methods("POST")
	secureApi.HandleFunc("/history", historyH.List).Methods("GET")
	secureApi.HandleFunc("/history/{id:[0-9]+}", historyH.Get).Methods("GET")

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}).Methods("GET")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using environment")
	}

	db := auth.InitDB()
	defer db.Close()

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}

	router := mux.NewRouter()
	HandleList(router, db)
	handler := CORS(router)

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Printf("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
