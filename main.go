package main

import (
	auth "Driveline/internal/auth"
	batch "Driveline/internal/calc/batch"
	beltpower "Driveline/internal/calc/beltpower"
	belttension "Driveline/internal/calc/belttension"
	importer "Driveline/internal/calc/importer"
	pulleytorque "Driveline/internal/calc/pulleytorque"
	report "Driveline/internal/calc/report"
	shaft "Driveline/internal/calc/shaft"
	material "Driveline/internal/material"
	records "Driveline/internal/records"
	repo "Driveline/internal/repo"
	"context"
	"database/sql"
	"fmt"
	"sync"
	"syscall"
	"time"

	"log"
	"net/http"
	"os"
	"os/signal"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, db *sql.DB) {
	store := repo.NewPostgresStore(db)
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	materials, err := material.Load(os.Getenv("MATERIALS_PATH"))
	if err != nil {
		log.Fatal("material library:", err)
	}

	authEnv := &auth.Env{JWTKey: []byte(tokenKey), Repo: store}
	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	shaftH := &shaft.Handler{Materials: materials, Records: store}
	beltPowerH := &beltpower.Handler{Records: store}
	pulleyTorqueH := &pulleytorque.Handler{Records: store}
	beltTensionH := &belttension.Handler{Records: store}
	materialH := &material.Handler{Lib: materials}
	reportH := &report.Handler{}
	batchH := &batch.Handler{}
	importerH := &importer.Handler{}
	recordsH := &records.Handler{Repo: store}

	secureApi.HandleFunc("/tools/shaft/calc", shaftH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/belt-power/calc", beltPowerH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/pulley-torque/calc", pulleyTorqueH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/belt-tension/calc", beltTensionH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/materials", materialH.List).Methods("GET")
	secureApi.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")
	secureApi.HandleFunc("/tools/shaft/batch", batchH.Shaft).Methods("POST")
	secureApi.HandleFunc("/tools/shaft/import", importerH.Shaft).Methods("POST")

	secureApi.HandleFunc("/records", recordsH.List).Methods("GET")
	secureApi.HandleFunc("/records/{id:[0-9]+}", recordsH.Delete).Methods("DELETE")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, relying on environment")
	}

	db := auth.InitDB()
	defer db.Close()
	mux := mux.NewRouter()

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
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
	log.Println("Server stopped cleanly")

	wg.Wait()
}
