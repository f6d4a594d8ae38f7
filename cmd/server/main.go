package main

import (
	"log"
	"net/http"
	"os"

	"github.com/edututor/backend/internal/assessment"
	"github.com/edututor/backend/internal/content"
	"github.com/edututor/backend/internal/database"
	"github.com/edututor/backend/internal/generator"
	"github.com/edututor/backend/internal/quizzes"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env if present; real env vars win
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	// Initialize database
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Load the question bank: built-in by default, external file when set
	bankData := content.DefaultBank()
	if path := os.Getenv("QUESTION_BANK_PATH"); path != "" {
		bankData, err = content.Load(path)
		if err != nil {
			log.Fatalf("Failed to load question bank: %v", err)
		}
		log.Printf("Loaded question bank from %s", path)
	}

	bank := assessment.NewBank(bankData)
	log.Printf("Question bank ready: %d subjects, %d questions", len(bank.Subjects()), bank.Size())

	// Wire services
	selector := assessment.NewSelector(bank)
	gen := generator.NewGenerator()
	store := quizzes.NewStore(db)
	service := quizzes.NewService(store, selector, gen)
	handler := quizzes.NewHandler(service)

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/quizzes/generate", handler.GenerateQuiz).Methods("POST")
	api.HandleFunc("/quizzes/diagnostic", handler.Diagnostic).Methods("POST")
	api.HandleFunc("/quizzes/adaptive", handler.AdaptiveQuiz).Methods("POST")
	api.HandleFunc("/quizzes/evaluate", handler.Evaluate).Methods("POST")

	api.HandleFunc("/users/{id}/attempts", handler.ListAttempts).Methods("GET")
	api.HandleFunc("/users/{id}/profile", handler.GetProfile).Methods("GET")

	api.HandleFunc("/admin/questions/generate", handler.GenerateQuestions).Methods("POST")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, c.Handler(r)); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
