package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"council/config"
	"council/db"
	"council/handlers"
	"council/llm"
	"council/middleware"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	settings := config.Get()

	client, err := llm.NewClient(context.Background(), settings)
	if err != nil {
		log.Fatal("Failed to create LLM client:", err)
	}

	// MongoDB persistence is optional; without it only disk records are kept.
	if uri := config.GetMongoDBURI(); uri != "" {
		if err := db.InitMongoDB(uri, settings.MongoDatabase); err != nil {
			log.Fatal("Failed to connect to MongoDB:", err)
		}
		defer db.Close()
		db.CreateDebateIndexes()
	} else {
		log.Println("MONGODB_URI not set, debate history endpoint disabled")
	}

	server := handlers.New(settings, client)

	http.HandleFunc("/debate", middleware.EnableCORS(server.RunDebateHandler))
	http.HandleFunc("/debates", middleware.EnableCORS(server.ListDebatesHandler))
	http.HandleFunc("/models", middleware.EnableCORS(server.ListModelsHandler))

	fmt.Println("Server running on http://localhost:8080")
	log.Fatal(http.ListenAndServe(":8080", nil))
}
