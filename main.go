package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/justin-echternach/onewheel-blog/config"
	"github.com/justin-echternach/onewheel-blog/database"
	"github.com/justin-echternach/onewheel-blog/site"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	s := site.New(cfg, db)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Running on http://localhost%s", cfg.ListenAddr)
		if err := http.ListenAndServe(cfg.ListenAddr, s.Routes()); err != nil {
			log.Printf("HTTP server stopped: %v", err)
		}
	}()

	// Block until a signal is received
	<-signals
	log.Println("Shutting down gracefully...")

	if err := database.Close(db); err != nil {
		log.Printf("Failed to close database: %v", err)
	}
}
