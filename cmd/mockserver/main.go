package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/skinbazaar/storefront/pkg/mockserver"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using environment variables")
	}

	logger := logrus.New()
	logger.SetFormatter(new(logrus.TextFormatter))

	server := mockserver.New(logger).SeedDemo()

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080" // Default port if not specified
	}

	logger.Infof("Starting mock marketplace on port %s", port)
	if err := http.ListenAndServe(":"+port, server.Handler()); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
