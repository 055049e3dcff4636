package main

import (
	"flag"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/df07/go-pathtracer/web/server"
)

func defaultPort() int {
	if value, ok := os.LookupEnv("RAYTRACER_PORT"); ok {
		if port, err := strconv.Atoi(value); err == nil {
			return port
		}
		log.Printf("Ignoring invalid RAYTRACER_PORT %q", value)
	}
	return 8080
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Error loading .env: %v", err)
	}

	// Parse command line flags
	port := flag.Int("port", defaultPort(), "Port to serve on")
	flag.Parse()

	webServer := server.NewServer(*port)

	log.Printf("Path Tracer Web Server")
	log.Printf("Visit http://localhost:%d to start rendering", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
