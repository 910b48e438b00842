package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-raycaster/pkg/config"
	"github.com/df07/go-raycaster/web/server"
)

func main() {
	port := flag.Int("port", 8080, "Port to serve on")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Printf("Error loading configuration: %v", err)
		os.Exit(1)
	}

	webServer := server.NewServer(*port, cfg.Background)

	log.Printf("Raycaster Web Server")
	log.Printf("Visit http://localhost:%d/api/render to render the default scene", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
