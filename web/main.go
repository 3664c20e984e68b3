package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-phong-raytracer/web/server"
)

func main() {
	config := server.DefaultConfig()

	// Parse command line flags
	flag.IntVar(&config.Port, "port", config.Port, "Port to serve on")
	flag.StringVar(&config.StaticDir, "static", config.StaticDir, "Directory of static files served at /")
	flag.StringVar(&config.DefaultScene, "scene", config.DefaultScene, "Scene rendered when a request names none")
	flag.IntVar(&config.DefaultSize, "size", config.DefaultSize, "Image width and height when a request gives none")
	flag.IntVar(&config.MaxSize, "max-size", config.MaxSize, "Largest image width or height a request may ask for")
	flag.Parse()

	if config.DefaultSize < 10 || config.DefaultSize > config.MaxSize {
		log.Printf("Invalid size %d: must be between 10 and %d", config.DefaultSize, config.MaxSize)
		os.Exit(1)
	}

	webServer := server.NewServer(config)

	log.Printf("Phong Raytracer Web Server")
	log.Printf("Visit http://localhost:%d to start rendering", config.Port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
