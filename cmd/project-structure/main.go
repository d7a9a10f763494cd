package main

import (
	"github.com/themetalleg/project-structure/internal/app"
	"github.com/themetalleg/project-structure/internal/config"
)

func main() {
	// Load configuration from command-line flags and the optional config file
	cfg := config.New()

	// Create and run the application
	app.New(cfg).Run()
}
