package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/step-calc/stepcalc/internal/web"
	"github.com/step-calc/stepcalc/internal/web/handlers"
	"github.com/step-calc/stepcalc/internal/web/middleware"
)

const (
	// DefaultPort is the default server port
	DefaultPort = "8080"
)

func main() {
	var (
		port       = flag.String("port", DefaultPort, "Server port")
		passphrase = flag.String("passphrase", "", "Require this passphrase for API access (empty disables auth)")
		debug      = flag.Bool("debug", false, "Enable debug mode")
	)
	flag.Parse()

	server, err := web.NewServer(&web.Config{
		Addr:       ":" + *port,
		Passphrase: *passphrase,
		Debug:      *debug,
	})
	if err != nil {
		log.Fatalf("Server setup failed: %v", err)
	}

	router := setupRoutes(server)

	log.Printf("🧮 stepcalc session server starting on port %s", *port)
	if *passphrase != "" {
		log.Printf("🔒 Passphrase authentication enabled")
	}
	if *debug {
		log.Printf("🐛 Debug mode enabled")
	}

	if err := http.ListenAndServe(":"+*port, router); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

// setupRoutes builds the HTTP router with the middleware chain
func setupRoutes(server *web.Server) http.Handler {
	api := handlers.NewAPIHandler(server)

	mux := http.NewServeMux()
	mux.Handle("/api/auth", api.HandleAuth())
	mux.Handle("/api/sessions", api.HandleSessions())
	mux.Handle("/api/sessions/", api.HandleSession())
	mux.Handle("/api/ws/", api.HandleWS())

	return middleware.Chain(
		mux,
		middleware.Logger,
		middleware.CORS,
		middleware.RequireAuth(server.Auth()),
	)
}
