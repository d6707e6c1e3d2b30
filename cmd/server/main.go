package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/crystal-mush/gosoul/pkg/server"
)

// envDefault returns the environment variable value if set, otherwise the fallback.
func envDefault(envVar, fallback string) string {
	if v := os.Getenv(envVar); v != "" {
		return v
	}
	return fallback
}

func main() {
	confFile := flag.String("conf", envDefault("SOUL_CONF", ""), "Path to game config file (env: SOUL_CONF)")
	worldFile := flag.String("world", envDefault("SOUL_WORLD", ""), "Path to world YAML file, built-in demo world when empty (env: SOUL_WORLD)")
	socialsFile := flag.String("socials", envDefault("SOUL_SOCIALS", ""), "Path to custom socials YAML file (env: SOUL_SOCIALS)")
	storePath := flag.String("store", envDefault("SOUL_STORE", ""), "Path to bbolt social store (env: SOUL_STORE)")
	port := flag.Int("port", 0, "TCP port to listen on, overrides config (env: SOUL_PORT)")
	web := flag.Bool("web", os.Getenv("SOUL_WEB") == "true", "Enable the websocket/metrics web transport (env: SOUL_WEB)")
	flag.Parse()

	// Handle SOUL_PORT env if -port flag not set
	if *port == 0 {
		if envPort := os.Getenv("SOUL_PORT"); envPort != "" {
			if p, err := strconv.Atoi(envPort); err == nil {
				*port = p
			}
		}
	}

	cfg := server.DefaultConfig()
	if *confFile != "" {
		var err error
		cfg, err = server.LoadConfig(*confFile)
		if err != nil {
			log.Fatalf("Error loading config: %v", err)
		}
		log.Printf("Loaded config from %s", *confFile)
	}

	// Command-line flags override config file values
	if *port != 0 {
		cfg.Port = *port
	}
	if *worldFile != "" {
		cfg.WorldFile = *worldFile
	}
	if *socialsFile != "" {
		cfg.SocialsFile = *socialsFile
	}
	if *storePath != "" {
		cfg.StorePath = *storePath
	}
	if *web {
		cfg.WebEnabled = true
	}

	var w *server.World
	if cfg.WorldFile != "" {
		var err error
		w, err = server.LoadWorld(cfg.WorldFile)
		if err != nil {
			log.Fatalf("Error loading world: %v", err)
		}
		log.Printf("Loaded world %q: %d rooms", w.Name, len(w.Rooms))
	} else {
		w = server.DemoWorld()
		log.Printf("Using built-in demo world")
	}

	game := server.NewGame(cfg, w)
	if cfg.StorePath != "" {
		if err := game.OpenStore(cfg.StorePath); err != nil {
			log.Fatalf("Error opening social store: %v", err)
		}
		defer game.Store.Close()
	}

	srv := server.NewServer(game)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Printf("Received %v, shutting down", sig)
		srv.Stop()
	}()

	log.Printf("Starting %s on port %d...", cfg.MudName, cfg.Port)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
