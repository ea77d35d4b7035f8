package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"web3admin/frontend/login"
	"web3admin/infrastructure/apiclient"
	"web3admin/infrastructure/audit"
	"web3admin/infrastructure/authsession"
	"web3admin/infrastructure/cache"
	"web3admin/infrastructure/config"
	"web3admin/infrastructure/flash"
	httpserver "web3admin/infrastructure/http"
	"web3admin/infrastructure/rbac"
	"web3admin/infrastructure/session"
	"web3admin/infrastructure/sqlite"
	"web3admin/infrastructure/tokenstore"
)

func main() {
	ephemeral := flag.Bool("ephemeral", false, "keep the admin token in memory only")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := sqlite.OpenDB(cfg.SQLitePath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := sqlite.ApplyMigrations(context.Background(), db); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}

	var tokens tokenstore.Store = tokenstore.NewSQLiteStore(db, tokenstore.DefaultName)
	if *ephemeral {
		tokens = tokenstore.NewMemoryStore()
	}

	client := apiclient.New(cfg.APIBaseURL, tokens, apiclient.WithTimeout(cfg.APITimeout))
	authSession := authsession.NewManager(client, tokens)
	client.OnUnauthorized(authSession.Expire)

	server := httpserver.NewServer(cfg.Addr, httpserver.Dependencies{
		API:          client,
		Session:      authSession,
		Browsers:     session.NewStore(cfg.SessionSecret, cfg.CookieSecure),
		Rbac:         rbac.New(cache.NewPermissionCache()),
		Audit:        audit.NewService(db),
		Flash:        flash.NewStore(cfg.SessionSecret, cfg.CookieSecure),
		LoginLimiter: login.NewLimiter(cfg.LoginPerMin),
		CookieSecure: cfg.CookieSecure,
	})
	if err := server.Start(); err != nil {
		log.Fatalf("start server: %v", err)
	}
	log.Printf("web3admin listening on %s (api %s)", cfg.Addr, cfg.APIBaseURL)

	// Pages answer 503 until the persisted token is resolved.
	go authSession.Init(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	if err := server.Stop(); err != nil {
		log.Printf("graceful shutdown error: %v", err)
	}
}
