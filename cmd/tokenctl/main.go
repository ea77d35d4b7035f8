package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"web3admin/infrastructure/sqlite"
	"web3admin/infrastructure/tokenstore"
)

const usage = "usage: tokenctl show | set <token> | clear"

func main() {
	dbPath := getenv("SQLITE_PATH", "web3admin.db")

	db, err := sqlite.OpenDB(dbPath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := sqlite.ApplyMigrations(context.Background(), db); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}

	store := tokenstore.NewSQLiteStore(db, getenv("TOKEN_NAME", tokenstore.DefaultName))
	if err := run(context.Background(), store, os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// run inspects or replaces the persisted admin token.
func run(ctx context.Context, store tokenstore.Store, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errors.New(usage)
	}
	switch args[0] {
	case "show":
		token, err := store.Token(ctx)
		if err != nil {
			return fmt.Errorf("read token: %w", err)
		}
		if token == "" {
			fmt.Fprintln(out, "no token stored")
			return nil
		}
		fmt.Fprintln(out, mask(token))
	case "set":
		if len(args) != 2 || args[1] == "" {
			return errors.New(usage)
		}
		if err := store.SetToken(ctx, args[1]); err != nil {
			return fmt.Errorf("store token: %w", err)
		}
		fmt.Fprintln(out, "token stored")
	case "clear":
		if err := store.ClearToken(ctx); err != nil {
			return fmt.Errorf("clear token: %w", err)
		}
		fmt.Fprintln(out, "token cleared")
	default:
		return errors.New(usage)
	}
	return nil
}

// mask keeps the first and last four characters.
func mask(token string) string {
	if len(token) <= 8 {
		return "********"
	}
	return token[:4] + "..." + token[len(token)-4:]
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
