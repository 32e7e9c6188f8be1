// Command seed populates the snapshot store with demo users and posts.
package main

import (
	"context"
	"flag"
	"log"

	"inkwell/internal/config"
	"inkwell/internal/repository"
	"inkwell/internal/seed"
	"inkwell/internal/store"
)

func main() {
	users := flag.Int("users", 5, "number of demo users to create")
	posts := flag.Int("posts", 20, "number of demo posts to create")
	adminOnly := flag.Bool("admin-only", false, "only ensure the admin account exists")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	snapshots := repository.NewSnapshots(store.NewFileStore(cfg.DataFile))
	userRepo := repository.NewUserRepository(snapshots)
	postRepo := repository.NewPostRepository(snapshots)

	ctx := context.Background()

	if *adminOnly {
		if _, err := seed.EnsureAdmin(ctx, userRepo); err != nil {
			log.Fatalf("Failed to seed admin: %v", err)
		}
		return
	}

	if err := seed.Run(ctx, userRepo, postRepo, seed.Options{Users: *users, Posts: *posts}); err != nil {
		log.Fatalf("Failed to seed data: %v", err)
	}

	total, err := userRepo.Count(ctx)
	if err != nil {
		log.Fatalf("Failed to count users: %v", err)
	}
	log.Printf("Seed complete: %d users in store", total)
}
