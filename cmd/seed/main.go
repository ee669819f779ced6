// Command seed fills the database with fake users and posts.
package main

import (
	"context"
	"flag"
	"log"

	"postboard/internal/config"
	"postboard/internal/database"
	"postboard/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 20, "Number of users to create")
	numPosts := flag.Int("posts", 100, "Number of posts to create")
	shouldClean := flag.Bool("clean", false, "Delete existing users and posts first")
	maxDays := flag.Int("days", 90, "Spread post creation times over this many days (at most 3650)")
	fakerSeed := flag.Int64("seed", 0, "Faker seed; 0 is random")
	flag.Parse()

	log.Printf("Target: %d users, %d posts, clean=%v", *numUsers, *numPosts, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() { _ = database.Close(db) }()

	ctx := context.Background()
	if err := database.ApplySchema(ctx, db, cfg); err != nil {
		log.Fatalf("Failed to apply schema: %v", err)
	}

	s := seed.NewSeeder(db, seed.NewFactory(*fakerSeed))
	result, err := s.Run(ctx, seed.Options{
		NumUsers:    *numUsers,
		NumPosts:    *numPosts,
		ShouldClean: *shouldClean,
		MaxDays:     *maxDays,
	})
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Created %d users and %d posts", len(result.Users), len(result.Posts))
}
