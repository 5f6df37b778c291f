// Command seed fills the database with the demo menu and fake ratings.
package main

import (
	"context"
	"flag"
	"log"

	"yayayum/internal/bootstrap"
	"yayayum/internal/config"
	"yayayum/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 20, "Number of users to create")
	ratingsPerUser := flag.Int("ratings", 5, "Ratings written by each user")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	menuPath := flag.String("menu", "", "YAML menu file (defaults to the built-in menu)")
	randomSeed := flag.Int64("seed", 0, "Random seed for reproducible data (0 = random)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	rt, err := bootstrap.InitRuntime(ctx, cfg, bootstrap.Options{})
	if err != nil {
		log.Fatalf("Failed to initialize runtime: %v", err)
	}
	defer func() { _ = rt.Close(ctx) }()

	sum, err := seed.Seed(ctx, rt.DB, seed.Options{
		NumUsers:       *numUsers,
		RatingsPerUser: *ratingsPerUser,
		ShouldClean:    *shouldClean,
		MenuPath:       *menuPath,
		RandomSeed:     *randomSeed,
	})
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Printf("seeded %d users, %d dishes, %d ratings", sum.Users, sum.Dishes, sum.Ratings)
}
