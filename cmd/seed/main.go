package main

import (
	"log"
	"strings"

	"github.com/justin-echternach/onewheel-blog/config"
	"github.com/justin-echternach/onewheel-blog/database"

	"github.com/gosimple/slug"
	"github.com/joho/godotenv"
)

type fixturePost struct {
	title    string
	markdown string
}

var fixturePosts = []fixturePost{
	{
		title: "My First Post!",
		markdown: strings.TrimSpace(`
# This is my first post.
It's not super interesting.
`),
	},
	{
		title: "Trail Riding with Onewheel",
		markdown: strings.TrimSpace(`
I went trail riding with my Onewheel and it was a lot of fun!
`),
	},
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer database.Close(db)

	users := database.NewUserStore(db)
	posts := database.NewPostStore(db)

	// start from a clean slate for the admin account
	if err := users.DeleteByEmail(cfg.AdminEmail); err != nil {
		log.Fatalf("Failed to remove existing user: %v", err)
	}

	user, err := users.Create(cfg.AdminEmail, cfg.SeedPassword)
	if err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}

	if err := users.CreateNote(user, "My first note", "Hello, world!"); err != nil {
		log.Fatalf("Failed to create note: %v", err)
	}
	if err := users.CreateNote(user, "My second note", "Hello, world!"); err != nil {
		log.Fatalf("Failed to create note: %v", err)
	}

	for _, post := range fixturePosts {
		if err := posts.Upsert(post.title, slug.Make(post.title), post.markdown); err != nil {
			log.Fatalf("Failed to upsert post %q: %v", post.title, err)
		}
	}

	log.Println("Database has been seeded.")
}
