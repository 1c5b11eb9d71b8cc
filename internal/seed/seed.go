// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/soremkrs/Twex/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// Seed populates the database with test data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Starting database seeding with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	f := NewFactory(db)

	users, err := f.CreateUsers(opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("%d test users created", len(users))

	posts, err := f.CreatePosts(users, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("%d posts created", len(posts))

	replies, err := f.CreateReplies(users, posts, opts.NumPosts*2)
	if err != nil {
		return fmt.Errorf("failed to create replies: %w", err)
	}
	log.Printf("%d replies created", len(replies))

	if err := f.CreateFollowMesh(users); err != nil {
		return fmt.Errorf("failed to create follows: %w", err)
	}
	if err := f.CreateEngagement(users, posts); err != nil {
		return fmt.Errorf("failed to create likes and bookmarks: %w", err)
	}

	log.Println("Seeding complete. All test users have the password: Password123!Seed")
	return nil
}

// clearData wipes every domain table, relations first so foreign keys
// never block the truncation.
func clearData(db *gorm.DB) error {
	tables := []string{
		"notification_checks", "bookmarks", "likes", "follows",
		"replies", "posts", "users",
	}
	for _, table := range tables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}

// pick returns a random element of users.
func pick(users []models.User) models.User {
	return users[rand.Intn(len(users))]
}
