// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/soremkrs/Twex/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// seedPassword is shared by every generated account so developers can log
// in as anyone.
const seedPassword = "Password123!Seed"

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db *gorm.DB
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{db: db}
}

// CreateUsers persists count users with realistic names and usernames.
func (f *Factory) CreateUsers(count int) ([]models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, count)
	for i := 0; i < count; i++ {
		first := gofakeit.FirstName()
		last := gofakeit.LastName()
		username := fmt.Sprintf("%s_%s%d",
			strings.ToLower(first), strings.ToLower(last), rand.Intn(1000))
		dob := gofakeit.DateRange(
			time.Date(1960, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2005, 12, 31, 0, 0, 0, 0, time.UTC))

		users = append(users, models.User{
			Username:    username,
			Email:       fmt.Sprintf("%s@example.com", username),
			Password:    string(hash),
			RealName:    first + " " + last,
			Bio:         gofakeit.Sentence(8),
			AvatarURL:   fmt.Sprintf("https://i.pravatar.cc/150?u=%s", username),
			DateOfBirth: &dob,
		})
	}

	if err := f.db.Create(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// CreatePosts persists count posts spread across the given users, with
// creation times scattered over the last 90 days.
func (f *Factory) CreatePosts(users []models.User, count int) ([]models.Post, error) {
	posts := make([]models.Post, 0, count)
	for i := 0; i < count; i++ {
		post := models.Post{
			Content:   gofakeit.Sentence(rand.Intn(20) + 5),
			UserID:    pick(users).ID,
			CreatedAt: randomPastTime(90),
		}
		// Roughly a third of the posts carry an image.
		if rand.Intn(3) == 0 {
			post.ImageURL = fmt.Sprintf("https://picsum.photos/seed/%s/800/600", gofakeit.UUID())
		}
		posts = append(posts, post)
	}

	if err := f.db.Create(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// CreateReplies persists count replies on random posts. Reply times always
// land after the parent post's creation time.
func (f *Factory) CreateReplies(users []models.User, posts []models.Post, count int) ([]models.Reply, error) {
	replies := make([]models.Reply, 0, count)
	for i := 0; i < count; i++ {
		post := posts[rand.Intn(len(posts))]
		createdAt := gofakeit.DateRange(post.CreatedAt, time.Now())
		replies = append(replies, models.Reply{
			Content:   gofakeit.Sentence(rand.Intn(12) + 3),
			PostID:    post.ID,
			UserID:    pick(users).ID,
			CreatedAt: createdAt,
		})
	}

	if err := f.db.Create(&replies).Error; err != nil {
		return nil, err
	}
	return replies, nil
}

// CreateFollowMesh makes every user follow a random subset of the others.
func (f *Factory) CreateFollowMesh(users []models.User) error {
	for _, follower := range users {
		targets := rand.Intn(len(users)/2 + 1)
		for i := 0; i < targets; i++ {
			target := pick(users)
			if target.ID == follower.ID {
				continue
			}
			err := f.db.Exec(
				`INSERT INTO follows (follower_id, following_id, created_at)
				 VALUES (?, ?, ?)
				 ON CONFLICT (follower_id, following_id) DO NOTHING`,
				follower.ID, target.ID, randomPastTime(60),
			).Error
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// CreateEngagement sprinkles likes and bookmarks over the posts.
func (f *Factory) CreateEngagement(users []models.User, posts []models.Post) error {
	for _, post := range posts {
		likers := rand.Intn(len(users)/3 + 1)
		for i := 0; i < likers; i++ {
			err := f.db.Exec(
				`INSERT INTO likes (user_id, post_id, created_at)
				 VALUES (?, ?, ?)
				 ON CONFLICT (user_id, post_id) DO NOTHING`,
				pick(users).ID, post.ID, gofakeit.DateRange(post.CreatedAt, time.Now()),
			).Error
			if err != nil {
				return err
			}
		}

		if rand.Intn(4) == 0 {
			err := f.db.Exec(
				`INSERT INTO bookmarks (user_id, post_id, created_at)
				 VALUES (?, ?, ?)
				 ON CONFLICT (user_id, post_id) DO NOTHING`,
				pick(users).ID, post.ID, gofakeit.DateRange(post.CreatedAt, time.Now()),
			).Error
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func randomPastTime(maxDays int) time.Time {
	back := time.Duration(rand.Intn(maxDays*24*60)) * time.Minute
	return time.Now().Add(-back)
}
