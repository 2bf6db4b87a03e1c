// Package seed populates the database with realistic development data.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"devconnect/internal/auth"
	"devconnect/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

var statuses = []string{
	"Developer", "Junior Developer", "Senior Developer",
	"Manager", "Student or Learning", "Instructor", "Intern",
}

var skillPool = []string{
	"Go", "JavaScript", "TypeScript", "Python", "SQL",
	"PostgreSQL", "Redis", "Docker", "Kubernetes", "React",
}

// Seeder writes fake users, profiles, posts, likes and comments.
type Seeder struct {
	db *gorm.DB
}

func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{db: db}
}

// ClearAll wipes every domain table, children first.
func (s *Seeder) ClearAll() error {
	for _, table := range []string{"likes", "comments", "posts", "profiles", "users"} {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}

// Seed creates numUsers accounts, a profile for most of them, numPosts
// posts, and a spread of likes and comments across the mesh.
func (s *Seeder) Seed(numUsers, numPosts int) error {
	users, err := s.seedUsers(numUsers)
	if err != nil {
		return err
	}
	if err := s.seedProfiles(users); err != nil {
		return err
	}
	posts, err := s.seedPosts(users, numPosts)
	if err != nil {
		return err
	}
	return s.seedEngagement(users, posts)
}

func (s *Seeder) seedUsers(n int) ([]models.User, error) {
	// One shared hash keeps seeding fast; every account logs in with
	// "password123".
	hash, err := auth.HashPassword("password123")
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		email := fmt.Sprintf("%d.%s", i, gofakeit.Email())
		users = append(users, models.User{
			Name:     gofakeit.Name(),
			Email:    email,
			Password: hash,
			Avatar:   auth.GravatarURL(email),
		})
	}
	if err := s.db.CreateInBatches(&users, 100).Error; err != nil {
		return nil, fmt.Errorf("failed to seed users: %w", err)
	}
	return users, nil
}

func (s *Seeder) seedProfiles(users []models.User) error {
	profiles := make([]models.Profile, 0, len(users))
	for _, u := range users {
		// Roughly one in five users has not filled in a profile yet.
		if rand.Intn(5) == 0 {
			continue
		}
		skills := make([]string, 0, 4)
		for _, idx := range rand.Perm(len(skillPool))[:2+rand.Intn(3)] {
			skills = append(skills, skillPool[idx])
		}
		profiles = append(profiles, models.Profile{
			UserID:         u.ID,
			Status:         statuses[rand.Intn(len(statuses))],
			Skills:         strings.Join(skills, ","),
			Company:        gofakeit.Company(),
			Location:       gofakeit.City(),
			Bio:            gofakeit.Sentence(12),
			GithubUsername: gofakeit.Username(),
			Website:        "https://" + gofakeit.DomainName(),
			Social: models.Social{
				Twitter:  "https://twitter.com/" + gofakeit.Username(),
				Linkedin: "https://linkedin.com/in/" + gofakeit.Username(),
			},
		})
	}
	if err := s.db.CreateInBatches(&profiles, 100).Error; err != nil {
		return fmt.Errorf("failed to seed profiles: %w", err)
	}
	return nil
}

func (s *Seeder) seedPosts(users []models.User, n int) ([]models.Post, error) {
	posts := make([]models.Post, 0, n)
	for i := 0; i < n; i++ {
		author := users[rand.Intn(len(users))]
		posts = append(posts, models.Post{
			UserID: author.ID,
			Text:   gofakeit.Paragraph(1, 3, 8, " "),
			Name:   author.Name,
			Avatar: author.Avatar,
		})
	}
	if err := s.db.CreateInBatches(&posts, 100).Error; err != nil {
		return nil, fmt.Errorf("failed to seed posts: %w", err)
	}
	return posts, nil
}

func (s *Seeder) seedEngagement(users []models.User, posts []models.Post) error {
	likes := make([]models.Like, 0)
	comments := make([]models.Comment, 0)
	for _, post := range posts {
		for _, idx := range rand.Perm(len(users))[:rand.Intn(len(users)/2+1)] {
			likes = append(likes, models.Like{PostID: post.ID, UserID: users[idx].ID})
		}
		for i := 0; i < rand.Intn(4); i++ {
			commenter := users[rand.Intn(len(users))]
			comments = append(comments, models.Comment{
				PostID: post.ID,
				UserID: commenter.ID,
				Text:   gofakeit.Sentence(10),
				Name:   commenter.Name,
				Avatar: commenter.Avatar,
			})
		}
	}
	if len(likes) > 0 {
		if err := s.db.CreateInBatches(&likes, 200).Error; err != nil {
			return fmt.Errorf("failed to seed likes: %w", err)
		}
	}
	if len(comments) > 0 {
		if err := s.db.CreateInBatches(&comments, 200).Error; err != nil {
			return fmt.Errorf("failed to seed comments: %w", err)
		}
	}
	return nil
}
