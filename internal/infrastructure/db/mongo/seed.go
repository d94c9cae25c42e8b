package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// seedPassword is the login password for every seeded demo account.
const seedPassword = "letmein!"

type seedUser struct {
	id, name, email, role, teamID string
}

type seedRecognition struct {
	id, message, emoji string
	from               *string
	to                 string
	visibility         string
	ageDays            int
	keywords           []string
}

func from(id string) *string { return &id }

var seedUsers = []seedUser{
	{"1", "Liam Carter", "liam@example.com", "EMPLOYEE", "t1"},
	{"2", "Sophia Green", "sophia@example.com", "EMPLOYEE", "t1"},
	{"3", "Noah Wright", "noah@example.com", "MANAGER", "t1"},
	{"4", "Olivia Martin", "olivia@example.com", "HR", "t2"},
	{"5", "Ethan Scott", "ethan@example.com", "EMPLOYEE", "t2"},
	{"6", "Ava Turner", "ava@example.com", "EMPLOYEE", "t3"},
	{"7", "William Brooks", "william@example.com", "MANAGER", "t3"},
	{"8", "Mia Adams", "mia@example.com", "ADMIN", "t1"},
}

var seedTeams = []teamDoc{
	{ID: "t1", Name: "Development"},
	{ID: "t2", Name: "Human Resources"},
	{ID: "t3", Name: "Design"},
}

var seedRecognitions = []seedRecognition{
	{"r1", "Fantastic collaboration on the API integration — it went live without a hitch!", "🚀", from("1"), "2", "PUBLIC", 1,
		[]string{"collaboration", "API", "integration", "fantastic", "live"}},
	{"r2", "Appreciate your quick thinking during the client call yesterday.", "🤝", nil, "1", "ANONYMOUS", 2,
		[]string{"quick", "thinking", "client", "call", "appreciate"}},
	{"r3", "Your guidance has helped the junior devs grow tremendously.", "🌱", from("2"), "3", "PUBLIC", 3,
		[]string{"guidance", "mentorship", "growth", "team"}},
	{"r4", "Impressive work delivering the dashboard redesign ahead of schedule!", "🎯", from("3"), "1", "PUBLIC", 4,
		[]string{"dashboard", "redesign", "ahead", "schedule", "impressive"}},
	{"r5", "Your cheerful energy makes team meetings so much more engaging.", "😊", from("4"), "5", "PRIVATE", 5,
		[]string{"cheerful", "energy", "team", "meetings", "engaging"}},
	{"r6", "Brilliant job solving the production outage in record time!", "⚡", from("6"), "7", "PUBLIC", 6,
		[]string{"problem-solving", "production", "outage", "brilliant", "speed"}},
}

// Seed loads the demo dataset into empty collections. Collections that
// already hold data are left untouched, so reboots never duplicate or
// overwrite anything.
func Seed(ctx context.Context, db *mongo.Database, log zerolog.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	now := time.Now().UTC()

	n, err := db.Collection(collectionUsers).CountDocuments(ctx, map[string]any{})
	if err != nil {
		return fmt.Errorf("seed: count users: %w", err)
	}
	if n > 0 {
		log.Debug().Msg("seed skipped, users collection not empty")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed: hash password: %w", err)
	}

	userDocs := make([]any, len(seedUsers))
	for i, u := range seedUsers {
		userDocs[i] = userDoc{
			ID:           u.id,
			Name:         u.name,
			Email:        u.email,
			PasswordHash: string(hash),
			Role:         u.role,
			TeamID:       u.teamID,
			// Staggered timestamps keep the enumeration order stable.
			CreatedAt: now.Add(time.Duration(i) * time.Second),
		}
	}
	if _, err := db.Collection(collectionUsers).InsertMany(ctx, userDocs); err != nil {
		return fmt.Errorf("seed: insert users: %w", err)
	}

	teamDocs := make([]any, len(seedTeams))
	for i, t := range seedTeams {
		teamDocs[i] = t
	}
	if _, err := db.Collection(collectionTeams).InsertMany(ctx, teamDocs); err != nil {
		return fmt.Errorf("seed: insert teams: %w", err)
	}

	recDocs := make([]any, len(seedRecognitions))
	for i, r := range seedRecognitions {
		recDocs[i] = recognitionDoc{
			ID:         r.id,
			Message:    r.message,
			Emoji:      r.emoji,
			FromUserID: r.from,
			ToUserID:   r.to,
			Visibility: r.visibility,
			CreatedAt:  now.AddDate(0, 0, -r.ageDays),
			Keywords:   r.keywords,
		}
	}
	if _, err := db.Collection(collectionRecognitions).InsertMany(ctx, recDocs); err != nil {
		return fmt.Errorf("seed: insert recognitions: %w", err)
	}

	notifDocs := []any{
		notificationDoc{ID: "n1", Type: "RECOGNITION_RECEIVED", Message: "You received a recognition from Liam Carter",
			RecognitionID: "r1", UserID: "2", CreatedAt: now.AddDate(0, 0, -1)},
		notificationDoc{ID: "n2", Type: "RECOGNITION_RECEIVED", Message: "You received an anonymous recognition",
			RecognitionID: "r2", UserID: "1", CreatedAt: now.AddDate(0, 0, -2), Read: true},
		notificationDoc{ID: "n3", Type: "RECOGNITION_RECEIVED", Message: "You received a recognition from Sophia Green",
			RecognitionID: "r3", UserID: "3", CreatedAt: now.AddDate(0, 0, -3), Read: true},
	}
	if _, err := db.Collection(collectionNotifications).InsertMany(ctx, notifDocs); err != nil {
		return fmt.Errorf("seed: insert notifications: %w", err)
	}

	log.Info().
		Int("users", len(seedUsers)).
		Int("teams", len(seedTeams)).
		Int("recognitions", len(seedRecognitions)).
		Msg("demo data seeded")
	return nil
}
