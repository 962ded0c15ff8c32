package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/pageza/vitalog/backend/config"
	"github.com/pageza/vitalog/backend/internal/database"
	"github.com/pageza/vitalog/backend/internal/models"
	"github.com/pageza/vitalog/backend/internal/service"
)

// seedNamespace derives stable user ids so reseeding updates the same users
var seedNamespace = uuid.MustParse("6f1c2b7e-3d4a-4c5b-9e8f-0a1b2c3d4e5f")

type testUser struct {
	username string
	profile  map[string]interface{}
	// baseWater and baseSleep shape the generated logs
	baseWater float64
	baseSleep int
}

var testUsers = []testUser{
	{
		username: "johndoe",
		profile: map[string]interface{}{
			"age": 34, "gender": "male", "height": 180, "weight": 92,
			"activity_level": "Sedentary", "primary_goal": "Weight Loss",
			"sleep_duration": 6, "stress_level": "High",
		},
		baseWater: 800,
		baseSleep: 6,
	},
	{
		username: "janesmith",
		profile: map[string]interface{}{
			"age": 28, "gender": "female", "height": 168, "weight": 60,
			"activity_level": "Very Active", "primary_goal": "Muscle Gain",
			"sleep_duration": 8, "workout_frequency": "5-6 times per week",
		},
		baseWater: 2200,
		baseSleep: 8,
	},
	{
		username: "newuser",
		profile:  map[string]interface{}{"age": 45, "gender": "female", "height": 160, "weight": 70},
	},
}

func main() {
	days := flag.Int("days", 14, "Number of days of logs to generate per user")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.RunMigrations(db, cfg.MigrationsDir); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()
	auth := service.NewAuthService(cfg.JWTSecret, cfg.JWTIssuer)
	profiles := service.NewProfileService(db)
	logs := service.NewDailyLogService(db, nil)

	log.Println("Creating test users with profiles and daily logs...")

	for _, u := range testUsers {
		userID := uuid.NewSHA1(seedNamespace, []byte(u.username))

		if _, err := profiles.UpsertProfile(ctx, userID, toPatch(u.profile)); err != nil {
			log.Fatalf("Failed to seed profile for %s: %v", u.username, err)
		}

		if u.baseWater > 0 {
			for i := *days - 1; i >= 0; i-- {
				date := time.Now().AddDate(0, 0, -i).Format(models.DateLayout)
				if _, err := logs.UpsertLog(ctx, userID, date, toPatch(dayLog(u, i))); err != nil {
					log.Fatalf("Failed to seed log %s for %s: %v", date, u.username, err)
				}
			}
		}

		token, err := auth.GenerateToken(userID, u.username, 30*24*time.Hour)
		if err != nil {
			log.Fatalf("Failed to generate token for %s: %v", u.username, err)
		}
		fmt.Printf("%-10s %s\n  token: %s\n", u.username, userID, token)
	}

	log.Println("Test users seeded")
}

// dayLog varies the user's baseline a little per day
func dayLog(u testUser, daysAgo int) map[string]interface{} {
	wobble := float64(daysAgo%3) - 1
	sleepEnd := fmt.Sprintf("%02d:00", (23+u.baseSleep+int(wobble))%24)

	entry := map[string]interface{}{
		"water_intake": u.baseWater + wobble*250,
		"weight":       u.profile["weight"],
		"sleep": map[string]interface{}{
			"sleep_start": "23:00",
			"sleep_end":   sleepEnd,
			"quality":     3 + int(wobble),
		},
		"mood_distribution": []int{daysAgo % 2, 1, 2, 1, daysAgo % 3},
		"supplements": []map[string]interface{}{
			{"name": "Vitamin D", "dosage": "1000 IU", "time": "08:00", "taken": daysAgo%4 != 3},
		},
		"meals": map[string]interface{}{
			"breakfast": map[string]interface{}{
				"items": []map[string]interface{}{
					{"name": "Oatmeal", "calories": 300, "protein": 10, "carbs": 54, "fat": 6},
				},
			},
		},
	}
	if daysAgo%2 == 0 {
		entry["workouts"] = []map[string]interface{}{
			{
				"type":     "cardio",
				"duration": 30 + 5*wobble,
				"exercises": []map[string]interface{}{
					{"name": "Running", "type": "cardio", "duration": 30 + 5*wobble, "completed": true},
				},
			},
		}
	}
	return entry
}

func toPatch(fields map[string]interface{}) service.Patch {
	patch := service.Patch{}
	for k, v := range fields {
		raw, err := json.Marshal(v)
		if err != nil {
			log.Fatalf("Failed to encode %s: %v", k, err)
		}
		patch[k] = raw
	}
	return patch
}
