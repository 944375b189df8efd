package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"time"

	"health-monitor/internal/config"
	"health-monitor/internal/database"

	"github.com/google/uuid"
)

// seedUser 示例用户
type seedUser struct {
	Name     string
	Age      int
	Gender   string
	HeightCm float64
	WeightKg float64
}

var sampleUsers = []seedUser{
	{"John Smith", 65, "Male", 175.0, 82.0},
	{"Sarah Johnson", 42, "Female", 165.0, 58.0},
	{"Michael Brown", 55, "Male", 180.0, 95.0},
	{"Emma Davis", 28, "Female", 160.0, 55.0},
	{"Robert Wilson", 72, "Male", 172.0, 78.0},
	{"Lisa Anderson", 41, "Female", 168.0, 63.0},
	{"David Martinez", 58, "Male", 178.0, 88.0},
	{"Jennifer Taylor", 35, "Female", 163.0, 57.0},
	{"William Lee", 50, "Male", 170.0, 72.0},
	{"Maria Garcia", 44, "Female", 165.0, 61.0},
	{"James Thompson", 68, "Male", 176.0, 82.0},
	{"Susan White", 47, "Female", 167.0, 65.0},
	{"Thomas Moore", 53, "Male", 182.0, 88.0},
	{"Patricia Clark", 39, "Female", 164.0, 59.0},
	{"Richard Harris", 60, "Male", 173.0, 76.0},
}

type seedMedication struct {
	Name      string
	Dosage    string
	Frequency string
	Purpose   string
	Doctor    string
}

var sampleMedications = map[int][]seedMedication{
	0: {
		{"Lisinopril", "10mg", "Once daily", "Blood pressure control", "Dr. Adams"},
		{"Aspirin", "81mg", "Once daily", "Cardiovascular protection", "Dr. Adams"},
	},
	2: {
		{"Metformin", "500mg", "Twice daily", "Blood sugar control", "Dr. Patel"},
	},
	4: {
		{"Warfarin", "5mg", "Once daily", "Anticoagulation", "Dr. Hughes"},
		{"Aspirin", "81mg", "As needed", "Pain relief", "Dr. Hughes"},
	},
	10: {
		{"Simvastatin", "20mg", "Before bed", "Cholesterol control", "Dr. Nolan"},
		{"Amlodipine", "5mg", "Once daily", "Blood pressure control", "Dr. Nolan"},
	},
}

// 每天 4 次采样的时刻
var readingHours = []int{6, 12, 18, 23}

const seedDays = 30

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Cannot open database: %v", err)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		log.Fatalf("Failed to check users table: %v", err)
	}
	if count > 0 {
		fmt.Printf("Dataset already seeded (%d users), nothing to do\n", count)
		return
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("Failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	records := 0
	for i, user := range sampleUsers {
		userID := fmt.Sprintf("user-%02d", i+1)

		_, err := tx.Exec(
			`INSERT INTO users (user_id, name, age, gender, height_cm, weight_kg)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			userID, user.Name, user.Age, user.Gender, user.HeightCm, user.WeightKg,
		)
		if err != nil {
			log.Fatalf("Failed to insert user %s: %v", user.Name, err)
		}

		n, err := seedHealthData(tx, rng, userID)
		if err != nil {
			log.Fatalf("Failed to seed health data for %s: %v", user.Name, err)
		}
		records += n

		for _, med := range sampleMedications[i] {
			start := time.Now().UTC().AddDate(0, -6, 0)
			_, err := tx.Exec(
				`INSERT INTO medications
				 (medication_id, user_id, name, dosage, frequency, start_date, end_date, purpose, prescribing_doctor, side_effects)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
				uuid.NewString(), userID, med.Name, med.Dosage, med.Frequency,
				start, nil, med.Purpose, med.Doctor, "",
			)
			if err != nil {
				log.Fatalf("Failed to insert medication %s: %v", med.Name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		log.Fatalf("Failed to commit seed data: %v", err)
	}

	fmt.Printf("Seeded %d users, %d health records\n", len(sampleUsers), records)
}

// seedHealthData 为单个用户生成 30 天、每天 4 条的生命体征记录
func seedHealthData(tx *sql.Tx, rng *rand.Rand, userID string) (int, error) {
	now := time.Now().UTC()
	inserted := 0

	for day := seedDays - 1; day >= 0; day-- {
		for _, hour := range readingHours {
			ts := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, time.UTC).
				AddDate(0, 0, -day)
			if ts.After(now) {
				continue
			}

			heartRate := 75 + rng.Intn(21) - 10 // 65-85
			systolic := 120 + rng.Intn(21) - 10 // 110-130
			diastolic := 80 + rng.Intn(11) - 5  // 75-85
			spo2 := 97.0 + rng.Float64()*2.0    // 97-99

			nutrients, err := json.Marshal(map[string]float64{
				"calories":  round1(500 + rng.Float64()*300),
				"protein_g": round1(15 + rng.Float64()*25),
				"carbs_g":   round1(40 + rng.Float64()*60),
				"fat_g":     round1(10 + rng.Float64()*25),
			})
			if err != nil {
				return inserted, err
			}

			_, err = tx.Exec(
				`INSERT INTO health_data
				 (user_id, timestamp, heart_rate, systolic, diastolic, spo2, nutrient_intake)
				 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				userID, ts, heartRate, systolic, diastolic, spo2, string(nutrients),
			)
			if err != nil {
				return inserted, err
			}
			inserted++
		}
	}

	return inserted, nil
}

func round1(v float64) float64 {
	return float64(int(v*10)) / 10
}
