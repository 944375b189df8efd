package models

import "time"

// User 用户信息（对应 users 表）
type User struct {
	UserID   string  `json:"user_id" db:"user_id"`
	Name     string  `json:"name" db:"name"`
	Age      int     `json:"age" db:"age"`
	Gender   string  `json:"gender" db:"gender"`
	HeightCm float64 `json:"height_cm" db:"height_cm"`
	WeightKg float64 `json:"weight_kg" db:"weight_kg"`
}

// Medication 用药记录（对应 medications 表）
type Medication struct {
	MedicationID      string     `json:"medication_id" db:"medication_id"`
	UserID            string     `json:"user_id" db:"user_id"`
	Name              string     `json:"name" db:"name"`
	Dosage            string     `json:"dosage" db:"dosage"`
	Frequency         string     `json:"frequency" db:"frequency"`
	StartDate         *time.Time `json:"start_date,omitempty" db:"start_date"`
	EndDate           *time.Time `json:"end_date,omitempty" db:"end_date"`
	Purpose           string     `json:"purpose" db:"purpose"`
	PrescribingDoctor string     `json:"prescribing_doctor" db:"prescribing_doctor"`
	SideEffects       string     `json:"side_effects" db:"side_effects"`
}
