package medication

import (
	"fmt"
	"sort"
	"strings"

	"health-monitor/internal/models"
)

// ScheduleEntry 单个服药时段
type ScheduleEntry struct {
	Name    string `json:"name"`
	Dosage  string `json:"dosage"`
	Time    string `json:"time"` // "HH:MM" 或 "As needed"
	Purpose string `json:"purpose"`
	Notes   string `json:"notes"`
}

// Interaction 药物相互作用提示
type Interaction struct {
	Medications []string `json:"medications"`
	Warning     string   `json:"warning"`
	Severity    string   `json:"severity"`
}

const asNeeded = "As needed"

// DailySchedule 将用药频率展开为当日服药时段，按时间排序
// "As needed" entries sort last.
func DailySchedule(medications []models.Medication) []ScheduleEntry {
	var schedule []ScheduleEntry

	for _, med := range medications {
		for _, slot := range frequencySlots(med.Frequency) {
			notes := ""
			if med.PrescribingDoctor != "" {
				notes = "Prescribed by " + med.PrescribingDoctor
			}
			schedule = append(schedule, ScheduleEntry{
				Name:    med.Name,
				Dosage:  med.Dosage,
				Time:    slot,
				Purpose: med.Purpose,
				Notes:   notes,
			})
		}
	}

	sort.SliceStable(schedule, func(i, j int) bool {
		return timeToMinutes(schedule[i].Time) < timeToMinutes(schedule[j].Time)
	})

	return schedule
}

// interactionPairs 已知药物相互作用表（固定示例数据）
var interactionPairs = []Interaction{
	{Medications: []string{"Lisinopril", "Potassium supplements"}, Warning: "May cause high potassium levels", Severity: "Moderate"},
	{Medications: []string{"Metformin", "Ibuprofen"}, Warning: "May affect kidney function", Severity: "Moderate"},
	{Medications: []string{"Warfarin", "Aspirin"}, Warning: "Increased bleeding risk", Severity: "Moderate"},
	{Medications: []string{"Simvastatin", "Amlodipine"}, Warning: "Increased risk of muscle pain", Severity: "Moderate"},
	{Medications: []string{"Fluoxetine", "Tramadol"}, Warning: "Risk of serotonin syndrome", Severity: "Moderate"},
	{Medications: []string{"Levothyroxine", "Calcium supplements"}, Warning: "Reduced absorption of thyroid medication", Severity: "Moderate"},
}

// Interactions 检查用户用药列表中的已知相互作用
func Interactions(medications []models.Medication) []Interaction {
	if len(medications) < 2 {
		return nil
	}

	names := make(map[string]bool, len(medications))
	for _, med := range medications {
		names[med.Name] = true
	}

	var found []Interaction
	for _, pair := range interactionPairs {
		if names[pair.Medications[0]] && names[pair.Medications[1]] {
			found = append(found, pair)
		}
	}

	return found
}

func frequencySlots(frequency string) []string {
	switch f := strings.ToLower(frequency); {
	case strings.Contains(f, "once daily"):
		return []string{"08:00"}
	case strings.Contains(f, "twice daily"):
		return []string{"08:00", "20:00"}
	case strings.Contains(f, "three times daily"):
		return []string{"08:00", "14:00", "20:00"}
	case strings.Contains(f, "four times daily"):
		return []string{"08:00", "12:00", "16:00", "20:00"}
	case strings.Contains(f, "with breakfast"):
		return []string{"08:00"}
	case strings.Contains(f, "with dinner"):
		return []string{"19:00"}
	case strings.Contains(f, "before bed"):
		return []string{"22:00"}
	case strings.Contains(f, "as needed"):
		return []string{asNeeded}
	default:
		return []string{"08:00"}
	}
}

func timeToMinutes(t string) int {
	if t == asNeeded {
		return 24 * 60
	}
	var hours, minutes int
	if _, err := fmt.Sscanf(t, "%d:%d", &hours, &minutes); err != nil {
		return 24 * 60
	}
	return hours*60 + minutes
}
