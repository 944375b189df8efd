package medication

import (
	"testing"

	"health-monitor/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func med(name, frequency string) models.Medication {
	return models.Medication{
		Name:              name,
		Dosage:            "10mg",
		Frequency:         frequency,
		Purpose:           "test",
		PrescribingDoctor: "Dr. Adams",
	}
}

func TestDailySchedule_SortsByTime(t *testing.T) {
	schedule := DailySchedule([]models.Medication{
		med("Metformin", "Twice daily"),
		med("Melatonin", "Before bed"),
		med("Aspirin", "As needed"),
		med("Omeprazole", "With breakfast"),
	})

	require.Len(t, schedule, 5)

	times := make([]string, 0, len(schedule))
	for _, e := range schedule {
		times = append(times, e.Time)
	}
	assert.Equal(t, []string{"08:00", "08:00", "20:00", "22:00", "As needed"}, times)
}

func TestDailySchedule_UnknownFrequencyDefaultsToMorning(t *testing.T) {
	schedule := DailySchedule([]models.Medication{med("Mystery", "whenever")})

	require.Len(t, schedule, 1)
	assert.Equal(t, "08:00", schedule[0].Time)
	assert.Equal(t, "Prescribed by Dr. Adams", schedule[0].Notes)
}

func TestDailySchedule_FourTimesDaily(t *testing.T) {
	schedule := DailySchedule([]models.Medication{med("Amoxicillin", "Four times daily")})

	require.Len(t, schedule, 4)
	assert.Equal(t, "08:00", schedule[0].Time)
	assert.Equal(t, "20:00", schedule[3].Time)
}

func TestInteractions_KnownPair(t *testing.T) {
	found := Interactions([]models.Medication{
		med("Warfarin", "Once daily"),
		med("Aspirin", "As needed"),
		med("Metformin", "Twice daily"),
	})

	require.Len(t, found, 1)
	assert.Equal(t, []string{"Warfarin", "Aspirin"}, found[0].Medications)
	assert.Equal(t, "Increased bleeding risk", found[0].Warning)
}

func TestInteractions_RequiresAtLeastTwoMedications(t *testing.T) {
	assert.Nil(t, Interactions(nil))
	assert.Nil(t, Interactions([]models.Medication{med("Warfarin", "Once daily")}))
}
