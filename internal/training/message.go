package training

import "fmt"

const messageTemplate = "Training type: %s; " +
	"Duration: %.3f h; " +
	"Distance: %.3f km; " +
	"Avg speed: %.3f km/h; " +
	"Calories burned: %.3f."

// InfoMessage is a workout report.
type InfoMessage struct {
	TrainingType string
	Duration     float64
	Distance     float64
	Speed        float64
	Calories     float64
}

// Info computes report for the given workout.
func Info(t Training) InfoMessage {
	return InfoMessage{
		TrainingType: t.Kind().String(),
		Duration:     t.Duration(),
		Distance:     t.Distance(),
		Speed:        t.MeanSpeed(),
		Calories:     t.SpentCalories(),
	}
}

// Message renders report as a single line of text.
func (m InfoMessage) Message() string {
	return fmt.Sprintf(messageTemplate, m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories)
}
