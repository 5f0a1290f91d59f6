package training

import "fmt"

// InfoMessage is the computed summary of one workout
type InfoMessage struct {
	TrainingType string
	Duration     float64 // hours
	Distance     float64 // km
	Speed        float64 // km/h
	Calories     float64 // kcal
}

// Message renders the summary line with three decimals on every number
func (m InfoMessage) Message() string {
	return fmt.Sprintf(
		"Тип тренировки: %s; Длительность: %.3f ч.; Дистанция: %.3f км; Ср. скорость: %.3f км/ч; Потрачено ккал: %.3f.",
		m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories,
	)
}

func (m InfoMessage) String() string {
	return m.Message()
}
