package fitnesstest

import (
	"fmt"
	"math"
)

// Reference formulas are kept independent from the tracker sources on purpose.
const (
	lenStep = 0.65
	mInKm   = 1000
	minInH  = 60

	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029

	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 20

	swimmingLenStep                  = 1.38
	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

const reportFormat = "Training type: %s; Duration: %.3f h; Distance: %.3f km; Avg speed: %.3f km/h; Calories burned: %.3f."

func distance(action int, step float64) float64 {
	return float64(action) * step / mInKm
}

func meanSpeed(action int, duration float64) float64 {
	return distance(action, lenStep) / duration
}

func swimmingMeanSpeed(lengthPool float64, countPool int, duration float64) float64 {
	return lengthPool * float64(countPool) / mInKm / duration
}

func runningReport(action int, duration, weight float64) string {
	speed := meanSpeed(action, duration)
	calories := (runningCaloriesMeanSpeedMultiplier*speed - runningCaloriesMeanSpeedShift) * weight / mInKm * duration * minInH
	return fmt.Sprintf(reportFormat, "Running", duration, distance(action, lenStep), speed, calories)
}

func walkingReport(action int, duration, weight, height float64) string {
	speed := meanSpeed(action, duration)
	calories := (walkingCaloriesWeightMultiplier*weight + math.Floor(speed*speed/height)*walkingSpeedHeightMultiplier*weight) * duration * minInH
	return fmt.Sprintf(reportFormat, "SportsWalking", duration, distance(action, lenStep), speed, calories)
}

func swimmingReport(action int, duration, weight, lengthPool float64, countPool int) string {
	speed := swimmingMeanSpeed(lengthPool, countPool, duration)
	calories := (speed + swimmingCaloriesMeanSpeedShift) * swimmingCaloriesWeightMultiplier * weight
	return fmt.Sprintf(reportFormat, "Swimming", duration, distance(action, swimmingLenStep), speed, calories)
}

// expectedReports lists tracker output for its built-in packages, in order
func expectedReports() []string {
	return []string{
		swimmingReport(720, 1, 80, 25, 40),
		runningReport(15000, 1, 75),
		walkingReport(9000, 1, 75, 180),
	}
}
