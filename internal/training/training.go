// Package training computes distance, speed and calories for the supported workouts.
package training

const (
	// MInKm is the number of meters in a kilometer.
	MInKm = 1000
	// MinInHour is the number of minutes in an hour.
	MinInHour = 60

	// LenStep is the distance covered by a single step, in meters.
	LenStep = 0.65
	// SwimmingLenStep is the distance covered by a single stroke, in meters.
	SwimmingLenStep = 1.38
)

// Training is a completed workout able to report its own statistics.
// Every workout type has to provide its own calorie formula.
type Training interface {
	Kind() Kind
	// Duration returns workout duration in hours.
	Duration() float64
	// Distance returns covered distance in kilometers.
	Distance() float64
	// MeanSpeed returns average speed in km/h.
	MeanSpeed() float64
	// SpentCalories returns burned energy in kcal.
	SpentCalories() float64
}

// Kind identifies a workout type.
type Kind int

const (
	KindRunning Kind = iota + 1
	KindWalking
	KindSwimming
)

var kindNames = map[Kind]string{
	KindRunning:  "Running",
	KindWalking:  "SportsWalking",
	KindSwimming: "Swimming",
}

// String returns display name of the workout type used in reports.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// base holds the parameters shared by all workouts.
// It intentionally lacks SpentCalories and does not implement Training.
type base struct {
	action   int
	duration float64
	weight   float64
	lenStep  float64
}

func newBase(action int, duration, weight, lenStep float64) (base, error) {
	if duration == 0 {
		return base{}, errZeroDuration
	}
	return base{
		action:   action,
		duration: duration,
		weight:   weight,
		lenStep:  lenStep,
	}, nil
}

func (b base) Duration() float64 {
	return b.duration
}

func (b base) Distance() float64 {
	return float64(b.action) * b.lenStep / MInKm
}

func (b base) MeanSpeed() float64 {
	return b.Distance() / b.duration
}

// durationInMinutes is shared by calorie formulas measured per minute.
func (b base) durationInMinutes() float64 {
	return b.duration * MinInHour
}
