package training

const (
	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

var _ Training = (*Swimming)(nil)

// Swimming is a pool swimming workout.
type Swimming struct {
	base
	poolLength float64
	poolCount  int
}

// NewSwimming returns swimming workout. Pool length is measured in meters,
// poolCount is the number of swum pool lengths.
func NewSwimming(action int, duration, weight, poolLength float64, poolCount int) (*Swimming, error) {
	b, err := newBase(action, duration, weight, SwimmingLenStep)
	if err != nil {
		return nil, err
	}
	return &Swimming{base: b, poolLength: poolLength, poolCount: poolCount}, nil
}

func (s *Swimming) Kind() Kind {
	return KindSwimming
}

// MeanSpeed is computed from pool laps and ignores the stroke based distance.
func (s *Swimming) MeanSpeed() float64 {
	return s.poolLength * float64(s.poolCount) / MInKm / s.duration
}

func (s *Swimming) SpentCalories() float64 {
	shifted := s.MeanSpeed() + swimmingCaloriesMeanSpeedShift
	return shifted * swimmingCaloriesWeightMultiplier * s.weight
}
