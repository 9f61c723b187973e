package domain

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrOutOfRange   = errors.New("value out of range")
	ErrUnknownClass = errors.New("unknown classification label")
	ErrUnknownValue = errors.New("unknown categorical value")
)

// BMI input bounds as offered by the calculator form.
const (
	MinHeightCm = 50
	MaxHeightCm = 250
	MinWeightKg = 20
	MaxWeightKg = 200
)

// BMI returns weight / height² with height given in centimetres.
func BMI(heightCm, weightKg float64) (float64, error) {
	if heightCm < MinHeightCm || heightCm > MaxHeightCm {
		return 0, fmt.Errorf("height %.1fcm: %w", heightCm, ErrOutOfRange)
	}
	if weightKg < MinWeightKg || weightKg > MaxWeightKg {
		return 0, fmt.Errorf("weight %.1fkg: %w", weightKg, ErrOutOfRange)
	}
	m := heightCm / 100
	return round2(weightKg / (m * m)), nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ObesityInput is the questionnaire behind the obesity classification page.
type ObesityInput struct {
	Age              int
	Gender           string  // Male | Female
	HeightM          float64 // metres
	WeightKg         float64
	Alcohol          string // CALC: Never | Sometimes | Frequently | Always
	HighCaloric      bool   // FAVC
	Vegetables       int    // FCVC 0-10
	MainMeals        int    // NCP 0-10
	MonitorsCalories bool   // SCC
	Smokes           bool
	WaterLiters      float64 // CH2O 0-10
	FamilyHistory    bool    // family history with overweight
	ActivityDays     int     // FAF 0-7
	TechHours        int     // TUE 0-24
	Snacking         string  // CAEC: No | Sometimes | Frequently | Always
	Transport        string  // MTRANS
}

// FeatureCount is the length of the vector the classifier expects.
const FeatureCount = 16

var (
	frequencyCodes = map[string]float64{"Never": 0, "No": 0, "Sometimes": 1, "Frequently": 2, "Always": 3}
	genderCodes    = map[string]float64{"Female": 0, "Male": 1}
	transportCodes = map[string]float64{
		"Automobile":            0,
		"Motorbike":             1,
		"Bike":                  2,
		"Public Transportation": 3,
		"Walking":               4,
	}
)

// Validate checks every numeric field against the questionnaire bounds.
func (in ObesityInput) Validate() error {
	checks := []struct {
		name     string
		v        float64
		min, max float64
	}{
		{"age", float64(in.Age), 1, 120},
		{"height", in.HeightM, 0.5, 2.5},
		{"weight", in.WeightKg, MinWeightKg, MaxWeightKg},
		{"vegetables", float64(in.Vegetables), 0, 10},
		{"main_meals", float64(in.MainMeals), 0, 10},
		{"water", in.WaterLiters, 0, 10},
		{"activity_days", float64(in.ActivityDays), 0, 7},
		{"tech_hours", float64(in.TechHours), 0, 24},
	}
	for _, c := range checks {
		if c.v < c.min || c.v > c.max {
			return fmt.Errorf("%s: %w", c.name, ErrOutOfRange)
		}
	}
	return nil
}

// Features encodes the input in the fixed order the model was trained on:
// age, gender, height, weight, CALC, FAVC, FCVC, NCP, SCC, SMOKE, CH2O,
// family history, FAF, TUE, CAEC, MTRANS.
func (in ObesityInput) Features() ([]float64, error) {
	gender, ok := genderCodes[in.Gender]
	if !ok {
		return nil, fmt.Errorf("gender %q: %w", in.Gender, ErrUnknownValue)
	}
	calc, ok := frequencyCodes[in.Alcohol]
	if !ok || in.Alcohol == "No" {
		return nil, fmt.Errorf("alcohol %q: %w", in.Alcohol, ErrUnknownValue)
	}
	caec, ok := frequencyCodes[in.Snacking]
	if !ok || in.Snacking == "Never" {
		return nil, fmt.Errorf("snacking %q: %w", in.Snacking, ErrUnknownValue)
	}
	mtrans, ok := transportCodes[in.Transport]
	if !ok {
		return nil, fmt.Errorf("transport %q: %w", in.Transport, ErrUnknownValue)
	}

	return []float64{
		float64(in.Age),
		gender,
		in.HeightM,
		in.WeightKg,
		calc,
		boolCode(in.HighCaloric),
		float64(in.Vegetables),
		float64(in.MainMeals),
		boolCode(in.MonitorsCalories),
		boolCode(in.Smokes),
		in.WaterLiters,
		boolCode(in.FamilyHistory),
		float64(in.ActivityDays),
		float64(in.TechHours),
		caec,
		mtrans,
	}, nil
}

// BMI returns the body mass index for the questionnaire's height in metres.
func (in ObesityInput) BMI() float64 {
	return round2(in.WeightKg / (in.HeightM * in.HeightM))
}

func boolCode(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

var obesityLabels = []string{
	"Insufficient Weight",
	"Normal Weight",
	"Overweight Level I",
	"Overweight Level II",
	"Obesity Type I",
	"Obesity Type II",
	"Obesity Type III",
}

// ObesityLabel maps a classifier output to its human-readable status.
func ObesityLabel(class int) (string, error) {
	if class < 0 || class >= len(obesityLabels) {
		return "", fmt.Errorf("class %d: %w", class, ErrUnknownClass)
	}
	return obesityLabels[class], nil
}
