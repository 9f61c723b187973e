package handler

import (
	"time"

	"github.com/wellness/portal/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type signupRequest struct {
	Email           string `json:"email"            validate:"max=254"`
	Password        string `json:"password"         validate:"max=128"`
	ConfirmPassword string `json:"confirm_password" validate:"max=128"`
	Role            string `json:"role"`
}

type signupResponse struct {
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}

// signupCheckRequest drives the live feedback on the signup form.
type signupCheckRequest struct {
	Email    string `json:"email"    validate:"required,gmail"`
	Password string `json:"password" validate:"required,strongpassword"`
}

type signupCheckResponse struct {
	Valid         bool                 `json:"valid"`
	EmailAccepted bool                 `json:"email_accepted"`
	Password      domain.PasswordRules `json:"password"`
	Message       string               `json:"message,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	Account   *domain.Account `json:"account"`
}

type meResponse struct {
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// --- Articles ---

type createArticleRequest struct {
	Title       string `json:"title"       validate:"max=255"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Link        string `json:"link"`
}

type createArticleResponse struct {
	ID int64 `json:"id"`
}

type listArticlesResponse struct {
	Articles []domain.Article `json:"articles"`
	Count    int              `json:"count"`
}

// --- Wellness ---

type bmiRequest struct {
	HeightCm float64 `json:"height_cm" validate:"required"`
	WeightKg float64 `json:"weight_kg" validate:"required"`
}

type bmiResponse struct {
	BMI float64 `json:"bmi"`
}

type obesityRequest struct {
	Age              int     `json:"age"               validate:"required"`
	Gender           string  `json:"gender"            validate:"required,oneof=Male Female"`
	HeightM          float64 `json:"height_m"          validate:"required"`
	WeightKg         float64 `json:"weight_kg"         validate:"required"`
	Alcohol          string  `json:"alcohol"           validate:"required,oneof=Never Sometimes Frequently Always"`
	HighCaloric      bool    `json:"high_caloric"`
	Vegetables       int     `json:"vegetables"        validate:"gte=0,lte=10"`
	MainMeals        int     `json:"main_meals"        validate:"gte=0,lte=10"`
	MonitorsCalories bool    `json:"monitors_calories"`
	Smokes           bool    `json:"smokes"`
	WaterLiters      float64 `json:"water_liters"      validate:"gte=0,lte=10"`
	FamilyHistory    bool    `json:"family_history"`
	ActivityDays     int     `json:"activity_days"     validate:"gte=0,lte=7"`
	TechHours        int     `json:"tech_hours"        validate:"gte=0,lte=24"`
	Snacking         string  `json:"snacking"          validate:"required,oneof=No Sometimes Frequently Always"`
	Transport        string  `json:"transport"         validate:"required"`
}

func (r obesityRequest) toInput() domain.ObesityInput {
	return domain.ObesityInput{
		Age:              r.Age,
		Gender:           r.Gender,
		HeightM:          r.HeightM,
		WeightKg:         r.WeightKg,
		Alcohol:          r.Alcohol,
		HighCaloric:      r.HighCaloric,
		Vegetables:       r.Vegetables,
		MainMeals:        r.MainMeals,
		MonitorsCalories: r.MonitorsCalories,
		Smokes:           r.Smokes,
		WaterLiters:      r.WaterLiters,
		FamilyHistory:    r.FamilyHistory,
		ActivityDays:     r.ActivityDays,
		TechHours:        r.TechHours,
		Snacking:         r.Snacking,
		Transport:        r.Transport,
	}
}

type obesityResponse struct {
	BMI   float64 `json:"bmi"`
	Class int     `json:"class"`
	Label string  `json:"label"`
}
