package models

// Profile holds the user's personal information and the inputs for the
// derived metrics (BMI, daily calories, water recommendation). Zero values
// mean "not provided" and make the calculators fall back to their defaults.
type Profile struct {
	Name          string  `json:"name"`
	Email         string  `json:"email" validate:"omitempty,email"`
	Age           int     `json:"age" validate:"min=0"`
	Gender        string  `json:"gender" validate:"omitempty,oneof=male female other"`
	Height        float64 `json:"height" validate:"min=0"` // cm
	Weight        float64 `json:"weight" validate:"min=0"` // kg
	ActivityLevel string  `json:"activityLevel" validate:"omitempty,oneof=sedentary light moderate active veryActive"`
	Goal          string  `json:"goal" validate:"omitempty,oneof=lose maintain gain"`
}

func (p *Profile) Validate() error {
	return validate.Struct(p)
}
