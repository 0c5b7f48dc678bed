// README: Itinerary value objects shared by the planner output and saved trips.
package types

import "github.com/go-playground/validator/v10"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Itinerary is the structured travel plan produced by the model and saved by users.
type Itinerary struct {
	Destination        string    `json:"destination" bson:"destination" validate:"required"`
	BestTime           string    `json:"best_time" bson:"best_time" validate:"required"`
	DurationDays       int       `json:"duration_days" bson:"duration_days" validate:"required,min=1"`
	TopAttractions     []string  `json:"top_attractions" bson:"top_attractions" validate:"required"`
	SampleItinerary    []DayPlan `json:"sample_itinerary" bson:"sample_itinerary" validate:"required,dive"`
	EstimatedBudgetINR Budget    `json:"estimated_budget_inr" bson:"estimated_budget_inr"`
	LocalTips          []string  `json:"local_tips" bson:"local_tips"`
}

// Validate reports the first missing or out-of-range field.
func (i Itinerary) Validate() error {
	return validate.Struct(i)
}

type DayPlan struct {
	Day  int    `json:"day" bson:"day" validate:"required,min=1"`
	Plan string `json:"plan" bson:"plan" validate:"required"`
}

// Budget is expressed in Indian rupees. Nil means the amount is missing; 0 is a
// valid amount.
type Budget struct {
	Low  *float64 `json:"low" bson:"low" validate:"required"`
	Mid  *float64 `json:"mid" bson:"mid" validate:"required"`
	High *float64 `json:"high" bson:"high" validate:"required"`
}

// NewBudget builds a Budget with all three amounts present.
func NewBudget(low, mid, high float64) Budget {
	return Budget{Low: &low, Mid: &mid, High: &high}
}

// Clone returns a copy that shares no memory with b.
func (b Budget) Clone() Budget {
	return Budget{Low: cloneFloat(b.Low), Mid: cloneFloat(b.Mid), High: cloneFloat(b.High)}
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}

// Clone returns a deep copy of i. Nil slices stay nil.
func (i Itinerary) Clone() Itinerary {
	out := i
	if i.TopAttractions != nil {
		out.TopAttractions = append([]string{}, i.TopAttractions...)
	}
	if i.SampleItinerary != nil {
		out.SampleItinerary = append([]DayPlan{}, i.SampleItinerary...)
	}
	if i.LocalTips != nil {
		out.LocalTips = append([]string{}, i.LocalTips...)
	}
	out.EstimatedBudgetINR = i.EstimatedBudgetINR.Clone()
	return out
}
