package planner

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// validateItinerary checks that raw is a JSON object carrying every itinerary key
// with the expected JSON type. local_tips may be null.
func validateItinerary(raw string) error {
	doc, err := parseObject(raw)
	if err != nil {
		return err
	}
	if err := requireString(doc, "destination"); err != nil {
		return err
	}
	if err := requireString(doc, "best_time"); err != nil {
		return err
	}
	if err := requirePositiveInt(doc.Get("duration_days"), "duration_days"); err != nil {
		return err
	}
	if err := requireStringArray(doc, "top_attractions", false); err != nil {
		return err
	}
	if err := requireStringArray(doc, "local_tips", true); err != nil {
		return err
	}

	days := doc.Get("sample_itinerary")
	if !days.IsArray() {
		return fieldError("sample_itinerary", days, "array")
	}
	for i, day := range days.Array() {
		if !day.IsObject() {
			return fieldError(fmt.Sprintf("sample_itinerary[%d]", i), day, "object")
		}
		if err := requirePositiveInt(day.Get("day"), fmt.Sprintf("sample_itinerary[%d].day", i)); err != nil {
			return err
		}
		if err := requireString(day, "plan"); err != nil {
			return fmt.Errorf("sample_itinerary[%d]: %w", i, err)
		}
	}

	budget := doc.Get("estimated_budget_inr")
	if !budget.IsObject() {
		return fieldError("estimated_budget_inr", budget, "object")
	}
	for _, key := range []string{"low", "mid", "high"} {
		v := budget.Get(key)
		if v.Type != gjson.Number {
			return fieldError("estimated_budget_inr."+key, v, "number")
		}
	}
	return nil
}

// validatePlaceList checks the {city: [string], country: [string]} shape. Null lists are allowed.
func validatePlaceList(raw string) error {
	doc, err := parseObject(raw)
	if err != nil {
		return err
	}
	if err := requireStringArray(doc, "city", true); err != nil {
		return err
	}
	return requireStringArray(doc, "country", true)
}

func parseObject(raw string) (gjson.Result, error) {
	if !gjson.Valid(raw) {
		return gjson.Result{}, fmt.Errorf("not valid JSON")
	}
	doc := gjson.Parse(raw)
	if !doc.IsObject() {
		return gjson.Result{}, fmt.Errorf("top-level value is %s, want object", doc.Type)
	}
	return doc, nil
}

func requireString(doc gjson.Result, key string) error {
	v := doc.Get(key)
	if v.Type != gjson.String {
		return fieldError(key, v, "string")
	}
	return nil
}

func requirePositiveInt(v gjson.Result, name string) error {
	if v.Type != gjson.Number || strings.ContainsAny(v.Raw, ".eE") || v.Int() < 1 {
		return fieldError(name, v, "integer >= 1")
	}
	return nil
}

func requireStringArray(doc gjson.Result, key string, nullable bool) error {
	v := doc.Get(key)
	if nullable && v.Exists() && v.Type == gjson.Null {
		return nil
	}
	if !v.IsArray() {
		return fieldError(key, v, "array of strings")
	}
	for i, item := range v.Array() {
		if item.Type != gjson.String {
			return fieldError(fmt.Sprintf("%s[%d]", key, i), item, "string")
		}
	}
	return nil
}

func fieldError(name string, v gjson.Result, want string) error {
	if !v.Exists() {
		return fmt.Errorf("missing field %q", name)
	}
	return fmt.Errorf("field %q is %s, want %s", name, v.Type, want)
}
