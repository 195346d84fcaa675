// Package filter evaluates a collection's boolean rule tree over a
// MediaMetadata row. Rules arrive as an opaque JSON blob (the
// collection definition) and are parsed once into a tagged-variant
// Rule, then dispatched statically rather than by reflecting over field
// names at evaluation time.
package filter

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/curatord/curatord/pkg/storage"
)

// Logic is the boolean reducer applied across a rule set.
type Logic string

const (
	LogicAND Logic = "AND"
	LogicOR  Logic = "OR"
)

// Category distinguishes the field families a Rule can target; each has
// its own allowed operator set and evaluation semantics.
type Category int

const (
	CategoryObjectList Category = iota
	CategoryStringList
	CategoryDate
	CategoryTitle
	CategoryNumeric
)

// Rule is one parsed {field, operator, value} entry, already classified
// into its Category so Evaluate never has to re-dispatch on field name.
type Rule struct {
	Field    string
	Operator string
	Value    json.RawMessage
	Category Category
}

// Definition is a parsed `filter`-type collection definition.
type Definition struct {
	ItemTypes []storage.ItemType `json:"item_type"`
	Logic     Logic              `json:"logic"`
	RawRules  []rawRule          `json:"rules"`
}

type rawRule struct {
	Field    string          `json:"field"`
	Operator string          `json:"operator"`
	Value    json.RawMessage `json:"value"`
}

// ParseDefinition decodes a filter collection's opaque definition blob.
func ParseDefinition(raw []byte) (Definition, error) {
	var def Definition
	if err := json.Unmarshal(raw, &def); err != nil {
		return Definition{}, err
	}
	return def, nil
}

// objectListFields / stringListFields / dateFields classify a field
// name into its Category. Anything not named here falls into Numeric
// per the "other => numeric" dispatch rule; Title is the one exception
// handled explicitly below.
var (
	objectListFields = map[string]bool{"actors": true, "directors": true}
	stringListFields = map[string]bool{"genres": true, "countries": true, "studios": true, "tags": true}
	dateFields       = map[string]bool{"release_date": true, "date_added": true}
)

func classify(field string) Category {
	switch {
	case objectListFields[field]:
		return CategoryObjectList
	case stringListFields[field]:
		return CategoryStringList
	case dateFields[field]:
		return CategoryDate
	case field == "title":
		return CategoryTitle
	default:
		return CategoryNumeric
	}
}

// Rules returns the definition's rule set with each entry classified.
func (d Definition) Rules() []Rule {
	out := make([]Rule, 0, len(d.RawRules))
	for _, r := range d.RawRules {
		out = append(out, Rule{Field: r.Field, Operator: r.Operator, Value: r.Value, Category: classify(r.Field)})
	}
	return out
}

// Evaluate reduces every rule over item per the definition's logic.
// Evaluation is pure and never panics: malformed rules, unknown
// field/operator combinations, and type-coercion failures all evaluate
// to false rather than erroring.
func Evaluate(def Definition, item storage.MediaMetadata) bool {
	rules := def.Rules()
	if len(rules) == 0 {
		return true
	}

	logic := def.Logic
	if logic == "" {
		logic = LogicAND
	}

	for _, r := range rules {
		result := evaluateRule(r, item)
		switch logic {
		case LogicOR:
			if result {
				return true
			}
		default:
			if !result {
				return false
			}
		}
	}

	return logic != LogicOR
}

func evaluateRule(r Rule, item storage.MediaMetadata) (result bool) {
	defer func() {
		if recover() != nil {
			result = false
		}
	}()

	switch r.Category {
	case CategoryObjectList:
		return evaluateObjectList(r, item)
	case CategoryStringList:
		return evaluateStringList(r, item)
	case CategoryDate:
		return evaluateDate(r, item)
	case CategoryTitle:
		return evaluateTitle(r, item)
	default:
		return evaluateNumeric(r, item)
	}
}

func fieldValue(r Rule) (string, []string, bool) {
	var single string
	if json.Unmarshal(r.Value, &single) == nil {
		return single, nil, true
	}
	var list []string
	if json.Unmarshal(r.Value, &list) == nil {
		return "", list, true
	}
	return "", nil, false
}

func objectListValues(r Rule) []string {
	_, list, ok := fieldValue(r)
	if ok && list != nil {
		return list
	}
	single, _, _ := fieldValue(r)
	if single != "" {
		return []string{single}
	}
	return nil
}

func evaluateObjectList(r Rule, item storage.MediaMetadata) bool {
	var people []storage.Person
	switch r.Field {
	case "actors":
		people = item.Actors
	case "directors":
		people = item.Directors
	default:
		return false
	}

	names := make([]string, 0, len(people))
	for _, p := range people {
		names = append(names, p.Name)
	}

	return matchSet(r.Operator, names, objectListValues(r))
}

func evaluateStringList(r Rule, item storage.MediaMetadata) bool {
	var values []string
	switch r.Field {
	case "genres":
		values = item.Genres
	case "countries":
		values = item.Countries
	case "studios":
		values = item.Studios
	case "tags":
		values = item.Tags
	default:
		return false
	}

	return matchSet(r.Operator, values, objectListValues(r))
}

func matchSet(operator string, haystack, needles []string) bool {
	set := make(map[string]bool, len(haystack))
	for _, v := range haystack {
		set[v] = true
	}

	switch operator {
	case "is_one_of":
		for _, n := range needles {
			if set[n] {
				return true
			}
		}
		return false
	case "is_none_of":
		for _, n := range needles {
			if set[n] {
				return false
			}
		}
		return true
	case "contains":
		if len(needles) != 1 {
			return false
		}
		return set[needles[0]]
	default:
		return false
	}
}

func evaluateDate(r Rule, item storage.MediaMetadata) bool {
	var t *time.Time
	switch r.Field {
	case "release_date":
		t = item.ReleaseDate
	case "date_added":
		t = &item.DateAdded
	default:
		return false
	}
	if t == nil {
		return false
	}

	var days int
	if err := json.Unmarshal(r.Value, &days); err != nil {
		return false
	}

	now := time.Now().UTC()
	cutoff := now.AddDate(0, 0, -days)

	switch r.Operator {
	case "in_last_days":
		return !t.Before(cutoff) && !t.After(now)
	case "not_in_last_days":
		return t.Before(cutoff)
	default:
		return false
	}
}

func evaluateTitle(r Rule, item storage.MediaMetadata) bool {
	single, _, ok := fieldValue(r)
	if !ok {
		return false
	}

	title := strings.ToLower(item.Title)
	needle := strings.ToLower(single)

	switch r.Operator {
	case "contains":
		return strings.Contains(title, needle)
	case "does_not_contain":
		return !strings.Contains(title, needle)
	case "starts_with":
		return strings.HasPrefix(title, needle)
	case "ends_with":
		return strings.HasSuffix(title, needle)
	default:
		return false
	}
}

func evaluateNumeric(r Rule, item storage.MediaMetadata) bool {
	fieldVal, ok := numericFieldValue(r.Field, item)
	if !ok {
		return false
	}

	var ruleRaw any
	if err := json.Unmarshal(r.Value, &ruleRaw); err != nil {
		return false
	}

	switch r.Operator {
	case "eq":
		return strconv.FormatFloat(fieldVal, 'f', -1, 64) == fmt.Sprint(ruleRaw)
	case "gte", "lte":
		ruleVal, ok := toFloat(ruleRaw)
		if !ok {
			return false
		}
		if r.Operator == "gte" {
			return fieldVal >= ruleVal
		}
		return fieldVal <= ruleVal
	default:
		return false
	}
}

func numericFieldValue(field string, item storage.MediaMetadata) (float64, bool) {
	switch field {
	case "rating":
		return item.Rating, true
	case "release_year":
		return float64(item.ReleaseYear), true
	default:
		return 0, false
	}
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case string:
		f, err := strconv.ParseFloat(t, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
