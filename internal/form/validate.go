package form

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// MissingFields lists the display names of required fields that are still
// empty on the given step. Preferences has no required fields.
func MissingFields(step SectionID, d Data) []string {
	var missing []string
	need := func(ok bool, name string) {
		if !ok {
			missing = append(missing, name)
		}
	}

	switch step {
	case SectionProfile:
		p := d.UserProfile
		need(p.Age != nil, "Age")
		need(p.Gender != "", "Gender")
		need(p.HeightCm != nil, "Height")
		need(p.TrainingExperience != "", "Training experience")
	case SectionMetrics:
		m := d.InBodyMetrics
		need(m.WeightKg != nil, "Weight")
		need(m.MuscleMassKg != nil, "Muscle mass")
		need(m.SkeletalMuscleMassKg != nil, "Skeletal muscle mass")
		need(m.BodyFatPercent != nil, "Body fat")
		s := m.SegmentalLean
		need(s.RightArm != nil, "Right arm")
		need(s.LeftArm != nil, "Left arm")
		need(s.Trunk != nil, "Trunk")
		need(s.RightLeg != nil, "Right leg")
		need(s.LeftLeg != nil, "Left leg")
	case SectionGoal:
		need(d.Goal.Type != "", "Goal type")
	}
	return missing
}

// ValidateStep reports whether every required field of the step is present.
func ValidateStep(step SectionID, d Data) bool {
	return len(MissingFields(step, d)) == 0
}

// MissingAll lists missing required fields across every step, in step order.
func MissingAll(d Data) []string {
	var missing []string
	for step := SectionProfile; step <= SectionPreferences; step++ {
		missing = append(missing, MissingFields(step, d)...)
	}
	return missing
}

// InvalidValues lists enum fields holding a value the service does not
// accept. Blank optional fields are fine; environment and session length
// must always be set.
func InvalidValues(d Data) []string {
	var bad []string
	check := func(name, v string, allowBlank bool, valid []string) {
		if v == "" && allowBlank {
			return
		}
		if !slices.Contains(valid, v) {
			bad = append(bad, fmt.Sprintf("%s %q (expected one of %s)", name, v, strings.Join(valid, ", ")))
		}
	}
	check("gender", string(d.UserProfile.Gender), true, values(Genders))
	check("training_experience", string(d.UserProfile.TrainingExperience), true, values(Experiences))
	check("goal.type", string(d.Goal.Type), true, values(GoalTypes))
	check("days_per_week", string(d.Goal.DaysPerWeek), true, values(DaysOptions))
	check("environment", string(d.Preferences.Environment), false, values(Environments))
	check("training_time_minutes", string(d.Preferences.TrainingTimeMinutes), false, values(TrainingTimes))
	return bad
}

// CheckSubmittable returns an error naming every missing or invalid field,
// or nil when d can be sent as is.
func CheckSubmittable(d Data) error {
	var errs []error
	if missing := MissingAll(d); len(missing) > 0 {
		errs = append(errs, fmt.Errorf("missing required fields: %s", strings.Join(missing, ", ")))
	}
	if bad := InvalidValues(d); len(bad) > 0 {
		errs = append(errs, fmt.Errorf("invalid values: %s", strings.Join(bad, "; ")))
	}
	return errors.Join(errs...)
}

func values[T ~string](list []T) []string {
	out := make([]string, len(list))
	for i, v := range list {
		out[i] = string(v)
	}
	return out
}
