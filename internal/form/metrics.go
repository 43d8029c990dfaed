package form

import (
	"math"
	"strconv"
	"strings"
)

// SegmentalLean is the skeletal muscle mass per body segment, in kg.
type SegmentalLean struct {
	RightArm *float64 `json:"right_arm"`
	LeftArm  *float64 `json:"left_arm"`
	Trunk    *float64 `json:"trunk"`
	RightLeg *float64 `json:"right_leg"`
	LeftLeg  *float64 `json:"left_leg"`
}

// InBodyMetrics is the body-composition wizard section.
type InBodyMetrics struct {
	WeightKg             *float64      `json:"weight_kg"`
	MuscleMassKg         *float64      `json:"muscle_mass_kg"`
	SkeletalMuscleMassKg *float64      `json:"skeletal_muscle_mass_kg"`
	BodyFatPercent       *float64      `json:"body_fat_percent"`
	SegmentalLean        SegmentalLean `json:"segmental_lean"`
}

// Merge returns a copy of m where every non-nil field of r replaces the
// corresponding value. Nil fields in r never clear existing input.
func (m InBodyMetrics) Merge(r ExtractionResult) InBodyMetrics {
	pick(&m.WeightKg, r.WeightKg)
	pick(&m.MuscleMassKg, r.MuscleMassKg)
	pick(&m.SkeletalMuscleMassKg, r.SkeletalMuscleMassKg)
	pick(&m.BodyFatPercent, r.BodyFatPercent)
	if s := r.SegmentalLean; s != nil {
		pick(&m.SegmentalLean.RightArm, s.RightArm)
		pick(&m.SegmentalLean.LeftArm, s.LeftArm)
		pick(&m.SegmentalLean.Trunk, s.Trunk)
		pick(&m.SegmentalLean.RightLeg, s.RightLeg)
		pick(&m.SegmentalLean.LeftLeg, s.LeftLeg)
	}
	return m
}

func pick(dst **float64, src *float64) {
	if src != nil {
		v := *src
		*dst = &v
	}
}

// ParseDecimal coerces user input to a positive decimal. Anything that is
// not a positive finite number yields nil rather than an error.
func ParseDecimal(s string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// ParseCount coerces user input to a positive integer, nil otherwise.
func ParseCount(s string) *int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return nil
	}
	return &v
}

// FormatDecimal renders an optional decimal for an input field.
func FormatDecimal(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// FormatCount renders an optional integer for an input field.
func FormatCount(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }
