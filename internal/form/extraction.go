package form

// PartialSegmentalLean is the segmental part of an extraction; any field may be null.
type PartialSegmentalLean struct {
	RightArm *float64 `json:"right_arm"`
	LeftArm  *float64 `json:"left_arm"`
	Trunk    *float64 `json:"trunk"`
	RightLeg *float64 `json:"right_leg"`
	LeftLeg  *float64 `json:"left_leg"`
}

// ExtractionResult is what the extraction service read off an InBody sheet.
// It is merged once into InBodyMetrics and then discarded.
type ExtractionResult struct {
	WeightKg             *float64              `json:"weight_kg"`
	MuscleMassKg         *float64              `json:"muscle_mass_kg"`
	SkeletalMuscleMassKg *float64              `json:"skeletal_muscle_mass_kg"`
	BodyFatPercent       *float64              `json:"body_fat_percent"`
	SegmentalLean        *PartialSegmentalLean `json:"segmental_lean"`
	Confidence           Confidence            `json:"confidence"`
	Notes                string                `json:"notes,omitempty"`
}

// FieldCount returns how many metric values the extraction supplied.
func (r ExtractionResult) FieldCount() int {
	n := 0
	for _, v := range []*float64{r.WeightKg, r.MuscleMassKg, r.SkeletalMuscleMassKg, r.BodyFatPercent} {
		if v != nil {
			n++
		}
	}
	if s := r.SegmentalLean; s != nil {
		for _, v := range []*float64{s.RightArm, s.LeftArm, s.Trunk, s.RightLeg, s.LeftLeg} {
			if v != nil {
				n++
			}
		}
	}
	return n
}
