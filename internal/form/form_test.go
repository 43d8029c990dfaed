package form

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func validData() Data {
	d := Defaults()
	d.UserProfile = UserProfile{
		Age: Int(34), Gender: GenderFemale, HeightCm: Float(162.5),
		TrainingExperience: ExperienceBeginner, Injuries: []string{"腰痛"},
	}
	d.InBodyMetrics = InBodyMetrics{
		WeightKg: Float(58), MuscleMassKg: Float(40.1), SkeletalMuscleMassKg: Float(22.3), BodyFatPercent: Float(27.4),
		SegmentalLean: SegmentalLean{
			RightArm: Float(2.1), LeftArm: Float(2.0), Trunk: Float(18.5), RightLeg: Float(6.9), LeftLeg: Float(6.8),
		},
	}
	d.Goal = Goal{Type: GoalRecomposition, DaysPerWeek: "3"}
	return d
}

func TestValidateStep_ValidData(t *testing.T) {
	d := validData()
	for step := SectionProfile; step < StepCount; step++ {
		require.True(t, ValidateStep(step, d), "step %d", step)
		require.Empty(t, MissingFields(step, d))
	}
}

func TestValidateStep_EachRequiredFieldBlocks(t *testing.T) {
	tests := []struct {
		name  string
		step  SectionID
		clear func(*Data)
	}{
		{"age", SectionProfile, func(d *Data) { d.UserProfile.Age = nil }},
		{"gender", SectionProfile, func(d *Data) { d.UserProfile.Gender = "" }},
		{"height", SectionProfile, func(d *Data) { d.UserProfile.HeightCm = nil }},
		{"experience", SectionProfile, func(d *Data) { d.UserProfile.TrainingExperience = "" }},
		{"weight", SectionMetrics, func(d *Data) { d.InBodyMetrics.WeightKg = nil }},
		{"muscle", SectionMetrics, func(d *Data) { d.InBodyMetrics.MuscleMassKg = nil }},
		{"skeletal", SectionMetrics, func(d *Data) { d.InBodyMetrics.SkeletalMuscleMassKg = nil }},
		{"fat", SectionMetrics, func(d *Data) { d.InBodyMetrics.BodyFatPercent = nil }},
		{"right arm", SectionMetrics, func(d *Data) { d.InBodyMetrics.SegmentalLean.RightArm = nil }},
		{"left arm", SectionMetrics, func(d *Data) { d.InBodyMetrics.SegmentalLean.LeftArm = nil }},
		{"trunk", SectionMetrics, func(d *Data) { d.InBodyMetrics.SegmentalLean.Trunk = nil }},
		{"right leg", SectionMetrics, func(d *Data) { d.InBodyMetrics.SegmentalLean.RightLeg = nil }},
		{"left leg", SectionMetrics, func(d *Data) { d.InBodyMetrics.SegmentalLean.LeftLeg = nil }},
		{"goal type", SectionGoal, func(d *Data) { d.Goal.Type = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validData()
			tt.clear(&d)
			require.False(t, ValidateStep(tt.step, d))
			require.Len(t, MissingFields(tt.step, d), 1)
		})
	}
}

func TestValidateStep_PreferencesAlwaysValid(t *testing.T) {
	require.True(t, ValidateStep(SectionPreferences, Data{}))
	require.True(t, ValidateStep(SectionPreferences, Defaults()))
}

func TestValidateStep_DaysPerWeekOptional(t *testing.T) {
	d := validData()
	d.Goal.DaysPerWeek = ""
	require.True(t, ValidateStep(SectionGoal, d))
}

func TestInjuries_Toggle(t *testing.T) {
	p := UserProfile{}
	p = p.ToggleInjury("膝痛")
	require.Equal(t, []string{"膝痛"}, p.Injuries)
	p = p.ToggleInjury("腰痛")
	require.Equal(t, []string{"膝痛", "腰痛"}, p.Injuries)
	p = p.ToggleInjury("膝痛")
	require.Equal(t, []string{"腰痛"}, p.Injuries)
}

func TestInjuries_AddDuplicateIsNoop(t *testing.T) {
	p := UserProfile{Injuries: []string{"Tennis elbow"}}

	p2, added := p.AddInjury("Tennis elbow")
	require.False(t, added)
	require.Equal(t, p, p2)

	p3, added := p.AddInjury("tennis elbow")
	require.True(t, added, "matching is case-sensitive")
	require.Equal(t, []string{"Tennis elbow", "tennis elbow"}, p3.Injuries)

	_, added = p.AddInjury("   ")
	require.False(t, added)
}

func TestInjuries_CatalogAndManualAgree(t *testing.T) {
	label := InjuryCatalog[0].Label

	viaCatalog := UserProfile{}.ToggleInjury(label)
	viaManual, added := UserProfile{}.AddInjury("  " + label + " ")
	require.True(t, added)
	require.Equal(t, viaCatalog.Injuries, viaManual.Injuries)

	// Once present, neither path duplicates it.
	again, added := viaCatalog.AddInjury(label)
	require.False(t, added)
	require.Len(t, again.Injuries, 1)
}

func TestInjuries_DoesNotAliasOriginal(t *testing.T) {
	orig := UserProfile{Injuries: make([]string, 1, 4)}
	orig.Injuries[0] = "a"
	next := orig.ToggleInjury("b")
	require.Equal(t, []string{"a"}, orig.Injuries)
	require.Equal(t, []string{"a", "b"}, next.Injuries)
}

func TestInjuries_RemoveAt(t *testing.T) {
	p := UserProfile{Injuries: []string{"a", "b", "c"}}
	require.Equal(t, []string{"a", "c"}, p.RemoveInjuryAt(1).Injuries)
	require.Equal(t, p, p.RemoveInjuryAt(5))
	require.Equal(t, []string{"a", "b", "c"}, p.Injuries)
}

func TestCatalogByCategory_CoversCatalog(t *testing.T) {
	total := 0
	for _, c := range InjuryCategories {
		total += len(CatalogByCategory(c))
	}
	require.Equal(t, len(InjuryCatalog), total)
}

func TestMerge_NullsNeverOverwrite(t *testing.T) {
	existing := InBodyMetrics{WeightKg: Float(70)}
	merged := existing.Merge(ExtractionResult{WeightKg: nil, MuscleMassKg: Float(30)})

	require.Equal(t, 70.0, *merged.WeightKg)
	require.Equal(t, 30.0, *merged.MuscleMassKg)
	require.Nil(t, merged.SkeletalMuscleMassKg)
	require.Nil(t, existing.MuscleMassKg, "merge must not mutate the receiver")
}

func TestMerge_Segmental(t *testing.T) {
	existing := InBodyMetrics{SegmentalLean: SegmentalLean{Trunk: Float(20), LeftLeg: Float(7)}}
	merged := existing.Merge(ExtractionResult{SegmentalLean: &PartialSegmentalLean{Trunk: Float(21.5), RightArm: Float(2.4)}})

	require.Equal(t, 21.5, *merged.SegmentalLean.Trunk)
	require.Equal(t, 2.4, *merged.SegmentalLean.RightArm)
	require.Equal(t, 7.0, *merged.SegmentalLean.LeftLeg)
	require.Equal(t, 20.0, *existing.SegmentalLean.Trunk)

	untouched := existing.Merge(ExtractionResult{})
	require.Equal(t, existing, untouched)
}

func TestExtractionResult_DecodeNulls(t *testing.T) {
	var r ExtractionResult
	raw := `{"weight_kg": null, "muscle_mass_kg": 30, "segmental_lean": {"trunk": 19.2, "left_arm": null}, "confidence": "medium", "notes": "blurry"}`
	require.NoError(t, json.Unmarshal([]byte(raw), &r))
	require.Nil(t, r.WeightKg)
	require.Equal(t, 30.0, *r.MuscleMassKg)
	require.Nil(t, r.SegmentalLean.LeftArm)
	require.Equal(t, ConfidenceMedium, r.Confidence)
	require.Equal(t, 2, r.FieldCount())
}

func TestParseDecimal(t *testing.T) {
	tests := map[string]*float64{
		"72.5":  Float(72.5),
		" 60 ":  Float(60),
		"":      nil,
		"abc":   nil,
		"0":     nil,
		"-3":    nil,
		"1e400": nil,
		"NaN":   nil,
	}
	for in, want := range tests {
		require.Equal(t, want, ParseDecimal(in), "input %q", in)
	}
}

func TestParseCount(t *testing.T) {
	require.Equal(t, Int(30), ParseCount("30"))
	require.Nil(t, ParseCount("30.5"))
	require.Nil(t, ParseCount("x"))
	require.Nil(t, ParseCount("0"))
}

func TestFormatRoundTrip(t *testing.T) {
	require.Equal(t, "72.5", FormatDecimal(Float(72.5)))
	require.Equal(t, "", FormatDecimal(nil))
	require.Equal(t, "41", FormatCount(Int(41)))
	require.Equal(t, "", FormatCount(nil))
}

func TestData_WireFormat(t *testing.T) {
	out, err := json.Marshal(Defaults())
	require.NoError(t, err)

	var m map[string]map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	require.Equal(t, []any{}, m["user_profile"]["injuries"])
	require.Equal(t, "home", m["preferences"]["environment"])
	require.Equal(t, "60", m["preferences"]["training_time_minutes"])
	require.Contains(t, m["inbody_metrics"], "segmental_lean")

	p := UserProfile{}
	out, err = json.Marshal(p)
	require.NoError(t, err)
	require.Contains(t, string(out), `"injuries":[]`)
}

func TestData_WithReplacesOnlyThatSection(t *testing.T) {
	d := validData()
	next := d.With(Goal{Type: GoalMaintain})

	require.Equal(t, Goal{Type: GoalMaintain}, next.Goal)
	require.Equal(t, d.UserProfile, next.UserProfile)
	require.Equal(t, d.InBodyMetrics, next.InBodyMetrics)
	require.Equal(t, d.Preferences, next.Preferences)
	require.Equal(t, GoalRecomposition, d.Goal.Type)
}

func TestData_SectionLookup(t *testing.T) {
	d := validData()
	for id := SectionProfile; id < StepCount; id++ {
		require.Equal(t, id, d.Section(id).SectionID())
	}
}

func TestEnumLabels(t *testing.T) {
	require.Equal(t, "Female", GenderFemale.Label())
	require.Equal(t, "Advanced", ExperienceAdvanced.Label())
	require.Equal(t, "Flexible", DaysFlexible.Label())
	require.Equal(t, "4 days / week", DaysPerWeek("4").Label())
	require.Equal(t, "90 min", TrainingTime("90").Label())
	require.Equal(t, "warning", ConfidenceMedium.Role())
	require.Equal(t, "muted", Confidence("").Role())
}

func TestMissingAll(t *testing.T) {
	require.Empty(t, MissingAll(validData()))

	d := validData()
	d.UserProfile.Age = nil
	d.Goal.Type = ""
	require.Equal(t, []string{"Age", "Goal type"}, MissingAll(d))

	require.Len(t, MissingAll(Defaults()), 4+9+1)
}

func TestInvalidValues(t *testing.T) {
	require.Empty(t, InvalidValues(validData()))
	require.Empty(t, InvalidValues(Defaults()), "blank optional enums are not invalid")

	d := validData()
	d.UserProfile.Gender = "male"
	d.UserProfile.TrainingExperience = "expert"
	d.Goal.Type = "diet"
	d.Goal.DaysPerWeek = "7"
	d.Preferences.Environment = ""
	d.Preferences.TrainingTimeMinutes = "20"
	bad := InvalidValues(d)
	require.Len(t, bad, 6)
	require.Contains(t, bad[0], `gender "male"`)
	require.Contains(t, bad[0], string(GenderMale))
	require.Contains(t, bad[4], `environment ""`)
}

func TestCheckSubmittable(t *testing.T) {
	require.NoError(t, CheckSubmittable(validData()))

	err := CheckSubmittable(Defaults())
	require.ErrorContains(t, err, "missing required fields: Age")
	require.NotContains(t, err.Error(), "invalid values")

	d := validData()
	d.Preferences.TrainingTimeMinutes = "25"
	err = CheckSubmittable(d)
	require.ErrorContains(t, err, `invalid values: training_time_minutes "25"`)
	require.NotContains(t, err.Error(), "missing")
}
