package testfixtures

import (
	"time"

	"github.com/mark3labs/trainer/internal/form"
	"github.com/mark3labs/trainer/internal/plan"
)

// FixedTime is used wherever a test needs a stable timestamp.
var FixedTime = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

// CompleteData returns form data where every required field is set.
func CompleteData() form.Data {
	d := form.Defaults()
	d.UserProfile = form.UserProfile{
		Age:                form.Int(34),
		Gender:             form.GenderFemale,
		HeightCm:           form.Float(162.5),
		TrainingExperience: form.ExperienceBeginner,
		Injuries:           []string{"膝痛"},
	}
	d.InBodyMetrics = form.InBodyMetrics{
		WeightKg:             form.Float(58.2),
		MuscleMassKg:         form.Float(41.0),
		SkeletalMuscleMassKg: form.Float(22.4),
		BodyFatPercent:       form.Float(26.1),
		SegmentalLean: form.SegmentalLean{
			RightArm: form.Float(2.1),
			LeftArm:  form.Float(2.0),
			Trunk:    form.Float(18.3),
			RightLeg: form.Float(6.4),
			LeftLeg:  form.Float(6.3),
		},
	}
	d.Goal = form.Goal{Type: form.GoalRecomposition, DaysPerWeek: "3"}
	d.Preferences.Equipment = "Dumbbells"
	return d
}

// SampleResult returns a small report and two-day plan.
func SampleResult() *plan.Result {
	return &plan.Result{
		AnalysisReport: &plan.AnalysisReport{
			BodyType:                 "Standard",
			BodyFatEvaluation:        "Slightly high",
			SkeletalMuscleEvaluation: "Average",
			ArmBalance:               "Balanced",
			LegBalance:               "Balanced",
			UpperLowerBalance:        "Lower body dominant",
		},
		TrainingPlan: &plan.TrainingPlan{
			SplitMethod:    "Upper/Lower",
			SplitRationale: "Two sessions cover every muscle group",
			WeeklySchedule: []plan.DayPlan{
				{DayLabel: "Day 1", Focus: "Upper", Exercises: []plan.Exercise{
					{TargetArea: "Chest", ExerciseName: "Push-up", Sets: 3, Reps: "10"},
				}},
				{DayLabel: "Day 2", Focus: "Lower", Exercises: []plan.Exercise{
					{TargetArea: "Legs", ExerciseName: "Goblet squat", Sets: 3, Reps: "12"},
				}},
			},
		},
	}
}

// PartialExtraction returns an extraction that only read the weight,
// muscle mass and trunk.
func PartialExtraction() *form.ExtractionResult {
	return &form.ExtractionResult{
		WeightKg:      form.Float(70),
		MuscleMassKg:  form.Float(30),
		SegmentalLean: &form.PartialSegmentalLean{Trunk: form.Float(20)},
		Confidence:    form.ConfidenceMedium,
		Notes:         "Segmental values partly obscured",
	}
}
