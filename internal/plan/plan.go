// Package plan holds the analysis report and training plan returned by the
// plan service, and renders them as markdown.
package plan

// Result is the generate response.
type Result struct {
	AnalysisReport *AnalysisReport `json:"analysis_report"`
	TrainingPlan   *TrainingPlan   `json:"training_plan"`
}

// AnalysisReport is the body-composition interpretation.
type AnalysisReport struct {
	BodyType                 string   `json:"body_type"`
	BodyFatEvaluation        string   `json:"body_fat_evaluation"`
	SkeletalMuscleEvaluation string   `json:"skeletal_muscle_evaluation"`
	ArmBalance               string   `json:"arm_balance"`
	LegBalance               string   `json:"leg_balance"`
	UpperLowerBalance        string   `json:"upper_lower_balance"`
	RiskFactors              []string `json:"risk_factors,omitempty"`
	Concerns                 []string `json:"concerns,omitempty"`
}

// TrainingPlan is the weekly programme.
type TrainingPlan struct {
	SplitMethod    string    `json:"split_method"`
	SplitRationale string    `json:"split_rationale"`
	WeeklySchedule []DayPlan `json:"weekly_schedule"`
	Modifications  []string  `json:"modifications,omitempty"`
	PriorityPoints []string  `json:"priority_points,omitempty"`
	NutritionTips  []string  `json:"nutrition_tips,omitempty"`
}

// DayPlan is one training day.
type DayPlan struct {
	DayLabel  string     `json:"day_label"`
	Focus     string     `json:"focus"`
	Exercises []Exercise `json:"exercises"`
}

// Exercise is one row of a day's table.
type Exercise struct {
	TargetArea      string   `json:"target_area"`
	ExerciseName    string   `json:"exercise_name"`
	Sets            int      `json:"sets"`
	Reps            string   `json:"reps"`
	IntervalSeconds int      `json:"interval_seconds,omitempty"`
	Notes           string   `json:"notes,omitempty"`
	Instructions    []string `json:"instructions,omitempty"`
}

// DefaultIntervalSeconds is shown when the plan omits a rest interval.
const DefaultIntervalSeconds = 60

// Rest returns the rest interval, falling back to DefaultIntervalSeconds.
func (e Exercise) Rest() int {
	if e.IntervalSeconds <= 0 {
		return DefaultIntervalSeconds
	}
	return e.IntervalSeconds
}
