package form

// Enum values are the exact strings the plan service accepts. Labels are
// what the terminal shows.

// Gender of the user.
type Gender string

const (
	GenderMale   Gender = "男性"
	GenderFemale Gender = "女性"
)

// Genders lists the selectable genders in display order.
var Genders = []Gender{GenderMale, GenderFemale}

// Label returns the display label.
func (g Gender) Label() string {
	switch g {
	case GenderMale:
		return "Male"
	case GenderFemale:
		return "Female"
	}
	return ""
}

// Experience is the user's training experience level.
type Experience string

const (
	ExperienceBeginner     Experience = "初級者"
	ExperienceIntermediate Experience = "中級者"
	ExperienceAdvanced     Experience = "上級者"
)

// Experiences lists the selectable levels in display order.
var Experiences = []Experience{ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced}

// Label returns the display label.
func (e Experience) Label() string {
	switch e {
	case ExperienceBeginner:
		return "Beginner"
	case ExperienceIntermediate:
		return "Intermediate"
	case ExperienceAdvanced:
		return "Advanced"
	}
	return ""
}

// GoalType is the training goal.
type GoalType string

const (
	GoalLoseWeight    GoalType = "体重を減らしたい"
	GoalGainMuscle    GoalType = "筋肉を増やしたい"
	GoalRecomposition GoalType = "体を鍛え直したい"
	GoalMaintain      GoalType = "健康を維持したい"
)

// GoalTypes lists the selectable goals in display order.
var GoalTypes = []GoalType{GoalLoseWeight, GoalGainMuscle, GoalRecomposition, GoalMaintain}

// Label returns the display label.
func (g GoalType) Label() string {
	switch g {
	case GoalLoseWeight:
		return "Lose weight"
	case GoalGainMuscle:
		return "Gain muscle"
	case GoalRecomposition:
		return "Recomposition (lose fat + build strength)"
	case GoalMaintain:
		return "Maintain health"
	}
	return ""
}

// DaysPerWeek is either DaysFlexible or a count from "2" to "6".
// The empty value means not chosen.
type DaysPerWeek string

// DaysFlexible lets the planner choose the training frequency.
const DaysFlexible DaysPerWeek = "おまかせ"

// DaysOptions lists the selectable frequencies in display order.
var DaysOptions = []DaysPerWeek{DaysFlexible, "2", "3", "4", "5", "6"}

// Label returns the display label.
func (d DaysPerWeek) Label() string {
	switch d {
	case "":
		return ""
	case DaysFlexible:
		return "Flexible"
	}
	return d.String() + " days / week"
}

func (d DaysPerWeek) String() string { return string(d) }

// Environment is where the user trains.
type Environment string

const (
	EnvironmentHome Environment = "home"
	EnvironmentGym  Environment = "gym"
)

// Environments lists the selectable environments in display order.
var Environments = []Environment{EnvironmentHome, EnvironmentGym}

// Label returns the display label.
func (e Environment) Label() string {
	switch e {
	case EnvironmentHome:
		return "Home workout"
	case EnvironmentGym:
		return "Gym workout"
	}
	return ""
}

// TrainingTime is the session length in minutes, encoded as a string on the wire.
type TrainingTime string

// TrainingTimes lists the fixed durations the service accepts.
var TrainingTimes = []TrainingTime{"5", "10", "15", "30", "45", "60", "90", "120"}

// Label returns the display label.
func (t TrainingTime) Label() string {
	if t == "" {
		return ""
	}
	return string(t) + " min"
}

// Confidence is the extraction service's self-assessed reliability.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Label returns the badge text.
func (c Confidence) Label() string {
	switch c {
	case ConfidenceHigh:
		return "High confidence"
	case ConfidenceMedium:
		return "Medium confidence"
	case ConfidenceLow:
		return "Low confidence"
	}
	return "Unknown confidence"
}

// Role maps the confidence to a palette role name: success, warning, error or muted.
func (c Confidence) Role() string {
	switch c {
	case ConfidenceHigh:
		return "success"
	case ConfidenceMedium:
		return "warning"
	case ConfidenceLow:
		return "error"
	}
	return "muted"
}
