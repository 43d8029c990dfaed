package form

// Goal is the third wizard section.
type Goal struct {
	Type        GoalType    `json:"type"`
	DaysPerWeek DaysPerWeek `json:"days_per_week"`
}

// Preferences is the last wizard section. Every field is optional.
type Preferences struct {
	Environment         Environment  `json:"environment"`
	TrainingTimeMinutes TrainingTime `json:"training_time_minutes"`
	Equipment           string       `json:"equipment"`
	ScheduleNotes       string       `json:"schedule_notes"`
	SpecificRequests    string       `json:"specific_requests"`
}

// Data is the aggregate of all four sections, sent as the generate payload.
type Data struct {
	UserProfile   UserProfile   `json:"user_profile"`
	InBodyMetrics InBodyMetrics `json:"inbody_metrics"`
	Goal          Goal          `json:"goal"`
	Preferences   Preferences   `json:"preferences"`
}

// Defaults returns the aggregate a new session starts with.
func Defaults() Data {
	return Data{
		UserProfile: UserProfile{Injuries: []string{}},
		Preferences: Preferences{
			Environment:         EnvironmentHome,
			TrainingTimeMinutes: "60",
		},
	}
}

// SectionID identifies one of the four wizard sections.
type SectionID int

const (
	SectionProfile SectionID = iota
	SectionMetrics
	SectionGoal
	SectionPreferences
)

// StepCount is the number of wizard steps, one per section.
const StepCount = 4

// Title returns the step label shown in the step indicator.
func (s SectionID) Title() string {
	switch s {
	case SectionProfile:
		return "Profile"
	case SectionMetrics:
		return "InBody Data"
	case SectionGoal:
		return "Goal"
	case SectionPreferences:
		return "Preferences"
	}
	return ""
}

// Section is implemented by the four section records. Updates always
// carry a whole section value.
type Section interface {
	SectionID() SectionID
}

func (UserProfile) SectionID() SectionID   { return SectionProfile }
func (InBodyMetrics) SectionID() SectionID { return SectionMetrics }
func (Goal) SectionID() SectionID          { return SectionGoal }
func (Preferences) SectionID() SectionID   { return SectionPreferences }

// With returns a copy of d with the given section replaced wholesale.
func (d Data) With(s Section) Data {
	switch v := s.(type) {
	case UserProfile:
		d.UserProfile = v
	case InBodyMetrics:
		d.InBodyMetrics = v
	case Goal:
		d.Goal = v
	case Preferences:
		d.Preferences = v
	}
	return d
}

// Section returns the current value of the section with the given id.
func (d Data) Section(id SectionID) Section {
	switch id {
	case SectionProfile:
		return d.UserProfile
	case SectionMetrics:
		return d.InBodyMetrics
	case SectionGoal:
		return d.Goal
	default:
		return d.Preferences
	}
}
