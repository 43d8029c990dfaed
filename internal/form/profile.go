package form

import (
	"encoding/json"
	"slices"
	"strings"
)

// UserProfile is the first wizard section.
type UserProfile struct {
	Age                *int       `json:"age"`
	Gender             Gender     `json:"gender"`
	HeightCm           *float64   `json:"height_cm"`
	TrainingExperience Experience `json:"training_experience"`
	Injuries           []string   `json:"injuries"`
}

// MarshalJSON always encodes injuries as a list, never null.
func (p UserProfile) MarshalJSON() ([]byte, error) {
	type wire UserProfile
	w := wire(p)
	if w.Injuries == nil {
		w.Injuries = []string{}
	}
	return json.Marshal(w)
}

// HasInjury reports whether label is already recorded (exact match).
func (p UserProfile) HasInjury(label string) bool {
	return slices.Contains(p.Injuries, label)
}

// ToggleInjury removes label if present, otherwise appends it.
func (p UserProfile) ToggleInjury(label string) UserProfile {
	if p.HasInjury(label) {
		p.Injuries = slices.DeleteFunc(slices.Clone(p.Injuries), func(s string) bool { return s == label })
		return p
	}
	p.Injuries = append(slices.Clone(p.Injuries), label)
	return p
}

// AddInjury appends a manually typed injury. Surrounding whitespace is
// trimmed; empty or duplicate entries leave the profile unchanged and
// report false.
func (p UserProfile) AddInjury(label string) (UserProfile, bool) {
	label = strings.TrimSpace(label)
	if label == "" || p.HasInjury(label) {
		return p, false
	}
	p.Injuries = append(slices.Clone(p.Injuries), label)
	return p, true
}

// RemoveInjuryAt drops the injury at index i. Out of range is a no-op.
func (p UserProfile) RemoveInjuryAt(i int) UserProfile {
	if i < 0 || i >= len(p.Injuries) {
		return p
	}
	p.Injuries = slices.Delete(slices.Clone(p.Injuries), i, i+1)
	return p
}

// InjuryCategory groups catalog entries for display.
type InjuryCategory string

const (
	CategoryJoint    InjuryCategory = "Joints & pain"
	CategorySpine    InjuryCategory = "Spine & nerves"
	CategoryInternal InjuryCategory = "Internal conditions"
	CategoryBone     InjuryCategory = "Bone & tendon"
)

// InjuryCategories lists categories in display order.
var InjuryCategories = []InjuryCategory{CategoryJoint, CategorySpine, CategoryInternal, CategoryBone}

// Injury is a catalog entry. Label is the value recorded in the profile.
type Injury struct {
	Label    string
	Display  string
	Category InjuryCategory
}

// InjuryCatalog holds the common conditions offered for one-key selection.
var InjuryCatalog = []Injury{
	{"膝痛", "Knee pain", CategoryJoint},
	{"腰痛", "Lower back pain", CategoryJoint},
	{"肩痛", "Shoulder pain", CategoryJoint},
	{"首痛", "Neck pain", CategoryJoint},
	{"股関節痛", "Hip pain", CategoryJoint},
	{"足首痛", "Ankle pain", CategoryJoint},
	{"手首痛", "Wrist pain", CategoryJoint},
	{"肘痛", "Elbow pain", CategoryJoint},
	{"四十肩・五十肩", "Frozen shoulder", CategoryJoint},
	{"ヘルニア", "Herniated disc", CategorySpine},
	{"坐骨神経痛", "Sciatica", CategorySpine},
	{"側弯症", "Scoliosis", CategorySpine},
	{"高血圧", "High blood pressure", CategoryInternal},
	{"糖尿病", "Diabetes", CategoryInternal},
	{"心疾患", "Heart disease", CategoryInternal},
	{"喘息", "Asthma", CategoryInternal},
	{"骨粗しょう症", "Osteoporosis", CategoryBone},
	{"腱鞘炎", "Tendinitis", CategoryBone},
	{"アキレス腱炎", "Achilles tendinitis", CategoryBone},
}

// CatalogByCategory returns the catalog entries of one category in catalog order.
func CatalogByCategory(c InjuryCategory) []Injury {
	var out []Injury
	for _, inj := range InjuryCatalog {
		if inj.Category == c {
			out = append(out, inj)
		}
	}
	return out
}

// DisplayInjury returns the English display name for a catalog label, or the
// label itself for manually typed entries.
func DisplayInjury(label string) string {
	for _, inj := range InjuryCatalog {
		if inj.Label == label {
			return inj.Display + " (" + inj.Label + ")"
		}
	}
	return label
}
