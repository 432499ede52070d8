// Package schema defines the fixed questionnaire feature table and validates
// raw submissions against it. The 20 entries, their bounds, and their order
// are shared by every pipeline stage and must never diverge between them.
package schema

// FeatureVector holds one validated questionnaire submission. Every field
// corresponds to a schema entry and is guaranteed in-bounds after Validate.
type FeatureVector struct {
	AnxietyLevel               int `json:"anxiety_level"`
	SelfEsteem                 int `json:"self_esteem"`
	MentalHealthHistory        int `json:"mental_health_history"`
	Depression                 int `json:"depression"`
	Headache                   int `json:"headache"`
	BloodPressure              int `json:"blood_pressure"`
	SleepQuality               int `json:"sleep_quality"`
	BreathingProblem           int `json:"breathing_problem"`
	NoiseLevel                 int `json:"noise_level"`
	LivingConditions           int `json:"living_conditions"`
	Safety                     int `json:"safety"`
	BasicNeeds                 int `json:"basic_needs"`
	AcademicPerformance        int `json:"academic_performance"`
	StudyLoad                  int `json:"study_load"`
	TeacherStudentRelationship int `json:"teacher_student_relationship"`
	FutureCareerConcerns       int `json:"future_career_concerns"`
	SocialSupport              int `json:"social_support"`
	PeerPressure               int `json:"peer_pressure"`
	ExtracurricularActivities  int `json:"extracurricular_activities"`
	Bullying                   int `json:"bullying"`
}

// Entry describes one questionnaire feature: its wire name and inclusive bounds.
type Entry struct {
	Name string
	Min  int
	Max  int

	field func(*FeatureVector) *int
}

// Entries is the feature schema in declaration order. Attribution ties and
// validation error reporting both follow this order.
var Entries = []Entry{
	{Name: "anxiety_level", Min: 0, Max: 30, field: func(v *FeatureVector) *int { return &v.AnxietyLevel }},
	{Name: "self_esteem", Min: 0, Max: 30, field: func(v *FeatureVector) *int { return &v.SelfEsteem }},
	{Name: "mental_health_history", Min: 0, Max: 1, field: func(v *FeatureVector) *int { return &v.MentalHealthHistory }},
	{Name: "depression", Min: 0, Max: 30, field: func(v *FeatureVector) *int { return &v.Depression }},
	{Name: "headache", Min: 0, Max: 5, field: func(v *FeatureVector) *int { return &v.Headache }},
	{Name: "blood_pressure", Min: 1, Max: 3, field: func(v *FeatureVector) *int { return &v.BloodPressure }},
	{Name: "sleep_quality", Min: 0, Max: 5, field: func(v *FeatureVector) *int { return &v.SleepQuality }},
	{Name: "breathing_problem", Min: 0, Max: 5, field: func(v *FeatureVector) *int { return &v.BreathingProblem }},
	{Name: "noise_level", Min: 0, Max: 5, field: func(v *FeatureVector) *int { return &v.NoiseLevel }},
	{Name: "living_conditions", Min: 1, Max: 5, field: func(v *FeatureVector) *int { return &v.LivingConditions }},
	{Name: "safety", Min: 1, Max: 5, field: func(v *FeatureVector) *int { return &v.Safety }},
	{Name: "basic_needs", Min: 1, Max: 5, field: func(v *FeatureVector) *int { return &v.BasicNeeds }},
	{Name: "academic_performance", Min: 1, Max: 5, field: func(v *FeatureVector) *int { return &v.AcademicPerformance }},
	{Name: "study_load", Min: 1, Max: 5, field: func(v *FeatureVector) *int { return &v.StudyLoad }},
	{Name: "teacher_student_relationship", Min: 1, Max: 5, field: func(v *FeatureVector) *int { return &v.TeacherStudentRelationship }},
	{Name: "future_career_concerns", Min: 1, Max: 5, field: func(v *FeatureVector) *int { return &v.FutureCareerConcerns }},
	{Name: "social_support", Min: 1, Max: 5, field: func(v *FeatureVector) *int { return &v.SocialSupport }},
	{Name: "peer_pressure", Min: 1, Max: 5, field: func(v *FeatureVector) *int { return &v.PeerPressure }},
	{Name: "extracurricular_activities", Min: 0, Max: 5, field: func(v *FeatureVector) *int { return &v.ExtracurricularActivities }},
	{Name: "bullying", Min: 1, Max: 5, field: func(v *FeatureVector) *int { return &v.Bullying }},
}

var entryIndex = func() map[string]int {
	m := make(map[string]int, len(Entries))
	for i, e := range Entries {
		m[e.Name] = i
	}
	return m
}()

// Names returns all feature names in schema order.
func Names() []string {
	names := make([]string, len(Entries))
	for i, e := range Entries {
		names[i] = e.Name
	}
	return names
}

// Lookup returns the schema entry for a feature name.
func Lookup(name string) (Entry, bool) {
	i, ok := entryIndex[name]
	if !ok {
		return Entry{}, false
	}
	return Entries[i], true
}

// Index returns a feature's position in schema order, or -1 if unknown.
func Index(name string) int {
	i, ok := entryIndex[name]
	if !ok {
		return -1
	}
	return i
}

// Value returns the vector's value for a feature name.
func (v *FeatureVector) Value(name string) (int, bool) {
	e, ok := Lookup(name)
	if !ok {
		return 0, false
	}
	return *e.field(v), true
}
