package interview

// Question is one step of the intake script: the feature it fills and
// the prompt shown to the patient. Options, when present, is the
// finite vocabulary the answer is fuzzy-corrected against; free-entry
// questions (age, symptom list) leave it nil.
type Question struct {
	Feature string
	Prompt  string
	Options []string
}

// DefaultScript returns the fixed intake interview. Order matters: the
// feature answers feed the classifier in this sequence, and the final
// question is always the free-text symptom list.
func DefaultScript() []Question {
	return []Question{
		{Feature: "Age", Prompt: "What is your age?"},
		{Feature: "Gender", Prompt: "What is your gender? (Male/Female)",
			Options: []string{"Male", "Female"}},
		{Feature: "Weather", Prompt: "What is the current weather? (Hot/Rainy/Cold/Humid)",
			Options: []string{"Hot", "Rainy", "Cold", "Humid"}},
		{Feature: "Last_Meal", Prompt: "What was your last meal? (Street Food/Home Cooked/Restaurant/Unknown)",
			Options: []string{"Street Food", "Home Cooked", "Restaurant", "Unknown"}},
		{Feature: "Water_Source", Prompt: "What is your main water source? (Tap/Hand Pump/River/Stored Tank)",
			Options: []string{"Tap", "Hand Pump", "River", "Stored Tank"}},
		{Feature: "Occupation", Prompt: "What is your occupation? (Farmer/Student/Worker/Homemaker/Other)",
			Options: []string{"Farmer", "Student", "Worker", "Homemaker", "Other"}},
		{Feature: "Smoker", Prompt: "Do you smoke? (Yes/No)",
			Options: []string{"Yes", "No"}},
		{Feature: "Chronic_Disease_History", Prompt: "Do you have chronic disease history? (Yes/No)",
			Options: []string{"Yes", "No"}},
		{Feature: "Symptoms", Prompt: "Please list your symptoms separated by commas (e.g., fever, cough, stomach pain)"},
	}
}

// ProfileFeatures are the script features that are not symptom flags.
// The classifier's symptom vocabulary is its feature roster minus
// these keys.
var ProfileFeatures = []string{
	"Age", "Gender", "Weather", "Last_Meal",
	"Water_Source", "Occupation", "Smoker",
	"Chronic_Disease_History",
}
