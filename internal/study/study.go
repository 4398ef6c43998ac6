// Package study holds the static study content shown before the
// questionnaire starts: title, introduction, and the ordered steps.
package study

// Info is the home-screen content. It is fixed per study build.
type Info struct {
	Title        string   `json:"title"`
	Introduction string   `json:"introduction"`
	Steps        []string `json:"steps"`
}

// Current returns the content of the running study.
func Current() Info {
	return Info{
		Title: "Usability Testing Tool",
		Introduction: "Welcome to the usability testing tool. You will be testing a " +
			"team creation application. Please be unbiased and report all findings " +
			"honestly to better improve the user experience.",
		Steps: []string{
			"Provide consent for data collection.",
			"Fill out a short demographic questionnaire.",
			"Perform a specific task (or tasks).",
			"Answer an exit questionnaire about your experience.",
			"View a summary report.",
		},
	}
}
