package tailor

import (
	"embed"
	"strings"
)

//go:embed prompts/*.txt
var promptFS embed.FS

var (
	resumeSystemPrompt      = mustPrompt("resume_system.txt")
	resumeUserTemplate      = mustPrompt("resume_user.txt")
	coverLetterSystemPrompt = mustPrompt("cover_letter_system.txt")
	coverLetterUserTemplate = mustPrompt("cover_letter_user.txt")
)

func mustPrompt(name string) string {
	raw, err := promptFS.ReadFile("prompts/" + name)
	if err != nil {
		panic("tailor: missing prompt " + name)
	}
	return strings.TrimRight(string(raw), "\n")
}

// fillTemplate substitutes the resume text and job description verbatim.
func fillTemplate(tmpl, resumeText, jobDescription string) string {
	return strings.NewReplacer(
		"{{RESUME_TEXT}}", resumeText,
		"{{JOB_DESCRIPTION}}", jobDescription,
	).Replace(tmpl)
}
