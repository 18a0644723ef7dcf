package tailor

import "strings"

// ResumeData is the structured resume returned by the tailoring prompt.
type ResumeData struct {
	Name                string           `json:"name"`
	Email               string           `json:"email"`
	Phone               string           `json:"phone"`
	Github              string           `json:"github,omitempty"`
	Linkedin            string           `json:"linkedin,omitempty"`
	Location            string           `json:"location,omitempty"`
	Portfolio           string           `json:"portfolio,omitempty"`
	ProfessionalSummary string           `json:"professional_summary"`
	WorkExperience      []WorkExperience `json:"work_experience"`
	Projects            []Project        `json:"projects"`
	Skills              []string         `json:"skills"`
	SoftSkills          []string         `json:"soft_skills"`
	Education           []Education      `json:"education"`
}

// WorkExperience is a single position. Order is kept as returned.
type WorkExperience struct {
	Title    string   `json:"title"`
	Company  string   `json:"company"`
	Duration string   `json:"duration"`
	Bullets  []string `json:"bullets"`
}

type Project struct {
	Name    string   `json:"name"`
	Bullets []string `json:"bullets"`
}

type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// CoverLetter is the generated letter plus the candidate name it was signed with.
type CoverLetter struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// ContactParts returns the non-empty contact fields in display order.
func (r ResumeData) ContactParts() []string {
	var parts []string
	for _, v := range []string{r.Email, r.Phone, r.Location, r.Github, r.Linkedin, r.Portfolio} {
		if s := strings.TrimSpace(v); s != "" {
			parts = append(parts, s)
		}
	}
	return parts
}
