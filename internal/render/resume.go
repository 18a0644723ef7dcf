package render

import (
	"errors"
	"fmt"
	"strings"

	"resume-tailor/internal/tailor"
)

// ErrRender reports a document that could not be built.
var ErrRender = errors.New("render failed")

var (
	headingPara = paraStyle{rule: true, spaceBefore: 200, spaceAfter: 80}
	bodyPara    = paraStyle{spaceAfter: 40}
	bulletPara  = paraStyle{bullet: true, spaceAfter: 20}
)

// Resume renders tailored resume data into a DOCX document.
func Resume(data tailor.ResumeData) ([]byte, error) {
	name := strings.TrimSpace(data.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: full name is required", ErrRender)
	}

	doc := newDocument(resumeMargin)
	doc.paragraph(paraStyle{center: true, spaceAfter: 40}, run{text: name, style: StyleMap["name"]})
	if contact := data.ContactParts(); len(contact) > 0 {
		doc.paragraph(paraStyle{center: true, spaceAfter: 120}, run{text: strings.Join(contact, " | "), style: StyleMap["contact"]})
	}

	if summary := strings.TrimSpace(data.ProfessionalSummary); summary != "" {
		heading(doc, "Professional Summary")
		doc.paragraph(bodyPara, run{text: summary})
	}

	heading(doc, "Professional Experience")
	for _, exp := range data.WorkExperience {
		writeExperience(doc, exp)
	}

	if len(data.Projects) > 0 {
		heading(doc, "Key Projects")
		for _, project := range data.Projects {
			if title := strings.TrimSpace(project.Name); title != "" {
				doc.paragraph(bodyPara, run{text: title, style: StyleMap["roleLine"]})
			}
			bullets(doc, project.Bullets)
			doc.paragraph(paraStyle{})
		}
	}

	if line := joinNonEmpty(data.Skills); line != "" {
		heading(doc, "Technical Skills")
		doc.paragraph(bodyPara, run{text: line})
	}
	if line := joinNonEmpty(data.SoftSkills); line != "" {
		heading(doc, "Core Competencies")
		doc.paragraph(bodyPara, run{text: line})
	}

	if len(data.Education) > 0 {
		heading(doc, "Education")
		for _, edu := range data.Education {
			writeEducation(doc, edu)
		}
	}

	out, err := doc.pack()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return out, nil
}

func heading(doc *document, title string) {
	doc.paragraph(headingPara, run{text: strings.ToUpper(title), style: StyleMap["sectionHeading"]})
}

func bullets(doc *document, items []string) {
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			doc.paragraph(bulletPara, run{text: item})
		}
	}
}

func writeExperience(doc *document, exp tailor.WorkExperience) {
	if title := strings.TrimSpace(exp.Title); title != "" {
		doc.paragraph(paraStyle{spaceBefore: 60}, run{text: title, style: StyleMap["roleLine"]})
	}
	company := strings.TrimSpace(exp.Company)
	duration := strings.TrimSpace(exp.Duration)
	var runs []run
	switch {
	case company != "" && duration != "":
		runs = []run{{text: company + " | "}, {text: duration, style: StyleMap["duration"]}}
	case company != "":
		runs = []run{{text: company}}
	case duration != "":
		runs = []run{{text: duration, style: StyleMap["duration"]}}
	}
	if len(runs) > 0 {
		doc.paragraph(bodyPara, runs...)
	}
	bullets(doc, exp.Bullets)
	doc.paragraph(paraStyle{})
}

func writeEducation(doc *document, edu tailor.Education) {
	var tail []string
	if s := strings.TrimSpace(edu.Institution); s != "" {
		tail = append(tail, s)
	}
	if s := strings.TrimSpace(edu.Year); s != "" {
		tail = append(tail, s)
	}
	runs := []run{{text: strings.TrimSpace(edu.Degree), style: StyleMap["roleLine"]}}
	if len(tail) > 0 {
		runs = append(runs, run{text: " - " + strings.Join(tail, ", ")})
	}
	doc.paragraph(bodyPara, runs...)
}

func joinNonEmpty(items []string) string {
	var kept []string
	for _, item := range items {
		if s := strings.TrimSpace(item); s != "" {
			kept = append(kept, s)
		}
	}
	return strings.Join(kept, " | ")
}
