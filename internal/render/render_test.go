package render

import (
	"archive/zip"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-tailor/internal/extract"
	"resume-tailor/internal/tailor"
)

func sampleResume() tailor.ResumeData {
	return tailor.ResumeData{
		Name:                "Jane Doe",
		Email:               "jane@example.com",
		Phone:               "555-0100",
		Location:            "Berlin, Germany",
		Github:              "github.com/jane",
		ProfessionalSummary: "Backend engineer focused on Go services.",
		WorkExperience: []tailor.WorkExperience{
			{Title: "Senior Engineer", Company: "New Co", Duration: "Jan 2024 - Present", Bullets: []string{"Led team of 5"}},
			{Title: "Engineer", Company: "Old Co", Duration: "Jan 2020 - Dec 2023", Bullets: []string{"Built APIs", " "}},
		},
		Projects:   []tailor.Project{{Name: "resume-tailor", Bullets: []string{"Go and PostgreSQL"}}},
		Skills:     []string{"Go", "PostgreSQL", ""},
		SoftSkills: []string{"Mentoring"},
		Education:  []tailor.Education{{Degree: "BSc Computer Science", Institution: "State U", Year: "2019"}},
	}
}

func TestResumeContainsAllSections(t *testing.T) {
	out, err := Resume(sampleResume())
	require.NoError(t, err)

	text, err := PlainText(out)
	require.NoError(t, err)

	for _, want := range []string{
		"Jane Doe",
		"jane@example.com | 555-0100 | Berlin, Germany | github.com/jane",
		"PROFESSIONAL SUMMARY",
		"PROFESSIONAL EXPERIENCE",
		"Senior Engineer",
		"New Co | Jan 2024 - Present",
		"KEY PROJECTS",
		"TECHNICAL SKILLS",
		"Go | PostgreSQL",
		"CORE COMPETENCIES",
		"EDUCATION",
		"BSc Computer Science - State U, 2019",
	} {
		assert.Contains(t, text, want)
	}
	assert.Less(t, strings.Index(text, "New Co"), strings.Index(text, "Old Co"))
	assert.Equal(t, "Jane Doe", strings.SplitN(text, "\n", 2)[0])
}

func TestResumeKeepsReceivedOrder(t *testing.T) {
	data := sampleResume()
	data.WorkExperience[0], data.WorkExperience[1] = data.WorkExperience[1], data.WorkExperience[0]

	out, err := Resume(data)
	require.NoError(t, err)
	text, err := PlainText(out)
	require.NoError(t, err)
	assert.Less(t, strings.Index(text, "Old Co"), strings.Index(text, "New Co"))
}

func TestResumeOmitsEmptySections(t *testing.T) {
	out, err := Resume(tailor.ResumeData{Name: "Jane Doe"})
	require.NoError(t, err)
	text, err := PlainText(out)
	require.NoError(t, err)

	assert.Contains(t, text, "PROFESSIONAL EXPERIENCE")
	for _, absent := range []string{"PROFESSIONAL SUMMARY", "KEY PROJECTS", "TECHNICAL SKILLS", "CORE COMPETENCIES", "EDUCATION", " | "} {
		assert.NotContains(t, text, absent)
	}
}

func TestResumeRequiresName(t *testing.T) {
	_, err := Resume(tailor.ResumeData{Name: "  ", Email: "a@b.c"})
	assert.True(t, errors.Is(err, ErrRender))
}

func TestResumeEscapesText(t *testing.T) {
	data := tailor.ResumeData{Name: "Jane <Doe> & Co", Skills: []string{"C++ & \"Go\""}}
	out, err := Resume(data)
	require.NoError(t, err)
	text, err := PlainText(out)
	require.NoError(t, err)
	assert.Contains(t, text, "Jane <Doe> & Co")
	assert.Contains(t, text, `C++ & "Go"`)
}

func TestResumePackageParts(t *testing.T) {
	out, err := Resume(sampleResume())
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(out), int64(len(out)))
	require.NoError(t, err)
	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.ElementsMatch(t, []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"word/document.xml",
		"word/styles.xml",
		"word/numbering.xml",
		"word/_rels/document.xml.rels",
	}, names)
}

func TestCoverLetterParagraphs(t *testing.T) {
	out, err := CoverLetter("  Hello,\r\n\r\n\nI built things.\n   \nYours sincerely,\nJane Doe  ")
	require.NoError(t, err)

	paragraphs, err := extract.DocxParagraphs(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"Hello,", "I built things.", "Yours sincerely,\nJane Doe"}, paragraphs)
}

func TestCoverLetterRequiresText(t *testing.T) {
	_, err := CoverLetter(" \n\n ")
	assert.ErrorIs(t, err, ErrRender)
}
