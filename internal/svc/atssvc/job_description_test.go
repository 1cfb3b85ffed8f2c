package atssvc_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkrupp/hirepulse-client/internal/svc/atssvc"
)

func TestGenerateJobContent(t *testing.T) {
	t.Parallel()

	got := atssvc.GenerateJobContent("  Senior Frontend Engineer  ")

	assert.Equal(t,
		"Senior Frontend Engineer is responsible for helping the team build high-quality user-facing experiences "+
			"and scalable frontend architecture. This role requires ownership, technical or functional depth, "+
			"and the ability to mentor and influence outcomes.",
		got.Summary,
	)

	assert.Equal(t, strings.Join([]string{
		"Role: Senior Frontend Engineer",
		"",
		"Key Responsibilities:",
		"1. Own feature development from requirement analysis to production deployment.",
		"2. Build reusable UI components and improve design system consistency.",
		"3. Partner with product and backend teams to deliver performant user journeys.",
		"4. Improve application quality with testing, monitoring, and code reviews.",
		"",
		"Preferred Skills:",
		"- React",
		"- TypeScript",
		"- State management",
		"- REST APIs",
		"- Testing",
	}, "\n"), got.Description)
}

func TestGenerateJobContent_Matching(t *testing.T) {
	t.Parallel()

	tests := []struct {
		title     string
		mission   string
		seniority string
	}{
		{"Marketing Intern", "cross-functional execution", "early-career professionals"},
		{"Junior Python Developer", "resilient APIs", "ability to deliver with guidance"},
		{"Associate Data Scientist", "decision-ready insights", "ability to deliver with guidance"},
		{"Platform Engineer", "platform reliability", "independent execution"},
		{"Product Manager", "drive product execution", "mentor and influence"},
		{"Talent Partner", "high-performing teams", "independent execution"},
		// substring match: "build" contains "ui"
		{"Build Engineer", "user-facing experiences", "independent execution"},
		{"Accountant", "cross-functional execution", "independent execution"},
		{"VP Sales", "cross-functional execution", "mentor and influence"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			t.Parallel()

			got := atssvc.GenerateJobContent(tt.title)

			assert.Contains(t, got.Summary, tt.mission)
			assert.Contains(t, got.Summary, tt.seniority)
			assert.True(t, strings.HasPrefix(got.Summary, tt.title+" is responsible for helping the team "))
		})
	}
}
