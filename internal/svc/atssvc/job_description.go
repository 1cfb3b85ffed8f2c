package atssvc

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mkrupp/hirepulse-client/internal/domain"
)

type roleTemplate struct {
	keywords         []string
	mission          string
	responsibilities []string
	skills           []string
}

//nolint:gochecknoglobals,lll
var (
	juniorTitle = regexp.MustCompile(`(junior|associate)`)
	seniorTitle = regexp.MustCompile(`(senior|lead|staff|principal|architect|manager|head|director|vp)`)

	roleTemplates = []roleTemplate{
		{
			keywords: []string{"frontend", "react", "ui", "web"},
			mission:  "build high-quality user-facing experiences and scalable frontend architecture",
			responsibilities: []string{
				"Own feature development from requirement analysis to production deployment.",
				"Build reusable UI components and improve design system consistency.",
				"Partner with product and backend teams to deliver performant user journeys.",
				"Improve application quality with testing, monitoring, and code reviews.",
			},
			skills: []string{"React", "TypeScript", "State management", "REST APIs", "Testing"},
		},
		{
			keywords: []string{"backend", "api", "server", "python", "node", "java", "golang"},
			mission:  "design reliable backend services and resilient APIs for business-critical workflows",
			responsibilities: []string{
				"Design and implement secure APIs and service integrations.",
				"Optimize database queries and overall service performance.",
				"Implement observability, error handling, and operational safeguards.",
				"Collaborate with frontend and platform teams on end-to-end delivery.",
			},
			skills: []string{"API design", "SQL/NoSQL", "Authentication", "Caching", "Cloud deployment"},
		},
		{
			keywords: []string{"data", "analyst", "scientist", "ml", "ai"},
			mission:  "deliver decision-ready insights and predictive models for product and business teams",
			responsibilities: []string{
				"Transform raw data into reliable analytical datasets.",
				"Build dashboards, reports, and data-driven recommendations.",
				"Develop and evaluate machine learning models where applicable.",
				"Partner with stakeholders to define KPIs and success metrics.",
			},
			skills: []string{"SQL", "Python", "Data modeling", "Visualization", "Statistics/ML"},
		},
		{
			keywords: []string{"devops", "sre", "platform", "cloud", "infrastructure"},
			mission:  "improve platform reliability, deployment velocity, and infrastructure scalability",
			responsibilities: []string{
				"Automate CI/CD workflows and environment provisioning.",
				"Improve system availability, incident response, and recovery.",
				"Establish infrastructure standards for security and cost efficiency.",
				"Enable developer productivity through tooling and documentation.",
			},
			skills: []string{"Cloud", "CI/CD", "IaC", "Monitoring", "Security best practices"},
		},
		{
			keywords: []string{"product", "manager", "program"},
			mission:  "drive product execution by aligning business goals, user needs, and engineering delivery",
			responsibilities: []string{
				"Define roadmap priorities and measurable product outcomes.",
				"Write clear requirements and align cross-functional teams.",
				"Monitor releases and iterate based on user feedback and data.",
				"Coordinate stakeholders and manage delivery risks proactively.",
			},
			skills: []string{"Roadmapping", "Stakeholder management", "Analytics", "Execution", "Communication"},
		},
		{
			keywords: []string{"hr", "talent", "recruiter", "hiring"},
			mission:  "build high-performing teams through efficient, data-driven hiring operations",
			responsibilities: []string{
				"Manage full-cycle hiring from sourcing to offer closure.",
				"Improve pipeline quality and reduce time-to-hire.",
				"Partner with hiring managers on role calibration and feedback loops.",
				"Ensure hiring process compliance and candidate experience standards.",
			},
			skills: []string{"Sourcing", "Interview coordination", "Stakeholder management", "ATS workflows", "Negotiation"},
		},
	}

	genericTemplate = roleTemplate{
		mission: "deliver measurable outcomes through cross-functional execution and continuous improvement",
		responsibilities: []string{
			"Own critical deliverables and drive them to completion with quality.",
			"Collaborate across teams to remove blockers and improve workflows.",
			"Track performance metrics and continuously optimize execution.",
			"Document key decisions, processes, and best practices.",
		},
		skills: []string{"Problem solving", "Communication", "Planning", "Execution", "Collaboration"},
	}

	seniorityLines = map[string]string{
		"entry":  "This role is ideal for early-career professionals who are ready to learn fast and contribute with strong execution.",
		"junior": "This role requires a strong foundation, attention to detail, and the ability to deliver with guidance.",
		"senior": "This role requires ownership, technical or functional depth, and the ability to mentor and influence outcomes.",
		"mid":    "This role requires independent execution, strong collaboration, and consistent delivery against defined goals.",
	}
)

func seniority(lowerTitle string) string {
	switch {
	case strings.Contains(lowerTitle, "intern"):
		return "entry"
	case juniorTitle.MatchString(lowerTitle):
		return "junior"
	case seniorTitle.MatchString(lowerTitle):
		return "senior"
	default:
		return "mid"
	}
}

func matchTemplate(lowerTitle string) roleTemplate {
	for _, tmpl := range roleTemplates {
		for _, keyword := range tmpl.keywords {
			if strings.Contains(lowerTitle, keyword) {
				return tmpl
			}
		}
	}

	return genericTemplate
}

// GenerateJobContent builds a job summary and description from the title
// alone. Keywords are matched as substrings of the lower-cased title.
func GenerateJobContent(rawTitle string) domain.JobContent {
	title := strings.TrimSpace(rawTitle)
	lowerTitle := strings.ToLower(title)

	tmpl := matchTemplate(lowerTitle)

	lines := make([]string, 0, len(tmpl.responsibilities)+len(tmpl.skills)+5)
	lines = append(lines, "Role: "+title, "", "Key Responsibilities:")

	for i, item := range tmpl.responsibilities {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, item))
	}

	lines = append(lines, "", "Preferred Skills:")

	for _, skill := range tmpl.skills {
		lines = append(lines, "- "+skill)
	}

	return domain.JobContent{
		Summary:     fmt.Sprintf("%s is responsible for helping the team %s. %s", title, tmpl.mission, seniorityLines[seniority(lowerTitle)]),
		Description: strings.Join(lines, "\n"),
	}
}
