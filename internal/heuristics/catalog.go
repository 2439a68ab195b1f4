// Package heuristics provides the smart-fill helpers: skill suggestions from a
// role title, a synthesized summary paragraph and the onboarding sample resume.
package heuristics

// SkillCategory is a named group of suggestable skills.
type SkillCategory struct {
	Name   string
	Skills []string
}

// Category names, in catalog order.
const (
	CategoryTechnical  = "TECHNICAL"
	CategoryDesign     = "DESIGN"
	CategoryBusiness   = "BUSINESS"
	CategorySoftSkills = "SOFT_SKILLS"
)

// SkillCategories is the suggestion catalog. Order matters: suggestions are
// taken from the front of the matched categories.
var SkillCategories = []SkillCategory{
	{
		Name: CategoryTechnical,
		Skills: []string{
			"JavaScript", "React", "Node.js", "Python", "TypeScript", "HTML/CSS", "Git", "SQL",
			"MongoDB", "AWS", "Docker", "Kubernetes", "REST APIs", "GraphQL", "Machine Learning",
			"Data Structures", "Algorithms",
		},
	},
	{
		Name: CategoryDesign,
		Skills: []string{
			"Figma", "Adobe Creative Suite", "UI/UX Design", "Prototyping", "Wireframing",
			"User Research", "Visual Design", "Typography",
		},
	},
	{
		Name: CategoryBusiness,
		Skills: []string{
			"Project Management", "Agile Methodology", "Scrum", "Strategic Planning",
			"Budget Management", "Team Leadership", "Stakeholder Management",
		},
	},
	{
		Name: CategorySoftSkills,
		Skills: []string{
			"Communication", "Problem Solving", "Teamwork", "Time Management", "Adaptability",
			"Creativity", "Critical Thinking", "Leadership",
		},
	},
}

// SampleSummaries are canned summary paragraphs offered as starting points.
var SampleSummaries = []string{
	"Experienced full-stack developer with 5+ years building scalable web applications. Passionate about clean code, mentoring junior developers, and creating user-centric solutions that drive business growth.",
	"Results-driven project manager with expertise in agile methodologies. Successfully delivered 50+ projects on time and under budget while improving team productivity by 30%.",
	"Creative UI/UX designer with a keen eye for detail and user experience. Specialized in creating intuitive interfaces that enhance user engagement and satisfaction.",
	"Data scientist with strong background in machine learning and statistical analysis. Proven track record of developing predictive models that improved business decision-making.",
}

// AchievementExamples are example achievement bullets for experience entries.
var AchievementExamples = []string{
	"Increased user engagement by 40% through redesign of key features",
	"Reduced page load time by 60% optimizing database queries and implementing caching",
	"Led a team of 5 developers to deliver a critical project 2 weeks ahead of schedule",
	"Improved code quality by 25% through implementation of comprehensive testing suite",
}
