package preview

import "devresume/internal/domain"

// Placeholder returns the sample resume shown while the document is empty.
func Placeholder() domain.Document {
	return domain.Document{
		Profile: domain.Profile{
			FullName: "Alex Rivera",
			JobTitle: "Full Stack Developer",
			Email:    "alex.rivera@email.com",
			Phone:    "+1 (555) 123-4567",
			Location: "San Francisco, CA",
			Summary: "Experienced full-stack developer with 5+ years building scalable web " +
				"applications using modern technologies. Passionate about clean code and user experience.",
		},
		Links: domain.Links{
			LinkedIn: "https://linkedin.com/in/alexrivera",
			GitHub:   "https://github.com/alexrivera",
			Website:  "https://alexrivera.dev",
		},
		Skills: domain.NewSkillSet(
			domain.SkillCategory{ID: "languages", Label: "Languages",
				Skills: []string{"JavaScript", "Python", "TypeScript", "HTML/CSS", "SQL"}},
			domain.SkillCategory{ID: "frameworks", Label: "Frameworks",
				Skills: []string{"React", "Node.js", "Express", "Django", "Next.js"}},
			domain.SkillCategory{ID: "tools", Label: "Tools",
				Skills: []string{"Git", "Docker", "AWS", "MongoDB", "PostgreSQL", "VS Code"}},
		),
		Experience: []domain.ExperienceEntry{
			{
				ID:        "sample-1",
				Position:  "Senior Developer",
				Company:   "Tech Company Inc.",
				StartDate: "2022-01-01",
				EndDate:   "2024-12-31",
				Responsibilities: []string{
					"Led frontend architecture redesign",
					"Mentored junior developers",
					"Improved app performance by 40%",
				},
			},
			{
				ID:        "sample-2",
				Position:  "Full Stack Developer",
				Company:   "StartUp LLC",
				StartDate: "2020-06-01",
				EndDate:   "2021-12-31",
				Responsibilities: []string{
					"Built customer dashboard",
					"Implemented real-time notifications",
					"Maintained CI/CD pipeline",
				},
			},
		},
		Education: []domain.EducationEntry{
			{
				ID:          "sample-1",
				Degree:      "B.S. Computer Science",
				Institution: "University of California",
				StartDate:   "2016-09-01",
				EndDate:     "2020-05-31",
			},
		},
	}
}
