package model

// Sample returns the demo resume a new session can be seeded with.
func Sample() Resume {
	return Resume{
		Personal: PersonalInfo{
			FullName:  "Jordan Rivera",
			Email:     "jordan.rivera@example.com",
			Phone:     "+1 (555) 014-2291",
			LinkedIn:  "linkedin.com/in/jordan-rivera",
			Portfolio: "jordanrivera.dev",
		},
		Summary: "Software engineer with 8 years of experience across backend services and technical support. " +
			"Builds secure, well-tested APIs in Go and Java, and enjoys turning manual processes into automation.",
		Experience: []Experience{
			{
				ID:       "1",
				Company:  "Northwind Payments",
				JobTitle: "Software Engineer",
				Location: "Austin, USA",
				Period:   "Feb 2021 - Present",
				Responsibilities: []string{
					"Integrated partner bank APIs to share verification data securely, cutting manual checks by 80%.",
					"Connected ten identity verification providers behind one REST facade, improving accuracy by 90%.",
					"Migrated the core platform to a supported runtime and framework, improving throughput by 30%.",
				},
			},
			{
				ID:       "2",
				Company:  "Contoso Financial Services",
				JobTitle: "Technical Support Specialist",
				Location: "Austin, USA",
				Period:   "June 2017 - Sept 2020",
				Responsibilities: []string{
					"Answered user questions and provided technical help over email and live chat.",
					"Supported loan origination and payment processing software for branch staff.",
					"Tracked user issues in the ticketing system to keep resolution times predictable.",
				},
			},
		},
		Education: []Education{
			{
				ID:          "1",
				Institution: "Lakeside Institute of Technology",
				Degree:      "B.Sc. Computer Science",
				Location:    "Austin, USA",
				Period:      "2013 - 2017",
				Grade:       "3.6/4.0",
			},
		},
		Skills: []string{
			"Go", "Java", "JavaScript", "Spring Boot", "Angular", "HTML", "CSS",
			"REST APIs", "PostgreSQL", "MySQL", "Git", "Docker", "Postman", "Jira",
		},
		Achievements: []string{
			"Recognized as top performer of the support organization for two consecutive years.",
			"Led the runtime migration that kept the platform on a supported release line.",
			"Defined over 20 business metrics and 30 automated operational checks.",
		},
		Languages: []Language{
			{ID: "1", Name: "English", Level: "Native or Bilingual Proficiency"},
			{ID: "2", Name: "Spanish", Level: "Full Professional Proficiency"},
		},
		WebPresence: []WebPresence{
			{ID: "1", Name: "GitHub", URL: "https://github.com/jordan-rivera"},
			{ID: "2", Name: "Blog", URL: "https://blog.jordanrivera.dev"},
		},
	}
}
