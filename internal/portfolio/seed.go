package portfolio

// DefaultData is the document written on first run when no data file exists.
func DefaultData() *PortfolioData {
	return &PortfolioData{
		PersonalInfo: PersonalInfo{
			Name:  "Sparmeet Singh",
			Title: "Software Engineer",
			Description: "I love building software that's both useful and fun, and I'm always " +
				"curious about how things work behind the scenes. Most of my projects start " +
				"with a simple idea and turn into a chance to learn something new.",
			Email:    "sparmeet162000@gmail.com",
			Phone:    Phone{Numbers: []string{"+91 98765 43210"}},
			GitHub:   "https://github.com/sparmeets",
			LinkedIn: "https://www.linkedin.com/in/sparmeet-singh",
		},
		Experiences: []Experience{
			{
				ID:       "1",
				Company:  "Acme Systems",
				Position: "Software Engineer",
				Location: "Remote",
				Period:   "2023 - Present",
				Description: []string{
					"Built backend services in Go for content delivery and analytics",
					"Cut page load times by caching remote feeds with TTL-based expiry",
				},
				Color: "from-blue-500 to-cyan-500",
			},
		},
		Projects: []Project{
			{
				ID:          "1",
				Title:       "Terminal Email Client",
				Type:        "CLI Tool",
				Description: "A terminal-based email client built in Go with fuzzy-finder capabilities.",
				Features: []string{
					"Fuzzy search across mailboxes",
					"Keyboard-driven TUI",
				},
				Technologies: []string{"Go", "IMAP", "Bubble Tea"},
				Link:         "https://github.com/sparmeets/term-mail",
				Color:        "from-purple-500 to-pink-500",
			},
		},
		Skills: Skills{
			Languages: SkillCategory{
				Title:  "Languages",
				Skills: []string{"Go", "TypeScript", "Python", "SQL"},
				Color:  "from-blue-500 to-cyan-500",
			},
			Technologies: SkillCategory{
				Title:  "Technologies",
				Skills: []string{"Docker", "PostgreSQL", "Redis", "Linux"},
				Color:  "from-green-500 to-emerald-500",
			},
			WebDevTools: SkillCategory{
				Title:  "Web Dev Tools",
				Skills: []string{"Git", "VS Code", "Postman", "Vercel"},
				Color:  "from-orange-500 to-red-500",
			},
			Frameworks: SkillCategory{
				Title:  "Frameworks",
				Skills: []string{"Gin", "React", "Next.js", "Tailwind CSS"},
				Color:  "from-purple-500 to-pink-500",
			},
		},
		Education: []Education{
			{
				ID:          "1",
				Institution: "Guru Nanak Dev University",
				Degree:      "Bachelor of Technology, Computer Science",
				Period:      "2018 - 2022",
				Achievement: "Graduated with distinction",
				Color:       "from-blue-500 to-cyan-500",
			},
		},
		Interests: "Muay Thai, pool, open-source tinkering, and writing about software on Medium.",
	}
}
