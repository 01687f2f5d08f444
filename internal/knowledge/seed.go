package knowledge

// Seed returns the built-in portfolio knowledge base.
func Seed() []Entry {
	return []Entry{
		{
			Trigger: "hi",
			Responses: []string{
				"👋 Hey there! Welcome to my portfolio. How can I assist you?",
				"😊 Hello! Feel free to ask me about my experience, skills, or projects.",
			},
		},
		{
			Trigger: "hello",
			Responses: []string{
				"👋 Hello! I'm Solai, an AWS Cloud Engineer. How can I help you today?",
			},
		},
		{
			Trigger: "who are you",
			Responses: []string{
				"🧑‍💻 I'm Solai, an AWS Cloud Engineer with expertise in Terraform, Python, and cloud automation.",
			},
		},
		{
			Trigger: "experience",
			Responses: []string{
				"💼 I have over five years of experience in the IT industry, focusing on cloud engineering and automation with AWS, Terraform, Python, Pytest, BDD testing, and GitLab CI/CD.",
			},
		},
		{
			Trigger: "skills",
			Responses: []string{
				"🛠️ My key skills include AWS, Terraform, Python, GitLab CI/CD, BDD, Pytest, and cloud automation.",
			},
		},
		{
			Trigger: "projects",
			Responses: []string{
				"📂 I worked on mainframe-to-AWS modernization, DB2 to DynamoDB migration, and developed high-availability APIs. You can also check out my projects on my portfolio website: [https://solairajan.online/](https://solairajan.online/)",
			},
		},
		{
			Trigger: "contact",
			Responses: []string{
				"📬 You can reach me via my website: [https://solairajan.online/](https://solairajan.online/), LinkedIn: [https://www.linkedin.com/in/solai-rajan/](https://www.linkedin.com/in/solai-rajan/), email: [solai13kamaraj@gmail.com](mailto:solai13kamaraj@gmail.com), and GitHub: [https://github.com/Solairajan18](https://github.com/Solairajan18)",
			},
		},
	}
}
