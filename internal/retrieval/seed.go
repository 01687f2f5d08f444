package retrieval

// Seed returns the built-in portfolio documents used when no remote vector
// store is configured.
func Seed() []Document {
	return []Document{
		{
			ID:      "intro_001",
			Content: "🤖 Hi there! I'm SolAI, a friendly chatbot created by Solai Rajan to help you with portfolio questions, tech topics, or just to have a fun chat! I can tell you all about Solai's experience, skills, and achievements.",
			Metadata: map[string]any{
				"section": "introduction", "type": "personal",
			},
		},
		{
			ID:      "edu_001",
			Content: "🎓 Education Background: BSc graduate with strong foundation in cloud computing and DevOps, AWS Solution Architect Associate Certification, Microsoft Certified: Azure Fundamentals.",
			Metadata: map[string]any{
				"section": "education", "type": "qualifications",
			},
		},
		{
			ID:      "skills_001",
			Content: "🛠️ Technical Skills: AWS (API Gateway, Lambda, DynamoDB, VPC), Terraform infrastructure automation, Python serverless applications, GitLab CI/CD, BDD testing, Pytest, Scalr, Redis, AWS Secrets Manager.",
			Metadata: map[string]any{
				"section": "skills", "type": "technical",
			},
		},
		{
			ID:      "exp_001",
			Content: "💼 Professional Experience: HTC Global Services - AWS Developer (2022 - present). Developed and deployed scalable applications on AWS, implemented CI/CD pipelines using GitLab and Terraform, automated infrastructure provisioning, integrated security scans in pipelines. Total experience: 5 years in the IT industry focusing on cloud engineering and automation.",
			Metadata: map[string]any{
				"section": "experience", "type": "professional",
			},
		},
		{
			ID:      "proj_001",
			Content: "🚀 Notable Projects: Mainframe to AWS Modernization (AWS, Terraform, Python, GitLab, Scalr, BDD; DB2 to DynamoDB migration) and High-Availability API Development (Python, AWS Lambda, API Gateway, DynamoDB, Redis caching, secrets management).",
			Metadata: map[string]any{
				"section": "projects", "type": "portfolio",
			},
		},
		{
			ID:      "sec_001",
			Content: "🔒 Cloud Security & DevOps Practices: IAM policies and VPC security groups, encryption and compliance with AWS security tools, automated CI/CD pipelines for cloud deployments, infrastructure-as-code best practices.",
			Metadata: map[string]any{
				"section": "security", "type": "technical",
			},
		},
		{
			ID:      "contact_001",
			Content: "📬 Contact Information: Portfolio Website https://solairajan.online/, LinkedIn https://www.linkedin.com/in/solai-rajan/, Email solai13kamaraj@gmail.com, GitHub https://github.com/Solairajan18",
			Metadata: map[string]any{
				"section": "contact", "type": "personal",
			},
		},
	}
}
