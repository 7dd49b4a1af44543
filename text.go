package main

type NavItem struct {
	ID    string
	Label string
}

type Job struct {
	Role    string
	Company string
	Period  string
	Logo    string
	Bullets []string
}

type Project struct {
	Title string
	Desc  string
	Tags  []string
	Link  string
	Img   string
}

type SkillGroup struct {
	Title string
	Items []string
}

type BlogPost struct {
	Title string
	Date  string
	Tags  []string
	Img   string
}

type SocialLink struct {
	Label  string
	Href   string
	Handle string
}

var (
	ProfileName    = "Your Name"
	ProfileTagline = "Software Engineer • Product-minded • Curious"
	ProfileImage   = "https://images.unsplash.com/photo-1544005313-94ddf0286df2?q=80&w=256&auto=format&fit=crop"
	SplineScene    = "https://prod.spline.design/VJLoxp84lCdVfdZu/scene.splinecode"

	HeroIntro = `I build delightful, performant interfaces and thoughtful systems. I love working at the
	intersection of design, engineering, and AI.`

	AboutMe = `I’m a full-stack developer focused on building accessible, minimal, and reliable products.
	I enjoy crafting clean UIs, scalable APIs, and experimenting with AI to augment workflows.`

	AboutFacts = []string{
		"Based in Anywhere",
		"Open to freelance and collaborations",
		"Currently exploring multi-agent systems",
	}

	Nav = []NavItem{
		{ID: "about", Label: "About"},
		{ID: "experience", Label: "Experience"},
		{ID: "projects", Label: "Projects"},
		{ID: "skills", Label: "Skills"},
		{ID: "blogs", Label: "Blogs"},
		{ID: "open-source", Label: "Open Source"},
		{ID: "contact", Label: "Contact"},
	}

	Jobs = []Job{
		{
			Role:    "Frontend Engineer",
			Company: "Acme Inc.",
			Period:  "2023 – Present",
			Logo:    "https://images.unsplash.com/photo-1521737604893-d14cc237f11d?q=80&w=256&auto=format&fit=crop",
			Bullets: []string{
				"Led redesign with Notion-like system",
				"Improved LCP by 35%",
				"Built component library",
			},
		},
		{
			Role:    "Software Engineer",
			Company: "Globex",
			Period:  "2021 – 2023",
			Logo:    "https://images.unsplash.com/photo-1529070538774-1843cb3265df?q=80&w=256&auto=format&fit=crop",
			Bullets: []string{
				"Shipped real-time dashboards",
				"Maintained CI/CD pipelines",
				"Mentored junior engineers",
			},
		},
	}

	Projects = []Project{
		{
			Title: "Notion-Portfolio",
			Desc:  "A minimal portfolio template with Notion vibes.",
			Tags:  []string{"react", "tailwind"},
			Link:  "#",
			Img:   "https://images.unsplash.com/photo-1551033406-611cf9a28f67?q=80&w=1200&auto=format&fit=crop",
		},
		{
			Title: "AI Notes",
			Desc:  "Semantic search and summarization for notes.",
			Tags:  []string{"ai", "vectordb"},
			Link:  "#",
			Img:   "https://images.unsplash.com/photo-1526498460520-4c246339dccb?q=80&w=1200&auto=format&fit=crop",
		},
		{
			Title: "Design System",
			Desc:  "Token-based system with theming and motion.",
			Tags:  []string{"design", "system"},
			Link:  "#",
			Img:   "https://images.unsplash.com/photo-1506084868230-bb9d95c24759?q=80&w=1200&auto=format&fit=crop",
		},
		{
			Title: "Open Widget Kit",
			Desc:  "Embeddable widgets for dashboards.",
			Tags:  []string{"widgets", "oss"},
			Link:  "#",
			Img:   "https://images.unsplash.com/photo-1498050108023-c5249f4df085?q=80&w=1200&auto=format&fit=crop",
		},
	}

	Skills = []SkillGroup{
		{Title: "Frontend", Items: []string{"React", "Next.js", "Tailwind CSS", "Framer Motion"}},
		{Title: "Backend", Items: []string{"FastAPI", "Node.js", "MongoDB", "Postgres"}},
		{Title: "AI/ML", Items: []string{"LangChain", "OpenAI", "Vector DBs", "Pinecone"}},
		{Title: "Mobile", Items: []string{"React Native", "Expo"}},
		{Title: "Tools", Items: []string{"Git", "Docker", "Vite", "Figma"}},
		{Title: "Cloud", Items: []string{"Vercel", "AWS", "Railway"}},
	}

	Blogs = []BlogPost{
		{Title: "Designing with Constraints", Date: "2024-08-12", Tags: []string{"design", "systems"}, Img: "https://images.unsplash.com/photo-1500530855697-b586d89ba3ee?q=80&w=900&auto=format&fit=crop"},
		{Title: "Building a Notion-style UI in React", Date: "2024-05-03", Tags: []string{"react", "ui"}, Img: "https://images.unsplash.com/photo-1559163179-87a949b3513b?q=80&w=900&auto=format&fit=crop"},
		{Title: "From Idea to Prototype in a Day", Date: "2024-02-19", Tags: []string{"product", "speed"}, Img: "https://images.unsplash.com/photo-1529336953121-ad0d5a67b2f0?q=80&w=900&auto=format&fit=crop"},
	}

	SocialLinks = []SocialLink{
		{Label: "Email", Href: "mailto:you@example.com", Handle: "you@example.com"},
		{Label: "GitHub", Href: "https://github.com", Handle: "github.com/yourhandle"},
		{Label: "LinkedIn", Href: "https://linkedin.com", Handle: "linkedin.com/in/you"},
		{Label: "Twitter", Href: "https://twitter.com", Handle: "twitter.com/you"},
	}

	// Right sidebar
	CurrentlyLearning = []string{"Rust", "tRPC", "Agents", "RAG"}
	Toolbox           = []string{"VS Code", "Raycast", "Arc", "Figma"}
	NowPlaying        = struct{ Title, Subtitle, Img string }{
		Title:    "Lofi Coding Beats",
		Subtitle: "Focus • Chillhop",
		Img:      "https://images.unsplash.com/photo-1520975916090-3105956dac38?q=80&w=256&auto=format&fit=crop",
	}

	Footer = "Built with a Notion-inspired aesthetic. Smooth, minimal, and responsive."
)
