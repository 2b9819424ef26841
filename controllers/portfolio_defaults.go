package controllers

import "portfolio-backend/models"

// Built-in content served whenever the store is empty or unreachable, so a
// fresh deployment renders a complete site with zero writes.

func defaultPersonalInfo() *models.PersonalInfo {
	return &models.PersonalInfo{
		ID:          "1",
		Name:        "Gaurav",
		Nickname:    "Gaurav",
		Title:       "Full-Stack Developer",
		Tagline:     "With great code comes great responsibility",
		Description: "A passionate developer swinging through the digital landscape, crafting exceptional web experiences with precision and creativity.",
		Email:       "mike@urmikexd.me",
		Phone:       "+1 (555) 123-4567",
		Location:    "New York City, NY",
		Avatar:      "/hero-avatar.png",
		Resume:      "#",
		Socials: models.Socials{
			Github:   "https://github.com",
			Linkedin: "https://linkedin.com",
			Twitter:  "https://twitter.com",
			Dribbble: "https://dribbble.com",
		},
	}
}

func defaultStats() []models.Stat {
	return []models.Stat{
		{ID: "1", Value: "5+", Label: "Years Experience", Order: 0},
		{ID: "2", Value: "120+", Label: "Projects Completed", Order: 1},
		{ID: "3", Value: "50+", Label: "Happy Clients", Order: 2},
		{ID: "4", Value: "99%", Label: "Success Rate", Order: 3},
	}
}

func defaultServices() []models.Service {
	return []models.Service{
		{ID: "1", Title: "Web Development", Description: "Building responsive, high-performance websites with modern frameworks and best practices.", Icon: "Globe"},
		{ID: "2", Title: "Software Engineering", Description: "Designing scalable software solutions with clean architecture and efficient algorithms.", Icon: "Code2"},
		{ID: "3", Title: "UI/UX Design", Description: "Creating intuitive interfaces and seamless user experiences that captivate and convert.", Icon: "Palette"},
		{ID: "4", Title: "Freelancing", Description: "Delivering custom solutions tailored to your unique business needs and goals.", Icon: "Briefcase"},
	}
}

func defaultProjects() []models.Project {
	return []models.Project{
		{ID: "1", Title: "E-Commerce Platform", Description: "A full-featured online store with payment integration and inventory management.", Image: "https://images.unsplash.com/photo-1556742049-0cfed4f6a45d?w=600&h=400&fit=crop", Category: "Web Development", Technologies: []string{"React", "Node.js", "MongoDB", "Stripe"}, Link: "#", Github: "#"},
		{ID: "2", Title: "Task Management App", Description: "A collaborative project management tool with real-time updates and team features.", Image: "https://images.unsplash.com/photo-1611224923853-80b023f02d71?w=600&h=400&fit=crop", Category: "Software Engineering", Technologies: []string{"Next.js", "TypeScript", "PostgreSQL", "Socket.io"}, Link: "#", Github: "#"},
		{ID: "3", Title: "Finance Dashboard", Description: "Interactive analytics dashboard with data visualization and reporting features.", Image: "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=600&h=400&fit=crop", Category: "UI/UX Design", Technologies: []string{"React", "D3.js", "TailwindCSS", "Chart.js"}, Link: "#", Github: "#"},
		{ID: "4", Title: "AI Chat Application", Description: "Intelligent conversational interface powered by machine learning algorithms.", Image: "https://images.unsplash.com/photo-1677442136019-21780ecad995?w=600&h=400&fit=crop", Category: "Software Engineering", Technologies: []string{"Python", "FastAPI", "OpenAI", "Redis"}, Link: "#", Github: "#"},
		{ID: "5", Title: "Social Media App", Description: "Feature-rich social platform with real-time messaging and content sharing.", Image: "https://images.unsplash.com/photo-1611162617474-5b21e879e113?w=600&h=400&fit=crop", Category: "Web Development", Technologies: []string{"React Native", "Firebase", "GraphQL", "AWS"}, Link: "#", Github: "#"},
		{ID: "6", Title: "Portfolio Generator", Description: "Dynamic portfolio builder with customizable templates and themes.", Image: "https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=600&h=400&fit=crop", Category: "Freelancing", Technologies: []string{"Vue.js", "Nuxt", "Prisma", "Vercel"}, Link: "#", Github: "#"},
	}
}

func defaultProducts() []models.Product {
	return []models.Product{
		{ID: "1", Title: "React Component Library", Description: "50+ customizable UI components for rapid development.", Price: 49, OriginalPrice: 79, Image: "https://images.unsplash.com/photo-1633356122544-f134324a6cee?w=400&h=300&fit=crop", Category: "Code", Rating: 4.9, Downloads: 2500},
		{ID: "2", Title: "Full-Stack Starter Kit", Description: "Production-ready boilerplate with auth, API, and database.", Price: 79, OriginalPrice: 129, Image: "https://images.unsplash.com/photo-1555066931-4365d14bab8c?w=400&h=300&fit=crop", Category: "Template", Rating: 4.8, Downloads: 1800},
		{ID: "3", Title: "Developer Icons Pack", Description: "500+ premium icons optimized for web and mobile.", Price: 29, OriginalPrice: 49, Image: "https://images.unsplash.com/photo-1558655146-9f40138edfeb?w=400&h=300&fit=crop", Category: "Design", Rating: 4.7, Downloads: 3200},
		{ID: "4", Title: "API Integration Guide", Description: "Comprehensive e-book on building robust API integrations.", Price: 19, OriginalPrice: 39, Image: "https://images.unsplash.com/photo-1532619187608-e5375cab36aa?w=400&h=300&fit=crop", Category: "E-Book", Rating: 4.9, Downloads: 4100},
	}
}

func defaultTestimonials() []models.Testimonial {
	return []models.Testimonial{
		{ID: "1", Name: "Sarah Johnson", Role: "CEO, TechStart Inc.", Avatar: "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=100&h=100&fit=crop&crop=face", Content: "Gaurav delivered an exceptional e-commerce platform that exceeded our expectations. His attention to detail and technical expertise are unmatched.", Rating: 5},
		{ID: "2", Name: "David Chen", Role: "Product Manager, InnovateCo", Avatar: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=100&h=100&fit=crop&crop=face", Content: "Working with Gaurav was a game-changer for our project. He brought creative solutions and delivered ahead of schedule.", Rating: 5},
		{ID: "3", Name: "Emily Rodriguez", Role: "Founder, DesignLab", Avatar: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=100&h=100&fit=crop&crop=face", Content: "The UI/UX work Gaurav did for our app transformed our user engagement. Highly recommend his services!", Rating: 5},
		{ID: "4", Name: "Marcus Thompson", Role: "CTO, DataFlow Systems", Avatar: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=100&h=100&fit=crop&crop=face", Content: "Gaurav's software engineering skills are top-notch. He built us a scalable solution that handles millions of requests.", Rating: 5},
	}
}

func defaultSkills() []models.Skill {
	return []models.Skill{
		{ID: "1", Name: "React / Next.js", Level: 95},
		{ID: "2", Name: "Node.js / Express", Level: 90},
		{ID: "3", Name: "TypeScript", Level: 88},
		{ID: "4", Name: "Python / FastAPI", Level: 85},
		{ID: "5", Name: "MongoDB / PostgreSQL", Level: 87},
		{ID: "6", Name: "UI/UX Design", Level: 82},
	}
}

func defaultNavLinks() []models.NavLink {
	return []models.NavLink{
		{ID: "1", Label: "Home", Href: "#home", Order: 0},
		{ID: "2", Label: "Services", Href: "#services", Order: 1},
		{ID: "3", Label: "Portfolio", Href: "#portfolio", Order: 2},
		{ID: "4", Label: "Products", Href: "#products", Order: 3},
		{ID: "5", Label: "Testimonials", Href: "#testimonials", Order: 4},
		{ID: "6", Label: "Contact", Href: "#contact", Order: 5},
	}
}
