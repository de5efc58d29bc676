package content

var profile = Profile{
	Name:      "Maulika Rongala",
	FirstName: "Maulika",
	Headline:  "an AI & ML developer.",
	Tagline:   "AI & ML developer",
	Intro: "I build machine learning systems and deep learning models, " +
		"from CNNs for emotion recognition to NLP pipelines for real-time " +
		"transcription. Currently interning at Shell, with prior " +
		"experience at IBM and Microsoft.",
	Bio: []string{
		"I'm a B.Tech CSE (AI & ML) student at Lovely Professional University " +
			"with hands-on experience in machine learning, deep learning, and " +
			"data-driven problem solving. I've interned with industry leaders " +
			"(**Microsoft**, **IBM**, and **Shell**) through the Edunet Foundation.",
		"My work spans training CNNs for emotion recognition and waste " +
			"classification, to building real-time audio-to-notes platforms " +
			"with NLP pipelines. I love turning complex data into actionable " +
			"insights and deploying models that make a real impact.",
	},
	Email:        "maulika@example.com",
	GitHub:       "https://github.com/RMaulika",
	LinkedIn:     "https://www.linkedin.com/in/maulika-rongala/",
	Availability: "Available for opportunities",
	ContactBlurb: "I'm open to AI/ML internships, freelance projects, and " +
		"full-time opportunities. Feel free to reach out.",
	Credits: "Go · Echo · templ · WebAssembly",
}

var projects = []Project{
	{
		Title: "Clam-Zone — Amazon Clone",
		Description: "Developed a responsive e-commerce website clone of Amazon using React for frontend " +
			"and Firebase for authentication and backend. Implemented dynamic product listings, cart " +
			"management, and integrated Stripe payment gateway for secure transactions.",
		Tags: []string{"React", "Firebase", "Stripe", "React Router", "CSS"},
		Link: "#",
		Date: "July 2025",
	},
	{
		Title: "Emotion Recognition System",
		Description: "Built a hybrid emotion recognition system that detects human emotions using both " +
			"facial expressions and voice data. Trained separate CNN models on FER-2013 and RAVDESS " +
			"datasets for facial and audio emotion classification respectively.",
		Tags: []string{"Python", "TensorFlow", "OpenCV", "Librosa", "CNN", "Deep Learning"},
		Link: "https://github.com/RMaulika/Emotion-recognition",
		Date: "June 2025",
	},
	{
		Title: "Lecture Voice-to-Notes Generator",
		Description: "Developed an AI-powered tool that converts recorded lecture audio into concise study " +
			"notes and auto-generated quizzes. Uses Faster Whisper for speech-to-text and HuggingFace T5 " +
			"for summarisation, with a Streamlit web interface.",
		Tags: []string{"Python", "Faster Whisper", "HuggingFace T5", "Streamlit", "NLP"},
		Link: "https://github.com/RMaulika/LectureVoiceToNotes",
		Date: "October 2025",
	},
	{
		Title: "AI-Driven Groundwater System",
		Description: "Reinforced an AI-based system for real-time groundwater level monitoring using " +
			"predictive analytics. Ensured sustainable water extraction strategies through data-driven " +
			"decision-making with adaptive monitoring and control mechanisms.",
		Tags: []string{"Python", "Random Forest", "LSTM", "Flask", "Streamlit"},
		Link: "#",
		Date: "April 2025",
	},
}

var skills = []SkillCategory{
	{Category: "Languages", Skills: []string{"C++", "JavaScript", "C", "Python", "Java"}},
	{Category: "Frameworks", Skills: []string{"HTML & CSS", "Bootstrap", "Node.js", "React", "Streamlit"}},
	{
		Category: "Tools & Platforms",
		Skills:   []string{"MySQL", "MongoDB", "Git", "VS Code", "TensorFlow", "Pandas", "PyTorch", "Matplotlib", "NumPy"},
	},
	{
		Category: "Soft Skills",
		Skills:   []string{"Problem-Solving", "Leadership", "Project Management", "Adaptability", "Attention to Detail", "Quick Learner"},
	},
}

var experience = []ExperienceEntry{
	{
		Role:    "AI Intern",
		Company: "Shell",
		Via:     "Edunet Foundation",
		Period:  "Oct 2025 — Present",
		Description: "Improved waste classification accuracy using MobileNetV2-based model for Organic vs " +
			"Recyclable waste. Reduced model size by 40% using quantization for faster inference on " +
			"low-power IoT deployments.",
		Tech: []string{"Python", "TensorFlow/Keras", "MobileNetV2", "Scikit-learn", "NumPy"},
	},
	{
		Role:    "AI Intern",
		Company: "IBM",
		Via:     "Edunet Foundation",
		Period:  "Sep 2025 — Oct 2025",
		Description: "Boosted lecture-to-notes conversion accuracy by 20–35% upgrading Faster Whisper " +
			"transcription pipeline. Launched a Streamlit platform converting audio into structured notes " +
			"and quizzes in real time, increasing learner engagement by 40%.",
		Tech: []string{"OpenAI-Whisper", "Transformers", "PyTorch", "Streamlit", "Pandas"},
	},
	{
		Role:    "AI Intern",
		Company: "Microsoft",
		Via:     "Edunet Foundation",
		Period:  "May 2025 — Jun 2025",
		Description: "Achieved improved emotion recognition accuracy on FER-2013 dataset through " +
			"augmentation, hyperparameter tuning, and CNN enhancements. Designed the model for practical " +
			"use in human-computer interaction and sentiment analysis.",
		Tech: []string{"TensorFlow", "OpenCV", "NumPy", "Scikit-learn", "Pandas"},
	},
}

var certificates = []Certificate{
	{Title: "AI in Healthcare Specialization", Issuer: "Coursera", Date: "Nov 2025 — Present"},
	{Title: "Principles of Generative AI", Issuer: "Infosys Springboard", Date: "Oct 2025"},
	{Title: "Artificial Intelligence Primer", Issuer: "Infosys Springboard", Date: "Jun 2025"},
}

var achievements = []Achievement{
	{Text: "Shortlisted for the Infosys Springboard Virtual Internship Program based on technical and academic merit."},
	{Text: "Selected by Edunet Foundation (Microsoft, IBM & Shell partners) — improved model accuracy and performance across all internship programs."},
}

var education = []EducationEntry{
	{
		Institution: "Lovely Professional University",
		Location:    "Punjab, India",
		Degree:      "B.Tech — Computer Science & Engineering (AI & ML)",
		Score:       "CGPA: 6.42",
		Period:      "Aug 2023 — Present",
	},
	{
		Institution: "Graviity Junior College",
		Location:    "Hyderabad, Telangana",
		Degree:      "Intermediate",
		Score:       "Percentage: 86%",
		Period:      "Apr 2021 — Mar 2023",
	},
	{
		Institution: "PM Shri Kendriya Vidyalaya",
		Location:    "Hyderabad, Telangana",
		Degree:      "Matriculation",
		Score:       "Percentage: 92%",
		Period:      "Apr 2020 — Mar 2021",
	},
}

var navLinks = []NavLink{
	{Label: "About", Href: "#about"},
	{Label: "Skills", Href: "#skills"},
	{Label: "Projects", Href: "#projects"},
	{Label: "Experience", Href: "#experience"},
	{Label: "Education", Href: "#education"},
	{Label: "Contact", Href: "#contact"},
}

var stats = []Stat{
	{Value: "3", Label: "AI Internships"},
	{Value: "5+", Label: "Projects"},
	{Value: "3", Label: "Certifications"},
	{Value: "40%", Label: "Model Reduction"},
}
