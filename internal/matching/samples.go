package matching

import "github.com/jonathan/resume-analyzer/internal/types"

var sampleJobs = []types.SampleJob{
	{
		Title:   "Software Engineer",
		Company: "Tech Startup",
		Description: `We are looking for a Software Engineer to develop scalable web applications.
- Design and implement backend services using Python/Node.js
- Build RESTful APIs and microservices
- Work with databases (SQL/NoSQL)
- Collaborate with frontend team
- Optimize application performance
- Write unit and integration tests
- Participate in code reviews
Requirements:
- 2+ years of software development experience
- Strong programming skills in Python, Java, or JavaScript
- Understanding of databases and SQL
- Experience with Git and CI/CD pipelines
- Good problem-solving skills`,
		RequiredSkills: []string{"Python", "JavaScript", "REST API", "Database", "Git", "CI/CD"},
	},
	{
		Title:   "Data Scientist",
		Company: "Analytics Firm",
		Description: `We need a Data Scientist to build predictive models and extract insights from data.
- Develop machine learning models
- Perform data analysis and statistical testing
- Create data visualizations
- Deploy models to production
- Collaborate with stakeholders
Requirements:
- 2+ years in data science or analytics
- Proficiency in Python/R
- Experience with pandas, scikit-learn, TensorFlow
- SQL and database knowledge
- Strong statistics and math background
- Data visualization skills`,
		RequiredSkills: []string{"Python", "Machine Learning", "Statistics", "SQL", "Data Visualization", "TensorFlow"},
	},
	{
		Title:   "Frontend Developer",
		Company: "Web Agency",
		Description: `Join us as a Frontend Developer to build beautiful and responsive web interfaces.
- Develop responsive web applications
- Work with React/Vue/Angular
- Implement modern UI/UX designs
- Optimize frontend performance
- Test code across browsers
- Collaborate with designers and backend teams
Requirements:
- 2+ years of frontend development experience
- Strong HTML, CSS, JavaScript knowledge
- Experience with modern frameworks (React/Vue/Angular)
- Understanding of responsive design
- Git and version control
- Problem-solving skills`,
		RequiredSkills: []string{"React", "JavaScript", "HTML/CSS", "Responsive Design", "Git", "Web Performance"},
	},
}

// SampleJobs returns a copy of the built-in demo postings.
func SampleJobs() []types.SampleJob {
	jobs := make([]types.SampleJob, len(sampleJobs))
	for i, job := range sampleJobs {
		job.RequiredSkills = append([]string(nil), job.RequiredSkills...)
		jobs[i] = job
	}
	return jobs
}

// SampleJob returns the demo posting at index i, or false when i is out of range.
func SampleJob(i int) (types.SampleJob, bool) {
	if i < 0 || i >= len(sampleJobs) {
		return types.SampleJob{}, false
	}
	return SampleJobs()[i], true
}
