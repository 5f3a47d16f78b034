// ABOUTME: Fixed default collections for the alumni dashboard fallback cache
// ABOUTME: Served and persisted when neither server nor cached data exists

package alumni

import "alumniconnect/internal/models"

func seedInstituteFeed() []models.FeedPost {
	return []models.FeedPost{
		{
			ID:        "1",
			Type:      "announcement",
			Title:     "Alumni Reunion 2025 Registration Open",
			Content:   "Join us for the biggest alumni gathering! Register now for early bird pricing.",
			Author:    "IIT Delhi Alumni Office",
			Timestamp: "2024-12-13T10:30:00Z",
			Likes:     45,
			Comments:  12,
		},
		{
			ID:        "2",
			Type:      "achievement",
			Title:     "Congratulations to Rahul Sharma (Class of 2018)",
			Content:   "Just got promoted to Senior Software Engineer at Google!",
			Author:    "Rahul Sharma",
			Timestamp: "2024-12-12T15:45:00Z",
			Likes:     89,
			Comments:  23,
		},
	}
}

func seedGlobalFeed() []models.FeedPost {
	return []models.FeedPost{
		{
			ID:        "1",
			Type:      "professional_update",
			Title:     "Industry Insight: The Future of AI",
			Content:   "Sharing my thoughts on how AI will transform various industries in the next decade.",
			Author:    "Dr. Sarah Chen (MIT Alumni)",
			Timestamp: "2024-12-13T09:15:00Z",
			Likes:     234,
			Comments:  67,
		},
		{
			ID:        "2",
			Type:      "career_move",
			Title:     "Exciting Career Move!",
			Content:   "Thrilled to announce my new role as CTO at InnovateTech. Looking forward to this new challenge!",
			Author:    "Michael Rodriguez (Stanford Alumni)",
			Timestamp: "2024-12-12T14:20:00Z",
			Likes:     156,
			Comments:  45,
		},
	}
}

func seedInstituteConnections() []models.Connection {
	return []models.Connection{
		{ID: "1", Name: "Priya Patel", Batch: "2019", Department: "CSE", Company: "Microsoft"},
		{ID: "2", Name: "Arjun Kumar", Batch: "2017", Department: "ECE", Company: "Samsung"},
		{ID: "3", Name: "Sneha Reddy", Batch: "2020", Department: "CSE", Company: "Amazon"},
	}
}

func seedGlobalConnections() []models.Connection {
	return []models.Connection{
		{ID: "1", Name: "Elena Vasquez", University: "Stanford", Field: "AI Research", Company: "OpenAI"},
		{ID: "2", Name: "James Wilson", University: "MIT", Field: "Robotics", Company: "Boston Dynamics"},
		{ID: "3", Name: "Li Wei", University: "Tsinghua", Field: "Quantum Computing", Company: "IBM Research"},
	}
}

func seedInstituteEvents() []models.Event {
	return []models.Event{
		{ID: "1", Title: "Tech Talk: AI in Healthcare", Date: "2024-12-20", Type: "virtual", Attendees: 150},
		{ID: "2", Title: "Annual Alumni Meet", Date: "2024-12-25", Type: "physical", Location: "IIT Delhi Campus"},
	}
}

func seedGlobalEvents() []models.Event {
	return []models.Event{
		{ID: "1", Title: "Global Tech Summit 2025", Date: "2025-01-15", Type: "hybrid", Attendees: 5000},
		{
			ID:           "2",
			Title:        "Cross-University Innovation Challenge",
			Date:         "2025-02-01",
			Type:         "virtual",
			Universities: []string{"MIT", "Stanford", "IIT"},
		},
	}
}

func seedInstituteJobs() []models.Job {
	return []models.Job{
		{ID: "1", Title: "Senior Software Developer", Company: "TechCorp India", Location: "Bangalore", Type: "Full-time", PostedBy: "alumni"},
	}
}

func seedGlobalJobs() []models.Job {
	return []models.Job{
		{ID: "1", Title: "Principal Engineer - AI/ML", Company: "Google DeepMind", Location: "London, UK", Type: "Full-time"},
		{ID: "2", Title: "Senior Product Manager", Company: "Meta", Location: "Remote", Type: "Full-time"},
	}
}
