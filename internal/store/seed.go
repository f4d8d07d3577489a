package store

import (
	"time"

	"github.com/UCAS-CE/cyberhub-service/internal/config"
	"github.com/UCAS-CE/cyberhub-service/internal/models"
)

// Seed data gives a fresh deployment a populated hub. The user set is
// only used until the first snapshot is written; everything else is
// in-memory state recreated on every boot.

func ownerUser(auth config.AuthConfig) *models.User {
	return &models.User{
		ID:             auth.OwnerID,
		Name:           auth.OwnerName,
		Email:          auth.OwnerEmail,
		Password:       auth.OwnerPassword,
		Role:           models.RoleOwner,
		Major:          "Administration",
		Karma:          1000,
		Badges:         []string{"founder"},
		CompletedSteps: []string{},
		JoinedProjects: []string{},
		Activity:       []models.ActivityEntry{},
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
	}
}

func seedUsers(auth config.AuthConfig) []*models.User {
	now := time.Now().UTC()
	return []*models.User{
		ownerUser(auth),
		{
			ID: "u-faculty-1", Name: "Dr. Samira Khalil", Email: "s.khalil@smail.ucas.edu.ps",
			Password: "faculty123", Role: models.RoleFaculty, Major: "Cyber Security",
			Karma: 480, Badges: []string{"mentor"},
			SkillScores:    models.SkillScores{Networks: 90, Security: 95, Software: 70, Hardware: 60, Research: 85},
			CompletedSteps: []string{}, JoinedProjects: []string{}, Activity: []models.ActivityEntry{},
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "u-expert-1", Name: "Omar Nassar", Email: "o.nassar@smail.ucas.edu.ps",
			Password: "expert123", Role: models.RoleExpert, Major: "Software Engineering",
			Karma: 320, Badges: []string{"top-answerer"},
			SkillScores:    models.SkillScores{Networks: 65, Security: 75, Software: 92, Hardware: 40, Research: 55},
			CompletedSteps: []string{}, JoinedProjects: []string{}, Activity: []models.ActivityEntry{},
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "u-student-1", Name: "Lina Abed", Email: "l.abed@smail.ucas.edu.ps",
			Password: "student123", Role: models.RoleStudent, Major: "Computer Science",
			Karma: 60, Badges: []string{},
			SkillScores:    models.SkillScores{Networks: 40, Security: 35, Software: 55, Hardware: 30, Research: 45},
			CompletedSteps: []string{}, JoinedProjects: []string{}, Activity: []models.ActivityEntry{},
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "u-student-2", Name: "Yousef Hamdan", Email: "y.hamdan@smail.ucas.edu.ps",
			Password: "student123", Role: models.RoleStudent, Major: "Networks",
			Karma: 20, Badges: []string{},
			CompletedSteps: []string{}, JoinedProjects: []string{}, Activity: []models.ActivityEntry{},
			CreatedAt: now, UpdatedAt: now,
		},
	}
}

func seedQuestions() []*models.Question {
	now := time.Now().UTC()
	return []*models.Question{
		{
			ID: "q-seed-1", AuthorID: "u-student-1", AuthorName: "Lina Abed",
			AuthorRole: models.RoleStudent,
			Title:      "How do I set up a safe malware analysis lab?",
			Body:       "I want to analyze samples without risking my host machine. What isolation setup do you recommend?",
			Category:   "Security", Status: models.QuestionAnswered, IsFeatured: true,
			Answers: []models.Answer{
				{
					ID: "a-seed-1", AuthorID: "u-expert-1", AuthorName: "Omar Nassar",
					AuthorRole: models.RoleExpert,
					Text:       "Use a dedicated VM with networking disabled and snapshot before each run. Never share folders with the host.",
					IsVerified: true, Upvotes: 12, CreatedAt: now.Add(-24 * time.Hour),
				},
			},
			CreatedAt: now.Add(-48 * time.Hour),
		},
		{
			ID: "q-seed-2", AuthorID: "u-student-2", AuthorName: "Yousef Hamdan",
			AuthorRole: models.RoleStudent,
			Title:      "Difference between symmetric and asymmetric encryption in practice?",
			Body:       "When would a real system use one over the other?",
			Category:   "Crypto", Status: models.QuestionUnanswered,
			Answers:   []models.Answer{},
			CreatedAt: now.Add(-6 * time.Hour),
		},
	}
}

func seedCourses() []*models.Course {
	now := time.Now().UTC()
	return []*models.Course{
		{
			ID: "c-networks", Name: "Computer Networks", Description: "Protocols, routing and packet analysis.",
			Resources: []models.CourseResource{
				{
					ID: "r-seed-1", Name: "Subnetting summary sheet", Type: models.ResourceSummary,
					URL: "https://hub.ucas.edu.ps/res/subnetting.pdf", Status: models.ResourceApproved,
					Origin: models.OriginOfficial, AuthorID: "u-faculty-1", AuthorName: "Dr. Samira Khalil",
					CreatedAt: now.Add(-72 * time.Hour),
				},
				{
					ID: "r-seed-2", Name: "Wireshark basics walkthrough", Type: models.ResourceVideo,
					URL: "https://video.example.com/wireshark-101", Status: models.ResourceApproved,
					Origin: models.OriginPractical, AuthorID: "u-expert-1", AuthorName: "Omar Nassar",
					CreatedAt: now.Add(-48 * time.Hour),
				},
			},
		},
		{
			ID: "c-security", Name: "Applied Cryptography", Description: "Ciphers, hashing and key exchange.",
			Resources: []models.CourseResource{
				{
					ID: "r-seed-3", Name: "Hash length extension demo", Type: models.ResourceTool,
					URL: "https://github.com/example/hash-ext", Status: models.ResourcePending,
					Origin: models.OriginCommunity, AuthorID: "u-student-1", AuthorName: "Lina Abed",
					CreatedAt: now.Add(-12 * time.Hour),
				},
			},
		},
		{
			ID: "c-software", Name: "Secure Software Development", Description: "Threat modeling and secure coding.",
			Resources: []models.CourseResource{},
		},
	}
}

func seedProjects() []*models.ProjectIdea {
	now := time.Now().UTC()
	return []*models.ProjectIdea{
		{
			ID: "p-seed-1", Title: "Campus CTF platform",
			Description:    "Build an internal capture-the-flag scoreboard for weekly practice.",
			ProposerID:     "u-faculty-1", ProposerName: "Dr. Samira Khalil", ProposerRole: models.RoleFaculty,
			RequiredSkills: []string{"Go", "Web"}, Slots: 4, FilledSlots: 0,
			Category: "Infrastructure", Status: "Open", CreatedAt: now.Add(-96 * time.Hour),
		},
		{
			ID: "p-seed-2", Title: "Phishing awareness simulator",
			Description:    "A training tool that sends simulated phishing mail to volunteers.",
			ProposerID:     "u-expert-1", ProposerName: "Omar Nassar", ProposerRole: models.RoleExpert,
			RequiredSkills: []string{"Engineering"}, Slots: 3, FilledSlots: 0,
			Category: "Side Project", Status: "Open", CreatedAt: now.Add(-24 * time.Hour),
		},
	}
}

func seedChallenge() *models.WeeklyChallenge {
	return &models.WeeklyChallenge{
		ID:           "wc-current",
		Title:        "Break the vault",
		Description:  "Reverse the provided binary and extract the flag before Friday's live session.",
		Difficulty:   "Hard",
		RewardBadge:  "vault-breaker",
		ExpiresAt:    time.Now().UTC().Add(7 * 24 * time.Hour),
		Winners:      []string{},
		ModeratorID:  "u-faculty-1",
		JoinRequests: []models.MeetingRequest{},
	}
}

func seedRoadmaps() []*models.Roadmap {
	return []*models.Roadmap{
		{
			ID: "rm-security", Title: "Security Analyst Path", Track: "Security",
			Steps: []models.RoadmapStep{
				{ID: "rm-sec-1", Label: "Networking fundamentals", Description: "OSI model, TCP/IP, common protocols."},
				{ID: "rm-sec-2", Label: "Linux essentials", Description: "Shell, permissions, services."},
				{ID: "rm-sec-3", Label: "Traffic analysis", Description: "Wireshark and IDS basics."},
				{ID: "rm-sec-4", Label: "Incident response", Description: "Triage, containment, reporting."},
			},
		},
		{
			ID: "rm-software", Title: "Secure Developer Path", Track: "Software",
			Steps: []models.RoadmapStep{
				{ID: "rm-dev-1", Label: "Version control", Description: "Git workflows and code review."},
				{ID: "rm-dev-2", Label: "Web security basics", Description: "OWASP top ten."},
				{ID: "rm-dev-3", Label: "Secure API design", Description: "Authentication, authorization, input handling."},
			},
		},
	}
}
