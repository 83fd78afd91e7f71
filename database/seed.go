package database

import (
	"log"

	"github.com/globalscholars/study_abroad/models"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

var seedCourses = []models.Course{
	{
		Title:        "IELTS Preparation Course",
		Category:     "Language",
		Duration:     "8 weeks",
		StudentCount: 2500,
		Rating:       4.9,
		Price:        299,
		ThumbnailURL: strPtr("https://images.unsplash.com/photo-1434030216411-0b793f4b4173?w=800&q=80"),
		Description:  "Comprehensive IELTS preparation with expert instructors and practice tests.",
	},
	{
		Title:        "GRE Complete Prep",
		Category:     "Test Prep",
		Duration:     "12 weeks",
		StudentCount: 1200,
		Rating:       4.7,
		Price:        449,
		ThumbnailURL: strPtr("https://images.unsplash.com/photo-1513258496099-48168024aec0?w=800&q=80"),
		Description:  "Intensive GRE preparation covering Verbal, Quantitative, and Analytical Writing.",
	},
	{
		Title:        "Academic Writing Mastery",
		Category:     "Academic",
		Duration:     "6 weeks",
		StudentCount: 900,
		Rating:       4.6,
		Price:        249,
		ThumbnailURL: strPtr("https://images.unsplash.com/photo-1523240795612-9a054b0db644?w=800&q=80"),
		Description:  "Sharpen your research and academic writing skills with practical assignments and feedback.",
	},
	{
		Title:        "Counseling for Study Abroad",
		Category:     "Counseling",
		Duration:     "4 weeks",
		StudentCount: 650,
		Rating:       4.8,
		Price:        199,
		ThumbnailURL: strPtr("https://images.unsplash.com/photo-1516383607781-913a19294fd1?w=800&q=80"),
		Description:  "Personalized counseling sessions to help you navigate applications, visas, and scholarships.",
	},
	{
		Title:        "TOEFL Booster Program",
		Category:     "Language",
		Duration:     "10 weeks",
		StudentCount: 1800,
		Rating:       4.7,
		Price:        329,
		ThumbnailURL: strPtr("https://images.unsplash.com/photo-1553877522-43269d4ea984?w=800&q=80"),
		Description:  "Boost your TOEFL scores with targeted practice and expert strategies.",
	},
	{
		Title:        "Data Analytics Foundations",
		Category:     "Academic",
		Duration:     "8 weeks",
		StudentCount: 1400,
		Rating:       4.5,
		Price:        399,
		ThumbnailURL: strPtr("https://images.unsplash.com/photo-1551434678-e076c223a692?w=800&q=80"),
		Description:  "Learn core analytics concepts and tools to strengthen your university applications and research projects.",
	},
}

type seedDestination struct {
	destination  models.Destination
	universities []models.University
}

var seedDestinations = []seedDestination{
	{
		destination: models.Destination{
			Name:            "United Kingdom",
			Flag:            strPtr("\U0001F1EC\U0001F1E7"),
			UniversityCount: 150,
			CostRange:       "$15,000 - $35,000",
			Duration:        "3-4 years",
			WorkPermitRules: "20 hrs/week",
			ImageURL:        strPtr("https://images.unsplash.com/photo-1513635269975-59663e0ac1ad?w=800&q=80"),
			Highlights:      []string{"World-renowned universities", "Post-study work visa", "Rich cultural heritage"},
		},
		universities: []models.University{
			{Name: "University of Oxford", Ranking: 3, Location: "Oxford"},
			{Name: "University of Cambridge", Ranking: 2, Location: "Cambridge"},
			{Name: "Imperial College London", Ranking: 6, Location: "London"},
		},
	},
	{
		destination: models.Destination{
			Name:            "United States",
			Flag:            strPtr("\U0001F1FA\U0001F1F8"),
			UniversityCount: 200,
			CostRange:       "$20,000 - $50,000",
			Duration:        "4 years",
			WorkPermitRules: "On-campus work permitted",
			ImageURL:        strPtr("https://images.unsplash.com/photo-1508057198894-247b23fe5ade?w=800&q=80"),
			Highlights:      []string{"Ivy League excellence", "Diverse campus life", "Strong research opportunities"},
		},
		universities: []models.University{
			{Name: "Harvard University", Ranking: 1, Location: "Cambridge, MA"},
			{Name: "Stanford University", Ranking: 3, Location: "Stanford, CA"},
			{Name: "Massachusetts Institute of Technology", Ranking: 5, Location: "Cambridge, MA"},
		},
	},
	{
		destination: models.Destination{
			Name:            "Australia",
			Flag:            strPtr("\U0001F1E6\U0001F1FA"),
			UniversityCount: 43,
			CostRange:       "$18,000 - $40,000",
			Duration:        "3-4 years",
			WorkPermitRules: "40 hrs/fortnight",
			ImageURL:        strPtr("https://images.unsplash.com/photo-1523482580672-f109ba8cb9be?w=800&q=80"),
			Highlights:      []string{"High quality of life", "Generous work rights", "Strong graduate outcomes"},
		},
		universities: []models.University{
			{Name: "University of Melbourne", Ranking: 14, Location: "Melbourne"},
			{Name: "Australian National University", Ranking: 34, Location: "Canberra"},
			{Name: "University of Sydney", Ranking: 19, Location: "Sydney"},
		},
	},
}

// SeedCatalog loads demo courses, destinations and universities into empty
// tables so a fresh install has something to show.
func SeedCatalog(db *gorm.DB) error {
	var courseCount int64
	if err := db.Model(&models.Course{}).Count(&courseCount).Error; err != nil {
		return err
	}
	if courseCount == 0 {
		courses := make([]models.Course, len(seedCourses))
		copy(courses, seedCourses)
		if err := db.Create(&courses).Error; err != nil {
			return err
		}
		log.Printf("✅ Seeded %d courses", len(courses))
	}

	var destinationCount int64
	if err := db.Model(&models.Destination{}).Count(&destinationCount).Error; err != nil {
		return err
	}
	if destinationCount == 0 {
		for _, entry := range seedDestinations {
			destination := entry.destination
			if err := db.Create(&destination).Error; err != nil {
				return err
			}
			for _, university := range entry.universities {
				university.DestinationID = destination.ID
				if err := db.Create(&university).Error; err != nil {
					return err
				}
			}
		}
		log.Printf("✅ Seeded %d destinations", len(seedDestinations))
	}

	return nil
}
