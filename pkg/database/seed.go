package database

import (
	"log"

	"recruiter_hub_backend/internal/model"

	"gorm.io/gorm"
)

// SeedDemoData populates an empty database with a small demo library and the
// onboarding path. Only called in debug/demo mode; production data comes from
// real authors.
func SeedDemoData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Content{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	items := []model.Content{
		{
			Title:       "Sourcing Fundamentals",
			Description: "Boolean search, X-ray search and outreach basics for technical roles.",
			Type:        model.ContentDocument,
			Category:    "Sourcing",
			Tags:        "sourcing,boolean-search,outreach",
			Status:      model.StatusPublished,
			Body:        "# Sourcing Fundamentals\n\nStart with the role requirements, then build Boolean strings from must-have skills.\n",
		},
		{
			Title:       "Phone Screen Checklist",
			Description: "Everything to cover in a 30-minute recruiter screen.",
			Type:        model.ContentChecklist,
			Category:    "Interviewing",
			Tags:        "interviewing,phone-screen",
			Status:      model.StatusPublished,
			Body:        "# Phone Screen Checklist\n\n- [ ] Rapport building\n- [ ] Background review\n- [ ] Motivation\n- [ ] Next steps\n",
		},
		{
			Title:       "Offer Negotiation Playbook",
			Description: "Scripts and scenarios for extending and closing offers.",
			Type:        model.ContentPlaybook,
			Category:    "Closing",
			Tags:        "offers,negotiation,closing",
			Status:      model.StatusPublished,
			Body:        "# Offer Negotiation Playbook\n\nAlways call before sending the written offer.\n",
		},
	}

	now := db.NowFunc()
	for i := range items {
		items[i].PublishedAt = &now
		if err := db.Create(&items[i]).Error; err != nil {
			return err
		}
	}

	path := model.LearningPath{
		Title:        "New Recruiter Onboarding",
		Description:  "The mandatory ramp-up path for new hires.",
		IsOnboarding: true,
	}
	if err := db.Create(&path).Error; err != nil {
		return err
	}

	for i, item := range items {
		if err := db.Create(&model.LearningPathItem{
			ID:        model.GenerateUUID(),
			PathID:    path.ID,
			ContentID: item.ID,
			SortOrder: i,
		}).Error; err != nil {
			return err
		}
	}

	log.Println("Demo data seeded")
	return nil
}
