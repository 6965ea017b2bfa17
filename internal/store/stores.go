package store

import (
	"jobportal/internal/models"

	"gorm.io/gorm"
)

// Stores bundles one store per portal resource. A deployment uses exactly
// one constructor: the two backings are never mixed within a running
// collection.
type Stores struct {
	Users                Store[models.User]
	Employers            Store[models.Employer]
	JobSeekers           Store[models.JobSeeker]
	JobListings          Store[models.JobListing]
	Categories           Store[models.Category]
	Applications         Store[models.Application]
	Skills               Store[models.Skill]
	JobSeekerSkills      Store[models.JobSeekerSkill]
	JobCategoryMappings  Store[models.JobCategoryMapping]
	EmployersJobListings Store[models.EmployersJobListing]
	Messages             Store[models.Message]
	Notifications        Store[models.Notification]
}

// NewMemoryStores builds the volatile variant.
func NewMemoryStores() *Stores {
	return &Stores{
		Users:                NewMemory[models.User, *models.User](),
		Employers:            NewMemory[models.Employer, *models.Employer](),
		JobSeekers:           NewMemory[models.JobSeeker, *models.JobSeeker](),
		JobListings:          NewMemory[models.JobListing, *models.JobListing](),
		Categories:           NewMemory[models.Category, *models.Category](),
		Applications:         NewMemory[models.Application, *models.Application](),
		Skills:               NewMemory[models.Skill, *models.Skill](),
		JobSeekerSkills:      NewMemory[models.JobSeekerSkill, *models.JobSeekerSkill](),
		JobCategoryMappings:  NewMemory[models.JobCategoryMapping, *models.JobCategoryMapping](),
		EmployersJobListings: NewMemory[models.EmployersJobListing, *models.EmployersJobListing](),
		Messages:             NewMemory[models.Message, *models.Message](),
		Notifications:        NewMemory[models.Notification, *models.Notification](),
	}
}

// NewGormStores builds the persistent variant over an open connection.
func NewGormStores(db *gorm.DB) *Stores {
	return &Stores{
		Users:                NewGorm[models.User, *models.User](db),
		Employers:            NewGorm[models.Employer, *models.Employer](db),
		JobSeekers:           NewGorm[models.JobSeeker, *models.JobSeeker](db),
		JobListings:          NewGorm[models.JobListing, *models.JobListing](db),
		Categories:           NewGorm[models.Category, *models.Category](db),
		Applications:         NewGorm[models.Application, *models.Application](db),
		Skills:               NewGorm[models.Skill, *models.Skill](db),
		JobSeekerSkills:      NewGorm[models.JobSeekerSkill, *models.JobSeekerSkill](db),
		JobCategoryMappings:  NewGorm[models.JobCategoryMapping, *models.JobCategoryMapping](db),
		EmployersJobListings: NewGorm[models.EmployersJobListing, *models.EmployersJobListing](db),
		Messages:             NewGorm[models.Message, *models.Message](db),
		Notifications:        NewGorm[models.Notification, *models.Notification](db),
	}
}
