package handlers

import (
	"net/http"

	"jobportal/internal/models"
	"jobportal/internal/store"

	"github.com/gin-gonic/gin"
)

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// RegisterRoutes mounts the health endpoint and the CRUD surface for all
// twelve resources under /api.
func RegisterRoutes(r *gin.Engine, st *store.Stores) {
	api := r.Group("/api")

	api.GET("/health", HealthCheck)

	Register[models.Application, *models.Application](api, "applications", st.Applications)
	Register[models.Category, *models.Category](api, "categories", st.Categories)
	Register[models.Employer, *models.Employer](api, "employers", st.Employers)
	Register[models.EmployersJobListing, *models.EmployersJobListing](api, "employersjoblistings", st.EmployersJobListings)
	Register[models.JobCategoryMapping, *models.JobCategoryMapping](api, "jobcategorymapping", st.JobCategoryMappings)
	Register[models.JobListing, *models.JobListing](api, "joblistings", st.JobListings)
	Register[models.JobSeekerSkill, *models.JobSeekerSkill](api, "jobseekerskills", st.JobSeekerSkills)
	Register[models.JobSeeker, *models.JobSeeker](api, "jobseekers", st.JobSeekers)
	Register[models.Message, *models.Message](api, "messages", st.Messages)
	Register[models.Notification, *models.Notification](api, "notifications", st.Notifications)
	Register[models.Skill, *models.Skill](api, "skills", st.Skills)
	Register[models.User, *models.User](api, "users", st.Users)
}
