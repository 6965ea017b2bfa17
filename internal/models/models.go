package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserRole distinguishes the two account kinds on the portal.
type UserRole string

const (
	RoleEmployer  UserRole = "Employer"
	RoleJobSeeker UserRole = "JobSeeker"
)

// ApplicationStatus tracks the reviewal state of an application. Job
// listings reuse the same values for their own status field.
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "Pending"
	StatusReviewed ApplicationStatus = "Reviewed"
	StatusRejected ApplicationStatus = "Rejected"
	StatusAccepted ApplicationStatus = "Accepted"
	StatusOther    ApplicationStatus = "Other"
)

// ProficiencyLevel rates a job seeker's command of a skill.
type ProficiencyLevel string

const (
	ProficiencyBeginner     ProficiencyLevel = "Beginner"
	ProficiencyIntermediate ProficiencyLevel = "Intermediate"
	ProficiencyExpert       ProficiencyLevel = "Expert"
)

type User struct {
	UserID              uint     `gorm:"primaryKey" json:"UserID"`
	Username            string   `gorm:"not null" json:"Username" binding:"required"`
	Password            string   `gorm:"not null" json:"Password" binding:"required"`
	Email               string   `gorm:"not null" json:"Email" binding:"required"`
	UserRole            UserRole `gorm:"not null" json:"UserRole" binding:"required,oneof=Employer JobSeeker"`
	ProfilePicture      string   `json:"ProfilePicture"`
	AuthenticationToken string   `json:"AuthenticationToken"`
}

func (u *User) GetID() uint   { return u.UserID }
func (u *User) SetID(id uint) { u.UserID = id }

// BeforeCreate issues an opaque token for accounts created without one.
func (u *User) BeforeCreate(*gorm.DB) error {
	if u.AuthenticationToken == "" {
		u.AuthenticationToken = uuid.NewString()
	}
	return nil
}

type Employer struct {
	EmployerID         uint   `gorm:"primaryKey" json:"EmployerID"`
	CompanyName        string `gorm:"not null" json:"CompanyName" binding:"required"`
	CompanyDescription string `gorm:"type:text" json:"CompanyDescription"`
	CompanyLogo        string `json:"CompanyLogo"`
}

func (e *Employer) GetID() uint   { return e.EmployerID }
func (e *Employer) SetID(id uint) { e.EmployerID = id }

type JobSeeker struct {
	JobSeekerID uint   `gorm:"primaryKey" json:"JobSeekerID"`
	UserID      uint   `json:"UserID"`
	Resume      string `gorm:"type:text" json:"Resume"`
	CoverLetter string `gorm:"type:text" json:"CoverLetter"`
}

func (j *JobSeeker) GetID() uint   { return j.JobSeekerID }
func (j *JobSeeker) SetID(id uint) { j.JobSeekerID = id }

type JobListing struct {
	JobID               uint              `gorm:"primaryKey" json:"JobID"`
	EmployerID          uint              `json:"EmployerID"`
	JobTitle            string            `gorm:"not null" json:"JobTitle" binding:"required"`
	JobDescription      string            `gorm:"type:text;not null" json:"JobDescription" binding:"required"`
	JobRequirements     string            `gorm:"type:text" json:"JobRequirements"`
	Salary              float64           `json:"Salary" binding:"gte=0"`
	Location            string            `json:"Location"`
	ApplicationDeadline *time.Time        `json:"ApplicationDeadline,omitempty"`
	ApplicationStatus   ApplicationStatus `gorm:"not null" json:"ApplicationStatus" binding:"required,oneof=Pending Reviewed Rejected Accepted Other"`
}

func (j *JobListing) GetID() uint   { return j.JobID }
func (j *JobListing) SetID(id uint) { j.JobID = id }

type Category struct {
	CategoryID          uint   `gorm:"primaryKey" json:"CategoryID"`
	CategoryName        string `gorm:"not null" json:"CategoryName" binding:"required"`
	CategoryDescription string `gorm:"type:text" json:"CategoryDescription"`
}

func (c *Category) GetID() uint   { return c.CategoryID }
func (c *Category) SetID(id uint) { c.CategoryID = id }

type Application struct {
	ApplicationID     uint              `gorm:"primaryKey" json:"ApplicationID"`
	JobID             uint              `json:"JobID"`
	JobSeekerID       uint              `json:"JobSeekerID"`
	ApplicationStatus ApplicationStatus `gorm:"not null" json:"ApplicationStatus" binding:"required,oneof=Pending Reviewed Rejected Accepted Other"`
	ApplicationDate   time.Time         `json:"ApplicationDate"`
	AttachedDocuments datatypes.JSON    `json:"AttachedDocuments"`
	Comments          string            `gorm:"type:text" json:"Comments"`
}

func (a *Application) GetID() uint   { return a.ApplicationID }
func (a *Application) SetID(id uint) { a.ApplicationID = id }

type Skill struct {
	SkillID          uint   `gorm:"primaryKey" json:"SkillID"`
	SkillName        string `gorm:"not null" json:"SkillName" binding:"required"`
	SkillDescription string `gorm:"type:text" json:"SkillDescription"`
}

func (s *Skill) GetID() uint   { return s.SkillID }
func (s *Skill) SetID(id uint) { s.SkillID = id }

type JobSeekerSkill struct {
	JobSeekerSkillID uint             `gorm:"primaryKey" json:"JobSeekerSkillID"`
	JobSeekerID      uint             `json:"JobSeekerID"`
	SkillID          uint             `json:"SkillID"`
	ProficiencyLevel ProficiencyLevel `gorm:"not null" json:"ProficiencyLevel" binding:"required,oneof=Beginner Intermediate Expert"`
}

func (j *JobSeekerSkill) GetID() uint   { return j.JobSeekerSkillID }
func (j *JobSeekerSkill) SetID(id uint) { j.JobSeekerSkillID = id }

type JobCategoryMapping struct {
	JobCategoryMappingID uint `gorm:"primaryKey" json:"JobCategoryMappingID"`
	JobID                uint `json:"JobID"`
	CategoryID           uint `json:"CategoryID"`
}

func (j *JobCategoryMapping) GetID() uint   { return j.JobCategoryMappingID }
func (j *JobCategoryMapping) SetID(id uint) { j.JobCategoryMappingID = id }

type EmployersJobListing struct {
	EmployersJobListingID uint `gorm:"primaryKey" json:"EmployersJobListingID"`
	EmployerID            uint `json:"EmployerID"`
	JobID                 uint `json:"JobID"`
}

func (e *EmployersJobListing) GetID() uint   { return e.EmployersJobListingID }
func (e *EmployersJobListing) SetID(id uint) { e.EmployersJobListingID = id }

type Message struct {
	MessageID      uint      `gorm:"primaryKey" json:"MessageID"`
	SenderID       uint      `json:"SenderID"`
	ReceiverID     uint      `json:"ReceiverID"`
	MessageContent string    `gorm:"type:text;not null" json:"MessageContent" binding:"required"`
	Timestamp      time.Time `json:"Timestamp"`
}

func (m *Message) GetID() uint   { return m.MessageID }
func (m *Message) SetID(id uint) { m.MessageID = id }

// BeforeSave stamps the server time, overriding whatever the client sent.
func (m *Message) BeforeSave(*gorm.DB) error {
	m.Timestamp = time.Now()
	return nil
}

type Notification struct {
	NotificationID      uint      `gorm:"primaryKey" json:"NotificationID"`
	UserID              uint      `json:"UserID"`
	NotificationContent string    `gorm:"type:text;not null" json:"NotificationContent" binding:"required"`
	NotificationType    string    `json:"NotificationType"`
	Timestamp           time.Time `json:"Timestamp"`
}

func (n *Notification) GetID() uint   { return n.NotificationID }
func (n *Notification) SetID(id uint) { n.NotificationID = id }

// BeforeSave stamps the server time, overriding whatever the client sent.
func (n *Notification) BeforeSave(*gorm.DB) error {
	n.Timestamp = time.Now()
	return nil
}
