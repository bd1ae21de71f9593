package models

import "time"

// Employee holds HR data. Dates are kept as YYYY-MM-DD strings.
type Employee struct {
	ID                     uint      `json:"id" gorm:"primaryKey"`
	FirstName              string    `json:"firstName" gorm:"not null" validate:"required"`
	LastName               string    `json:"lastName" gorm:"not null" validate:"required"`
	JobPosition            string    `json:"jobPosition" validate:"required"`
	StartDate              string    `json:"startDate" validate:"required,datetime=2006-01-02"`
	WorkHours              string    `json:"workHours" gorm:"type:text"`
	Qualifications         string    `json:"qualifications" gorm:"type:text"`
	WorkExperience         string    `json:"workExperience" gorm:"type:text"`
	LanguageSkills         string    `json:"languageSkills" gorm:"type:text"`
	SpecialSkills          string    `json:"specialSkills" gorm:"type:text"`
	AssignmentAreas        string    `json:"assignmentAreas" gorm:"type:text"`
	MedicalInfo            string    `json:"medicalInfo" gorm:"type:text"`
	EmergencyContacts      string    `json:"emergencyContacts" gorm:"type:text"`
	SocialSecurityNumber   string    `json:"socialSecurityNumber"`
	TaxInformation         string    `json:"taxInformation" gorm:"type:text"`
	DateOfBirth            string    `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	PrivateAddress         string    `json:"privateAddress" gorm:"type:text"`
	PrivatePhoneNumber     string    `json:"privatePhoneNumber" gorm:"type:text"`
	NumberOfChildren       *int      `json:"numberOfChildren"`
	ChildrenBirthDates     string    `json:"childrenBirthDates" gorm:"type:text"`
	SalaryDetails          string    `json:"salaryDetails" gorm:"type:text"`
	BankAccountInfo        string    `json:"bankAccountInfo" gorm:"type:text"`
	BonusDetails           string    `json:"bonusDetails" gorm:"type:text"`
	PerformanceEvaluations string    `json:"performanceEvaluations" gorm:"type:text"`
	DisciplinaryActions    string    `json:"disciplinaryActions" gorm:"type:text"`
	FuturePlans            string    `json:"futurePlans" gorm:"type:text"`
	CopyOfID               string    `json:"copyOfId"`
	CreatedAt              time.Time `json:"createdAt"`
	UpdatedAt              time.Time `json:"updatedAt"`
}
