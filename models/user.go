package models

// User is an internal staff account referenced by invoices.
type User struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	Username          string    `json:"username" gorm:"not null"`
	AssignedInvoices  []Invoice `json:"assignedInvoices,omitempty" gorm:"foreignKey:AssignByID"`
	CompletedInvoices []Invoice `json:"completedInvoices,omitempty" gorm:"foreignKey:CompleteByID"`
}

// TableName keeps the singular table name used by existing deployments.
func (User) TableName() string { return "user" }
