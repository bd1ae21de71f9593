package models

type Payroll struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	EmployeeID  uint      `json:"employeeId" gorm:"not null;index"`
	Employee    *Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
	Salary      float64   `json:"salary" gorm:"type:decimal"`
	Date        string    `json:"date"`
	Status      string    `json:"status"` // e.g. "Pending", "Paid"
	PhoneNumber string    `json:"phoneNumber"`
	Bonuses     *float64  `json:"bonuses" gorm:"type:decimal"`
}

// TableName keeps the singular table name used by existing deployments.
func (Payroll) TableName() string { return "payroll" }
