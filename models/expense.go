package models

type Expense struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount" gorm:"type:decimal"`
	Date        string    `json:"date"`
	Status      string    `json:"status"`
	PhoneNumber string    `json:"phoneNumber"`
	EmployeeID  uint      `json:"employeeId" gorm:"not null;index"`
	Employee    *Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
}
