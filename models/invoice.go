package models

type Invoice struct {
	ID            uint    `json:"id" gorm:"primaryKey"`
	PropertyName  string  `json:"propertyName"`
	HouseNo       string  `json:"houseNo"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	PhoneNumber   string  `json:"phoneNumber"`
	InvoiceNumber string  `json:"invoiceNumber" gorm:"uniqueIndex"`
	TodayWorkTime string  `json:"todayWorkTime"`
	Amount        float64 `json:"amount" gorm:"type:decimal"`
	AssignByID    uint    `json:"assignById" gorm:"column:assigned_by"`
	AssignBy      *User   `json:"assignBy,omitempty" gorm:"foreignKey:AssignByID"`
	DueDate       string  `json:"dueDate"`
	CompleteByID  uint    `json:"completeById" gorm:"column:completed_by"`
	CompleteBy    *User   `json:"completeBy,omitempty" gorm:"foreignKey:CompleteByID"`
	Note          string  `json:"note" gorm:"type:text"`
}
