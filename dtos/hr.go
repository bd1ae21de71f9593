package dtos

// PayrollRequest is used for both create and partial update. Nil fields are
// left untouched on update.
type PayrollRequest struct {
	Employee    IDRef    `json:"employee"`
	Salary      *float64 `json:"salary"`
	Date        *string  `json:"date"`
	Status      *string  `json:"status"`
	PhoneNumber *string  `json:"phoneNumber"`
	Bonuses     *float64 `json:"bonuses"`
}

// ExpenseRequest follows the same rules as PayrollRequest.
type ExpenseRequest struct {
	Employee    IDRef    `json:"employee"`
	Description *string  `json:"description"`
	Amount      *float64 `json:"amount"`
	Date        *string  `json:"date"`
	Status      *string  `json:"status"`
	PhoneNumber *string  `json:"phoneNumber"`
}

type InvoiceRequest struct {
	AssignBy      IDRef   `json:"assignBy"`
	CompleteBy    IDRef   `json:"completeBy"`
	InvoiceNumber string  `json:"invoiceNumber" validate:"required"`
	PropertyName  string  `json:"propertyName"`
	HouseNo       string  `json:"houseNo"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	PhoneNumber   string  `json:"phoneNumber"`
	TodayWorkTime string  `json:"todayWorkTime"`
	Amount        float64 `json:"amount"`
	DueDate       string  `json:"dueDate"`
	Note          string  `json:"note"`
}
