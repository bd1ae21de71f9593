package models

// All lists every persisted model in migration order.
func All() []any {
	return []any{
		&Client{},
		&Property{},
		&Offer{},
		&Task{},
		&Employee{},
		&Payroll{},
		&Expense{},
		&User{},
		&Invoice{},
		&Company{},
		&SuperAdmin{},
	}
}
