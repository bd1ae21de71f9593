package services

import (
	"context"

	"github.com/meinhoongagan/backoffice-api/dtos"
	"github.com/meinhoongagan/backoffice-api/models"
	"github.com/meinhoongagan/backoffice-api/store"
	"github.com/sirupsen/logrus"
)

type ExpenseService struct {
	store *store.Store
	log   *logrus.Logger
}

func (s *ExpenseService) Create(ctx context.Context, req dtos.ExpenseRequest) (*models.Expense, error) {
	emp, err := employeeRef(ctx, s.store, req.Employee, true)
	if err != nil {
		return nil, err
	}
	if req.Description == nil || req.Amount == nil || req.Date == nil || req.Status == nil {
		return nil, validation("description, amount, date and status are required")
	}
	e := &models.Expense{EmployeeID: emp.ID}
	applyExpense(e, req)
	if err := s.store.Expenses.Create(ctx, e); err != nil {
		return nil, internal("Internal server error", err)
	}
	e.Employee = emp
	return e, nil
}

func (s *ExpenseService) List(ctx context.Context) ([]models.Expense, error) {
	return list(ctx, s.store.Expenses, "Employee")
}

func (s *ExpenseService) Get(ctx context.Context, id uint) (*models.Expense, error) {
	return lookup(ctx, s.store.Expenses, id, "Expense not found", "Employee")
}

func (s *ExpenseService) Update(ctx context.Context, id uint, req dtos.ExpenseRequest) (*models.Expense, error) {
	e, err := lookup(ctx, s.store.Expenses, id, "Expense not found")
	if err != nil {
		return nil, err
	}
	emp, err := employeeRef(ctx, s.store, req.Employee, false)
	if err != nil {
		return nil, err
	}
	if emp != nil {
		e.EmployeeID = emp.ID
	}
	applyExpense(e, req)
	e.Employee = nil
	if err := s.store.Expenses.Save(ctx, e); err != nil {
		return nil, internal("Internal server error", err)
	}
	return lookup(ctx, s.store.Expenses, id, "Expense not found", "Employee")
}

func (s *ExpenseService) Delete(ctx context.Context, id uint) error {
	return remove(ctx, s.store.Expenses, id, "Expense not found")
}

func applyExpense(e *models.Expense, req dtos.ExpenseRequest) {
	if req.Description != nil {
		e.Description = *req.Description
	}
	if req.Amount != nil {
		e.Amount = *req.Amount
	}
	if req.Date != nil {
		e.Date = *req.Date
	}
	if req.Status != nil {
		e.Status = *req.Status
	}
	if req.PhoneNumber != nil {
		e.PhoneNumber = *req.PhoneNumber
	}
}
