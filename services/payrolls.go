package services

import (
	"context"

	"github.com/meinhoongagan/backoffice-api/dtos"
	"github.com/meinhoongagan/backoffice-api/models"
	"github.com/meinhoongagan/backoffice-api/store"
	"github.com/sirupsen/logrus"
)

type PayrollService struct {
	store *store.Store
	log   *logrus.Logger
}

// employeeRef resolves the employee a payroll or expense points at. On
// create the reference is mandatory.
func employeeRef(ctx context.Context, st *store.Store, ref dtos.IDRef, required bool) (*models.Employee, error) {
	if !ref.Set {
		if required {
			return nil, referenceNotFound("Invalid employee ID")
		}
		return nil, nil
	}
	if ref.Invalid {
		return nil, validation("Invalid employee ID. Must be a number.")
	}
	return existing(ctx, st.Employees, ref.Value, "Invalid employee ID")
}

func (s *PayrollService) Create(ctx context.Context, req dtos.PayrollRequest) (*models.Payroll, error) {
	emp, err := employeeRef(ctx, s.store, req.Employee, true)
	if err != nil {
		return nil, err
	}
	if req.Salary == nil || req.Date == nil || req.Status == nil || req.PhoneNumber == nil {
		return nil, validation("salary, date, status and phoneNumber are required")
	}
	p := &models.Payroll{EmployeeID: emp.ID}
	applyPayroll(p, req)
	if err := s.store.Payrolls.Create(ctx, p); err != nil {
		return nil, internal("Internal server error", err)
	}
	p.Employee = emp
	return p, nil
}

func (s *PayrollService) List(ctx context.Context) ([]models.Payroll, error) {
	return list(ctx, s.store.Payrolls, "Employee")
}

func (s *PayrollService) Get(ctx context.Context, id uint) (*models.Payroll, error) {
	return lookup(ctx, s.store.Payrolls, id, "Payroll not found", "Employee")
}

// Update applies the fields present in req. A given employee must exist.
func (s *PayrollService) Update(ctx context.Context, id uint, req dtos.PayrollRequest) (*models.Payroll, error) {
	p, err := lookup(ctx, s.store.Payrolls, id, "Payroll not found")
	if err != nil {
		return nil, err
	}
	emp, err := employeeRef(ctx, s.store, req.Employee, false)
	if err != nil {
		return nil, err
	}
	if emp != nil {
		p.EmployeeID = emp.ID
	}
	applyPayroll(p, req)
	p.Employee = nil
	if err := s.store.Payrolls.Save(ctx, p); err != nil {
		return nil, internal("Internal server error", err)
	}
	return lookup(ctx, s.store.Payrolls, id, "Payroll not found", "Employee")
}

func (s *PayrollService) Delete(ctx context.Context, id uint) error {
	return remove(ctx, s.store.Payrolls, id, "Payroll not found")
}

func applyPayroll(p *models.Payroll, req dtos.PayrollRequest) {
	if req.Salary != nil {
		p.Salary = *req.Salary
	}
	if req.Date != nil {
		p.Date = *req.Date
	}
	if req.Status != nil {
		p.Status = *req.Status
	}
	if req.PhoneNumber != nil {
		p.PhoneNumber = *req.PhoneNumber
	}
	if req.Bonuses != nil {
		p.Bonuses = req.Bonuses
	}
}
