package services

import (
	"context"
	"io"

	"github.com/meinhoongagan/backoffice-api/models"
	"github.com/meinhoongagan/backoffice-api/store"
	"github.com/sirupsen/logrus"
)

// DocumentFolder is the upload folder for employee ID documents.
const DocumentFolder = "employee_documents"

type EmployeeService struct {
	employees store.Repository[models.Employee]
	uploader  Uploader
	log       *logrus.Logger
}

func (s *EmployeeService) Create(ctx context.Context, e *models.Employee) (*models.Employee, error) {
	e.ID = 0
	if err := Validate(e); err != nil {
		return nil, err
	}
	if err := s.employees.Create(ctx, e); err != nil {
		return nil, internal("Internal server error", err)
	}
	return e, nil
}

func (s *EmployeeService) Get(ctx context.Context, id uint) (*models.Employee, error) {
	return lookup(ctx, s.employees, id, "Employee not found")
}

func (s *EmployeeService) List(ctx context.Context) ([]models.Employee, error) {
	return list(ctx, s.employees)
}

// Update merges the patch into the stored employee and revalidates it.
func (s *EmployeeService) Update(ctx context.Context, id uint, patch Patch[models.Employee]) (*models.Employee, error) {
	e, err := lookup(ctx, s.employees, id, "Employee not found")
	if err != nil {
		return nil, err
	}
	createdAt := e.CreatedAt
	if err := patch(e); err != nil {
		return nil, validation("Cannot parse JSON")
	}
	e.ID = id
	e.CreatedAt = createdAt
	if err := Validate(e); err != nil {
		return nil, err
	}
	if err := s.employees.Save(ctx, e); err != nil {
		return nil, internal("Internal server error", err)
	}
	return e, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id uint) error {
	return remove(ctx, s.employees, id, "Employee not found")
}

// AttachDocument uploads a copy of the employee's ID document and stores its
// URL on the record.
func (s *EmployeeService) AttachDocument(ctx context.Context, id uint, file io.Reader) (*models.Employee, error) {
	if s.uploader == nil {
		return nil, &Error{Kind: KindUnavailable, Code: CodeUnavailable, Message: "Document upload is not configured"}
	}
	e, err := lookup(ctx, s.employees, id, "Employee not found")
	if err != nil {
		return nil, err
	}
	url, err := s.uploader.Upload(ctx, file, DocumentFolder)
	if err != nil {
		return nil, internal("Failed to upload document", err)
	}
	e.CopyOfID = url
	if err := s.employees.Save(ctx, e); err != nil {
		return nil, internal("Internal server error", err)
	}
	s.log.WithField("employee_id", id).Info("employee document attached")
	return e, nil
}
