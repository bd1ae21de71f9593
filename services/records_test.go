package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/meinhoongagan/backoffice-api/dtos"
	"github.com/meinhoongagan/backoffice-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonPatch[T any](body string) Patch[T] {
	return func(rec *T) error { return json.Unmarshal([]byte(body), rec) }
}

func TestClientCRUD(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.svc.Clients.Create(ctx, &models.Client{})
	assert.Equal(t, KindValidation, KindOf(err))

	c, err := f.svc.Clients.Create(ctx, &models.Client{ClientName: "Maple", ClientEmail: "m@x.test"})
	require.NoError(t, err)

	updated, err := f.svc.Clients.Update(ctx, c.ID, jsonPatch[models.Client](`{"clientPhoneNumber":"555"}`))
	require.NoError(t, err)
	assert.Equal(t, "Maple", updated.ClientName)
	assert.Equal(t, "555", updated.ClientPhoneNumber)

	_, err = f.svc.Clients.Update(ctx, c.ID, jsonPatch[models.Client](`{bad`))
	assert.Equal(t, KindValidation, KindOf(err))

	all, err := f.svc.Clients.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, f.svc.Clients.Delete(ctx, c.ID))
	_, err = f.svc.Clients.Get(ctx, c.ID)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestPropertyRequiresExistingClient(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.svc.Properties.Create(ctx, &models.Property{ClientID: 9, PropertyAddress: "1 Elm"})
	assert.Equal(t, KindReferenceNotFound, KindOf(err))
	assert.Equal(t, 0, count(t, f.store.Properties))

	c, err := f.svc.Clients.Create(ctx, &models.Client{ClientName: "Maple"})
	require.NoError(t, err)
	p, err := f.svc.Properties.Create(ctx, &models.Property{ClientID: c.ID, PropertyAddress: "1 Elm"})
	require.NoError(t, err)
	require.NotNil(t, p.Client)
	assert.Equal(t, "Maple", p.Client.ClientName)

	_, err = f.svc.Properties.Update(ctx, p.ID, jsonPatch[models.Property](`{"clientId":77}`))
	assert.Equal(t, KindReferenceNotFound, KindOf(err))
}

func TestTaskReferences(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.store.Properties.Create(ctx, &models.Property{ID: 2, ClientID: 1, PropertyAddress: "x"}))

	_, err := f.svc.Tasks.Create(ctx, &models.Task{PropertyID: 3})
	assert.Equal(t, KindReferenceNotFound, KindOf(err))

	_, err = f.svc.Tasks.Create(ctx, &models.Task{PropertyID: 2, OfferID: ptr(uint(8))})
	assert.Equal(t, KindReferenceNotFound, KindOf(err))

	task, err := f.svc.Tasks.Create(ctx, &models.Task{PropertyID: 2, TaskName: "Windows"})
	require.NoError(t, err)
	assert.Nil(t, task.OfferID)

	updated, err := f.svc.Tasks.Update(ctx, task.ID, jsonPatch[models.Task](`{"taskPrice":42}`))
	require.NoError(t, err)
	assert.Equal(t, 42.0, updated.TaskPrice)
	assert.Equal(t, "Windows", updated.TaskName)
}

func TestEmployeeValidationAndMerge(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.svc.Employees.Create(ctx, &models.Employee{FirstName: "Ana"})
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
	assert.Contains(t, err.Error(), "lastName")

	_, err = f.svc.Employees.Create(ctx, &models.Employee{
		FirstName: "Ana", LastName: "Lee", JobPosition: "Cleaner", StartDate: "01/02/2024",
	})
	assert.Equal(t, KindValidation, KindOf(err))

	e, err := f.svc.Employees.Create(ctx, &models.Employee{
		FirstName: "Ana", LastName: "Lee", JobPosition: "Cleaner", StartDate: "2024-02-01",
	})
	require.NoError(t, err)

	merged, err := f.svc.Employees.Update(ctx, e.ID, jsonPatch[models.Employee](`{"jobPosition":"Lead"}`))
	require.NoError(t, err)
	assert.Equal(t, "Lead", merged.JobPosition)
	assert.Equal(t, "Ana", merged.FirstName)

	_, err = f.svc.Employees.Update(ctx, e.ID, jsonPatch[models.Employee](`{"firstName":""}`))
	assert.Equal(t, KindValidation, KindOf(err))
}

type recordingUploader struct {
	url    string
	folder string
	body   string
	err    error
}

func (u *recordingUploader) Upload(_ context.Context, file io.Reader, folder string) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	b, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	u.folder = folder
	u.body = string(b)
	return u.url, nil
}

func TestEmployeeDocumentUpload(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.svc.Employees.AttachDocument(ctx, 1, strings.NewReader("pdf"))
	assert.Equal(t, KindUnavailable, KindOf(err))

	up := &recordingUploader{url: "https://res.cloudinary.com/demo/raw/upload/doc.pdf"}
	f.svc.Employees.uploader = up
	require.NoError(t, f.store.Employees.Create(ctx, &models.Employee{ID: 1, FirstName: "Ana"}))

	e, err := f.svc.Employees.AttachDocument(ctx, 1, strings.NewReader("pdf"))
	require.NoError(t, err)
	assert.Equal(t, up.url, e.CopyOfID)
	assert.Equal(t, DocumentFolder, up.folder)
	assert.Equal(t, "pdf", up.body)

	_, err = f.svc.Employees.AttachDocument(ctx, 2, strings.NewReader("pdf"))
	assert.Equal(t, KindNotFound, KindOf(err))

	up.err = errors.New("quota exceeded")
	_, err = f.svc.Employees.AttachDocument(ctx, 1, strings.NewReader("pdf"))
	assert.Equal(t, KindInternal, KindOf(err))
}

func TestPayrollEmployeeReference(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.store.Employees.Create(ctx, &models.Employee{ID: 1, FirstName: "Ana"}))
	require.NoError(t, f.store.Employees.Create(ctx, &models.Employee{ID: 2, FirstName: "Bo"}))

	base := dtos.PayrollRequest{
		Salary: ptr(2500.0), Date: ptr("2024-03-01"), Status: ptr("Pending"), PhoneNumber: ptr("555"),
	}

	missing := base
	missing.Employee = dtos.Ref(99)
	_, err := f.svc.Payrolls.Create(ctx, missing)
	assert.Equal(t, KindReferenceNotFound, KindOf(err))
	assert.Equal(t, 0, count(t, f.store.Payrolls))

	_, err = f.svc.Payrolls.Create(ctx, base)
	assert.Equal(t, KindReferenceNotFound, KindOf(err), "employee is mandatory on create")

	ok := base
	ok.Employee = dtos.Ref(1)
	p, err := f.svc.Payrolls.Create(ctx, ok)
	require.NoError(t, err)
	assert.Equal(t, uint(1), p.EmployeeID)

	_, err = f.svc.Payrolls.Update(ctx, p.ID, dtos.PayrollRequest{Employee: dtos.IDRef{Set: true, Invalid: true}})
	require.Error(t, err)
	assert.Equal(t, "Invalid employee ID. Must be a number.", err.Error())

	_, err = f.svc.Payrolls.Update(ctx, p.ID, dtos.PayrollRequest{Employee: dtos.Ref(50)})
	assert.Equal(t, KindReferenceNotFound, KindOf(err))

	updated, err := f.svc.Payrolls.Update(ctx, p.ID, dtos.PayrollRequest{Employee: dtos.Ref(2), Status: ptr("Paid")})
	require.NoError(t, err)
	assert.Equal(t, uint(2), updated.EmployeeID)
	assert.Equal(t, "Paid", updated.Status)
	assert.Equal(t, 2500.0, updated.Salary)

	require.NoError(t, f.svc.Payrolls.Delete(ctx, p.ID))
	assert.Equal(t, KindNotFound, KindOf(f.svc.Payrolls.Delete(ctx, p.ID)))
}

func TestExpenseLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.store.Employees.Create(ctx, &models.Employee{ID: 4, FirstName: "Ana"}))

	e, err := f.svc.Expenses.Create(ctx, dtos.ExpenseRequest{
		Employee: dtos.Ref(4), Description: ptr("Supplies"), Amount: ptr(19.5), Date: ptr("2024-03-02"), Status: ptr("Open"),
	})
	require.NoError(t, err)
	require.NotNil(t, e.Employee)

	_, err = f.svc.Expenses.Update(ctx, 999, dtos.ExpenseRequest{Status: ptr("Closed")})
	assert.Equal(t, KindNotFound, KindOf(err))

	updated, err := f.svc.Expenses.Update(ctx, e.ID, dtos.ExpenseRequest{Status: ptr("Closed")})
	require.NoError(t, err)
	assert.Equal(t, "Closed", updated.Status)
	assert.Equal(t, "Supplies", updated.Description)
}

func TestInvoiceCreate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.store.Users.Create(ctx, &models.User{ID: 1, Username: "sam"}))
	require.NoError(t, f.store.Users.Create(ctx, &models.User{ID: 2, Username: "kim"}))

	req := dtos.InvoiceRequest{InvoiceNumber: "INV-1", AssignBy: dtos.Ref(1), CompleteBy: dtos.Ref(2), Amount: 80}
	inv, err := f.svc.Invoices.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, uint(1), inv.AssignByID)
	assert.Equal(t, uint(2), inv.CompleteByID)

	_, err = f.svc.Invoices.Create(ctx, req)
	assert.Equal(t, KindValidation, KindOf(err), "duplicate invoice number")

	bad := req
	bad.InvoiceNumber = "INV-2"
	bad.CompleteBy = dtos.Ref(9)
	_, err = f.svc.Invoices.Create(ctx, bad)
	assert.Equal(t, KindReferenceNotFound, KindOf(err))
	assert.Equal(t, 1, count(t, f.store.Invoices))

	_, err = f.svc.Invoices.Create(ctx, dtos.InvoiceRequest{AssignBy: dtos.Ref(1), CompleteBy: dtos.Ref(2)})
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestUserCreate(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Users.Create(context.Background(), &models.User{})
	assert.Equal(t, KindValidation, KindOf(err))

	u, err := f.svc.Users.Create(context.Background(), &models.User{Username: "sam"})
	require.NoError(t, err)
	assert.NotZero(t, u.ID)
}
