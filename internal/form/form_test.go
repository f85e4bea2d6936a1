package form

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adrsh79086/adarsh-contractor-frontend/internal/model"
)

func filledForm(t *testing.T) *Form {
	t.Helper()
	f := NewCreate()
	require.NoError(t, f.Set(FieldName, "Ramesh Kumar"))
	require.NoError(t, f.Set(FieldAge, "32"))
	require.NoError(t, f.Set(FieldMobileNumber, "9876543210"))
	require.NoError(t, f.Set(FieldAadhaarNumber, "123412341234"))
	require.NoError(t, f.Set(FieldUANNumber, "100200300400"))
	return f
}

func TestCreateFormValidates(t *testing.T) {
	f := filledForm(t)
	require.NoError(t, f.Validate())

	payload := f.Payload()
	assert.Equal(t, "Ramesh Kumar", payload.Name)
	assert.Equal(t, 32, payload.Age)
	assert.True(t, payload.SalaryAmount.IsZero())
}

func TestMissingRequiredFields(t *testing.T) {
	f := NewCreate()
	require.NoError(t, f.Set(FieldName, "Ramesh"))

	err := f.Validate()
	require.Error(t, err)
	var fieldErrs FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs, "age")
	assert.Contains(t, fieldErrs, "mobile_number")
	assert.Contains(t, fieldErrs, "aadhaar_number")
	assert.Contains(t, fieldErrs, "uan_number")
	assert.NotContains(t, fieldErrs, "name")
	assert.NotContains(t, fieldErrs, "bank_name")
}

func TestAgeZeroRejected(t *testing.T) {
	f := filledForm(t)
	require.NoError(t, f.Set(FieldAge, "0"))

	err := f.Validate()
	var fieldErrs FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs, "age")
}

func TestNegativeAmountRejected(t *testing.T) {
	f := filledForm(t)
	require.NoError(t, f.Set(FieldSalaryAmount, "-100"))

	err := f.Validate()
	var fieldErrs FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs, "salary_amount")
}

func TestAmountParsing(t *testing.T) {
	f := filledForm(t)
	require.NoError(t, f.Set(FieldSalaryAmount, "18000.50"))
	assert.True(t, f.Payload().SalaryAmount.Equal(decimal.NewFromFloat(18000.50)))

	// Clearing an optional numeric resets it to zero.
	require.NoError(t, f.Set(FieldSalaryAmount, ""))
	assert.True(t, f.Payload().SalaryAmount.IsZero())

	assert.Error(t, f.Set(FieldSalaryAmount, "lots"))
	assert.Error(t, f.Set(FieldAge, "thirty"))
}

func TestEditFormPrePopulates(t *testing.T) {
	emp := model.Employee{
		ID: "e42", Name: "Ramesh", Age: 32,
		MobileNumber: "9876543210", AadhaarNumber: "123412341234", UANNumber: "100200300400",
		BankName: "SBI", SalaryAmount: decimal.NewFromInt(18000),
	}
	f := NewEdit(emp)

	assert.True(t, f.Editing())
	assert.Equal(t, "e42", f.ID())
	assert.Equal(t, "Ramesh", f.Get(FieldName))
	assert.Equal(t, "18000", f.Get(FieldSalaryAmount))
	require.NoError(t, f.Validate())
}

func TestIdentityFieldsLockOnEdit(t *testing.T) {
	f := NewEdit(model.Employee{
		ID: "e42", Name: "Ramesh", Age: 32,
		MobileNumber: "9876543210", AadhaarNumber: "123412341234", UANNumber: "100200300400",
	})

	assert.True(t, f.Locked(FieldAadhaarNumber))
	assert.True(t, f.Locked(FieldUANNumber))
	assert.False(t, f.Locked(FieldName))

	// A locked field refuses the write and keeps its value.
	err := f.Set(FieldAadhaarNumber, "999999999999")
	assert.ErrorIs(t, err, ErrFieldLocked)
	assert.Equal(t, "123412341234", f.Get(FieldAadhaarNumber))

	err = f.Set(FieldUANNumber, "000")
	assert.ErrorIs(t, err, ErrFieldLocked)
	assert.Equal(t, "100200300400", f.Get(FieldUANNumber))
}

func TestIdentityFieldsEditableOnCreate(t *testing.T) {
	f := NewCreate()
	assert.False(t, f.Locked(FieldAadhaarNumber))
	assert.False(t, f.Locked(FieldUANNumber))
	require.NoError(t, f.Set(FieldAadhaarNumber, "123412341234"))
}

func TestStateSurvivesFailedValidation(t *testing.T) {
	f := NewCreate()
	require.NoError(t, f.Set(FieldName, "Ramesh"))
	require.Error(t, f.Validate())

	// The form stays open and editable: earlier input is still there.
	assert.Equal(t, "Ramesh", f.Get(FieldName))
	require.NoError(t, f.Set(FieldAge, "32"))
}
