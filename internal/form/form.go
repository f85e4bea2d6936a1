// Package form models the create/edit employee form: one component serves
// both cases, pre-populated from an existing record on edit. Identity fields
// (aadhaar, UAN) lock once the record exists; everything else stays editable.
package form

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/adrsh79086/adarsh-contractor-frontend/internal/dto"
	"github.com/adrsh79086/adarsh-contractor-frontend/internal/model"
)

// Field names a form field. The values match the API's JSON keys.
type Field string

const (
	FieldName              Field = "name"
	FieldAge               Field = "age"
	FieldMobileNumber      Field = "mobile_number"
	FieldAadhaarNumber     Field = "aadhaar_number"
	FieldUANNumber         Field = "uan_number"
	FieldBankAccountNumber Field = "bank_account_number"
	FieldBankIFSC          Field = "bank_ifsc"
	FieldBankName          Field = "bank_name"
	FieldSalaryAmount      Field = "salary_amount"
	FieldAdvanceAmount     Field = "advance_amount"
)

// Fields is the prompt/render order, matching the original form layout.
var Fields = []Field{
	FieldName, FieldAge, FieldMobileNumber, FieldAadhaarNumber, FieldUANNumber,
	FieldBankAccountNumber, FieldBankIFSC, FieldBankName,
	FieldSalaryAmount, FieldAdvanceAmount,
}

var ErrFieldLocked = errors.New("field cannot be changed once the record exists")

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0 work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// Form holds the in-progress field values. State survives a failed submit so
// the form can stay open and editable.
type Form struct {
	existingID string
	req        dto.EmployeeRequest
}

// NewCreate returns an empty form for a new record.
func NewCreate() *Form {
	return &Form{}
}

// NewEdit returns a form pre-populated from an existing record.
func NewEdit(emp model.Employee) *Form {
	return &Form{
		existingID: emp.ID,
		req: dto.EmployeeRequest{
			Name:              emp.Name,
			Age:               emp.Age,
			MobileNumber:      emp.MobileNumber,
			AadhaarNumber:     emp.AadhaarNumber,
			UANNumber:         emp.UANNumber,
			BankAccountNumber: emp.BankAccountNumber,
			BankIFSC:          emp.BankIFSC,
			BankName:          emp.BankName,
			SalaryAmount:      emp.SalaryAmount,
			AdvanceAmount:     emp.AdvanceAmount,
		},
	}
}

// Editing reports whether the form targets an existing record.
func (f *Form) Editing() bool { return f.existingID != "" }

// ID returns the record id on edit, "" on create.
func (f *Form) ID() string { return f.existingID }

// Locked reports whether a field is read-only in this form instance.
func (f *Form) Locked(field Field) bool {
	if !f.Editing() {
		return false
	}
	return field == FieldAadhaarNumber || field == FieldUANNumber
}

// Set parses and stores raw input for a field. Locked fields are refused and
// keep their value. Numeric fields report a parse error instead of storing
// garbage; an empty value clears optional numerics to zero.
func (f *Form) Set(field Field, raw string) error {
	if f.Locked(field) {
		return fmt.Errorf("%s: %w", field, ErrFieldLocked)
	}
	raw = strings.TrimSpace(raw)

	switch field {
	case FieldName:
		f.req.Name = raw
	case FieldAge:
		if raw == "" {
			f.req.Age = 0
			return nil
		}
		age, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("age must be a whole number")
		}
		f.req.Age = age
	case FieldMobileNumber:
		f.req.MobileNumber = raw
	case FieldAadhaarNumber:
		f.req.AadhaarNumber = raw
	case FieldUANNumber:
		f.req.UANNumber = raw
	case FieldBankAccountNumber:
		f.req.BankAccountNumber = raw
	case FieldBankIFSC:
		f.req.BankIFSC = raw
	case FieldBankName:
		f.req.BankName = raw
	case FieldSalaryAmount:
		return setAmount(&f.req.SalaryAmount, "salary amount", raw)
	case FieldAdvanceAmount:
		return setAmount(&f.req.AdvanceAmount, "advance amount", raw)
	default:
		return fmt.Errorf("unknown field %q", field)
	}
	return nil
}

func setAmount(dst *decimal.Decimal, label, raw string) error {
	if raw == "" {
		*dst = decimal.Zero
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("%s must be a number", label)
	}
	*dst = d
	return nil
}

// Get returns the current display value of a field.
func (f *Form) Get(field Field) string {
	switch field {
	case FieldName:
		return f.req.Name
	case FieldAge:
		if f.req.Age == 0 {
			return ""
		}
		return strconv.Itoa(f.req.Age)
	case FieldMobileNumber:
		return f.req.MobileNumber
	case FieldAadhaarNumber:
		return f.req.AadhaarNumber
	case FieldUANNumber:
		return f.req.UANNumber
	case FieldBankAccountNumber:
		return f.req.BankAccountNumber
	case FieldBankIFSC:
		return f.req.BankIFSC
	case FieldBankName:
		return f.req.BankName
	case FieldSalaryAmount:
		if f.req.SalaryAmount.IsZero() {
			return ""
		}
		return f.req.SalaryAmount.String()
	case FieldAdvanceAmount:
		if f.req.AdvanceAmount.IsZero() {
			return ""
		}
		return f.req.AdvanceAmount.String()
	default:
		return ""
	}
}

// FieldErrors maps field name to the violated rule.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for field, rule := range e {
		parts = append(parts, field+": "+rule)
	}
	sort.Strings(parts)
	return "invalid form: " + strings.Join(parts, ", ")
}

// ruleMessages translate validator tags into operator-facing wording.
var ruleMessages = map[string]string{
	"required": "is required",
	"min":      "is below the minimum",
}

// Validate runs the client-side rules. Violations are reported before any
// network call is made; server-side rules (aadhaar/UAN uniqueness) still
// apply on submit.
func (f *Form) Validate() error {
	err := validate.Struct(f.req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		msg, ok := ruleMessages[fe.Tag()]
		if !ok {
			msg = "is invalid (" + fe.Tag() + ")"
		}
		fields[jsonName(fe.Field())] = msg
	}
	return fields
}

// Payload returns the request body for create/update.
func (f *Form) Payload() dto.EmployeeRequest { return f.req }

// jsonName maps a dto struct field name to its JSON key.
func jsonName(structField string) string {
	t := reflect.TypeOf(dto.EmployeeRequest{})
	if sf, ok := t.FieldByName(structField); ok {
		if tag := strings.Split(sf.Tag.Get("json"), ",")[0]; tag != "" {
			return tag
		}
	}
	return structField
}
