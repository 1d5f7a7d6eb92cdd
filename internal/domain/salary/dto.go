package salary

import "github.com/dayflow-hr/dayflow-backend-go/internal/pkg/validator"

type UpsertSalaryRequest struct {
	EmployeeID  string
	WageType    string  `json:"wage_type"`
	BaseWage    float64 `json:"base_wage"`
	WorkingDays int     `json:"working_days"`
}

func (r *UpsertSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if r.WageType != WageTypeFixed && r.WageType != WageTypeHourly {
		errs = append(errs, validator.ValidationError{
			Field:   "wage_type",
			Message: "wage_type must be FIXED or HOURLY",
		})
	}
	if r.BaseWage < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "base_wage",
			Message: "base_wage must not be negative",
		})
	}
	if r.WorkingDays < 0 || r.WorkingDays > 31 {
		errs = append(errs, validator.ValidationError{
			Field:   "working_days",
			Message: "working_days must be between 0 and 31",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpsertComponentRequest struct {
	EmployeeID      string
	ComponentName   string
	CalculationType string  `json:"calculation_type"`
	Value           float64 `json:"value"`
}

func (r *UpsertComponentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	validNames := []string{
		ComponentBasic, ComponentHRA, ComponentBonus,
		ComponentStandardAllowance, ComponentTravelAllowance,
		ComponentProvidentFund, ComponentProfessionalTax,
	}
	if !validator.IsInSlice(r.ComponentName, validNames) {
		errs = append(errs, validator.ValidationError{
			Field:   "component_name",
			Message: "component_name is not a recognized salary component",
		})
	}
	if r.CalculationType != CalcPercentage && r.CalculationType != CalcFixed {
		errs = append(errs, validator.ValidationError{
			Field:   "calculation_type",
			Message: "calculation_type must be PERCENTAGE or FIXED",
		})
	}
	if r.Value < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "value",
			Message: "value must not be negative",
		})
	}
	if r.CalculationType == CalcPercentage && r.Value > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "value",
			Message: "percentage value must not exceed 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ComponentResponse struct {
	ComponentName   string  `json:"component_name"`
	CalculationType string  `json:"calculation_type"`
	Value           float64 `json:"value"`
	Amount          float64 `json:"amount"`
	IsDeduction     bool    `json:"is_deduction"`
}

type SalaryResponse struct {
	ID          string              `json:"id"`
	EmployeeID  string              `json:"employee_id"`
	WageType    string              `json:"wage_type"`
	BaseWage    float64             `json:"base_wage"`
	WorkingDays int                 `json:"working_days"`
	MonthlyCTC  float64             `json:"monthly_ctc"`
	YearlyCTC   float64             `json:"yearly_ctc"`
	Components  []ComponentResponse `json:"components"`
	GrossPay    float64             `json:"gross_pay"`
	Deductions  float64             `json:"deductions"`
	NetPay      float64             `json:"net_pay"`
}

type PayrollEntry struct {
	EmployeeID   string   `json:"employee_id"`
	EmployeeName string   `json:"employee_name"`
	Designation  *string  `json:"designation,omitempty"`
	Department   *string  `json:"department,omitempty"`
	WageType     *string  `json:"wage_type,omitempty"`
	BaseWage     *float64 `json:"base_wage,omitempty"`
	MonthlyCTC   *float64 `json:"monthly_ctc,omitempty"`
	YearlyCTC    *float64 `json:"yearly_ctc,omitempty"`
}

type PayrollResponse struct {
	TotalCount int            `json:"total_count"`
	Entries    []PayrollEntry `json:"entries"`
}
