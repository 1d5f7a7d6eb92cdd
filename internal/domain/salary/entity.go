package salary

import "time"

const (
	WageTypeFixed  = "FIXED"
	WageTypeHourly = "HOURLY"
)

const (
	CalcPercentage = "PERCENTAGE"
	CalcFixed      = "FIXED"
)

// Salary component names. The first five are earnings; provident fund and
// professional tax are deductions.
const (
	ComponentBasic             = "BASIC"
	ComponentHRA               = "HRA"
	ComponentBonus             = "BONUS"
	ComponentStandardAllowance = "STANDARD_ALLOWANCE"
	ComponentTravelAllowance   = "TRAVEL_ALLOWANCE"
	ComponentProvidentFund     = "PROVIDENT_FUND"
	ComponentProfessionalTax   = "PROFESSIONAL_TAX"
)

// Salary is an employee's wage structure, one row per employee.
type Salary struct {
	ID          string
	EmployeeID  string
	WageType    string
	BaseWage    float64
	WorkingDays int
	MonthlyCTC  float64
	YearlyCTC   float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SalaryComponent is one named line of a salary structure. PERCENTAGE
// components compute against the base wage; FIXED components pass their
// value through.
type SalaryComponent struct {
	ID              string
	SalaryID        string
	ComponentName   string
	CalculationType string
	Value           float64
	CreatedAt       time.Time
}

// Amount resolves the component's monthly amount for the given base wage.
func (c *SalaryComponent) Amount(baseWage float64) float64 {
	if c.CalculationType == CalcPercentage {
		return baseWage * c.Value / 100
	}
	return c.Value
}

// IsDeduction reports whether the component reduces net pay.
func (c *SalaryComponent) IsDeduction() bool {
	return c.ComponentName == ComponentProvidentFund || c.ComponentName == ComponentProfessionalTax
}
