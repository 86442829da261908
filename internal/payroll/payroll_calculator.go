package payroll

import (
	payrollerrors "hr-payroll/internal/payroll/errors"
)

// EmployeePay adalah potongan data employee yang dibutuhkan perhitungan gaji.
type EmployeePay struct {
	EmpID       string
	Name        string
	BasicSalary float64
	HRA         float64
	Allowance   float64
	PFPercent   float64
	ESIPercent  float64
	PT          float64
}

// MonthAttendance adalah potongan data kehadiran untuk satu bulan.
type MonthAttendance struct {
	Month            string
	TotalWorkingDays int
	PresentDays      int
	LeaveDays        int
	LOPDays          int
}

type Calculation struct {
	EmpID            string  `json:"emp_id"`
	Name             string  `json:"name"`
	Month            string  `json:"month"`
	BasicSalary      float64 `json:"basic_salary"`
	HRA              float64 `json:"hra"`
	Allowance        float64 `json:"allowance"`
	GrossSalary      float64 `json:"gross_salary"`
	PFDeduction      float64 `json:"pf_deduction"`
	ESIDeduction     float64 `json:"esi_deduction"`
	PTDeduction      float64 `json:"pt_deduction"`
	TotalDeductions  float64 `json:"total_deductions"`
	NetSalary        float64 `json:"net_salary"`
	PaidDays         int     `json:"paid_days"`
	TotalWorkingDays int     `json:"total_working_days"`
}

// Calculate menurunkan perhitungan gaji satu bulan dari master employee dan
// record kehadirannya. Fungsi murni: tanpa side effect, deterministik.
//
// Urutan rumus:
//
//	paid_days       = present + leave
//	komponen bulan  = amount − (amount / total_working_days × lop_days)
//	gross           = basic + hra + allowance (sudah diprorata)
//	pf              = basic bulan × pf% / 100
//	esi             = gross × esi% / 100
//	pt              = flat, hanya jika paid_days > 0
//	net             = gross − (pf + esi + pt)
func Calculate(emp EmployeePay, att MonthAttendance) (Calculation, error) {
	// total_working_days nol berarti pembagian nol pada prorata; tolak di muka.
	if att.TotalWorkingDays == 0 {
		return Calculation{}, payrollerrors.ErrZeroWorkingDays
	}

	paidDays := att.PresentDays + att.LeaveDays

	basicForMonth := prorate(emp.BasicSalary, att.TotalWorkingDays, att.LOPDays)
	hraForMonth := prorate(emp.HRA, att.TotalWorkingDays, att.LOPDays)
	allowanceForMonth := prorate(emp.Allowance, att.TotalWorkingDays, att.LOPDays)

	grossSalary := basicForMonth + hraForMonth + allowanceForMonth

	pfDeduction := basicForMonth * emp.PFPercent / 100
	esiDeduction := grossSalary * emp.ESIPercent / 100

	ptDeduction := 0.0
	if paidDays > 0 {
		ptDeduction = emp.PT
	}

	totalDeductions := pfDeduction + esiDeduction + ptDeduction
	netSalary := grossSalary - totalDeductions

	return Calculation{
		EmpID:            emp.EmpID,
		Name:             emp.Name,
		Month:            att.Month,
		BasicSalary:      basicForMonth,
		HRA:              hraForMonth,
		Allowance:        allowanceForMonth,
		GrossSalary:      grossSalary,
		PFDeduction:      pfDeduction,
		ESIDeduction:     esiDeduction,
		PTDeduction:      ptDeduction,
		TotalDeductions:  totalDeductions,
		NetSalary:        netSalary,
		PaidDays:         paidDays,
		TotalWorkingDays: att.TotalWorkingDays,
	}, nil
}

func prorate(amount float64, totalWorkingDays, lopDays int) float64 {
	return amount - (amount / float64(totalWorkingDays) * float64(lopDays))
}
