package employee

import "time"

const (
	DefaultPFPercent  = 12.0
	DefaultESIPercent = 0.75
	DefaultPT         = 200.0
)

type CreateEmployeeRequest struct {
	EmpID       string   `json:"emp_id" binding:"required"`
	Name        string   `json:"name" binding:"required"`
	Department  string   `json:"department" binding:"required"`
	Designation string   `json:"designation" binding:"required"`
	JoinDate    string   `json:"join_date" binding:"required"`
	BasicSalary float64  `json:"basic_salary" binding:"min=0"`
	HRA         float64  `json:"hra" binding:"min=0"`
	Allowance   float64  `json:"allowance" binding:"min=0"`
	PFPercent   *float64 `json:"pf_percent" binding:"omitempty,min=0"`
	ESIPercent  *float64 `json:"esi_percent" binding:"omitempty,min=0"`
	PT          *float64 `json:"pt" binding:"omitempty,min=0"`
}

type UpdateEmployeeRequest struct {
	Name        *string  `json:"name"`
	Department  *string  `json:"department"`
	Designation *string  `json:"designation"`
	JoinDate    *string  `json:"join_date"`
	BasicSalary *float64 `json:"basic_salary" binding:"omitempty,min=0"`
	HRA         *float64 `json:"hra" binding:"omitempty,min=0"`
	Allowance   *float64 `json:"allowance" binding:"omitempty,min=0"`
	PFPercent   *float64 `json:"pf_percent" binding:"omitempty,min=0"`
	ESIPercent  *float64 `json:"esi_percent" binding:"omitempty,min=0"`
	PT          *float64 `json:"pt" binding:"omitempty,min=0"`
}

// Fields mengubah payload partial update menjadi map kolom.
// Map kosong berarti no-op; emp_id, id dan created_at tidak pernah ikut.
func (r UpdateEmployeeRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Department != nil {
		fields["department"] = *r.Department
	}
	if r.Designation != nil {
		fields["designation"] = *r.Designation
	}
	if r.JoinDate != nil {
		fields["join_date"] = *r.JoinDate
	}
	if r.BasicSalary != nil {
		fields["basic_salary"] = *r.BasicSalary
	}
	if r.HRA != nil {
		fields["hra"] = *r.HRA
	}
	if r.Allowance != nil {
		fields["allowance"] = *r.Allowance
	}
	if r.PFPercent != nil {
		fields["pf_percent"] = *r.PFPercent
	}
	if r.ESIPercent != nil {
		fields["esi_percent"] = *r.ESIPercent
	}
	if r.PT != nil {
		fields["pt"] = *r.PT
	}
	return fields
}

type EmployeeResponse struct {
	ID          string  `json:"id"`
	EmpID       string  `json:"emp_id"`
	Name        string  `json:"name"`
	Department  string  `json:"department"`
	Designation string  `json:"designation"`
	JoinDate    string  `json:"join_date"`
	BasicSalary float64 `json:"basic_salary"`
	HRA         float64 `json:"hra"`
	Allowance   float64 `json:"allowance"`
	PFPercent   float64 `json:"pf_percent"`
	ESIPercent  float64 `json:"esi_percent"`
	PT          float64 `json:"pt"`
	CreatedAt   string  `json:"created_at"`
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:          e.ID.String(),
		EmpID:       e.EmpID,
		Name:        e.Name,
		Department:  e.Department,
		Designation: e.Designation,
		JoinDate:    e.JoinDate,
		BasicSalary: e.BasicSalary,
		HRA:         e.HRA,
		Allowance:   e.Allowance,
		PFPercent:   e.PFPercent,
		ESIPercent:  e.ESIPercent,
		PT:          e.PT,
		CreatedAt:   e.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		res[i] = mapToResponse(e)
	}
	return res
}
