package attendance

import "time"

type CreateAttendanceRequest struct {
	EmpID            string `json:"emp_id" binding:"required"`
	Month            string `json:"month" binding:"required"`
	TotalWorkingDays int    `json:"total_working_days" binding:"min=0"`
	PresentDays      int    `json:"present_days" binding:"min=0"`
	LeaveDays        int    `json:"leave_days" binding:"min=0"`
	LOPDays          int    `json:"lop_days" binding:"min=0"`
}

type UpdateAttendanceRequest struct {
	TotalWorkingDays *int `json:"total_working_days" binding:"omitempty,min=0"`
	PresentDays      *int `json:"present_days" binding:"omitempty,min=0"`
	LeaveDays        *int `json:"leave_days" binding:"omitempty,min=0"`
	LOPDays          *int `json:"lop_days" binding:"omitempty,min=0"`
}

// Fields mengubah payload partial update menjadi map kolom; map kosong = no-op.
func (r UpdateAttendanceRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.TotalWorkingDays != nil {
		fields["total_working_days"] = *r.TotalWorkingDays
	}
	if r.PresentDays != nil {
		fields["present_days"] = *r.PresentDays
	}
	if r.LeaveDays != nil {
		fields["leave_days"] = *r.LeaveDays
	}
	if r.LOPDays != nil {
		fields["lop_days"] = *r.LOPDays
	}
	return fields
}

type AttendanceResponse struct {
	ID               string `json:"id"`
	EmpID            string `json:"emp_id"`
	Month            string `json:"month"`
	TotalWorkingDays int    `json:"total_working_days"`
	PresentDays      int    `json:"present_days"`
	LeaveDays        int    `json:"leave_days"`
	LOPDays          int    `json:"lop_days"`
	CreatedAt        string `json:"created_at"`
}

func mapToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:               a.ID.String(),
		EmpID:            a.EmpID,
		Month:            a.Month,
		TotalWorkingDays: a.TotalWorkingDays,
		PresentDays:      a.PresentDays,
		LeaveDays:        a.LeaveDays,
		LOPDays:          a.LOPDays,
		CreatedAt:        a.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func mapToListResponse(rows []Attendance) []AttendanceResponse {
	res := make([]AttendanceResponse, len(rows))
	for i, a := range rows {
		res[i] = mapToResponse(a)
	}
	return res
}
