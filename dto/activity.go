package dto

type CreatePerformanceRequest struct {
	EmpID   uint   `json:"empId" binding:"required"`
	Rating  int    `json:"rating" binding:"required"`
	Remarks string `json:"remarks"`
	Date    string `json:"date"`
}

type CreateLeaveRequest struct {
	EmpID     uint   `json:"empId"`
	LeaveType string `json:"leaveType" binding:"required"`
	Days      int    `json:"days" binding:"required"`
	Date      string `json:"date"`
}

type CreateAttendanceRequest struct {
	EmpID  uint   `json:"empId"`
	Date   string `json:"date"`
	Status string `json:"status" binding:"required"`
}

// PerformanceResponse là dòng đánh giá đã join tên nhân viên (view của admin).
// EmployeeName rỗng khi nhân viên đã bị xóa.
type PerformanceResponse struct {
	ID           uint   `json:"id"`
	EmpID        uint   `json:"empId"`
	EmployeeName string `json:"employeeName,omitempty"`
	Rating       int    `json:"rating"`
	Remarks      string `json:"remarks"`
	Date         string `json:"date"`
}

type LeaveResponse struct {
	ID           uint   `json:"id"`
	EmpID        uint   `json:"empId"`
	EmployeeName string `json:"employeeName,omitempty"`
	LeaveType    string `json:"leaveType"`
	Days         int    `json:"days"`
	Date         string `json:"date"`
}

type AttendanceResponse struct {
	ID           uint   `json:"id"`
	EmpID        uint   `json:"empId"`
	EmployeeName string `json:"employeeName,omitempty"`
	Date         string `json:"date"`
	Status       string `json:"status"`
}
