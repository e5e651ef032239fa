package validator

import (
	"time"

	"hrm/constants"
	"hrm/dto"
	"hrm/errors"
)

var monthNames = map[string]bool{
	"January": true, "February": true, "March": true, "April": true,
	"May": true, "June": true, "July": true, "August": true,
	"September": true, "October": true, "November": true, "December": true,
}

// ValidateRegister validate thông tin đăng ký tài khoản
func ValidateRegister(input *dto.RegisterInput) error {
	if input.Username == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Username không được để trống", nil)
	}

	if input.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mật khẩu không được để trống", nil)
	}

	if len(input.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeInvalidPassword, "Mật khẩu phải có ít nhất 6 ký tự", nil)
	}

	if input.Role != constants.RoleAdmin && input.Role != constants.RoleEmployee {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role không hợp lệ", nil)
	}

	return nil
}

// ValidateEmployee validate thông tin nhân viên
func ValidateEmployee(name string, basicSalary float64) error {
	if name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên nhân viên không được để trống", nil)
	}

	if basicSalary < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidSalary, "Lương cơ bản không được âm", nil)
	}

	return nil
}

// ValidatePerformance validate đánh giá hiệu suất
func ValidatePerformance(req *dto.CreatePerformanceRequest) error {
	if req.Rating < 1 || req.Rating > 5 {
		return errors.NewAppError(errors.ErrCodeInvalidRating, "Điểm đánh giá phải từ 1 đến 5", nil)
	}

	return validateDate(req.Date)
}

// ValidateLeave validate đơn nghỉ phép
func ValidateLeave(req *dto.CreateLeaveRequest) error {
	switch req.LeaveType {
	case constants.LeaveTypeSick, constants.LeaveTypeCasual, constants.LeaveTypeEarned:
	default:
		return errors.NewAppError(errors.ErrCodeInvalidLeaveType, "Loại nghỉ phép không hợp lệ", nil)
	}

	if req.Days < 1 {
		return errors.NewAppError(errors.ErrCodeInvalidDays, "Số ngày nghỉ phải lớn hơn hoặc bằng 1", nil)
	}

	return validateDate(req.Date)
}

// ValidateAttendance validate điểm danh
func ValidateAttendance(req *dto.CreateAttendanceRequest) error {
	if req.Status != constants.AttendancePresent && req.Status != constants.AttendanceAbsent {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "Trạng thái điểm danh không hợp lệ", nil)
	}

	return validateDate(req.Date)
}

// ValidatePayroll validate dữ liệu tạo bảng lương. Khoảng HRA [0, 0.5] chỉ
// được ràng ở tầng request, engine tính lương không kiểm tra lại.
func ValidatePayroll(req *dto.GeneratePayrollRequest) error {
	if !monthNames[req.Month] {
		return errors.NewAppError(errors.ErrCodeInvalidMonth, "Tên tháng không hợp lệ", nil)
	}

	if req.Basic < 0 || req.Allowances < 0 || req.Deductions < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Số tiền không được âm", nil)
	}

	if req.HRAPercentage != nil {
		if *req.HRAPercentage < 0 || *req.HRAPercentage > constants.MaxHRAPercentage {
			return errors.NewAppError(errors.ErrCodeInvalidPercentage, "Tỷ lệ HRA phải nằm trong khoảng từ 0 đến 0.5", nil)
		}
	}

	return nil
}

// validateDate kiểm tra định dạng ngày, cho phép rỗng (mặc định là hôm nay)
func validateDate(date string) error {
	if date == "" {
		return nil
	}

	if _, err := time.Parse("2006-01-02", date); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày không hợp lệ", err)
	}

	return nil
}
