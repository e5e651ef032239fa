package constants

// User roles
const (
	RoleAdmin    = 1
	RoleEmployee = 2
)

// Leave types
const (
	LeaveTypeSick   = "Sick"
	LeaveTypeCasual = "Casual"
	LeaveTypeEarned = "Earned"
)

// Attendance status
const (
	AttendancePresent = "Present"
	AttendanceAbsent  = "Absent"
)

// Payroll defaults
const (
	DefaultHRAPercentage = 0.20
	MaxHRAPercentage     = 0.5
)

// Tài khoản admin mặc định, tạo khi bảng users trống.
// Đây là rủi ro vận hành đã biết: nên đổi mật khẩu ngay sau lần đăng nhập đầu tiên.
const (
	DefaultAdminUsername = "Admin"
	DefaultAdminPassword = "admin@123"
)
