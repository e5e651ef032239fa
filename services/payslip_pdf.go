package services

import (
	"fmt"
	"io"

	"hrm/dto"

	"github.com/jung-kurt/gofpdf"
)

// WritePayslipPDF xuất phiếu lương ra PDF. Bố cục không cần cố định từng byte,
// chỉ cần đủ các khối: nhân viên, kỳ lương, các khoản và thực lãnh.
func WritePayslipPDF(doc dto.PayslipDocument, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 12, "PAYSLIP", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 8, fmt.Sprintf("Period: %s %d", doc.Payroll.Month, doc.Payroll.Year), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Employee", "B", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("ID: %d", doc.Employee.ID), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, "Name: "+doc.Employee.Name, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, "Department: "+doc.Employee.Department, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, "Designation: "+doc.Employee.Designation, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Earnings & Deductions", "B", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)

	line := func(label string, amount float64) {
		pdf.CellFormat(120, 7, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, fmt.Sprintf("%.2f", amount), "", 1, "R", false, 0, "")
	}

	line("Basic", doc.Payroll.Basic)
	line("HRA", doc.Payroll.HRA)
	line("Allowances", doc.Payroll.Allowances)
	line("Deductions", doc.Payroll.Deductions)

	pdf.Ln(2)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(120, 8, "Net Pay", "T", 0, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("%.2f", doc.Payroll.NetPay), "T", 1, "R", false, 0, "")

	pdf.Ln(8)
	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(0, 6, "Generated on "+doc.GeneratedOn.Format("2006-01-02 15:04:05"), "", 1, "L", false, 0, "")

	return pdf.Output(w)
}
