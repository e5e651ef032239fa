package services

import (
	"bytes"
	"testing"
	"time"

	"hrm/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePayslipPDF(t *testing.T) {
	doc := dto.PayslipDocument{
		Employee: dto.PayslipEmployeeBlock{ID: 1, Name: "Nguyen Van A", Department: "Ke toan", Designation: "Ke toan vien"},
		Payroll: dto.PayslipPayrollBlock{
			Month: "March", Year: 2025,
			Basic: 50000, HRA: 10000, Allowances: 2000, Deductions: 1500, NetPay: 60500,
		},
		GeneratedOn: time.Date(2025, 3, 31, 10, 0, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	require.NoError(t, WritePayslipPDF(doc, &buf))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	assert.Greater(t, buf.Len(), 500)
}
