package services

import (
	"testing"

	"hrm/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEmployees() []models.Employee {
	return []models.Employee{
		{ID: 1, Name: "Nguyễn Văn An", Department: "Kế toán", Designation: "Kế toán viên"},
		{ID: 2, Name: "Trần Thị Bình", Department: "Nhân sự", Designation: "Chuyên viên"},
		{ID: 3, Name: "Lê Hoàng Cường", Department: "Kỹ thuật", Designation: "Kỹ sư"},
	}
}

func TestSearchEmployeesMatchesNameIgnoringAccents(t *testing.T) {
	results := SearchEmployees("nguyen van an", testEmployees())

	require.NotEmpty(t, results)
	assert.Equal(t, uint(1), results[0].Employee.ID)
}

func TestSearchEmployeesToleratesTypos(t *testing.T) {
	results := SearchEmployees("tran thi bin", testEmployees())

	require.NotEmpty(t, results)
	assert.Equal(t, uint(2), results[0].Employee.ID)
}

func TestSearchEmployeesSortsByScore(t *testing.T) {
	results := SearchEmployees("an", testEmployees())

	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
}

func TestSearchEmployeesEmptyInput(t *testing.T) {
	assert.Empty(t, SearchEmployees("zzzzzz", nil))
}

func TestCalculateSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, calculateSimilarity("", ""))
	assert.Equal(t, 1.0, calculateSimilarity("abc", "abc"))
	assert.Less(t, calculateSimilarity("abc", "xyz"), 0.5)
}
