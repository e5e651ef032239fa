package services

import (
	"sort"
	"strings"
	"sync"

	"hrm/dto"
	"hrm/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// Hàm chuẩn hóa chuỗi
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// Tạo danh sách giá trị duy nhất cho closestmatch
func prepareUniqueList(employees []models.Employee, field string) []string {
	uniqueValues := make(map[string]bool)

	for _, emp := range employees {
		var value string
		switch field {
		case "department":
			value = emp.Department
		case "designation":
			value = emp.Designation
		}
		if value != "" {
			uniqueValues[normalizeInput(value)] = true
		}
	}

	uniqueList := make([]string, 0, len(uniqueValues))
	for val := range uniqueValues {
		uniqueList = append(uniqueList, val)
	}
	return uniqueList
}

// Tính điểm phù hợp cho một nhân viên
func calculateScore(query string, emp models.Employee, cmDepartment, cmDesignation *closestmatch.ClosestMatch) int {
	normalizedQuery := normalizeInput(query)
	score := 0

	normalizedName := normalizeInput(emp.Name)
	if strings.Contains(normalizedName, normalizedQuery) {
		score += 20
	} else if calculateSimilarity(normalizedQuery, normalizedName) > 0.7 {
		score += 15
	}

	if cmDepartment != nil && cmDepartment.Closest(normalizedQuery) == normalizeInput(emp.Department) && emp.Department != "" {
		score += 13
	}
	if cmDesignation != nil && cmDesignation.Closest(normalizedQuery) == normalizeInput(emp.Designation) && emp.Designation != "" {
		score += 8
	}

	return score
}

// SearchEmployees lọc và chấm điểm nhân viên theo chuỗi tìm kiếm gần đúng,
// sắp giảm dần theo điểm
func SearchEmployees(query string, employees []models.Employee) []dto.ScoredEmployee {
	cmDepartment := createMatcher(prepareUniqueList(employees, "department"))
	cmDesignation := createMatcher(prepareUniqueList(employees, "designation"))

	scoreCh := make(chan dto.ScoredEmployee, len(employees))
	var wg sync.WaitGroup

	for _, emp := range employees {
		wg.Add(1)
		go func(emp models.Employee) {
			defer wg.Done()
			score := calculateScore(query, emp, cmDepartment, cmDesignation)
			if score > 0 {
				scoreCh <- dto.ScoredEmployee{
					Employee: emp,
					Score:    score,
				}
			}
		}(emp)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	var scored []dto.ScoredEmployee
	for scoredEmp := range scoreCh {
		scored = append(scored, scoredEmp)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}
