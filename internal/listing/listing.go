// Package listing narrows and orders an already-fetched slice of jobs.
// Everything here is pure: the same Query over the same input always
// produces the same output, and the input slice is never modified.
package listing

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"campushire_backend/internal/models"

	"github.com/shopspring/decimal"
)

type SortKey string

const (
	SortLatest     SortKey = "latest"
	SortSalaryHigh SortKey = "salary-high"
	SortSalaryLow  SortKey = "salary-low"
	SortYearNew    SortKey = "year-new"
	SortYearOld    SortKey = "year-old"
)

// ParseSortKey принимает пустую строку как latest
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(strings.TrimSpace(s)); k {
	case "":
		return SortLatest, nil
	case SortLatest, SortSalaryHigh, SortSalaryLow, SortYearNew, SortYearOld:
		return k, nil
	default:
		return "", fmt.Errorf("unknown sort key %q", s)
	}
}

// Query - параметры фильтра. Пустые строки означают "не фильтровать".
type Query struct {
	Keyword   string
	MinSalary string
	Year      string
	SortBy    SortKey
}

// Apply: keyword -> min salary -> year -> sort.
func Apply(jobs []models.Job, q Query) []models.Job {
	out := make([]models.Job, 0, len(jobs))

	keyword := strings.ToLower(strings.TrimSpace(q.Keyword))
	minSalary, hasMin := parseDecimal(q.MinSalary)
	year, hasYear := parseYear(q.Year)

	for _, job := range jobs {
		if keyword != "" && !matchesKeyword(job, keyword) {
			continue
		}
		if hasMin {
			salary, ok := parseDecimal(job.Salary)
			// нечисловая зарплата не проходит нижнюю границу
			if !ok || salary.LessThan(minSalary) {
				continue
			}
		}
		if hasYear && job.YearOfJoining != year {
			continue
		}
		out = append(out, job)
	}

	sortJobs(out, q.SortBy)
	return out
}

func matchesKeyword(job models.Job, keyword string) bool {
	return strings.Contains(strings.ToLower(job.CompanyName), keyword) ||
		strings.Contains(strings.ToLower(job.Role), keyword)
}

func sortJobs(jobs []models.Job, key SortKey) {
	var less func(a, b models.Job) bool

	switch key {
	case SortSalaryHigh:
		less = salaryLess(true)
	case SortSalaryLow:
		less = salaryLess(false)
	case SortYearNew:
		less = func(a, b models.Job) bool { return a.YearOfJoining > b.YearOfJoining }
	case SortYearOld:
		less = func(a, b models.Job) bool { return a.YearOfJoining < b.YearOfJoining }
	default:
		less = func(a, b models.Job) bool { return a.CreatedAt.After(b.CreatedAt) }
	}

	sort.SliceStable(jobs, func(i, j int) bool { return less(jobs[i], jobs[j]) })
}

// salaryLess: нечисловые зарплаты всегда в конце, между собой не упорядочены.
func salaryLess(desc bool) func(a, b models.Job) bool {
	return func(a, b models.Job) bool {
		da, okA := parseDecimal(a.Salary)
		db, okB := parseDecimal(b.Salary)
		switch {
		case okA && !okB:
			return true
		case !okA:
			return false
		}
		if desc {
			return da.GreaterThan(db)
		}
		return da.LessThan(db)
	}
}

func parseDecimal(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func parseYear(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	y, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return y, true
}
