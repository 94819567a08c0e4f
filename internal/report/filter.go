package report

import (
	"fmt"
	"strings"
	"time"
)

// Params are the optional dashboard query parameters.
type Params struct {
	Year  string
	Month string
	Date  string
	HODID *uint
}

func (p Params) hasYear() bool {
	return p.Year != "" && p.Year != AllSentinel
}

func (p Params) hasMonth() bool {
	return p.Month != "" && p.Month != AllSentinel
}

// Clause is a conjunction of SQL predicates together with their bind values.
// Every predicate is added through And, which refuses a predicate whose
// placeholder count differs from the number of values supplied.
type Clause struct {
	conds []string
	args  []interface{}
}

// And appends cond to the clause. It panics on a placeholder/value mismatch;
// callers build predicates from constants, so a mismatch is a programming error.
func (c *Clause) And(cond string, args ...interface{}) *Clause {
	if n := strings.Count(cond, "?"); n != len(args) {
		panic(fmt.Sprintf("report: predicate %q has %d placeholders but %d values", cond, n, len(args)))
	}
	c.conds = append(c.conds, cond)
	c.args = append(c.args, args...)
	return c
}

// Merge appends all predicates of o, keeping their order.
func (c *Clause) Merge(o Clause) *Clause {
	c.conds = append(c.conds, o.conds...)
	c.args = append(c.args, o.args...)
	return c
}

func (c Clause) Empty() bool { return len(c.conds) == 0 }

// SQL renders the predicates joined with AND, or "" for an empty clause.
func (c Clause) SQL() string {
	return strings.Join(c.conds, " AND ")
}

// Args returns a copy of the bind values in placeholder order.
func (c Clause) Args() []interface{} {
	out := make([]interface{}, len(c.args))
	copy(out, c.args)
	return out
}

// Placeholders counts the '?' markers in the rendered clause.
func (c Clause) Placeholders() int {
	return strings.Count(c.SQL(), "?")
}

// Where renders "WHERE ..." or "" for an empty clause.
func (c Clause) Where() string {
	if c.Empty() {
		return ""
	}
	return "WHERE " + c.SQL()
}

// On appends the predicates to a join condition, e.g. On("b.hod_id = h.id").
func (c Clause) On(base string) string {
	if c.Empty() {
		return base
	}
	return base + " AND " + c.SQL()
}

// Window is the time filter applied when no date, month or year is selected.
type Window int

const (
	// WindowNone applies no time filter (cumulative aggregates).
	WindowNone Window = iota
	// WindowLast30Days restricts to the last 30 days (time-series aggregates).
	WindowLast30Days
)

const fallbackDays = 30

// TimeFilter builds the date predicate on column col with the priority
// explicit date > month+year > year > fallback window.
func TimeFilter(col string, p Params, fallback Window, now time.Time) Clause {
	var c Clause
	if p.Date != "" {
		c.And(col+" = ?", p.Date)
		return c
	}

	year, yearOK := 0, false
	if p.hasYear() {
		year, yearOK = leadingInt(p.Year)
	}
	if yearOK && p.hasMonth() {
		if month, ok := leadingInt(p.Month); ok {
			c.And(fmt.Sprintf("MONTH(%s) = ? AND YEAR(%s) = ?", col, col), month, year)
			return c
		}
	}
	if yearOK {
		c.And(fmt.Sprintf("YEAR(%s) = ?", col), year)
		return c
	}

	if fallback == WindowLast30Days {
		cutoff := now.AddDate(0, 0, -fallbackDays).Format("2006-01-02")
		c.And(col+" >= ?", cutoff)
	}
	return c
}

// FinancialYearFilter matches col against the normalized financial year label.
// Budget rows are labelled by financial year, not by calendar date.
func FinancialYearFilter(col string, p Params) Clause {
	var c Clause
	if !p.hasYear() {
		return c
	}
	if fy, ok := FinancialYear(p.Year); ok {
		c.And(col+" = ?", fy)
	}
	return c
}

// HODFilter is col = hod_id when a HOD is selected.
func HODFilter(col string, p Params) Clause {
	var c Clause
	if p.HODID != nil {
		c.And(col+" = ?", *p.HODID)
	}
	return c
}
