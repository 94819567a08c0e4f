package report

// Series is the labels + datasets shape consumed by the dashboard charts.
type Series struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

type Dataset struct {
	Label string    `json:"label"`
	Data  []float64 `json:"data"`
}

// BudgetBars plots allocated against utilized per HOD, in crores.
func BudgetBars(rows []HODBudget) Series {
	s := Series{Labels: make([]string, 0, len(rows))}
	allocated := Dataset{Label: "Allocated (Cr)", Data: make([]float64, 0, len(rows))}
	utilized := Dataset{Label: "Utilized (Cr)", Data: make([]float64, 0, len(rows))}
	for _, r := range rows {
		s.Labels = append(s.Labels, r.HODName)
		allocated.Data = append(allocated.Data, Crores(r.Allocated))
		utilized.Data = append(utilized.Data, Crores(r.Utilized))
	}
	s.Datasets = []Dataset{allocated, utilized}
	return s
}

// AttendancePie sums attendance statuses across HODs.
func AttendancePie(rows []HODAttendance) Series {
	var present, absent, halfDay, leave float64
	for _, r := range rows {
		present += float64(r.Present)
		absent += float64(r.Absent)
		halfDay += float64(r.HalfDay)
		leave += float64(r.OnLeave)
	}
	return Series{
		Labels: []string{"Present", "Absent", "Half Day", "On Leave"},
		Datasets: []Dataset{{
			Label: "Attendance",
			Data:  []float64{present, absent, halfDay, leave},
		}},
	}
}

func RevenueDoughnut(rows []DepartmentRevenue) Series {
	s := Series{Labels: make([]string, 0, len(rows))}
	d := Dataset{Label: "Revenue", Data: make([]float64, 0, len(rows))}
	for _, r := range rows {
		s.Labels = append(s.Labels, r.Department)
		d.Data = append(d.Data, r.TotalRevenue)
	}
	s.Datasets = []Dataset{d}
	return s
}

func SchemesPie(rows []CategorySchemes) Series {
	s := Series{Labels: make([]string, 0, len(rows))}
	d := Dataset{Label: "Schemes", Data: make([]float64, 0, len(rows))}
	for _, r := range rows {
		s.Labels = append(s.Labels, r.Category)
		d.Data = append(d.Data, float64(r.Count))
	}
	s.Datasets = []Dataset{d}
	return s
}
