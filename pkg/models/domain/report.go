package domain

import "time"

// Report is the renderable outcome of a terminal command.
type Report struct {
	Title    string
	Period   TimePeriod
	Sections []ReportSection
}

// TimePeriod is the time range a report covers. Duration is in days.
type TimePeriod struct {
	Start    time.Time
	End      time.Time
	Duration int
}

// ReportSection is one logical block of a report.
type ReportSection struct {
	Title   string
	Summary string
	Details []ReportDetail
}

// ReportDetail is a single rendered row within a section.
type ReportDetail struct {
	Name        string
	Value       string
	Unit        string
	Description string
}
