package domain

import "time"

// Report represents a complete history report
type Report struct {
	Title    string
	Period   TimePeriod
	Sections []ReportSection
}

// TimePeriod represents a time range for the report
type TimePeriod struct {
	Start    time.Time
	End      time.Time
	Duration int // in days, inclusive
}

// ReportSection represents a logical section in the report
type ReportSection struct {
	Title   string
	Summary map[string]interface{}
	Details []ReportDetail
}

// ReportDetail represents one line within a section
type ReportDetail struct {
	Name        string
	Value       interface{}
	Unit        string
	Description string
}

func NewTimePeriod(start, end time.Time) TimePeriod {
	return TimePeriod{
		Start:    start,
		End:      end,
		Duration: int(end.Sub(start).Hours()/24) + 1,
	}
}
