package report

// Columns is the header row of the weekly schedule: name, phone, then the
// seven weekdays.
var Columns = [9]string{"Name", "Phone #", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Row is one employee's line in the schedule.
type Row struct {
	DisplayName string `json:"display_name"`
	Phone       string `json:"phone"`
	// Assigned holds the per-weekday assigned-hours strings, Mon..Sun.
	// Shift assignment is an unimplemented extension point, so every cell
	// currently carries the "xx:xx-xx:xx" placeholder.
	Assigned [7]string `json:"assigned"`
}

// Section groups the employees holding one position, in roster load order.
type Section struct {
	Position string `json:"position"`
	Rows     []Row  `json:"rows"`
}

// Report is the structured weekly schedule: a title, the fixed header
// columns, and one section per position in first-seen order.
type Report struct {
	Title    string    `json:"title"`
	Columns  [9]string `json:"columns"`
	Sections []Section `json:"sections"`
}

type ExportResponse struct {
	FileName string `json:"file_name"`
}
