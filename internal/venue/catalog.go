package venue

// Department is one entry of the closed department catalog. Code is the value
// stored on assignments; Name and Hex exist for display only.
type Department struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Hex  string `json:"hex"` // display color
}

// Departments is the closed set of departments that may hold seats. The order
// is the display order used by stats and legends.
var Departments = []Department{
	{Code: "CSE", Name: "Computer Science and Engineering", Hex: "#3B82F6"},
	{Code: "ECE", Name: "Electronics and Communication Engineering", Hex: "#8B5CF6"},
	{Code: "CYS", Name: "Cyber Security", Hex: "#EF4444"},
	{Code: "AIDS", Name: "Artificial Intelligence and Data Science", Hex: "#10B981"},
	{Code: "AIML", Name: "Artificial Intelligence and Machine Learning", Hex: "#F59E0B"},
}

// Years is the closed set of accepted year labels.
var Years = []string{"1st Year", "2nd Year", "3rd Year", "4th Year"}

// Genders is the closed set of accepted gender labels. An assignment with no
// gender is open to everyone in its department/year.
var Genders = []string{"Boys", "Girls"}

// ValidDepartment reports whether code names a cataloged department.
func ValidDepartment(code string) bool {
	for _, d := range Departments {
		if d.Code == code {
			return true
		}
	}
	return false
}

// ValidYear reports whether y is a cataloged year label.
func ValidYear(y string) bool {
	for _, v := range Years {
		if v == y {
			return true
		}
	}
	return false
}

// ValidGender reports whether g is a cataloged gender label. The empty string
// is valid and means "open to all".
func ValidGender(g string) bool {
	if g == "" {
		return true
	}
	for _, v := range Genders {
		if v == g {
			return true
		}
	}
	return false
}
