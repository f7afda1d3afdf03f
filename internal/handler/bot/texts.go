package bot

import "fmt"

// User-facing reply texts.
const (
	textInvalidQuery     = "Please enter a valid roll number (5-9 digits) or section number (1-2 digits)."
	textRecordNotFound   = "Roll number not found."
	textCategoryNotFound = "Section not found."
	textForbidden        = "You are not authorized to use this command."
)

// helpText renders the welcome and usage message. The example section label
// follows the configured category naming, e.g. "CSE-01".
func helpText(prefix, separator string) string {
	return fmt.Sprintf("Welcome to the Student Info Bot!\n\n"+
		"Here are the commands you can use:\n\n"+
		"/start - Get a welcome message.\n"+
		"/help - Show this message again.\n\n"+
		"To get details about a student, send a roll number.\nFor example: '2205xxxx'.\n\n"+
		"To get a list of students in a section, send a section number in the format '01' for %s%s01.\n"+
		"I will return the name, roll number, and hostel for each student in that section, sorted by roll number.",
		prefix, separator)
}
