package loginform

import "fmt"

// WelcomeMessage is returned by the page endpoint to JSON clients.
const WelcomeMessage = "Welcome! This is the login form service."

// Greeting formats the confirmation message for a successful submission.
func Greeting(firstname, lastname string, age int64) string {
	return fmt.Sprintf("Hello %s %s, you are %d years old.", firstname, lastname, age)
}
