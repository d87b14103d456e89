package utils

import "regexp"

// local-part, an @, and a domain with at least one dot.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9\-]+(\.[a-zA-Z0-9\-]+)*\.[a-zA-Z]{2,}$`)

func IsEmailValid(email string) bool {
	return emailRegex.MatchString(email)
}
