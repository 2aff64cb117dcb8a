package utils

import (
	"regexp"
	"time"
)

var emailRegexp = regexp.MustCompile(`^\w+([-+.']\w+)*@\w+([-.]\w+)*\.\w+([-.]\w+)*$`)

func CheckName(name string) bool {
	return len(name) > 0 && len(name) <= 100
}

func CheckEmail(email string) bool {
	return len(email) <= 254 && emailRegexp.MatchString(email)
}

func CheckGender(gender string) bool {
	return gender == "M" || gender == "F"
}

func CheckWeight(weight float64) bool {
	return weight > 0
}

// CheckBirthdate rejects dates that have not happened yet.
func CheckBirthdate(date time.Time) bool {
	return date.Before(time.Now())
}
