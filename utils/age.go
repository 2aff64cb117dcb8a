package utils

import "time"

// AgeAt returns full years elapsed between birthdate and now,
// floored at 0 when the birthdate lies in the future.
func AgeAt(birthdate, now time.Time) int {
	years := now.Year() - birthdate.Year()
	if now.Month() < birthdate.Month() ||
		(now.Month() == birthdate.Month() && now.Day() < birthdate.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

func Age(birthdate time.Time) int {
	return AgeAt(birthdate, time.Now())
}
