package validator

import (
	"unicode/utf8"
)

func ClubTitle(title string) bool {
	return utf8.RuneCountInString(title) >= 1 && utf8.RuneCountInString(title) <= 30
}

func ClubIntroduction(introduction string) bool {
	return utf8.RuneCountInString(introduction) <= 400
}
