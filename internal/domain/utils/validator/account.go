package validator

import (
	"strings"
	"unicode/utf8"
)

func Nickname(nickname string) bool {
	return utf8.RuneCountInString(nickname) >= 2 && utf8.RuneCountInString(nickname) <= 20
}

func Email(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && strings.Contains(email[at:], ".")
}

func Password(password string) bool {
	return len(password) >= 8 && len(password) <= 72
}
