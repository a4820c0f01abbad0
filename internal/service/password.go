package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordMatcher сравнивает сохранённый пароль с присланным.
type PasswordMatcher func(stored, supplied string) bool

// PlainPasswordMatcher — посимвольное сравнение открытого текста.
// Пароли администраторов хранятся без хеширования: это известный дефект,
// переход на bcrypt — смена PASSWORD_SCHEME.
func PlainPasswordMatcher(stored, supplied string) bool {
	return stored == supplied
}

// BcryptPasswordMatcher ожидает в хранилище bcrypt-хеш.
func BcryptPasswordMatcher(stored, supplied string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
}

// MatcherForScheme выбирает PasswordMatcher по имени схемы из конфига.
func MatcherForScheme(scheme string) (PasswordMatcher, error) {
	switch scheme {
	case "", "plain":
		return PlainPasswordMatcher, nil
	case "bcrypt":
		return BcryptPasswordMatcher, nil
	default:
		return nil, fmt.Errorf("unknown password scheme %q", scheme)
	}
}
