package model

// IdentityClaims — пара (uuid, token), которую клиент присылает с каждым изменяющим запросом.
// Значения сырые: разбор и проверка выполняются в сервисе авторизации.
type IdentityClaims struct {
	UUID  string
	Token string
}
