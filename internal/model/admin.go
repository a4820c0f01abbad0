package model

// Admin — учётная запись администратора. Заводится сидированием, сервер её не меняет.
type Admin struct {
	UUID     int64  `gorm:"primaryKey;autoIncrement:false"`
	Email    string `gorm:"not null;uniqueIndex"`
	Password string `gorm:"not null"`
}

// TokenRecord — действующий токен администратора. Не более одной записи на email.
type TokenRecord struct {
	ID    uint   `gorm:"primaryKey"`
	Email string `gorm:"not null;uniqueIndex"`
	UUID  int64  `gorm:"not null;index"`
	Token string `gorm:"not null;index"`
}
