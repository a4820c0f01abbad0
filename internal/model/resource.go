package model

// Image — картинка, хранящаяся прямо в документе.
type Image struct {
	Data        []byte `json:"data"`
	ContentType string `json:"contentType"`
}

// Blog — пост блога.
type Blog struct {
	ID       string `gorm:"primaryKey;type:varchar(36)" json:"_id"`
	Title    string `gorm:"not null" json:"title"`
	Subtitle string `gorm:"not null" json:"subtitle"`
	Link     string `gorm:"not null" json:"link"`
	Image    Image  `gorm:"embedded;embeddedPrefix:image_" json:"image"`
}

// Project — проект портфолио. Как Blog, только без подзаголовка.
type Project struct {
	ID    string `gorm:"primaryKey;type:varchar(36)" json:"_id"`
	Title string `gorm:"not null" json:"title"`
	Link  string `gorm:"not null" json:"link"`
	Image Image  `gorm:"embedded;embeddedPrefix:image_" json:"image"`
}
