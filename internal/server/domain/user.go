package domain

import "time"

type User struct {
	ID        string
	Phone     string
	FirstName string
	LastName  string
	YandexID  *string // set only for accounts created via the Yandex flow
	CreatedAt time.Time
	UpdatedAt time.Time
}
