package model

import "gorm.io/gorm"

// Task is a free-standing scratch entity with no relationship to the
// inventory domain. It exists to exercise full CRUD.
type Task struct {
	gorm.Model
	Content string `gorm:"size:200;not null"`
}
