package models

// Category groups products. The category subsystem owns the records; this
// service only stores and expands the reference.
type Category struct {
	ID   string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name string `json:"name"`
	Slug string `json:"slug" gorm:"uniqueIndex"`
}
