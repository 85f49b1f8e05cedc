package models

import "time"

type Quiz struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Active      bool      `json:"active"`
	UserCount   int64     `json:"userCount"`
	CreatedOn   time.Time `json:"createdOn"`
}

func QuizFromDoc(id string, fields map[string]interface{}) *Quiz {
	return &Quiz{
		ID:          id,
		Name:        stringField(fields, "name"),
		Description: stringField(fields, "description"),
		Active:      boolField(fields, "active"),
		UserCount:   intField(fields, "userCount"),
		CreatedOn:   timeField(fields, "createdOn"),
	}
}
