package models

type User struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	QuizIDs []string `json:"quizIds"`
}

func UserFromDoc(id string, fields map[string]interface{}) *User {
	return &User{
		ID:      id,
		Name:    stringField(fields, "name"),
		QuizIDs: stringSliceField(fields, "quizIds"),
	}
}

func (u *User) HasQuiz(quizID string) bool {
	for _, id := range u.QuizIDs {
		if id == quizID {
			return true
		}
	}
	return false
}
