package models

type UserRole string
type QuestionType string

const (
	UserRoleStudent   UserRole = "student"
	UserRoleJobholder UserRole = "jobholder"
	UserRoleAdmin     UserRole = "admin"

	// старые клиенты присылают "user" для студентов
	userRoleLegacyStudent UserRole = "user"

	QuestionTypeTechnical    QuestionType = "technical"
	QuestionTypeNonTechnical QuestionType = "non-technical"
)

// Valid проверяет, что роль из закрытого набора
func (r UserRole) Valid() bool {
	switch r {
	case UserRoleStudent, UserRoleJobholder, UserRoleAdmin:
		return true
	}
	return false
}

// Registrable - роли, доступные при самостоятельной регистрации
func (r UserRole) Registrable() bool {
	r = r.Normalize()
	return r == UserRoleStudent || r == UserRoleJobholder
}

// Normalize приводит устаревший "user" к student
func (r UserRole) Normalize() UserRole {
	if r == userRoleLegacyStudent {
		return UserRoleStudent
	}
	return r
}

func (t QuestionType) Valid() bool {
	return t == QuestionTypeTechnical || t == QuestionTypeNonTechnical
}
