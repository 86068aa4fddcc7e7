// Package models содержит модели данных редактора контактов.
//
// Файл contact.go определяет Contact — чистую модель данных контакта без GUI зависимостей.
//
// Contact содержит только бизнес-данные (без Fyne виджетов):
//   - ID — идентификатор контакта в хранилище
//   - Name, Email, Phone — текстовые поля формы
//   - Group — дискретное поле (выбор из списка групп)
//   - Favorite — дискретное поле (флажок)
//
// GUI-состояние (виджеты Fyne, UI-флаги) находится в presentation/GUIState.
//
// Используется в:
//   - core/store.go — ContactStore хранит []Contact
//   - presentation/presenter.go — EditorPresenter загружает Contact в форму
//   - business/tracker.go — работает со снимками полей контакта (FormSnapshot)
package models

// Contact — модель данных одного контакта.
type Contact struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Group    string `json:"group"`
	Favorite bool   `json:"favorite"`
}

// Идентификаторы полей формы. Используются как ключи в FormSnapshot
// и при подписке на изменения виджетов (binding.AttachField).
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldGroup    = "group"
	FieldFavorite = "favorite"
)

// Groups — допустимые значения дискретного поля Group.
var Groups = []string{"Family", "Friends", "Work", "Other"}

// DefaultGroup — группа по умолчанию для нового контакта.
const DefaultGroup = "Other"
