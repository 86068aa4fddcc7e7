// Package presentation содержит слой представления редактора контактов.
//
// Файл gui_state.go определяет GUIState - состояние GUI редактора (только Fyne виджеты).
//
// GUIState содержит только GUI-виджеты и UI-флаги состояния:
//   - Виджеты формы (Entry, Select) и кнопки действий (Save, Revert, Delete)
//   - Виджет списка контактов и строку статуса
//   - Флаг блокировки FormUpdating для предотвращения рекурсивных обновлений
//
// В отличие от FormTracker, GUIState НЕ содержит бизнес-данных (снимков,
// флагов dirty/valid). Бизнес-состояние формы живёт в business.FormTracker,
// что позволяет тестировать логику доступности кнопок без Fyne.
//
// Связь между GUIState и FormTracker осуществляется через EditorPresenter,
// который синхронизирует значения виджетов и состояние трекера.
//
// Используется в:
//   - presentation/presenter.go - EditorPresenter хранит GUIState и обновляет его виджеты
//   - editor.go - создается при сборке редактора и передается в презентер
package presentation

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// GUIState содержит только GUI-виджеты и UI-флаги состояния редактора.
type GUIState struct {
	Window fyne.Window

	// Поля формы
	NameEntry     *widget.Entry
	EmailEntry    *widget.Entry
	PhoneEntry    *widget.Entry
	GroupSelect   *widget.Select
	FavoriteCheck *widget.Check

	// Кнопки действий
	SaveButton   *widget.Button
	RevertButton *widget.Button
	DeleteButton *widget.Button

	// Список контактов и строка статуса
	ContactList *widget.List
	StatusLabel *widget.Label

	// Флаг блокировки: true, пока презентер сам заполняет виджеты
	// (загрузка контакта, Revert). Подавляет обратные вызовы OnChanged,
	// чтобы программное заполнение не считалось редактированием.
	FormUpdating bool
}
