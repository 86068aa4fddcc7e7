// Package presentation содержит слой представления редактора контактов.
//
// Файл presenter.go определяет EditorPresenter - презентер, который связывает
// GUI и бизнес-логику формы.
//
// EditorPresenter:
//   - Хранит GUI-состояние (GUIState) и трекер состояния формы (FormTracker)
//   - Принимает события изменения полей от слоя binding (OnFieldEdited)
//   - Прогоняет значения через валидатор и сообщает результат трекеру
//   - Обновляет доступность кнопок по ComputeActionStates (RefreshActionButtons)
//
// Презентер является единственной точкой взаимодействия между виджетами формы
// и трекером: виджеты не знают про трекер, трекер не знает про Fyne.
//
// Используется в:
//   - editor.go - создается при сборке редактора, получает все виджеты
//   - ui/main_ui.go - список контактов вызывает LoadContact через презентер
package presentation

import (
	"contact-editor/core"
	"contact-editor/internal/debuglog"
	editorbusiness "contact-editor/ui/editor/business"
	editormodels "contact-editor/ui/editor/models"
)

// EditorPresenter связывает GUI и бизнес-логику формы контакта.
type EditorPresenter struct {
	guiState   *GUIState
	controller *core.AppController
	tracker    *editorbusiness.FormTracker
}

// NewEditorPresenter создает новый презентер редактора.
func NewEditorPresenter(guiState *GUIState, controller *core.AppController) *EditorPresenter {
	return &EditorPresenter{
		guiState:   guiState,
		controller: controller,
		tracker:    editorbusiness.NewFormTracker(),
	}
}

// Tracker возвращает трекер состояния формы.
func (p *EditorPresenter) Tracker() *editorbusiness.FormTracker {
	return p.tracker
}

// GUIState возвращает GUI-состояние редактора.
func (p *EditorPresenter) GUIState() *GUIState {
	return p.guiState
}

// Controller возвращает AppController.
func (p *EditorPresenter) Controller() *core.AppController {
	return p.controller
}

// OnFieldEdited обрабатывает изменение поля формы из слоя binding.
// Пока презентер сам заполняет виджеты (FormUpdating), событие игнорируется:
// программное заполнение не является редактированием.
func (p *EditorPresenter) OnFieldEdited(fieldID, value string) {
	if p.guiState.FormUpdating {
		return
	}

	err := editorbusiness.ValidateField(fieldID, value)
	p.tracker.OnFieldChanged(fieldID, value, err == nil)

	if err != nil {
		debuglog.DebugLog("OnFieldEdited: %s invalid: %v", fieldID, err)
		p.setStatus(err.Error())
	} else {
		p.setStatus("")
	}

	p.RefreshActionButtons()
}

// RefreshActionButtons обновляет доступность кнопок Save/Revert/Delete
// по текущему состоянию трекера.
func (p *EditorPresenter) RefreshActionButtons() {
	states := p.tracker.ComputeActionStates()

	setEnabled(p.guiState.SaveButton, states.SaveEnabled)
	setEnabled(p.guiState.RevertButton, states.RevertEnabled)
	setEnabled(p.guiState.DeleteButton, states.DeleteEnabled)
}

// setEnabled переключает кнопку в нужное состояние.
func setEnabled(button interface {
	Enable()
	Disable()
}, enabled bool) {
	if enabled {
		button.Enable()
	} else {
		button.Disable()
	}
}

// setStatus выводит текст в строку статуса формы.
func (p *EditorPresenter) setStatus(text string) {
	if p.guiState.StatusLabel != nil {
		p.guiState.StatusLabel.SetText(text)
	}
}

// populateWidgets заполняет виджеты формы значениями снимка.
// На время заполнения выставляется FormUpdating, чтобы OnChanged
// виджетов не доходили до трекера.
func (p *EditorPresenter) populateWidgets(values editormodels.FormSnapshot) {
	p.guiState.FormUpdating = true
	defer func() { p.guiState.FormUpdating = false }()

	p.guiState.NameEntry.SetText(values[editormodels.FieldName])
	p.guiState.EmailEntry.SetText(values[editormodels.FieldEmail])
	p.guiState.PhoneEntry.SetText(values[editormodels.FieldPhone])
	p.guiState.GroupSelect.SetSelected(values[editormodels.FieldGroup])
	p.guiState.FavoriteCheck.SetChecked(values[editormodels.FieldFavorite] == "true")
}
