// Package presentation содержит слой представления редактора контактов.
//
// Файл presenter_actions.go содержит методы презентера для действий формы:
//   - LoadContact - загрузка существующего контакта в форму
//   - NewContact - открытие пустой формы нового контакта
//   - ClearForm - очистка формы (ничего не выбрано)
//   - SaveContact - сохранение текущих значений в хранилище
//   - RevertEdits - откат правок к последнему снимку
//   - DeleteContact - удаление контакта с подтверждением
//
// Обработка ошибок слоя данных лежит здесь, а не в трекере: трекер узнаёт
// об успешном сохранении только через OnSaveSucceeded.
//
// Используется в:
//   - editor.go - обработчики кнопок вызывают эти методы
//   - ui/main_ui.go - выбор строки списка вызывает LoadContact
package presentation

import (
	"contact-editor/internal/debuglog"
	"contact-editor/internal/dialogs"
	editorbusiness "contact-editor/ui/editor/business"
	editormodels "contact-editor/ui/editor/models"
)

// LoadContact загружает существующий контакт в форму.
// Снимок заменяется целиком, правки предыдущего контакта пропадают.
func (p *EditorPresenter) LoadContact(c editormodels.Contact) {
	values := editormodels.SnapshotFromContact(c)
	p.tracker.LoadExisting(c.ID, values)
	p.populateWidgets(values)
	p.setStatus("")
	p.RefreshActionButtons()

	debuglog.InfoLog("LoadContact: loaded %s (%s)", c.ID, c.Name)
}

// NewContact открывает пустую форму нового контакта.
func (p *EditorPresenter) NewContact() {
	values := editormodels.EmptySnapshot()
	p.tracker.LoadNew(values)
	p.populateWidgets(values)
	p.setStatus("")
	p.RefreshActionButtons()

	debuglog.InfoLog("NewContact: opened empty form")
}

// ClearForm очищает форму: ничего не выбрано, все кнопки выключены.
// Снимается и выделение в списке контактов, если список уже создан.
func (p *EditorPresenter) ClearForm() {
	p.tracker.Reset()
	p.populateWidgets(editormodels.EmptySnapshot())
	if p.guiState.ContactList != nil {
		p.guiState.ContactList.UnselectAll()
	}
	p.setStatus("")
	p.RefreshActionButtons()
}

// SaveContact сохраняет текущие значения формы в хранилище.
// Трекер узнаёт об успехе через OnSaveSucceeded/LoadExisting; при ошибке
// слоя данных состояние формы не меняется.
func (p *EditorPresenter) SaveContact() {
	values := p.tracker.Values()
	sel := p.tracker.Selection()

	switch sel.Kind {
	case editorbusiness.EditingNew:
		added := p.controller.Store.Add(editormodels.ContactFromValues("", values))
		// Новый контакт получил ID: форма переходит в режим
		// редактирования существующего, снимок — сохранённые значения.
		p.tracker.LoadExisting(added.ID, values)
		debuglog.InfoLog("SaveContact: created %s (%s)", added.ID, added.Name)

	case editorbusiness.EditingExisting:
		c := editormodels.ContactFromValues(sel.EntityID, values)
		if err := p.controller.Store.Update(c); err != nil {
			debuglog.ErrorLog("SaveContact: update failed: %v", err)
			dialogs.ShowError(p.guiState.Window, err)
			return
		}
		p.tracker.OnSaveSucceeded()
		debuglog.InfoLog("SaveContact: updated %s (%s)", c.ID, c.Name)

	default:
		// Кнопка Save выключена при NoneSelected; сюда попадать не должны.
		debuglog.WarnLog("SaveContact: called with no selection")
		return
	}

	p.setStatus("")
	if p.controller.RefreshContactList != nil {
		p.controller.RefreshContactList()
	}
	p.RefreshActionButtons()
}

// RevertEdits откатывает правки к последнему снимку и заново
// заполняет виджеты его значениями.
func (p *EditorPresenter) RevertEdits() {
	snapshot := p.tracker.OnRevertRequested()
	p.populateWidgets(snapshot)
	p.setStatus("")
	p.RefreshActionButtons()

	debuglog.InfoLog("RevertEdits: reverted to snapshot")
}

// DeleteContact удаляет редактируемый контакт после подтверждения.
func (p *EditorPresenter) DeleteContact() {
	sel := p.tracker.Selection()
	if sel.Kind != editorbusiness.EditingExisting {
		// Кнопка Delete выключена вне EditingExisting; сюда попадать не должны.
		debuglog.WarnLog("DeleteContact: called without an existing contact")
		return
	}

	dialogs.ShowConfirm(p.guiState.Window, "Delete contact",
		"Delete this contact? This cannot be undone.",
		func(confirmed bool) {
			if !confirmed {
				return
			}
			if err := p.controller.Store.Delete(sel.EntityID); err != nil {
				debuglog.ErrorLog("DeleteContact: delete failed: %v", err)
				dialogs.ShowError(p.guiState.Window, err)
				return
			}
			debuglog.InfoLog("DeleteContact: deleted %s", sel.EntityID)

			p.ClearForm()
			if p.controller.RefreshContactList != nil {
				p.controller.RefreshContactList()
			}
		})
}
