// Package business содержит бизнес-логику редактора контактов.
//
// Файл tracker.go реализует FormTracker — отслеживание состояния формы.
//
// FormTracker наблюдает три независимых условия:
//   - состояние выбора (загружен ли контакт: новый или существующий)
//   - валидность полей (все ли поля проходят свои правила проверки)
//   - наличие изменений (dirty: текущие значения отличаются от снимка)
//
// и проецирует их в доступность трёх действий формы: Save, Revert, Delete.
//
// Флаг dirty никогда не устанавливается напрямую — он всегда вычисляется
// сравнением текущих значений с последним снимком (field-by-field).
// Валидность — это логическое И по всем отслеживаемым полям.
//
// FormTracker не содержит GUI зависимостей и не выполняет ввод-вывод:
// ошибки сохранения обрабатывает вызывающая сторона, трекер лишь реагирует
// на вызов OnSaveSucceeded (или его отсутствие).
//
// Используется в:
//   - presentation/presenter.go — презентер дергает трекер на каждое событие
//     формы и обновляет кнопки по ComputeActionStates
package business

import (
	"contact-editor/ui/editor/models"
	"contact-editor/ui/editor/utils"
)

// SelectionKind перечисляет варианты состояния выбора.
type SelectionKind int

const (
	// NoneSelected — контакт не загружен, форма пуста.
	NoneSelected SelectionKind = iota
	// EditingExisting — редактируется существующий контакт.
	EditingExisting
	// EditingNew — заполняется форма нового контакта.
	EditingNew
)

// SelectionState описывает, что сейчас загружено в форму.
// EntityID заполнен только для EditingExisting.
type SelectionState struct {
	Kind     SelectionKind
	EntityID string
}

// ActionStates — доступность действий формы, вычисленная из состояния трекера.
type ActionStates struct {
	SaveEnabled   bool
	RevertEnabled bool
	DeleteEnabled bool
}

// FormTracker отслеживает состояние одной сессии формы.
// Создаётся при открытии формы и живёт до её закрытия.
type FormTracker struct {
	selection SelectionState
	snapshot  models.FormSnapshot
	current   models.FormSnapshot
	validity  map[string]bool
}

// NewFormTracker создает трекер в состоянии NoneSelected с пустым снимком.
func NewFormTracker() *FormTracker {
	t := &FormTracker{}
	t.Reset()
	return t
}

// Reset возвращает трекер в состояние NoneSelected.
// Вызывается при очистке формы (например, после удаления контакта).
func (t *FormTracker) Reset() {
	t.selection = SelectionState{Kind: NoneSelected}
	t.snapshot = models.FormSnapshot{}
	t.current = models.FormSnapshot{}
	t.validity = make(map[string]bool)
}

// LoadExisting загружает существующий контакт: снимок заменяется целиком
// значениями values, выбор становится EditingExisting(id), dirty сбрасывается.
// Кнопки трекер не трогает — вызывающая сторона сама перечитывает
// ComputeActionStates после загрузки.
func (t *FormTracker) LoadExisting(id string, values models.FormSnapshot) {
	t.selection = SelectionState{Kind: EditingExisting, EntityID: id}
	t.load(values)
}

// LoadNew загружает форму нового контакта со значениями values
// (обычно models.EmptySnapshot). Выбор становится EditingNew.
func (t *FormTracker) LoadNew(values models.FormSnapshot) {
	t.selection = SelectionState{Kind: EditingNew}
	t.load(values)
}

// load заменяет снимок и текущие значения; загруженные значения
// считаются валидными.
func (t *FormTracker) load(values models.FormSnapshot) {
	t.snapshot = values.Clone()
	t.current = values.Clone()
	t.validity = make(map[string]bool, len(values))
	for fieldID := range values {
		t.validity[fieldID] = true
	}
}

// OnFieldChanged обновляет текущее значение и валидность поля fieldID.
// Чистое обновление состояния: трекер сам ничего не включает и не выключает.
func (t *FormTracker) OnFieldChanged(fieldID, newValue string, isValid bool) {
	t.current[fieldID] = newValue
	t.validity[fieldID] = isValid
}

// IsDirty сообщает, отличаются ли текущие значения от последнего снимка.
// Всегда вычисляется сравнением, а не хранится как флаг.
func (t *FormTracker) IsDirty() bool {
	return !utils.SnapshotsEqual(t.current, t.snapshot)
}

// IsValid сообщает, валидны ли все отслеживаемые поля (логическое И).
func (t *FormTracker) IsValid() bool {
	for _, ok := range t.validity {
		if !ok {
			return false
		}
	}
	return true
}

// Selection возвращает текущее состояние выбора.
func (t *FormTracker) Selection() SelectionState {
	return t.selection
}

// Values возвращает копию текущих значений полей.
// Используется презентером для сборки контакта при сохранении.
func (t *FormTracker) Values() models.FormSnapshot {
	return t.current.Clone()
}

// ComputeActionStates проецирует состояние трекера в доступность действий:
//   - Save: контакт загружен, все поля валидны и есть изменения
//   - Revert: есть изменения
//   - Delete: редактируется существующий контакт
//
// Чистая функция текущего состояния: повторный вызов без промежуточных
// мутаций возвращает тот же результат.
func (t *FormTracker) ComputeActionStates() ActionStates {
	dirty := t.IsDirty()
	return ActionStates{
		SaveEnabled:   t.selection.Kind != NoneSelected && t.IsValid() && dirty,
		RevertEnabled: dirty,
		DeleteEnabled: t.selection.Kind == EditingExisting,
	}
}

// OnSaveSucceeded фиксирует успешное сохранение: снимок заменяется
// текущими значениями, dirty становится false.
func (t *FormTracker) OnSaveSucceeded() {
	t.snapshot = t.current.Clone()
}

// OnRevertRequested откатывает текущие значения к последнему снимку и
// возвращает его копию, чтобы вызывающая сторона заново заполнила виджеты.
// Значения снимка считаются валидными (они были загружены или сохранены).
func (t *FormTracker) OnRevertRequested() models.FormSnapshot {
	t.current = t.snapshot.Clone()
	for fieldID := range t.validity {
		t.validity[fieldID] = true
	}
	return t.snapshot.Clone()
}
