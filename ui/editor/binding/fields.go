// Package binding связывает виджеты формы с обработчиком изменений полей.
//
// Файл fields.go содержит адаптеры конкретных Fyne-виджетов под способности
// из binding.go. Каждый адаптер реализует ровно одну способность:
//   - EntryField (*widget.Entry) — TextChangeNotifier
//   - SelectField (*widget.Select) — ValueChangeNotifier
//   - CheckField (*widget.Check) — ValueChangeNotifier
package binding

import (
	"strconv"

	"fyne.io/fyne/v2/widget"
)

// EntryField адаптирует текстовое поле Entry.
type EntryField struct {
	Entry *widget.Entry
}

// SetOnTextChanged subscribes to per-keystroke text changes.
func (f *EntryField) SetOnTextChanged(fn func(value string)) {
	f.Entry.OnChanged = fn
}

// SelectField адаптирует выпадающий список Select.
type SelectField struct {
	Select *widget.Select
}

// SetOnValueChanged subscribes to discrete selection changes.
func (f *SelectField) SetOnValueChanged(fn func(value string)) {
	f.Select.OnChanged = fn
}

// CheckField адаптирует флажок Check.
type CheckField struct {
	Check *widget.Check
}

// SetOnValueChanged subscribes to check state changes. The boolean is
// formatted as "true"/"false", matching how snapshots store boolean fields.
func (f *CheckField) SetOnValueChanged(fn func(value string)) {
	f.Check.OnChanged = func(checked bool) {
		fn(strconv.FormatBool(checked))
	}
}

// Compile-time checks: each adapter implements exactly its own capability.
var (
	_ TextChangeNotifier  = (*EntryField)(nil)
	_ ValueChangeNotifier = (*SelectField)(nil)
	_ ValueChangeNotifier = (*CheckField)(nil)
)
