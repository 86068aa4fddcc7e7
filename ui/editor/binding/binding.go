// Package binding связывает виджеты формы с обработчиком изменений полей.
//
// Файл binding.go реализует диспетчеризацию подписки по способности виджета:
//   - TextChangeNotifier — виджет сообщает о каждом изменении текста (Entry)
//   - ValueChangeNotifier — виджет сообщает о смене дискретного значения (Select)
//
// Каждый конкретный адаптер поля реализует ровно одну из двух способностей.
// AttachField выбирает подписку в момент привязки: сначала проверяется
// текстовая способность, затем дискретная; виджет без обеих — ошибка
// программирования вызывающей стороны.
//
// Пакет не знает про трекер и валидацию: он лишь доставляет пары
// (fieldID, value) в переданный обработчик.
//
// Используется в:
//   - editor.go — привязка виджетов формы к презентеру при сборке редактора
package binding

import (
	"fmt"
)

// FieldChangeHandler принимает идентификатор поля и его новое значение.
type FieldChangeHandler func(fieldID, value string)

// TextChangeNotifier — способность поля сообщать об изменениях текста
// по мере набора.
type TextChangeNotifier interface {
	SetOnTextChanged(fn func(value string))
}

// ValueChangeNotifier — способность поля сообщать о смене дискретного
// значения (выбор из списка, переключатель).
type ValueChangeNotifier interface {
	SetOnValueChanged(fn func(value string))
}

// AttachField подписывает обработчик onChange на изменения поля fieldID.
// Подписка выбирается по способности адаптера: текстовая имеет приоритет.
func AttachField(fieldID string, field interface{}, onChange FieldChangeHandler) error {
	switch f := field.(type) {
	case TextChangeNotifier:
		f.SetOnTextChanged(func(value string) {
			onChange(fieldID, value)
		})
		return nil
	case ValueChangeNotifier:
		f.SetOnValueChanged(func(value string) {
			onChange(fieldID, value)
		})
		return nil
	default:
		return fmt.Errorf("field %q: widget %T supports neither text nor value change notification", fieldID, field)
	}
}
