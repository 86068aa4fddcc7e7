// Package models содержит модели данных редактора контактов.
//
// Файл snapshot.go определяет FormSnapshot — снимок значений полей формы.
//
// FormSnapshot фиксируется при загрузке контакта в форму и после успешного
// сохранения. Снимок неизменяем после фиксации: при загрузке/сохранении он
// заменяется целиком, а не правится по месту. Сравнение текущих значений
// с последним снимком — единственный источник флага "есть несохранённые
// изменения" (dirty).
//
// Используется в:
//   - business/tracker.go — FormTracker хранит последний снимок и сравнивает с ним
//   - presentation/presenter.go — заполнение виджетов значениями снимка при Revert
package models

import (
	"strconv"
)

// FormSnapshot — отображение идентификатора поля в его значение.
// Все значения хранятся как строки; дискретные поля хранят выбранный
// вариант как есть, булевы поля — "true"/"false" (strconv.FormatBool).
type FormSnapshot map[string]string

// SnapshotFromContact строит снимок полей формы из контакта.
func SnapshotFromContact(c Contact) FormSnapshot {
	return FormSnapshot{
		FieldName:     c.Name,
		FieldEmail:    c.Email,
		FieldPhone:    c.Phone,
		FieldGroup:    c.Group,
		FieldFavorite: strconv.FormatBool(c.Favorite),
	}
}

// EmptySnapshot возвращает снимок пустой формы для нового контакта.
func EmptySnapshot() FormSnapshot {
	return FormSnapshot{
		FieldName:     "",
		FieldEmail:    "",
		FieldPhone:    "",
		FieldGroup:    DefaultGroup,
		FieldFavorite: "false",
	}
}

// ContactFromValues собирает контакт из значений полей формы.
// ID подставляется вызывающей стороной (хранилищем или презентером).
func ContactFromValues(id string, values FormSnapshot) Contact {
	return Contact{
		ID:       id,
		Name:     values[FieldName],
		Email:    values[FieldEmail],
		Phone:    values[FieldPhone],
		Group:    values[FieldGroup],
		Favorite: values[FieldFavorite] == "true",
	}
}

// Clone возвращает независимую копию снимка.
func (s FormSnapshot) Clone() FormSnapshot {
	out := make(FormSnapshot, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
