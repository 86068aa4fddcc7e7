// Package utils содержит утилиты и константы для редактора контактов.
//
// Файл comparison.go содержит функции для сравнения структур данных:
//   - SnapshotsEqual - сравнение двух снимков формы (field-by-field)
//   - StringMapsEqual - сравнение двух map[string]string
//
// Эти функции используются в бизнес-логике для вычисления флага dirty:
// текущие значения полей сравниваются с последним снимком формы.
//
// Функции сравнения - это утилиты, отдельные от валидации (validator.go).
// Они работают только с данными, без зависимостей от GUI.
//
// Используется в:
//   - business/tracker.go - IsDirty сравнивает текущие значения со снимком
package utils

import (
	"contact-editor/ui/editor/models"
)

// SnapshotsEqual compares two form snapshots field by field.
func SnapshotsEqual(a, b models.FormSnapshot) bool {
	return StringMapsEqual(a, b)
}

// StringMapsEqual checks if two string maps hold the same keys and values.
func StringMapsEqual(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok {
			return false
		}
		if av != bv {
			return false
		}
	}
	return true
}
