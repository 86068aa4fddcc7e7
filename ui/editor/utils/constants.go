// Package utils содержит утилиты и константы для редактора контактов.
//
// Файл constants.go содержит ограничения на длину значений полей формы.
// Ограничения используются валидатором (business/validator.go) при проверке
// введённых значений.
package utils

// Ограничения полей формы.
// Длины имени и телефона считаются в символах (рунах); длина email —
// в байтах, так как 254 — предел адреса в октетах.
const (
	// MinNameLength - минимальная длина имени контакта
	MinNameLength = 1
	// MaxNameLength - максимальная длина имени контакта
	MaxNameLength = 120
	// MaxEmailLength - максимальная длина email (в байтах)
	MaxEmailLength = 254
	// MinPhoneLength - минимальная длина телефона (без учёта пустого значения)
	MinPhoneLength = 3
	// MaxPhoneLength - максимальная длина телефона
	MaxPhoneLength = 32
)
