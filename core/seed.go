package core

import (
	"encoding/json"
	"fmt"

	"github.com/muhammadmuzzammil1998/jsonc"

	"contact-editor/internal/debuglog"
	"contact-editor/ui/editor/models"
)

// seedFile — формат встроенного файла contacts.jsonc.
// JSONC допускает комментарии, поэтому файл с примерами можно
// комментировать прямо в assets.
type seedFile struct {
	Contacts []seedContact `json:"contacts"`
}

type seedContact struct {
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Group    string `json:"group,omitempty"`
	Favorite bool   `json:"favorite,omitempty"`
}

// ParseSeedContacts разбирает JSONC-данные с начальными контактами.
// Контакты без группы получают группу по умолчанию.
func ParseSeedContacts(data []byte) ([]models.Contact, error) {
	if !jsonc.Valid(data) {
		return nil, fmt.Errorf("seed data is not valid JSONC")
	}

	var seed seedFile
	if err := json.Unmarshal(jsonc.ToJSON(data), &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}

	contacts := make([]models.Contact, 0, len(seed.Contacts))
	for i, sc := range seed.Contacts {
		if sc.Name == "" {
			return nil, fmt.Errorf("seed contact %d: name is empty", i)
		}
		group := sc.Group
		if group == "" {
			group = models.DefaultGroup
		}
		contacts = append(contacts, models.Contact{
			Name:     sc.Name,
			Email:    sc.Email,
			Phone:    sc.Phone,
			Group:    group,
			Favorite: sc.Favorite,
		})
	}

	debuglog.InfoLog("ParseSeedContacts: parsed %d contacts", len(contacts))
	return contacts, nil
}
