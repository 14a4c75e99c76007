package address

import (
	"strings"
	"time"
)

type Address struct {
	ID     uint `json:"id"`
	UserID uint `json:"user_id"`

	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Company   *string `json:"company,omitempty"`

	Address1 string  `json:"address_1"`
	Address2 *string `json:"address_2,omitempty"`

	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`

	Phone          *string `json:"phone,omitempty"`
	Email          string  `json:"email"`
	AdditionalInfo *string `json:"additional_info,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Format renders the address as the multi-line text copied by value into
// orders. Later edits to the address never touch historical orders.
func (a *Address) Format() string {
	lines := []string{a.FirstName + " " + a.LastName}

	if a.Company != nil && *a.Company != "" {
		lines = append(lines, *a.Company)
	}

	lines = append(lines, a.Address1)
	if a.Address2 != nil && *a.Address2 != "" {
		lines = append(lines, *a.Address2)
	}

	lines = append(lines, a.City+", "+a.State+" "+a.PostalCode, a.Country)

	if a.Phone != nil && *a.Phone != "" {
		lines = append(lines, *a.Phone)
	}

	return strings.Join(lines, "\n")
}
