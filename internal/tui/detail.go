package tui

import (
	"fmt"
	"strings"

	"github.com/akmaldavlatboyev/crm/internal/format"
	"github.com/akmaldavlatboyev/crm/models"
)

type contactDetailModel struct {
	contact models.Contact
}

func (m contactDetailModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.contact.Name))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Email:    %s\n", valueOrDash(m.contact.Email)))
	b.WriteString(fmt.Sprintf("Phone:    %s\n", valueOrDash(m.contact.Phone)))
	b.WriteString(fmt.Sprintf("Company:  %s\n", valueOrDash(m.contact.Company)))
	b.WriteString(fmt.Sprintf("Notes:    %s\n", valueOrDash(m.contact.Notes)))
	b.WriteString(fmt.Sprintf("Created:  %s\n", format.Date(m.contact.CreatedAt)))
	b.WriteString(fmt.Sprintf("Updated:  %s\n", format.DateTime(m.contact.UpdatedAt)))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("e edit  d delete  c copy email  p copy phone  esc back"))
	return b.String()
}
