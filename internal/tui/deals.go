package tui

import (
	"fmt"
	"strings"

	"github.com/akmaldavlatboyev/crm/internal/format"
	"github.com/akmaldavlatboyev/crm/models"
)

type dealListModel struct {
	deals  []models.Deal
	idx    int
	locale string

	// contactNames resolves contact ids to display names for the list view.
	contactNames map[string]string
}

func (m dealListModel) current() (models.Deal, bool) {
	if len(m.deals) == 0 || m.idx < 0 || m.idx >= len(m.deals) {
		return models.Deal{}, false
	}
	return m.deals[m.idx], true
}

func (m dealListModel) setDeals(deals []models.Deal) dealListModel {
	m.deals = deals
	if m.idx >= len(m.deals) {
		m.idx = len(m.deals) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
	return m
}

func (m dealListModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Deals"))
	b.WriteString("\n\n")

	if len(m.deals) == 0 {
		b.WriteString("No deals yet\n")
	} else {
		for i, d := range m.deals {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			contact := m.contactNames[d.ContactID]
			line := fmt.Sprintf("%s%-24s %-10s %14s  %-10s %s",
				cursor,
				fitText(d.Title, 24),
				d.Stage,
				format.Amount(d.AmountCents, d.Currency, m.locale),
				format.Date(d.CloseDate),
				fitText(contact, 18),
			)
			b.WriteString(strings.TrimRight(line, " ") + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("n new  e edit  d delete  r refresh  s section  b sidebar  q quit"))
	return b.String()
}
