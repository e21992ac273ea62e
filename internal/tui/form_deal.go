package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/akmaldavlatboyev/crm/internal/validators"
	"github.com/akmaldavlatboyev/crm/models"
	"github.com/charmbracelet/bubbles/textinput"
)

var dealFormFields = []struct {
	label string
	name  string
}{
	{"Title", "title"},
	{"Stage", "stage"},
	{"Amount", "amount"},
	{"Currency", "currency"},
	{"Close", "close_date"},
}

type dealFormModel struct {
	inputs      []textinput.Model
	focus       int
	editing     bool
	deal        models.Deal
	submitting  bool
	fieldErrors map[string]string
}

func newDealFormModel(deal *models.Deal) dealFormModel {
	inputs := make([]textinput.Model, len(dealFormFields))
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[1].Placeholder = "lead / qualified / proposal / won / lost"
	inputs[2].Placeholder = "value in cents"
	inputs[4].Placeholder = "2006-01-02"
	inputs[0].Focus()

	m := dealFormModel{inputs: inputs}
	if deal == nil {
		m.inputs[1].SetValue(string(models.StageLead))
		return m
	}

	m.editing = true
	m.deal = *deal
	m.inputs[0].SetValue(deal.Title)
	m.inputs[1].SetValue(string(deal.Stage))
	m.inputs[2].SetValue(strconv.FormatInt(deal.AmountCents, 10))
	m.inputs[3].SetValue(deal.Currency)
	if !deal.CloseDate.IsZero() {
		m.inputs[4].SetValue(deal.CloseDate.Format(time.DateOnly))
	}
	return m
}

func (m dealFormModel) values() validators.Values {
	values := validators.Values{}
	for i, field := range dealFormFields {
		values[field.name] = strings.TrimSpace(m.inputs[i].Value())
	}
	return values
}

func (m dealFormModel) focusNext() dealFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m dealFormModel) focusPrev() dealFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m dealFormModel) View() string {
	title := "New deal"
	if m.editing {
		title = "Edit: " + m.inputs[0].Value()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	for i, field := range dealFormFields {
		b.WriteString(padLabel(field.label) + "[" + m.inputs[i].View() + "]\n")
		if msg, ok := m.fieldErrors[field.name]; ok {
			b.WriteString(padLabel("") + fieldErrorStyle.Render(msg) + "\n")
		}
	}

	b.WriteString("\n")
	if m.submitting {
		b.WriteString(helpStyle.Render("saving..."))
	} else {
		b.WriteString(helpStyle.Render("esc cancel  tab next field  enter save"))
	}
	return b.String()
}
