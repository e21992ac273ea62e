package tui

import (
	"strings"

	"github.com/akmaldavlatboyev/crm/internal/validators"
	"github.com/akmaldavlatboyev/crm/models"
	"github.com/charmbracelet/bubbles/textinput"
)

// contactFormFields maps input positions to the validated field names.
var contactFormFields = []struct {
	label string
	name  string
}{
	{"Name", "name"},
	{"Email", "email"},
	{"Phone", "phone"},
	{"Company", "company"},
	{"Notes", "notes"},
}

type contactFormModel struct {
	inputs      []textinput.Model
	focus       int
	editing     bool
	contactID   string
	submitting  bool
	fieldErrors map[string]string
}

func newContactFormModel(contact *models.Contact) contactFormModel {
	inputs := make([]textinput.Model, len(contactFormFields))
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[0].Focus()

	m := contactFormModel{inputs: inputs}
	if contact == nil {
		return m
	}

	m.editing = true
	m.contactID = contact.ID
	m.inputs[0].SetValue(contact.Name)
	m.inputs[1].SetValue(contact.Email)
	m.inputs[2].SetValue(contact.Phone)
	m.inputs[3].SetValue(contact.Company)
	m.inputs[4].SetValue(contact.Notes)
	return m
}

// values collects the current input state as a validation value bag.
func (m contactFormModel) values() validators.Values {
	values := validators.Values{}
	for i, field := range contactFormFields {
		values[field.name] = strings.TrimSpace(m.inputs[i].Value())
	}
	return values
}

func (m contactFormModel) focusNext() contactFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m contactFormModel) focusPrev() contactFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m contactFormModel) View() string {
	title := "New contact"
	if m.editing {
		title = "Edit: " + m.inputs[0].Value()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	for i, field := range contactFormFields {
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

func padLabel(label string) string {
	const width = 10
	if len(label) >= width {
		return label + " "
	}
	return label + strings.Repeat(" ", width-len(label))
}
