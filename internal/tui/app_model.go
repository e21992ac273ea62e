package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/akmaldavlatboyev/crm/internal/service"
	"github.com/akmaldavlatboyev/crm/internal/validators"
	"github.com/akmaldavlatboyev/crm/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type screen int

const (
	screenContacts screen = iota
	screenContactDetail
	screenContactForm
	screenDeals
	screenDealForm
)

// Options carries the UI settings taken from configuration.
type Options struct {
	NotificationDuration time.Duration
	SidebarCollapsed     bool
	Locale               string
}

type appModel struct {
	ctx      context.Context
	services *service.Services

	currentScreen screen

	contactList   contactListModel
	contactDetail contactDetailModel
	contactForm   contactFormModel
	dealList      dealListModel
	dealForm      dealFormModel

	sidebar      sidebarModel
	notification notificationModel
	loading      loadingModel

	showModal bool
	modal     modalModel

	// pendingDeleteID remembers what the delete confirmation refers to.
	pendingDeleteID string

	quitting bool
}

func newAppModel(ctx context.Context, services *service.Services, opts Options) appModel {
	// the initial contact load is already in flight when the program starts
	loading, _ := newLoadingModel().start("loading contacts")

	return appModel{
		ctx:           ctx,
		services:      services,
		currentScreen: screenContacts,
		sidebar:       newSidebarModel(opts.SidebarCollapsed),
		notification:  newNotificationModel(opts.NotificationDuration),
		loading:       loading,
		dealList:      dealListModel{locale: opts.Locale, contactNames: map[string]string{}},
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.loading.spinner.Tick, m.cmdLoadContacts())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// The modal owns all input while open; the screen under it stays
		// frozen until it is dismissed.
		if m.showModal {
			var cmd tea.Cmd
			m.modal, cmd = m.modal.update(msg)
			return m, cmd
		}
		if m.loading.active {
			if key.Matches(msg, keys.quit) {
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.loading, cmd = m.loading.update(msg)
		return m, cmd

	case notificationExpiredMsg:
		m.notification = m.notification.expire(msg)
		return m, nil

	case modalDismissedMsg:
		m.showModal = false
		m.pendingDeleteID = ""
		return m, nil

	case modalChosenMsg:
		m.showModal = false
		return m.handleModalChoice(msg)

	case contactsLoadedMsg:
		return m.handleContactsLoaded(msg)

	case contactsRefreshedMsg:
		return m.handleContactsRefreshed(msg)

	case dealsLoadedMsg:
		return m.handleDealsLoaded(msg)

	case contactSavedMsg:
		return m.handleContactSaved(msg)

	case dealSavedMsg:
		return m.handleDealSaved(msg)

	case contactDeletedMsg:
		m.loading = m.loading.stop()
		if msg.err != nil {
			return m.notify(msg.err.Error(), notifyError)
		}
		m.currentScreen = screenContacts
		var cmd tea.Cmd
		m, cmd = m.notify("Contact deleted", notifySuccess)
		return m, tea.Batch(cmd, m.cmdLoadContacts())

	case dealDeletedMsg:
		m.loading = m.loading.stop()
		if msg.err != nil {
			return m.notify(msg.err.Error(), notifyError)
		}
		var cmd tea.Cmd
		m, cmd = m.notify("Deal deleted", notifySuccess)
		return m, tea.Batch(cmd, m.cmdLoadDeals())

	case copiedMsg:
		if msg.err != nil {
			return m.notify(msg.err.Error(), notifyError)
		}
		return m.notify(msg.what+" copied", notifySuccess)

	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenContacts:
		return m.updateContacts(msg)
	case screenContactDetail:
		return m.updateContactDetail(msg)
	case screenContactForm:
		return m.updateContactForm(msg)
	case screenDeals:
		return m.updateDeals(msg)
	case screenDealForm:
		return m.updateDealForm(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenContacts:
		body = m.contactList.View()
	case screenContactDetail:
		body = m.contactDetail.View()
	case screenContactForm:
		body = m.contactForm.View()
	case screenDeals:
		body = m.dealList.View()
	case screenDealForm:
		body = m.dealForm.View()
	}

	if m.currentScreen == screenContacts || m.currentScreen == screenDeals {
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			m.sidebar.View(),
			lipgloss.NewStyle().Width(m.sidebar.contentPaneWidth()).Render(body),
		)
	}

	if m.loading.active {
		body += "\n\n" + m.loading.View()
	}
	if m.notification.visible() {
		body += "\n\n" + m.notification.View()
	}
	if m.showModal {
		body += "\n\n" + m.modal.View()
	}

	return appStyle.Render(body)
}

// notify shows a toast and returns the command arming its dismissal timer.
func (m appModel) notify(message string, level notificationLevel) (appModel, tea.Cmd) {
	var cmd tea.Cmd
	m.notification, cmd = m.notification.show(message, level)
	return m, cmd
}

// ── message handlers ─────────────────────────────────────────────────────────

func (m appModel) handleModalChoice(msg modalChosenMsg) (tea.Model, tea.Cmd) {
	if msg.action != "Delete" {
		m.pendingDeleteID = ""
		return m, nil
	}

	id := m.pendingDeleteID
	m.pendingDeleteID = ""
	if id == "" {
		return m, nil
	}

	var cmd tea.Cmd
	switch msg.id {
	case "confirm-delete-contact":
		m.loading, cmd = m.loading.start("deleting")
		return m, tea.Batch(cmd, m.cmdDeleteContact(id))
	case "confirm-delete-deal":
		m.loading, cmd = m.loading.start("deleting")
		return m, tea.Batch(cmd, m.cmdDeleteDeal(id))
	}
	return m, nil
}

func (m appModel) handleContactsLoaded(msg contactsLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = m.loading.stop()
	if msg.err != nil {
		return m.notify(msg.err.Error(), notifyError)
	}

	m = m.applyContacts(msg.contacts)
	return m, nil
}

// handleContactsRefreshed applies a background refresh. It leaves the
// loading spinner alone, since an in-flight user operation may own it, and
// stays silent on errors so a down server does not toast every interval.
func (m appModel) handleContactsRefreshed(msg contactsRefreshedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m, nil
	}
	m = m.applyContacts(msg.contacts)
	return m, nil
}

func (m appModel) applyContacts(contacts []models.Contact) appModel {
	m.contactList = m.contactList.setContacts(contacts)

	names := map[string]string{}
	for _, c := range contacts {
		names[c.ID] = c.Name
	}
	m.dealList.contactNames = names
	return m
}

func (m appModel) handleDealsLoaded(msg dealsLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = m.loading.stop()
	if msg.err != nil {
		return m.notify(msg.err.Error(), notifyError)
	}
	m.dealList = m.dealList.setDeals(msg.deals)
	return m, nil
}

func (m appModel) handleContactSaved(msg contactSavedMsg) (tea.Model, tea.Cmd) {
	m.loading = m.loading.stop()
	m.contactForm.submitting = false

	if msg.err != nil {
		return m.notify(msg.err.Error(), notifyError)
	}
	if !msg.result.IsValid() {
		m.contactForm.fieldErrors = msg.result.Errors
		return m, nil
	}

	m.currentScreen = screenContacts
	var cmd tea.Cmd
	m, cmd = m.notify("Contact saved", notifySuccess)
	return m, tea.Batch(cmd, m.cmdLoadContacts())
}

func (m appModel) handleDealSaved(msg dealSavedMsg) (tea.Model, tea.Cmd) {
	m.loading = m.loading.stop()
	m.dealForm.submitting = false

	if msg.err != nil {
		return m.notify(msg.err.Error(), notifyError)
	}
	if !msg.result.IsValid() {
		m.dealForm.fieldErrors = msg.result.Errors
		return m, nil
	}

	m.currentScreen = screenDeals
	var cmd tea.Cmd
	m, cmd = m.notify("Deal saved", notifySuccess)
	return m, tea.Batch(cmd, m.cmdLoadDeals())
}

// ── screen updates ───────────────────────────────────────────────────────────

func (m appModel) updateContacts(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.contactList.idx > 0 {
			m.contactList.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.contactList.idx < len(m.contactList.contacts)-1 {
			m.contactList.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		contact, ok := m.contactList.current()
		if !ok {
			return m, nil
		}
		m.contactDetail.contact = contact
		m.currentScreen = screenContactDetail
	case key.Matches(keyMsg, keys.newItem):
		m.contactForm = newContactFormModel(nil)
		m.currentScreen = screenContactForm
	case key.Matches(keyMsg, keys.edit):
		contact, ok := m.contactList.current()
		if !ok {
			return m, nil
		}
		m.contactForm = newContactFormModel(&contact)
		m.currentScreen = screenContactForm
	case key.Matches(keyMsg, keys.delete):
		contact, ok := m.contactList.current()
		if !ok {
			return m, nil
		}
		return m.confirmDeleteContact(contact), nil
	case key.Matches(keyMsg, keys.refresh):
		var cmd tea.Cmd
		m.loading, cmd = m.loading.start("refreshing")
		return m, tea.Batch(cmd, m.cmdLoadContacts())
	case key.Matches(keyMsg, keys.sidebar):
		m.sidebar = m.sidebar.toggle()
	case key.Matches(keyMsg, keys.section):
		return m.switchSection()
	case key.Matches(keyMsg, keys.quit):
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateContactDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenContacts
	case key.Matches(keyMsg, keys.edit):
		contact := m.contactDetail.contact
		m.contactForm = newContactFormModel(&contact)
		m.currentScreen = screenContactForm
	case key.Matches(keyMsg, keys.delete):
		return m.confirmDeleteContact(m.contactDetail.contact), nil
	case key.Matches(keyMsg, keys.copyEmail):
		return m, cmdCopyToClipboard("Email", m.contactDetail.contact.Email)
	case key.Matches(keyMsg, keys.copyPhone):
		return m, cmdCopyToClipboard("Phone", m.contactDetail.contact.Phone)
	case key.Matches(keyMsg, keys.quit):
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateContactForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenContacts
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.contactForm = m.contactForm.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.contactForm = m.contactForm.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.contactForm.submitting {
				return m, nil
			}
			m.contactForm.submitting = true
			m.contactForm.fieldErrors = nil
			return m, m.cmdSaveContact(m.contactForm.contactID, m.contactForm.values())
		}
	}

	var cmd tea.Cmd
	m.contactForm.inputs[m.contactForm.focus], cmd = m.contactForm.inputs[m.contactForm.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateDeals(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.dealList.idx > 0 {
			m.dealList.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.dealList.idx < len(m.dealList.deals)-1 {
			m.dealList.idx++
		}
	case key.Matches(keyMsg, keys.newItem):
		contact, ok := m.contactList.current()
		if !ok {
			return m.notify("Select a contact first", notifyWarning)
		}
		m.dealForm = newDealFormModel(nil)
		m.dealForm.deal.ContactID = contact.ID
		m.currentScreen = screenDealForm
	case key.Matches(keyMsg, keys.edit):
		deal, ok := m.dealList.current()
		if !ok {
			return m, nil
		}
		m.dealForm = newDealFormModel(&deal)
		m.currentScreen = screenDealForm
	case key.Matches(keyMsg, keys.delete):
		deal, ok := m.dealList.current()
		if !ok {
			return m, nil
		}
		m.showModal = true
		m.pendingDeleteID = deal.ID
		m.modal = newModal("confirm-delete-deal", "Delete deal",
			fmt.Sprintf("Delete %q?", deal.Title), []string{"Delete", "Cancel"})
	case key.Matches(keyMsg, keys.refresh):
		var cmd tea.Cmd
		m.loading, cmd = m.loading.start("refreshing")
		return m, tea.Batch(cmd, m.cmdLoadDeals())
	case key.Matches(keyMsg, keys.sidebar):
		m.sidebar = m.sidebar.toggle()
	case key.Matches(keyMsg, keys.section):
		return m.switchSection()
	case key.Matches(keyMsg, keys.quit):
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateDealForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenDeals
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.dealForm = m.dealForm.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.dealForm = m.dealForm.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.dealForm.submitting {
				return m, nil
			}
			m.dealForm.submitting = true
			m.dealForm.fieldErrors = nil
			return m, m.cmdSaveDeal(m.dealForm)
		}
	}

	var cmd tea.Cmd
	m.dealForm.inputs[m.dealForm.focus], cmd = m.dealForm.inputs[m.dealForm.focus].Update(msg)
	return m, cmd
}

func (m appModel) confirmDeleteContact(contact models.Contact) appModel {
	m.showModal = true
	m.pendingDeleteID = contact.ID
	m.modal = newModal("confirm-delete-contact", "Delete contact",
		fmt.Sprintf("Delete %q?", contact.Name), []string{"Delete", "Cancel"})
	return m
}

func (m appModel) switchSection() (tea.Model, tea.Cmd) {
	m.sidebar = m.sidebar.next()
	if m.sidebar.active == sectionDeals {
		m.currentScreen = screenDeals
		var cmd tea.Cmd
		m.loading, cmd = m.loading.start("loading deals")
		return m, tea.Batch(cmd, m.cmdLoadDeals())
	}
	m.currentScreen = screenContacts
	var cmd tea.Cmd
	m.loading, cmd = m.loading.start("loading contacts")
	return m, tea.Batch(cmd, m.cmdLoadContacts())
}

// ── commands ─────────────────────────────────────────────────────────────────

func (m appModel) cmdLoadContacts() tea.Cmd {
	ctx := m.ctx
	svc := m.services.Contacts
	return func() tea.Msg {
		contacts, err := svc.List(ctx)
		return contactsLoadedMsg{contacts: contacts, err: err}
	}
}

func (m appModel) cmdLoadDeals() tea.Cmd {
	ctx := m.ctx
	svc := m.services.Deals
	return func() tea.Msg {
		deals, err := svc.List(ctx, "")
		return dealsLoadedMsg{deals: deals, err: err}
	}
}

func (m appModel) cmdSaveContact(id string, values validators.Values) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Contacts
	return func() tea.Msg {
		var (
			contact models.Contact
			result  validators.Result
			err     error
		)
		if id == "" {
			contact, result, err = svc.CreateFromForm(ctx, values)
		} else {
			contact, result, err = svc.UpdateFromForm(ctx, id, values)
		}
		return contactSavedMsg{contact: contact, result: result, err: err}
	}
}

func (m appModel) cmdSaveDeal(form dealFormModel) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Deals
	values := form.values()
	return func() tea.Msg {
		var (
			deal   models.Deal
			result validators.Result
			err    error
		)
		if form.editing {
			deal, result, err = svc.UpdateFromForm(ctx, form.deal, values)
		} else {
			deal, result, err = svc.CreateFromForm(ctx, form.deal.ContactID, values)
		}
		return dealSavedMsg{deal: deal, result: result, err: err}
	}
}

func (m appModel) cmdDeleteContact(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Contacts
	return func() tea.Msg {
		return contactDeletedMsg{err: svc.Delete(ctx, id)}
	}
}

func (m appModel) cmdDeleteDeal(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Deals
	return func() tea.Msg {
		return dealDeletedMsg{err: svc.Delete(ctx, id)}
	}
}

func cmdCopyToClipboard(what, text string) tea.Cmd {
	return func() tea.Msg {
		if text == "" {
			return copiedMsg{err: fmt.Errorf("nothing to copy")}
		}
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{what: what}
	}
}
