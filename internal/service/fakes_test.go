package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/senbim-immo/admin-service/internal/domain"
	"github.com/senbim-immo/admin-service/internal/notify"
	"github.com/senbim-immo/admin-service/internal/repository"
)

// In-memory fakes for the repository interfaces the services depend on.

type fakeListingRepo struct {
	listings  map[string]*domain.Listing
	updateErr error
	nextID    int
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{listings: map[string]*domain.Listing{}}
}

func (f *fakeListingRepo) add(listing *domain.Listing) *domain.Listing {
	if listing.ID == "" {
		f.nextID++
		listing.ID = fmt.Sprintf("listing-%d", f.nextID)
	}
	copied := *listing
	f.listings[listing.ID] = &copied
	return listing
}

func (f *fakeListingRepo) Create(_ context.Context, listing *domain.Listing) error {
	f.add(listing)
	return nil
}

func (f *fakeListingRepo) Update(_ context.Context, listing *domain.Listing) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.listings[listing.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *listing
	f.listings[listing.ID] = &copied
	return nil
}

func (f *fakeListingRepo) GetByID(_ context.Context, id string) (*domain.Listing, error) {
	listing, ok := f.listings[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *listing
	return &copied, nil
}

func (f *fakeListingRepo) List(_ context.Context, filter repository.ListingFilter) ([]domain.Listing, error) {
	var result []domain.Listing
	for _, listing := range f.listings {
		if filter.Status != nil && !domain.ListingStatusMatches(listing.Status, *filter.Status) {
			continue
		}
		result = append(result, *listing)
	}
	return result, nil
}

func (f *fakeListingRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.listings[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.listings, id)
	return nil
}

func (f *fakeListingRepo) CountByStatus(_ context.Context) (map[domain.ListingStatus]int64, error) {
	counts := map[domain.ListingStatus]int64{}
	for _, listing := range f.listings {
		counts[domain.NormalizeListingStatus(listing.Status)]++
	}
	return counts, nil
}

type fakeUserRepo struct {
	users     map[string]*domain.User
	updateErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}}
}

func (f *fakeUserRepo) add(user *domain.User) {
	copied := *user
	f.users[user.ID] = &copied
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	f.add(user)
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) List(_ context.Context, _ repository.UserFilter) ([]domain.User, error) {
	var result []domain.User
	for _, user := range f.users {
		result = append(result, *user)
	}
	return result, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) CountCreatedSince(_ context.Context, since time.Time) (int64, error) {
	var count int64
	for _, user := range f.users {
		if !user.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

type fakeReportRepo struct {
	reports   map[string]*domain.Report
	updateErr error
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{reports: map[string]*domain.Report{}}
}

func (f *fakeReportRepo) add(report *domain.Report) {
	copied := *report
	f.reports[report.ID] = &copied
}

func (f *fakeReportRepo) Create(_ context.Context, report *domain.Report) error {
	f.add(report)
	return nil
}

func (f *fakeReportRepo) Update(_ context.Context, report *domain.Report) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.reports[report.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *report
	f.reports[report.ID] = &copied
	return nil
}

func (f *fakeReportRepo) GetByID(_ context.Context, id string) (*domain.Report, error) {
	report, ok := f.reports[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *report
	return &copied, nil
}

func (f *fakeReportRepo) List(_ context.Context, _ repository.ReportFilter) ([]domain.Report, error) {
	var result []domain.Report
	for _, report := range f.reports {
		result = append(result, *report)
	}
	return result, nil
}

func (f *fakeReportRepo) CountByStatus(_ context.Context) (map[domain.ReportStatus]int64, error) {
	counts := map[domain.ReportStatus]int64{}
	for _, report := range f.reports {
		counts[report.Status]++
	}
	return counts, nil
}

type fakeConversationRepo struct {
	conversations map[string]*domain.Conversation
	updateErr     error
}

func newFakeConversationRepo() *fakeConversationRepo {
	return &fakeConversationRepo{conversations: map[string]*domain.Conversation{}}
}

func (f *fakeConversationRepo) add(conv *domain.Conversation) {
	copied := *conv
	f.conversations[conv.ID] = &copied
}

func (f *fakeConversationRepo) Update(_ context.Context, conv *domain.Conversation) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.conversations[conv.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *conv
	f.conversations[conv.ID] = &copied
	return nil
}

func (f *fakeConversationRepo) GetByID(_ context.Context, id string) (*domain.Conversation, error) {
	conv, ok := f.conversations[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *conv
	return &copied, nil
}

func (f *fakeConversationRepo) List(_ context.Context, _ repository.ConversationFilter) ([]domain.Conversation, error) {
	var result []domain.Conversation
	for _, conv := range f.conversations {
		result = append(result, *conv)
	}
	return result, nil
}

func (f *fakeConversationRepo) CountByStatus(_ context.Context) (map[domain.ConversationStatus]int64, error) {
	counts := map[domain.ConversationStatus]int64{}
	for _, conv := range f.conversations {
		counts[conv.Status]++
	}
	return counts, nil
}

type fakeMessageRepo struct {
	messages map[string][]domain.PrivateMessage
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{messages: map[string][]domain.PrivateMessage{}}
}

func (f *fakeMessageRepo) ListByConversation(_ context.Context, conversationID string) ([]domain.PrivateMessage, error) {
	return f.messages[conversationID], nil
}

type fakeTicketRepo struct {
	tickets   map[string]*domain.Ticket
	updateErr error
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{tickets: map[string]*domain.Ticket{}}
}

func (f *fakeTicketRepo) add(ticket *domain.Ticket) {
	copied := *ticket
	copied.Responses = append([]domain.TicketResponse(nil), ticket.Responses...)
	f.tickets[ticket.ID] = &copied
}

func (f *fakeTicketRepo) Create(_ context.Context, ticket *domain.Ticket) error {
	f.add(ticket)
	return nil
}

func (f *fakeTicketRepo) Update(_ context.Context, ticket *domain.Ticket) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.tickets[ticket.ID]; !ok {
		return pgx.ErrNoRows
	}
	f.add(ticket)
	return nil
}

func (f *fakeTicketRepo) GetByID(_ context.Context, id string) (*domain.Ticket, error) {
	ticket, ok := f.tickets[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *ticket
	copied.Responses = append([]domain.TicketResponse(nil), ticket.Responses...)
	return &copied, nil
}

func (f *fakeTicketRepo) List(_ context.Context, _ repository.TicketFilter) ([]domain.Ticket, error) {
	var result []domain.Ticket
	for _, ticket := range f.tickets {
		result = append(result, *ticket)
	}
	return result, nil
}

// fakeMailer records sends and can be told to fail.
type fakeMailer struct {
	sent    []notify.Email
	sendErr error
}

func (f *fakeMailer) Send(_ context.Context, email notify.Email) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, email)
	return nil
}

type fakeContactRepo struct {
	messages  map[string]*domain.ContactMessage
	statusErr error
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{messages: map[string]*domain.ContactMessage{}}
}

func (f *fakeContactRepo) add(msg *domain.ContactMessage) {
	copied := *msg
	f.messages[msg.ID] = &copied
}

func (f *fakeContactRepo) Create(_ context.Context, msg *domain.ContactMessage) error {
	f.add(msg)
	return nil
}

func (f *fakeContactRepo) UpdateStatus(_ context.Context, id string, status domain.ContactMessageStatus) error {
	if f.statusErr != nil {
		return f.statusErr
	}
	msg, ok := f.messages[id]
	if !ok {
		return pgx.ErrNoRows
	}
	msg.Status = status
	return nil
}

func (f *fakeContactRepo) GetByID(_ context.Context, id string) (*domain.ContactMessage, error) {
	msg, ok := f.messages[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *msg
	return &copied, nil
}

func (f *fakeContactRepo) List(_ context.Context, _ repository.ContactMessageFilter) ([]domain.ContactMessage, error) {
	var result []domain.ContactMessage
	for _, msg := range f.messages {
		result = append(result, *msg)
	}
	return result, nil
}

func (f *fakeContactRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.messages[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.messages, id)
	return nil
}
