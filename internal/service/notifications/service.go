package notifications

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBookingService/internal/availability"
	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	clientRepo "github.com/m04kA/SMC-SalonBookingService/internal/infra/storage/client"
	templateRepo "github.com/m04kA/SMC-SalonBookingService/internal/infra/storage/template"
)

// TemplateNames имена шаблонов из конфигурации
type TemplateNames struct {
	NewBooking       string
	NewBookingPerson string
	Cancelled        string
}

// Service отправляет клиентам сообщения о записях
type Service struct {
	templates    TemplateRepository
	clients      ClientRepository
	sender       MessageSender
	names        TemplateNames
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса уведомлений
func NewService(
	templates TemplateRepository,
	clients ClientRepository,
	sender MessageSender,
	names TemplateNames,
	location *time.Location,
	logger Logger,
) *Service {
	return &Service{
		templates:    templates,
		clients:      clients,
		sender:       sender,
		names:        names,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// BookingCreated отправляет подтверждение новой записи
func (s *Service) BookingCreated(ctx context.Context, booking *domain.Booking) error {
	templateName := s.names.NewBooking
	if booking.ForPersonName != nil {
		templateName = s.names.NewBookingPerson
	}

	values := map[string]string{
		PlaceholderTotalTitle: ServicesTitle(len(booking.Services)),
		PlaceholderServices:   ServiceList(booking.Services),
	}
	if booking.ForPersonName != nil {
		values[PlaceholderPersonName] = FirstName(*booking.ForPersonName)
	}

	return s.send(ctx, booking, templateName, values)
}

// BookingCancelled отправляет сообщение об отмене записи
func (s *Service) BookingCancelled(ctx context.Context, booking *domain.Booking) error {
	return s.send(ctx, booking, s.names.Cancelled, map[string]string{})
}

func (s *Service) send(ctx context.Context, booking *domain.Booking, templateName string, values map[string]string) error {
	tmpl, err := s.templates.GetByName(ctx, templateName)
	if err != nil {
		if errors.Is(err, templateRepo.ErrTemplateNotFound) {
			s.logger.Warn("Notifications: template %s not found, message for booking %s skipped", templateName, booking.PublicID)
			return nil
		}
		return fmt.Errorf("%w: failed to get template %s: %v", ErrInternal, templateName, err)
	}

	client, err := s.clients.GetByID(ctx, booking.ClientID)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			return fmt.Errorf("%w: id=%d", ErrClientNotFound, booking.ClientID)
		}
		return fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	startMinutes, err := booking.StartTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: booking start time: %v", ErrInternal, err)
	}
	start := availability.AtOffset(booking.Date, startMinutes, s.location)

	values[PlaceholderClientName] = FirstName(client.Name)
	values[PlaceholderDate] = DatePhrase(start, s.timeProvider.Now(), s.location)

	message := Render(tmpl.Body, values)
	if err := s.sender.SendMessage(ctx, client.WhatsAppID, message); err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	s.logger.Info("Notifications: %s sent for booking %s", templateName, booking.PublicID)
	return nil
}
