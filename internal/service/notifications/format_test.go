package notifications

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

func fortaleza(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(domain.DefaultTimezone)
	require.NoError(t, err)
	return loc
}

func TestDatePhrase(t *testing.T) {
	loc := fortaleza(t)
	// понедельник, 09:00 по Форталезе
	now := time.Date(2025, time.March, 10, 9, 0, 0, 0, loc)

	tests := []struct {
		name  string
		start time.Time
		want  string
	}{
		{name: "today", start: time.Date(2025, time.March, 10, 15, 0, 0, 0, loc), want: "hoje às 15:00"},
		{name: "tomorrow", start: time.Date(2025, time.March, 11, 10, 0, 0, 0, loc), want: "amanhã às 10:00"},
		{name: "this week", start: time.Date(2025, time.March, 14, 10, 0, 0, 0, loc), want: "sexta-feira às 10:00"},
		{name: "six full days", start: time.Date(2025, time.March, 17, 8, 0, 0, 0, loc), want: "segunda-feira às 08:00"},
		{name: "more than six days", start: time.Date(2025, time.March, 17, 10, 0, 0, 0, loc), want: "17/03/2025 às 10:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DatePhrase(tt.start, now, loc))
		})
	}
}

func TestDatePhrase_UsesBusinessTimezone(t *testing.T) {
	loc := fortaleza(t)
	// 01:00 UTC 11 марта = 22:00 10 марта в Форталезе
	now := time.Date(2025, time.March, 11, 1, 0, 0, 0, time.UTC)
	start := time.Date(2025, time.March, 11, 2, 30, 0, 0, time.UTC)

	assert.Equal(t, "hoje às 23:30", DatePhrase(start, now, loc))
}

func TestFirstName(t *testing.T) {
	assert.Equal(t, "Maria", FirstName("  maria   DA silva"))
	assert.Equal(t, "João", FirstName("JOÃO"))
	assert.Equal(t, "", FirstName("   "))
}

func TestServiceList(t *testing.T) {
	got := ServiceList([]domain.BookingService{
		{Name: "Corte", Price: 50},
		{Name: "Escova", Price: 35.5},
	})
	assert.Equal(t, "- _Corte_: R$ 50.00\n- _Escova_: R$ 35.50\nTotal: *R$ 85.50*", got)

	assert.Equal(t, "Total: *R$ 0.00*", ServiceList(nil))
}

func TestServicesTitle(t *testing.T) {
	assert.Equal(t, "Serviço agendado", ServicesTitle(1))
	assert.Equal(t, "Serviços agendados", ServicesTitle(2))
}

func TestRender(t *testing.T) {
	body := `Olá {nome_cliente}!\nSua reserva {data}.\n{desconhecido}fim`
	got := Render(body, map[string]string{
		PlaceholderClientName: "Maria",
		PlaceholderDate:       "hoje às 10:00",
	})

	assert.Equal(t, "Olá Maria!\nSua reserva hoje às 10:00.\nfim", got)
}
