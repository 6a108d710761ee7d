package notifications

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

// Плейсхолдеры шаблонов
const (
	PlaceholderClientName = "nome_cliente"
	PlaceholderDate       = "data"
	PlaceholderTotalTitle = "total_servico"
	PlaceholderServices   = "servicos"
	PlaceholderPersonName = "nome_pessoa"
)

var placeholderRe = regexp.MustCompile(`\{(\w+)\}`)

// Названия дней недели в pt-BR, индекс = time.Weekday
var weekdaysPtBR = [...]string{
	"domingo",
	"segunda-feira",
	"terça-feira",
	"quarta-feira",
	"quinta-feira",
	"sexta-feira",
	"sábado",
}

// FirstName возвращает первое слово имени с заглавной буквы
func FirstName(name string) string {
	words := strings.Fields(name)
	if len(words) == 0 {
		return ""
	}
	return cases.Title(language.BrazilianPortuguese).String(words[0])
}

// DatePhrase описывает момент записи относительно now:
// "hoje às 10:00", "amanhã às 10:00", "sexta-feira às 10:00" или "21/03/2025 às 10:00".
func DatePhrase(start, now time.Time, loc *time.Location) string {
	start = start.In(loc)
	now = now.In(loc)
	clock := start.Format(domain.TimeFormat)

	switch {
	case sameDay(start, now):
		return "hoje às " + clock
	case sameDay(start, now.AddDate(0, 0, 1)):
		return "amanhã às " + clock
	case int(start.Sub(now)/(24*time.Hour)) <= 6:
		return weekdaysPtBR[start.Weekday()] + " às " + clock
	default:
		return start.Format("02/01/2006") + " às " + clock
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// ServiceList строки услуг с ценами и итоговой суммой
func ServiceList(services []domain.BookingService) string {
	var sb strings.Builder
	var total float64
	for _, s := range services {
		fmt.Fprintf(&sb, "- _%s_: R$ %.2f\n", s.Name, s.Price)
		total += s.Price
	}
	fmt.Fprintf(&sb, "Total: *R$ %.2f*", total)
	return sb.String()
}

// ServicesTitle заголовок блока услуг
func ServicesTitle(count int) string {
	if count > 1 {
		return "Serviços agendados"
	}
	return "Serviço agendado"
}

// Render подставляет значения в {плейсхолдеры}; неизвестные заменяются пустой строкой.
// Экранированный перевод строки \n превращается в настоящий.
func Render(body string, values map[string]string) string {
	out := placeholderRe.ReplaceAllStringFunc(body, func(m string) string {
		return values[m[1:len(m)-1]]
	})
	return strings.ReplaceAll(out, `\n`, "\n")
}
