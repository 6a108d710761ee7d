package publicid

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Alphabet символы публичного идентификатора, ровно 64 штуки
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

// ErrAttemptsExhausted возвращается, если свободный идентификатор не найден
var ErrAttemptsExhausted = errors.New("publicid: attempts exhausted")

// ExistenceChecker проверяет, занят ли идентификатор
type ExistenceChecker interface {
	ExistsByPublicID(ctx context.Context, publicID string) (bool, error)
}

// Generator выдаёт короткие случайные идентификаторы, уникальные в хранилище
type Generator struct {
	checker     ExistenceChecker
	length      int
	maxAttempts int
	random      func() [16]byte
}

// NewGenerator создает генератор. length не больше 16.
func NewGenerator(checker ExistenceChecker, length, maxAttempts int) *Generator {
	return &Generator{
		checker:     checker,
		length:      min(length, 16),
		maxAttempts: maxAttempts,
		random:      func() [16]byte { return uuid.New() },
	}
}

// Generate подбирает свободный идентификатор
func (g *Generator) Generate(ctx context.Context) (string, error) {
	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		candidate := g.candidate()

		exists, err := g.checker.ExistsByPublicID(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("publicid: failed to check %q: %w", candidate, err)
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: after %d attempts", ErrAttemptsExhausted, g.maxAttempts)
}

func (g *Generator) candidate() string {
	raw := g.random()
	out := make([]byte, g.length)
	for i := range out {
		// первые байты UUIDv4 полностью случайные; 256 делится на 64 без остатка
		out[i] = Alphabet[raw[i]%byte(len(Alphabet))]
	}
	return string(out)
}
