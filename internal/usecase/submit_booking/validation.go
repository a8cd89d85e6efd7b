package submit_booking

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/universalyoga/UYS-SyncService/internal/domain"
)

// Контактный email ограничен адресами gmail - единственный провайдер,
// который студия использует для рассылки подтверждений
var gmailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@gmail\.com$`)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SessionID == "" {
		return fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}

	if err := validateEmail(req.Email); err != nil {
		return err
	}

	return nil
}

// validateEmail проверяет контактный email
func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidEmail)
	}
	if !gmailPattern.MatchString(email) {
		return fmt.Errorf("%w: %q is not a valid gmail address", ErrInvalidEmail, email)
	}
	return nil
}

// validateEntryExists проверяет существование занятия одной строки корзины
// в актуальном каталоге
//
// Все или ничего: одна недоступная строка отклоняет оформление целиком,
// ни одно бронирование при этом не создается
func validateEntryExists(entry domain.CartEntry, catalog []domain.CatalogItem) error {
	ids := domain.CatalogIDSet(catalog)
	if _, ok := ids[entry.ItemID]; !ok {
		return fmt.Errorf("%w: %s", ErrClassUnavailable, entry.Item.Name)
	}
	return nil
}
