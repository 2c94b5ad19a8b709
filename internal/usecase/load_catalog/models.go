package load_catalog

import "github.com/m04kA/SMC-SessionBooking/internal/domain"

// Response каталог для первых шагов мастера записи
type Response struct {
	Offerings []domain.ServiceOffering
	Providers []domain.Provider
}

// Сообщения для пользователя
const (
	MsgOfferingsUnavailable = "Seans türleri yüklenemedi, lütfen sayfayı yenileyin"
	MsgProvidersUnavailable = "Danışmanlar yüklenemedi, lütfen sayfayı yenileyin"
)
