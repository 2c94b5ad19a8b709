package wizard

import "github.com/m04kA/SMC-SessionBooking/internal/domain"

// Сообщения для пользователя
const (
	MsgSelectProvider = "Lütfen bir danışman seçin"
	MsgSelectService  = "Lütfen bir seans türü seçin"
	MsgSelectDate     = "Lütfen bir tarih seçin"
	MsgSelectSlot     = "Lütfen bir saat seçin"
	MsgLastStep       = "Zaten son adımdasınız"

	MsgInvalidDate        = "Seçilen tarih uygun değil"
	MsgSlotUnavailable    = "Bu saat dolu, lütfen başka bir saat seçin"
	MsgSlotTaken          = "Bu saat az önce doldu, lütfen başka bir saat seçin"
	MsgModeUnsupported    = "Bu seans türü seçilen görüşme şeklini desteklemiyor"
	MsgNotesTooLong       = "Notunuz çok uzun"
	MsgFallbackSlots      = "Müsaitlik bilgisi alınamadı, varsayılan saatler gösteriliyor"
	MsgDraftUnavailable   = "Kayıtlı seçimleriniz yüklenemedi"
	MsgDraftNotSaved      = "Seçiminiz kaydedilemedi, lütfen tekrar deneyin"
	MsgProviderNotFound   = "Danışman bulunamadı"
	MsgOfferingNotFound   = "Seans türü bulunamadı"
	MsgSubmitFailed       = "Randevu oluşturulamadı, lütfen tekrar deneyin"
	MsgSubmitIncomplete   = "Lütfen tüm adımları tamamlayın"
	MsgReservationCreated = "Randevunuz oluşturuldu, ödeme sayfasına yönlendiriliyorsunuz"
)

// guardMessage сообщение для неудачного перехода на шаг
func guardMessage(target domain.Step) string {
	switch target {
	case domain.StepSelectService:
		return MsgSelectProvider
	case domain.StepSelectDate:
		return MsgSelectService
	case domain.StepSelectTime:
		return MsgSelectDate
	case domain.StepConfirm:
		return MsgSelectSlot
	default:
		return MsgLastStep
	}
}
