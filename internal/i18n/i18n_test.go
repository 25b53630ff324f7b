package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFor(t *testing.T) {
	t.Run("korean is the default", func(t *testing.T) {
		p := For()
		assert.Equal(t, "ko", p.Lang())
		assert.Equal(t, "마이 페이지", p.T(MyPage))
	})

	t.Run("english preference", func(t *testing.T) {
		p := For("en-US,en;q=0.9")
		assert.Equal(t, "en", p.Lang())
		assert.Equal(t, "My Page", p.T(MyPage))
		assert.Equal(t, "Reservation no.: 7", p.T(ReservationNo, "7"))
	})

	t.Run("unsupported language falls back to korean", func(t *testing.T) {
		p := For("fr-FR")
		assert.Equal(t, "ko", p.Lang())
		assert.Equal(t, "예약 번호: 7", p.T(ReservationNo, "7"))
	})

	t.Run("untranslated keys print as is", func(t *testing.T) {
		assert.Equal(t, "N/A", For().T(NotAvailable))
	})
}
