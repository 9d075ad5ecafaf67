package get_available_slots

import (
	"time"

	"github.com/m04kA/table-reservation/internal/domain"
	"github.com/m04kA/table-reservation/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date time.Time // Дата (время суток игнорируется)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            time.Time         // Дата в зоне ресторана
	Status          domain.DayStatus  // open, full или closed
	IsClosed        bool              // Выходной или праздник
	DurationMinutes int               // Длительность слота в минутах
	Slots           []types.TimeOfDay // Свободные слоты по возрастанию
}
