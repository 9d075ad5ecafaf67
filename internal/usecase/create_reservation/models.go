package create_reservation

import (
	"time"

	"github.com/m04kA/table-reservation/pkg/types"
)

// Request модель запроса на бронирование
// Указатели позволяют отличить отсутствующее поле от нулевого значения
type Request struct {
	Date         time.Time        // Дата бронирования (время суток игнорируется)
	Slot         *types.TimeOfDay // Время начала слота
	CustomerName string           // Имя гостя
	PartySize    *int             // Количество гостей
	SeatType     string           // Тип места ("counter", "table")
	Notes        *string          // Пожелания гостя (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	EventID       string          // ID события во внешнем календаре
	Date          time.Time       // Дата бронирования
	Slot          types.TimeOfDay // Время начала слота
	Start         time.Time       // Начало события
	End           time.Time       // Окончание события
	CustomerName  string
	PartySize     int
	SeatType      string
	CapacityUnits int  // Количество единиц вместимости
	LargeParty    bool // Применено правило для больших компаний
	Notes         *string
}
