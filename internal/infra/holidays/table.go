package holidays

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/table-reservation/internal/domain"
)

const dateFormat = "2006-01-02"

//go:embed jp.toml
var defaultJapan []byte

// ErrInvalidTable возвращается при некорректном файле праздников
var ErrInvalidTable = errors.New("holidays: invalid holiday table")

// Table версионированная таблица государственных праздников одной локали
// Таблица действительна только в диапазоне [ValidFrom, ValidUntil]: вне его ответ неизвестен
type Table struct {
	Version string
	Locale  string

	// Даты в формате YYYY-MM-DD, сравниваются как строки
	validFrom  string
	validUntil string
	days       map[string]string
}

type tableFile struct {
	Version    string `toml:"version"`
	Locale     string `toml:"locale"`
	ValidFrom  string `toml:"valid_from"`
	ValidUntil string `toml:"valid_until"`
	Holidays   []struct {
		Date string `toml:"date"`
		Name string `toml:"name"`
	} `toml:"holiday"`
}

// Default возвращает встроенную таблицу праздников Японии
func Default() *Table {
	table, err := Parse(defaultJapan)
	if err != nil {
		panic(fmt.Sprintf("embedded holiday table is broken: %v", err))
	}
	return table
}

// Load читает таблицу из файла; пустой путь означает встроенную таблицу
func Load(path string) (*Table, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrInvalidTable, path, err)
	}
	return Parse(data)
}

// Parse разбирает таблицу в формате TOML
// Если valid_from/valid_until не заданы, диапазоном считаются полные годы, в которых есть праздники
func Parse(data []byte) (*Table, error) {
	var file tableFile
	if _, err := toml.Decode(string(data), &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTable, err)
	}

	if file.Version == "" {
		return nil, fmt.Errorf("%w: version is required", ErrInvalidTable)
	}

	days := make(map[string]string, len(file.Holidays))
	var first, last string
	for _, h := range file.Holidays {
		day, err := time.Parse(dateFormat, h.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: bad date %q: %v", ErrInvalidTable, h.Date, err)
		}
		key := day.Format(dateFormat)
		days[key] = h.Name

		if first == "" || key < first {
			first = key
		}
		if last == "" || key > last {
			last = key
		}
	}

	validFrom, err := rangeBound(file.ValidFrom, first, "valid_from", "-01-01")
	if err != nil {
		return nil, err
	}
	validUntil, err := rangeBound(file.ValidUntil, last, "valid_until", "-12-31")
	if err != nil {
		return nil, err
	}
	if validFrom > validUntil {
		return nil, fmt.Errorf("%w: valid_from %s is after valid_until %s", ErrInvalidTable, validFrom, validUntil)
	}
	if first != "" && (first < validFrom || last > validUntil) {
		return nil, fmt.Errorf("%w: holidays %s..%s do not fit into %s..%s",
			ErrInvalidTable, first, last, validFrom, validUntil)
	}

	return &Table{
		Version:    file.Version,
		Locale:     file.Locale,
		validFrom:  validFrom,
		validUntil: validUntil,
		days:       days,
	}, nil
}

// rangeBound разбирает границу диапазона; без явного значения берет год крайнего праздника
func rangeBound(value, holiday, field, yearEdge string) (string, error) {
	if value == "" {
		if holiday == "" {
			return "", fmt.Errorf("%w: %s is required for a table without holidays", ErrInvalidTable, field)
		}
		return holiday[:4] + yearEdge, nil
	}

	day, err := time.Parse(dateFormat, value)
	if err != nil {
		return "", fmt.Errorf("%w: bad %s %q: %v", ErrInvalidTable, field, value, err)
	}
	return day.Format(dateFormat), nil
}

// IsPublicHoliday проверяет календарную дату (в ее собственной зоне)
// Для даты вне диапазона таблицы возвращает domain.ErrDateNotCovered
func (t *Table) IsPublicHoliday(date time.Time) (bool, error) {
	key := date.Format(dateFormat)
	if key < t.validFrom || key > t.validUntil {
		return false, fmt.Errorf("%w: %s, table %s %s covers %s..%s",
			domain.ErrDateNotCovered, key, t.Locale, t.Version, t.validFrom, t.validUntil)
	}
	_, ok := t.days[key]
	return ok, nil
}

// ValidFrom первый день диапазона таблицы (UTC)
func (t *Table) ValidFrom() time.Time {
	day, _ := time.Parse(dateFormat, t.validFrom)
	return day
}

// ValidUntil последний день диапазона таблицы (UTC)
func (t *Table) ValidUntil() time.Time {
	day, _ := time.Parse(dateFormat, t.validUntil)
	return day
}

// Name возвращает название праздника
func (t *Table) Name(date time.Time) (string, bool) {
	name, ok := t.days[date.Format(dateFormat)]
	return name, ok
}

// Len количество праздничных дней в таблице
func (t *Table) Len() int {
	return len(t.days)
}
