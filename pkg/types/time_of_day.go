package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MinutesPerDay количество минут в сутках
const MinutesPerDay = 24 * 60

var (
	// ErrInvalidTimeFormat строка не в формате HH:MM
	ErrInvalidTimeFormat = errors.New("invalid time string format")

	// ErrTimeOutOfRange время за пределами суток
	ErrTimeOutOfRange = errors.New("time of day out of range")
)

// TimeOfDay время суток в минутах от полуночи (900 = 15:00)
// 1440 (24:00) допускается как конец последнего слота дня
type TimeOfDay int

// NewTimeOfDayFromString разбирает строку "HH:MM"
func NewTimeOfDayFromString(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 || len(parts[1]) != 2 || len(parts[0]) == 0 || len(parts[0]) > 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	if hours < 0 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrTimeOutOfRange, s)
	}

	t := TimeOfDay(hours*60 + minutes)
	if err := t.Validate(); err != nil {
		return 0, err
	}
	return t, nil
}

// Validate проверяет, что значение лежит в пределах суток
func (t TimeOfDay) Validate() error {
	if t < 0 || t > MinutesPerDay {
		return fmt.Errorf("%w: %d", ErrTimeOutOfRange, int(t))
	}
	return nil
}

// Minutes количество минут от полуночи
func (t TimeOfDay) Minutes() int {
	return int(t)
}

// String форматирует как "HH:MM"
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// On возвращает момент времени на указанную дату в указанной зоне
func (t TimeOfDay) On(date time.Time, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc).Add(time.Duration(t) * time.Minute)
}

// MarshalJSON сериализует как строку "HH:MM"
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON принимает "HH:MM" или число минут
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := NewTimeOfDayFromString(s)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	}

	var minutes int
	if err := json.Unmarshal(data, &minutes); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTimeFormat, string(data))
	}
	parsed := TimeOfDay(minutes)
	if err := parsed.Validate(); err != nil {
		return err
	}
	*t = parsed
	return nil
}
