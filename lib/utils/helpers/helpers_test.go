package helpers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDaysBetweenInclusive(t *testing.T) {
	t.Run(`обе границы включены`, func(t *testing.T) {
		days, err := DaysBetweenInclusive("2026-09-07", "2026-09-11")
		require.NoError(t, err)
		require.Equal(t, 5, days)
	})

	t.Run(`один день`, func(t *testing.T) {
		days, err := DaysBetweenInclusive("2026-09-07", "2026-09-07")
		require.NoError(t, err)
		require.Equal(t, 1, days)
	})

	t.Run(`переход через месяц`, func(t *testing.T) {
		days, err := DaysBetweenInclusive("2026-08-30", "2026-09-02")
		require.NoError(t, err)
		require.Equal(t, 4, days)
	})

	t.Run(`конец раньше начала дает ноль`, func(t *testing.T) {
		days, err := DaysBetweenInclusive("2026-09-11", "2026-09-07")
		require.NoError(t, err)
		require.Equal(t, 0, days)
	})

	t.Run(`некорректная дата дает ошибку`, func(t *testing.T) {
		_, err := DaysBetweenInclusive("07.09.2026", "2026-09-11")
		require.Error(t, err)
	})
}

func TestInLocation(t *testing.T) {
	utcNoon := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	t.Run(`известная зона смещает время`, func(t *testing.T) {
		moscow := InLocation(utcNoon, "Europe/Moscow")
		require.Equal(t, 15, moscow.Hour())
		require.True(t, moscow.Equal(utcNoon))
	})

	t.Run(`пустая зона дает UTC`, func(t *testing.T) {
		require.Equal(t, time.UTC, InLocation(utcNoon, "").Location())
	})

	t.Run(`неизвестная зона дает UTC`, func(t *testing.T) {
		require.Equal(t, time.UTC, InLocation(utcNoon, "Mars/Olympus").Location())
	})
}

func TestIsValidEmail(t *testing.T) {
	require.True(t, IsValidEmail("ivan@corp.test"))
	require.False(t, IsValidEmail(""))
	require.False(t, IsValidEmail("не почта"))
}

func TestIsContextDone(t *testing.T) {
	t.Run(`живой контекст`, func(t *testing.T) {
		require.False(t, IsContextDone(context.Background()))
	})

	t.Run(`отмененный контекст`, func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		require.True(t, IsContextDone(ctx))
	})

	t.Run(`nil контекст считается завершенным`, func(t *testing.T) {
		require.True(t, IsContextDone(nil))
	})
}
