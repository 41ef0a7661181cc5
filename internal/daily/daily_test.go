package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKey_UsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	// 2026-03-02 05:00 at UTC+10 is still 2026-03-01 in UTC.
	d := time.Date(2026, 3, 2, 5, 0, 0, 0, loc)
	assert.Equal(t, "2026-03-01", DateKey(d))
}

func TestCalendar_Index(t *testing.T) {
	day := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	c := Calendar{Salt: "salt"}

	t.Run("non-positive length", func(t *testing.T) {
		assert.Equal(t, -1, c.Index(day, 0))
		assert.Equal(t, -1, c.Index(day, -3))
	})

	t.Run("in range", func(t *testing.T) {
		for n := 1; n < 50; n++ {
			idx := c.Index(day, n)
			assert.GreaterOrEqual(t, idx, 0)
			assert.Less(t, idx, n)
		}
	})

	t.Run("same day same index", func(t *testing.T) {
		morning := time.Date(2026, 10, 18, 0, 1, 0, 0, time.UTC)
		night := time.Date(2026, 10, 18, 23, 59, 0, 0, time.UTC)
		assert.Equal(t, c.Index(morning, 1000), c.Index(night, 1000))
	})

	t.Run("salt changes mapping", func(t *testing.T) {
		// Over a month of days, two salts should not agree on every index.
		a, b := Calendar{Salt: "a"}, Calendar{Salt: "b"}
		same := 0
		for i := 0; i < 30; i++ {
			d := day.AddDate(0, 0, i)
			if a.Index(d, 1<<20) == b.Index(d, 1<<20) {
				same++
			}
		}
		assert.Less(t, same, 30)
	})
}

func TestCalendar_Word(t *testing.T) {
	day := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	c := Calendar{Salt: "salt"}
	list := []string{"PLAGE", "ARBRE", "CHIEN"}

	w, ok := c.Word(list, day)
	assert.True(t, ok)
	assert.Equal(t, list[c.Index(day, len(list))], w)

	_, ok = c.Word(nil, day)
	assert.False(t, ok)
}
