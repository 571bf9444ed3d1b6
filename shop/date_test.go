package shop_test

import (
	"encoding/json"
	"testing"
	"time"

	"go.llib.dev/shopquery/shop"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"gopkg.in/yaml.v3"
)

func ExampleDate_Between() {
	from := shop.NewDate(2021, time.February, 1)
	to := shop.NewDate(2021, time.April, 1)

	shop.MustParseDate("2021-04-01").Between(from, to) // true
}

func TestDate(t *testing.T) {
	s := testcase.NewSpec(t)

	date := testcase.Let(s, func(t *testcase.T) shop.Date {
		return shop.NewDate(
			t.Random.IntBetween(1990, 2030),
			time.Month(t.Random.IntBetween(1, 12)),
			t.Random.IntBetween(1, 28),
		)
	})

	s.Test("string form parses back into the same date", func(t *testcase.T) {
		got, err := shop.ParseDate(date.Get(t).String())
		assert.NoError(t, err)
		assert.Equal(t, date.Get(t), got)
	})

	s.Test("ordering follows the calendar", func(t *testcase.T) {
		next := shop.DateOf(date.Get(t).Time().AddDate(0, 0, t.Random.IntBetween(1, 400)))
		assert.True(t, date.Get(t).Before(next))
		assert.True(t, next.After(date.Get(t)))
		assert.Equal(t, -1, date.Get(t).Compare(next))
		assert.Equal(t, 1, next.Compare(date.Get(t)))
		assert.Equal(t, 0, next.Compare(next))
	})

	s.Test("between is inclusive on both ends", func(t *testcase.T) {
		d := date.Get(t)
		assert.True(t, d.Between(d, d))
		before := shop.DateOf(d.Time().AddDate(0, 0, -1))
		after := shop.DateOf(d.Time().AddDate(0, 0, 1))
		assert.True(t, d.Between(before, after))
		assert.False(t, before.Between(d, after))
		assert.False(t, after.Between(before, d))
	})

	s.Test("text encoding", func(t *testcase.T) {
		type doc struct {
			Date shop.Date `json:"date" yaml:"date"`
		}

		data, err := json.Marshal(doc{Date: date.Get(t)})
		assert.NoError(t, err)
		var fromJSON doc
		assert.NoError(t, json.Unmarshal(data, &fromJSON))
		assert.Equal(t, date.Get(t), fromJSON.Date)

		var fromYAML doc
		assert.NoError(t, yaml.Unmarshal([]byte("date: "+date.Get(t).String()), &fromYAML))
		assert.Equal(t, date.Get(t), fromYAML.Date)
	})
}

func TestNewDate_normalises(t *testing.T) {
	assert.Equal(t, shop.Date{Year: 2021, Month: time.March, Day: 1}, shop.NewDate(2021, time.February, 29))
}

func TestParseDate_invalid(t *testing.T) {
	_, err := shop.ParseDate("2021-13-40")
	assert.Error(t, err)
	assert.Panic(t, func() { shop.MustParseDate("not a date") })
}
