package service

import (
	"time"

	"github.com/Astemirdum/movie-rental/pkg/calendar"
	"github.com/Astemirdum/movie-rental/rental/internal/model"
	"github.com/shopspring/decimal"
)

// Discount by basket position. Positions 0-1 and 6 onwards pay full price.
var positionMultipliers = map[int]decimal.Decimal{
	2: decimal.RequireFromString("0.75"),
	3: decimal.RequireFromString("0.5"),
	4: decimal.RequireFromString("0.25"),
	5: decimal.Zero,
}

var fullPrice = decimal.NewFromInt(1)

func priceMultiplier(position int) decimal.Decimal {
	if m, ok := positionMultipliers[position]; ok {
		return m
	}
	return fullPrice
}

// TotalValue sums the movie prices in the order given, applying the
// position discount.
func TotalValue(movies []model.Movie) decimal.Decimal {
	total := decimal.Zero
	for i := range movies {
		total = total.Add(movies[i].Price.Mul(priceMultiplier(i)))
	}
	return total
}

// dueDate is the day after now, pushed once more if that day is skipDay.
func dueDate(now time.Time, skipDay time.Weekday) time.Time {
	due := calendar.AddDays(now, 1)
	if calendar.IsWeekday(due, skipDay) {
		due = calendar.AddDays(due, 1)
	}
	return due
}
