package report

import (
	"strconv"

	"github.com/jimezsa/hhwatch/internal/vacancy"
)

// Average is an integer mean; OK is false when there was nothing to average.
type Average struct {
	Value int
	OK    bool
}

func (a Average) String() string {
	if !a.OK {
		return notEnoughData
	}
	return strconv.Itoa(a.Value)
}

type Stats struct {
	// Offer averages each listing's midpoint, or its only bound.
	Offer Average
	From  Average
	To    Average
}

func Compute(entries []vacancy.Entry) Stats {
	var offers, froms, tos []int
	for _, entry := range entries {
		salary := entry.Salary
		if salary == nil {
			continue
		}
		switch {
		case salary.From != nil && salary.To != nil:
			offers = append(offers, (*salary.From+*salary.To)/2)
		case salary.From != nil:
			offers = append(offers, *salary.From)
		case salary.To != nil:
			offers = append(offers, *salary.To)
		}
		if salary.From != nil {
			froms = append(froms, *salary.From)
		}
		if salary.To != nil {
			tos = append(tos, *salary.To)
		}
	}

	return Stats{
		Offer: average(offers),
		From:  average(froms),
		To:    average(tos),
	}
}

func average(values []int) Average {
	if len(values) == 0 {
		return Average{}
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return Average{Value: sum / len(values), OK: true}
}
