package models

import (
	"sort"
	"strconv"
	"time"
)

type Table struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TableNumber string    `gorm:"type:varchar(20);not null;uniqueIndex" json:"tableNumber"`
	Capacity    int       `gorm:"not null" json:"capacity"`
	Location    string    `gorm:"type:varchar(50);not null;default:''" json:"location"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Reservations []Reservation `gorm:"foreignKey:TableID;constraint:OnDelete:RESTRICT" json:"reservations,omitempty"`
}

// TableNumberLess orders table labels numerically when both are numbers,
// so "2" sorts before "10".
func TableNumberLess(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		if na != nb {
			return na < nb
		}
		return a < b
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}

func SortByNumber(tables []Table) {
	sort.SliceStable(tables, func(i, j int) bool {
		return TableNumberLess(tables[i].TableNumber, tables[j].TableNumber)
	})
}

// SortByFit orders tables by capacity, then number, so the smallest table
// that seats a party comes first.
func SortByFit(tables []Table) {
	sort.SliceStable(tables, func(i, j int) bool {
		if tables[i].Capacity != tables[j].Capacity {
			return tables[i].Capacity < tables[j].Capacity
		}
		return TableNumberLess(tables[i].TableNumber, tables[j].TableNumber)
	})
}
