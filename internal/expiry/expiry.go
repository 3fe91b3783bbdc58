// Package expiry provides day-granularity expiry date arithmetic and
// freshness status for scanned products. Dates are exchanged as
// "yyyy-mm-dd" strings.
package expiry

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Status buckets a product by how close it is to its expiry date.
type Status string

const (
	StatusFresh   Status = "green"  // more than 3 days left
	StatusUseSoon Status = "yellow" // 0-3 days left
	StatusExpired Status = "red"    // past expiry
)

// ProductStatus is the freshness of one product relative to today.
type ProductStatus struct {
	Status        Status `json:"status"`
	DaysRemaining int    `json:"daysRemaining"`
	Label         string `json:"label"`
}

// ExpiryDate computes the expiry date for a purchase. Shelf lives below one
// day are clamped to one. An unparseable purchase date counts from today.
func ExpiryDate(purchaseDate string, shelfDays int) string {
	if shelfDays < 1 {
		shelfDays = 1
	}
	purchase, err := time.Parse(dateLayout, purchaseDate)
	if err != nil {
		purchase = today(time.Now())
	}
	return purchase.AddDate(0, 0, shelfDays).Format(dateLayout)
}

// DaysUntil returns the whole days between today and the expiry date;
// negative when the date has passed, zero when it is unparseable.
func DaysUntil(expiryDate string) int {
	return daysUntilAt(expiryDate, time.Now())
}

// StatusFor evaluates a product's freshness as of now.
func StatusFor(expiryDate string) ProductStatus {
	return statusAt(expiryDate, time.Now())
}

// Progress reports how far through its shelf life a product is, as a
// percentage from 0 to 100.
func Progress(purchaseDate, expiryDate string, now time.Time) float64 {
	purchase, err := time.Parse(dateLayout, purchaseDate)
	if err != nil {
		return 100
	}
	expiry, err := time.Parse(dateLayout, expiryDate)
	if err != nil {
		return 100
	}

	totalSpan := expiry.Sub(purchase)
	if totalSpan <= 0 {
		return 100
	}

	elapsed := now.Sub(purchase)
	progress := float64(elapsed) / float64(totalSpan) * 100
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}

// DaysText renders a days-remaining count for display.
func DaysText(days int) string {
	switch {
	case days > 1:
		return fmt.Sprintf("%d days left", days)
	case days == 1:
		return "1 day left"
	case days == 0:
		return "Expires today!"
	case days == -1:
		return "Expired yesterday"
	default:
		return fmt.Sprintf("Expired %d days ago", -days)
	}
}

// today truncates a time to its calendar date in UTC so day differences
// come out as exact multiples of 24h.
func today(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysUntilAt(expiryDate string, now time.Time) int {
	expiry, err := time.Parse(dateLayout, expiryDate)
	if err != nil {
		return 0
	}
	return int(today(expiry).Sub(today(now)).Hours() / 24)
}

func statusAt(expiryDate string, now time.Time) ProductStatus {
	days := daysUntilAt(expiryDate, now)

	switch {
	case days > 3:
		return ProductStatus{Status: StatusFresh, DaysRemaining: days, Label: "Fresh"}
	case days >= 0:
		label := "Expires today"
		if days == 1 {
			label = "1 day left"
		} else if days > 1 {
			label = fmt.Sprintf("%d days left", days)
		}
		return ProductStatus{Status: StatusUseSoon, DaysRemaining: days, Label: label}
	default:
		label := fmt.Sprintf("Expired %d days ago", -days)
		if days == -1 {
			label = "Expired 1 day ago"
		}
		return ProductStatus{Status: StatusExpired, DaysRemaining: days, Label: label}
	}
}
