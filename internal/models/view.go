package models

import (
	"errors"
	"strings"
)

// View is a dashboard screen. The set is closed.
type View string

const (
	ViewOverview     View = "overview"
	ViewTransactions View = "transactions"
	ViewBudgets      View = "budgets"
	ViewCategories   View = "categories"
)

var ErrUnknownView = errors.New("unknown view")

// AllViews returns every dashboard view
func AllViews() []View {
	return []View{ViewOverview, ViewTransactions, ViewBudgets, ViewCategories}
}

// ParseView returns the view named by raw, or ErrUnknownView
func ParseView(raw string) (View, error) {
	candidate := View(strings.ToLower(strings.TrimSpace(raw)))
	for _, view := range AllViews() {
		if candidate == view {
			return view, nil
		}
	}
	return "", ErrUnknownView
}
