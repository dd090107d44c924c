package classify

import (
	"strings"

	"github.com/campuscard/recap/internal/model"
)

// Rule maps keyword matches over a row's free-text fields to a category.
// TypeAny and ServiceAny hold substring alternatives; the rule fires when
// either field contains any of its keywords.
type Rule struct {
	Category   model.Category
	TypeAny    []string
	ServiceAny []string
}

// DefaultRules is the ordered classification table, first match wins.
// Narrow signatures (top-up, printing, admin) come before the broad
// expense catch-all: some feeds tag top-ups and printing charges with
// generic expense wording.
var DefaultRules = []Rule{
	{Category: model.CategoryTopup, TypeAny: []string{"wechat top up", "微信充值"}},
	{Category: model.CategoryPrinting, ServiceAny: []string{"pharos", "printing", "打印"}},
	{Category: model.CategoryAdmin, TypeAny: []string{"social medical insurance"}, ServiceAny: []string{"rms-"}},
	{Category: model.CategoryExpense, TypeAny: []string{"expense", "消费"}},
}

// Classify returns the category for a row using the default rule table.
func Classify(row model.Row) model.Category {
	return ClassifyWith(DefaultRules, row)
}

// ClassifyWith runs an ordered rule table against a row. Fields are
// matched lower-cased. Rows no rule claims are CategoryOther.
func ClassifyWith(rules []Rule, row model.Row) model.Category {
	typ := strings.ToLower(row.Type)
	service := strings.ToLower(row.Service)

	for _, r := range rules {
		if containsAny(typ, r.TypeAny) || containsAny(service, r.ServiceAny) {
			return r.Category
		}
	}
	return model.CategoryOther
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
