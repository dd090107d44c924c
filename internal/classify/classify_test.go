package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campuscard/recap/internal/model"
)

func TestClassify_Topup(t *testing.T) {
	assert.Equal(t, model.CategoryTopup, Classify(model.Row{Type: "WeChat Top Up", Service: "Balance"}))
	assert.Equal(t, model.CategoryTopup, Classify(model.Row{Type: "微信充值"}))
}

func TestClassify_Printing(t *testing.T) {
	assert.Equal(t, model.CategoryPrinting, Classify(model.Row{Type: "Expense", Service: "Pharos Station 3"}))
	assert.Equal(t, model.CategoryPrinting, Classify(model.Row{Type: "消费", Service: "图书馆打印"}))
	assert.Equal(t, model.CategoryPrinting, Classify(model.Row{Service: "Library Printing"}))
}

func TestClassify_Admin(t *testing.T) {
	assert.Equal(t, model.CategoryAdmin, Classify(model.Row{Type: "Social Medical Insurance"}))
	assert.Equal(t, model.CategoryAdmin, Classify(model.Row{Type: "Expense", Service: "RMS-Housing Office"}))
}

func TestClassify_Expense(t *testing.T) {
	assert.Equal(t, model.CategoryExpense, Classify(model.Row{Type: "Expense", Service: "2F-5 Noodle Bar"}))
	assert.Equal(t, model.CategoryExpense, Classify(model.Row{Type: "消费", Service: "Campus Store"}))
}

func TestClassify_Other(t *testing.T) {
	assert.Equal(t, model.CategoryOther, Classify(model.Row{Type: "Transfer", Service: "Somewhere"}))
	assert.Equal(t, model.CategoryOther, Classify(model.Row{}))
}

// Narrow rules must win over the broad expense catch-all.
func TestClassify_PriorityOrder(t *testing.T) {
	assert.Equal(t, model.CategoryPrinting,
		Classify(model.Row{Type: "Expense", Service: "Pharos Printing"}))
	assert.Equal(t, model.CategoryTopup,
		Classify(model.Row{Type: "WeChat Top Up Expense", Service: "Balance"}))
	assert.Equal(t, model.CategoryAdmin,
		Classify(model.Row{Type: "Expense", Service: "rms-utilities"}))
}

func TestClassify_CaseInsensitive(t *testing.T) {
	assert.Equal(t, model.CategoryExpense, Classify(model.Row{Type: "EXPENSE", Service: "2F-5"}))
	assert.Equal(t, model.CategoryPrinting, Classify(model.Row{Service: "PHAROS"}))
}

func TestClassifyWith_EmptyRules(t *testing.T) {
	assert.Equal(t, model.CategoryOther, ClassifyWith(nil, model.Row{Type: "Expense"}))
}
