package model

// Row is one raw transaction record from the card center export. Every
// field arrives as free text; normalization happens downstream, so a Row
// is kept exactly as supplied.
type Row struct {
	Type     string // transaction type wording ("Expense", "WeChat Top Up", "消费")
	Service  string // merchant or stall descriptor ("2F-5 Noodle Bar")
	Amount   string // sign-bearing numeric-like string ("¥-12.50")
	DateTime string // freeform timestamp ("2024-03-14 12:05:00")
}
