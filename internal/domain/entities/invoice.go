package entities

// InvoiceItem is a single billed line.
type InvoiceItem struct {
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
}

// Invoice is derived from a verified payment and never stored on its own.
type Invoice struct {
	InvoiceNumber string        `json:"invoice_number"`
	Date          string        `json:"date"`
	Items         []InvoiceItem `json:"items"`
	Subtotal      int64         `json:"subtotal"`
	Tax           int64         `json:"tax"`
	Total         int64         `json:"total"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Status        string        `json:"status"`
}
