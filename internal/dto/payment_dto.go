package dto

// PaymentWebhookRequest carries the gateway's IPN callback fields we act on.
type PaymentWebhookRequest struct {
	TranID string `json:"tran_id" form:"tran_id"`
	Status string `json:"status" form:"status"`
	Amount string `json:"amount" form:"amount"`
}

type InitiateProResponse struct {
	TransactionID string `json:"transaction_id"`
	AmountBDT     int    `json:"amount_bdt"`
	Gateway       string `json:"gateway"`
}
