package ingest

// SampleMessage is one entry of the fixed demo inbox scanned by the scan
// feature.
type SampleMessage struct {
	ID      string `json:"id"`
	Sender  string `json:"sender"`
	Message string `json:"message"`
}

// SampleInbox returns the fixed set of bank messages the scan feature
// parses. The texts are representative Indian bank alert formats.
func SampleInbox() []SampleMessage {
	return []SampleMessage{
		{
			ID:      "sms1",
			Sender:  "HDFC-Bank",
			Message: "Your A/c XX1234 debited by Rs.450.00 on 02-Jan for UPI-Amazon. Avl Bal Rs.12,550.00",
		},
		{
			ID:      "sms2",
			Sender:  "SBI-Bank",
			Message: "Rs.2,500 credited to your A/c XX5678 via IMPS. Avl Bal: Rs.45,000",
		},
		{
			ID:      "sms3",
			Sender:  "ICICI-Bank",
			Message: "Alert: INR 899.00 spent on your Card XX9012 at SWIGGY. If not done by you, call 1800XXX",
		},
		{
			ID:      "sms4",
			Sender:  "Axis-Bank",
			Message: "Your A/c debited for Rs.1,200 on 30-Dec at UBER TRIP. SMS BLOCK to 9999000000 if not you.",
		},
		{
			ID:      "sms5",
			Sender:  "HDFC-Bank",
			Message: "Payment of Rs.2,499 received for your Electricity Bill. Transaction ID: TXN123456",
		},
	}
}
