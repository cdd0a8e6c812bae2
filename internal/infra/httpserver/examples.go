package httpserver

// Example is a pre-loaded demo text the frontend offers for one-click scans.
type Example struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// Examples returns the built-in demo dataset. These are illustrative scam and
// hoax messages, not real claims.
func Examples() []Example {
	return []Example{
		{
			Label: "Lottery Scam Message",
			Text:  "CONGRATS! Your mobile number has won a ₹50,00,000 prize in the KBC Lottery! To claim, transfer ₹5,000 processing fee immediately to UPI ID: kbcwinner@bank. Limited time offer! Call +919876543210 for details. SHARE THIS WITH 5 GROUPS!",
		},
		{
			Label: "Viral Health 'Cure'",
			Text:  "BREAKING! Doctors HIDING this! Ayurvedic miracle herb 'Velvet Leaf' found in India can CURE ALL types of cancer in 30 days! Research banned by big pharma. Share before they delete this truth!",
		},
	}
}
