package testdata

// Sandbox card numbers and billing values that drive the gateway's test responses.
type TestCard struct {
	CardNumber  string
	CVV         string
	Expiration  string
	Description string
}

var (
	VisaCard = TestCard{
		CardNumber:  "4111111111111111",
		CVV:         "123",
		Expiration:  "2030-12",
		Description: "Happy path card",
	}

	MastercardCard = TestCard{
		CardNumber:  "5424000000000015",
		CVV:         "900",
		Expiration:  "2031-04",
		Description: "Mastercard approval",
	}
)

const (
	// DeclineZip makes the sandbox decline an otherwise valid charge.
	DeclineZip = "46282"
	ApproveZip = "44628"
)
