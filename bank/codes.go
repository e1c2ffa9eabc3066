package bank

import "regexp"

// codePattern matches an IFSC-style institution code: four letters, a zero,
// then six alphanumerics. The first four letters identify the bank.
var codePattern = regexp.MustCompile(`\b([A-Z]{4}0[A-Z0-9]{6})\b`)

// institutionCodes maps the 4-letter IFSC bank prefix to the bank name.
var institutionCodes = map[string]string{
	"SBIN": "State Bank of India",
	"HDFC": "HDFC Bank",
	"ICIC": "ICICI Bank",
	"UTIB": "Axis Bank",
	"KKBK": "Kotak Mahindra Bank",
	"INDB": "IndusInd Bank",
	"YESB": "Yes Bank",
	"FDRL": "Federal Bank",
	"UBIN": "Union Bank of India",
	"CBIN": "Central Bank of India",
	"PUNB": "Punjab National Bank",
	"IDIB": "Indian Bank",
	"CNRB": "Canara Bank",
	"JAKA": "Jammu and Kashmir Bank",
	"IOBA": "Indian Overseas Bank",
	"IDBI": "IDBI Bank",
	"BDBL": "Bandhan Bank",
	"UCBA": "UCO Bank",
}

// ExtractCode returns the first institution code found in text, or "".
func ExtractCode(text string) string {
	m := codePattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1]
}

// FromCode resolves an institution code to a bank name. Only the 4-letter
// prefix matters; unknown prefixes return "".
func FromCode(code string) string {
	if len(code) < 4 {
		return ""
	}
	return institutionCodes[code[:4]]
}
