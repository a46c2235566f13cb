package smsprovider

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
)

const DefaultBaseURL = "https://api.twilio.com/2010-04-01"

const (
	headerAuthorization = "Authorization"
	headerContentType   = "Content-Type"
	contentTypeForm     = "application/x-www-form-urlencoded"
)

type Credentials struct {
	AccountID  string
	AuthSecret string
}

type Message struct {
	From string
	To   string
	Text string
}

// Request is a transport-ready description of one gateway call.
type Request struct {
	URL     string
	Headers map[string]string
	Body    string
}

func BuildRequest(baseURL string, creds Credentials, msg Message) Request {
	form := url.Values{}
	form.Set("Body", msg.Text)
	form.Set("To", NormalizePhone(msg.To))
	if msg.From != "" {
		form.Set("From", NormalizePhone(msg.From))
	}

	return Request{
		URL: fmt.Sprintf("%s/Accounts/%s/Messages.json", baseURL, url.PathEscape(creds.AccountID)),
		Headers: map[string]string{
			headerAuthorization: basicAuth(creds.AccountID, creds.AuthSecret),
			headerContentType:   contentTypeForm,
		},
		Body: form.Encode(),
	}
}

// NormalizePhone keeps only ASCII digits and prefixes exactly one '+'.
func NormalizePhone(number string) string {
	var b strings.Builder
	b.Grow(len(number) + 1)
	b.WriteByte('+')

	for i := 0; i < len(number); i++ {
		if c := number[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}

	return b.String()
}

func basicAuth(username, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password))
}
