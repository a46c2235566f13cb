package smsprovider_test

import (
	"net/url"
	"testing"

	"github.com/Behyna/sms-services/notifier/pkg/smsprovider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	testCases := []struct {
		name     string
		number   string
		expected string
	}{
		{name: "Spaces", number: "555 987 6543", expected: "+5559876543"},
		{name: "Dashes", number: "555-987-6543", expected: "+5559876543"},
		{name: "Parentheses", number: "(555) 987-6543", expected: "+5559876543"},
		{name: "Dots", number: "555.987.6543", expected: "+5559876543"},
		{name: "LeadingPlus", number: "+1 (555) 123-4567", expected: "+15551234567"},
		{name: "MultiplePlus", number: "++44+20 7946 0958", expected: "+442079460958"},
		{name: "DigitsOnly", number: "15551234567", expected: "+15551234567"},
		{name: "NonASCIIDigits", number: "١٢٣ 456", expected: "+456"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, smsprovider.NormalizePhone(tc.number))
		})
	}
}

func TestBuildRequest(t *testing.T) {
	creds := smsprovider.Credentials{AccountID: "AC123", AuthSecret: "secret"}
	msg := smsprovider.Message{From: "+1 (555) 123-4567", To: "555.987.6543", Text: "Hello & welcome"}

	req := smsprovider.BuildRequest("https://api.twilio.test/2010-04-01", creds, msg)

	t.Run("url", func(t *testing.T) {
		assert.Equal(t, "https://api.twilio.test/2010-04-01/Accounts/AC123/Messages.json", req.URL)
	})

	t.Run("headers", func(t *testing.T) {
		assert.Equal(t, map[string]string{
			"Authorization": "Basic QUMxMjM6c2VjcmV0",
			"Content-Type":  "application/x-www-form-urlencoded",
		}, req.Headers)
	})

	t.Run("body percent-encodes the plus sign", func(t *testing.T) {
		assert.Contains(t, req.Body, "From=%2B15551234567")
		assert.Contains(t, req.Body, "To=%2B5559876543")

		values, err := url.ParseQuery(req.Body)
		require.NoError(t, err)
		assert.Equal(t, "Hello & welcome", values.Get("Body"))
		assert.Equal(t, "+15551234567", values.Get("From"))
		assert.Equal(t, "+5559876543", values.Get("To"))
	})

	t.Run("sender omitted when empty", func(t *testing.T) {
		req := smsprovider.BuildRequest("https://api.twilio.test", creds, smsprovider.Message{To: "1", Text: "x"})

		values, err := url.ParseQuery(req.Body)
		require.NoError(t, err)
		_, hasFrom := values["From"]
		assert.False(t, hasFrom)
	})

	t.Run("account id is path escaped", func(t *testing.T) {
		req := smsprovider.BuildRequest("https://api.twilio.test", smsprovider.Credentials{AccountID: "a/b"}, msg)

		assert.Equal(t, "https://api.twilio.test/Accounts/a%2Fb/Messages.json", req.URL)
	})
}
