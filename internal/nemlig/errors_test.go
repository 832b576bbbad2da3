package nemlig

import (
	"strings"
	"testing"
)

func TestHTTPErrorRedactsSecrets(t *testing.T) {
	e := &HTTPError{
		Method:     "POST",
		URL:        "https://www.nemlig.com/webapi/login",
		StatusCode: 400,
		Body:       []byte(`{"Password":"hunter2","nested":{"access_token":"abc"},"msg":"bad"}`),
	}
	got := e.Error()
	if strings.Contains(got, "hunter2") || strings.Contains(got, "abc") {
		t.Fatalf("secret leaked: %s", got)
	}
	if !strings.Contains(got, "***") || !strings.Contains(got, "bad") {
		t.Fatalf("unexpected: %s", got)
	}
}

func TestHTTPErrorTruncatesLongBodies(t *testing.T) {
	e := &HTTPError{
		Method:     "GET",
		URL:        "https://www.nemlig.com/webapi/basket/GetBasket",
		StatusCode: 500,
		Body:       []byte(`{"msg":"` + strings.Repeat("x", 1000) + `"}`),
	}
	if len(e.Error()) > 500 {
		t.Fatalf("error too long: %d chars", len(e.Error()))
	}
}

func TestRedactNonJSONBody(t *testing.T) {
	got := redactSensitive([]byte(`prefix "password": "hunter2" suffix`))
	if strings.Contains(got, "hunter2") {
		t.Fatalf("secret leaked: %s", got)
	}
}

func TestProductNotFoundError(t *testing.T) {
	err := &ProductNotFoundError{ProductID: "701025", Reason: "no match"}
	if !strings.Contains(err.Error(), "701025") {
		t.Fatalf("err=%v", err)
	}
}
