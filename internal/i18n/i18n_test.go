package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"
)

func TestResolveTagOrder(t *testing.T) {
	cases := []struct {
		name    string
		query   string
		cookie  string
		accept  string
		want    language.Tag
		persist bool
	}{
		{"default", "", "", "", PortugueseBR, false},
		{"query", "en", "pt-BR", "pt-BR", English, true},
		{"cookie", "", "en", "pt-BR", English, false},
		{"accept", "", "", "en-US,en;q=0.9", English, false},
		{"accept portuguese", "", "", "pt-PT", PortugueseBR, false},
		{"unsupported query falls through", "fr", "en", "", English, false},
		{"unsupported accept", "", "", "ja", PortugueseBR, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if c.query != "" {
				r = httptest.NewRequest(http.MethodGet, "/?lang="+c.query, nil)
			}
			if c.cookie != "" {
				r.AddCookie(&http.Cookie{Name: LangCookieName, Value: c.cookie})
			}
			if c.accept != "" {
				r.Header.Set("Accept-Language", c.accept)
			}
			got, persist := ResolveTag(r, PortugueseBR)
			if got != c.want || persist != c.persist {
				t.Errorf("Expected %v/%v, got %v/%v", c.want, c.persist, got, persist)
			}
		})
	}
}

func TestResolveTagNilRequest(t *testing.T) {
	if got, _ := ResolveTag(nil, English); got != English {
		t.Errorf("Expected fallback, got %v", got)
	}
}

func TestSetLanguageCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	SetLanguageCookie(rec, English)
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != LangCookieName || cookies[0].Value != "en" {
		t.Errorf("Unexpected cookies: %v", cookies)
	}
}

func TestCatalogs(t *testing.T) {
	if got := Printer(PortugueseBR).Sprintf(KeySpin); got != "Girar" {
		t.Errorf("Expected Girar, got %q", got)
	}
	if got := Printer(English).Sprintf(KeyWinner, "2x"); got != "Winner: 2x" {
		t.Errorf("Expected 'Winner: 2x', got %q", got)
	}
	if got := Printer(PortugueseBR).Sprintf(KeyResetConfirm); got != "Redefinir opções?" {
		t.Errorf("Unexpected reset confirmation %q", got)
	}
	if got := Printer(English).Sprintf(KeyWeightShare, 33.333); got != "33.3% of the wheel" {
		t.Errorf("Unexpected share text %q", got)
	}
}
