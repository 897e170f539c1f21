package i18n

import "testing"

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		lang Language
		key  Key
		want string
	}{
		{"english revenue", English, KeyRevenue, "Revenue"},
		{"vietnamese revenue", Vietnamese, KeyRevenue, "Doanh thu"},
		{"japanese revenue", Japanese, KeyRevenue, "収益"},
		{"english dashboard", English, KeyDashboard, "Dashboard"},
		{"vietnamese profit", Vietnamese, KeyProfit, "Lợi nhuận"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := T(tt.lang, tt.key); got != tt.want {
				t.Fatalf("T(%q, %q) = %q, want %q", tt.lang, tt.key, got, tt.want)
			}
		})
	}
}

func TestTranslateUnknownKeyFallsBackToKey(t *testing.T) {
	if got := T(English, Key("unknownKey")); got != "unknownKey" {
		t.Fatalf("got %q, want raw key", got)
	}
	if got := T(Vietnamese, Key("unknownKey")); got != "unknownKey" {
		t.Fatalf("got %q, want raw key", got)
	}
}

func TestTranslateParams(t *testing.T) {
	got := T(English, KeyYouHaveXAppointments, Params{"count": 3})
	want := "You have 3 upcoming appointments."
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	got = T(English, KeyRevenueAddedDesc, Params{"amount": "$2,500.00", "source": "Client A"})
	want = "$2,500.00 from Client A has been added."
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestTranslateUnresolvedPlaceholderLeftVerbatim(t *testing.T) {
	got := T(English, KeyRevenueAddedDesc, Params{"amount": "$50.00"})
	want := "$50.00 from {source} has been added."
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	// No params at all: template returned as-is.
	got = T(English, KeyYouHaveXAppointments)
	if got != "You have {count} upcoming appointments." {
		t.Fatalf("got %q", got)
	}
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		raw  string
		want Language
	}{
		{"en", English},
		{"VI", Vietnamese},
		{" ja ", Japanese},
		{"fr", Vietnamese},
		{"", Vietnamese},
	}
	for _, tt := range tests {
		if got := ParseLanguage(tt.raw, Vietnamese); got != tt.want {
			t.Fatalf("ParseLanguage(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestTablesComplete(t *testing.T) {
	for _, lang := range Languages() {
		for _, key := range AllKeys {
			if !Has(lang, key) {
				t.Errorf("language %q missing key %q", lang, key)
			}
		}
		if len(tables[lang]) != len(AllKeys) {
			t.Errorf("language %q has %d entries, want %d", lang, len(tables[lang]), len(AllKeys))
		}
	}
}
