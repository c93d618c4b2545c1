package service

import (
	"strings"
	"testing"
)

func TestContactFilterPhoneSeparatorStyles(t *testing.T) {
	cases := []struct {
		name    string
		message string
		number  string
	}{
		{"plain", "Hubungi saya di 081234567890 ya", "081234567890"},
		{"plain with 62 prefix", "nomor saya 6281234567890", "6281234567890"},
		{"plain with +62 prefix", "telp +6281234567890", "+6281234567890"},
		{"spaces", "hubungi +62 812 3456 7890 segera", "812 3456 7890"},
		{"hyphens", "nomor 0812-3456-7890 aktif", "0812-3456-7890"},
		{"dots", "telp 0812.3456.7890 malam", "0812.3456.7890"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := DefaultContactFilter.Filter(tc.message)
			if !res.ContainedContact {
				t.Fatalf("expected contact detected in %q", tc.message)
			}
			if strings.Contains(res.FilteredMessage, tc.number) {
				t.Fatalf("expected number redacted, got %q", res.FilteredMessage)
			}
			if !strings.Contains(res.FilteredMessage, "*** nomor telepon disensor ***") {
				t.Fatalf("expected phone token in %q", res.FilteredMessage)
			}
		})
	}
}

func TestContactFilterPlatformMentions(t *testing.T) {
	cases := []string{
		"chat aku di whatsapp ya",
		"WA saja kalau sempat",
		"kirim ke w.a aku",
		"nomor whtsapp sama",
	}
	for _, msg := range cases {
		res := DefaultContactFilter.Filter(msg)
		if !res.ContainedContact {
			t.Fatalf("expected platform mention detected in %q", msg)
		}
		if !strings.Contains(res.FilteredMessage, "*** platform chat disensor ***") {
			t.Fatalf("expected platform token in %q", res.FilteredMessage)
		}
	}
}

func TestContactFilterEmail(t *testing.T) {
	res := DefaultContactFilter.Filter("email saya budi.santoso+promo@layanan-jasa.co.id ya")
	if !res.ContainedContact {
		t.Fatalf("expected email detected")
	}
	if strings.Contains(res.FilteredMessage, "@") {
		t.Fatalf("expected email redacted, got %q", res.FilteredMessage)
	}
	if !strings.Contains(res.FilteredMessage, "*** email disensor ***") {
		t.Fatalf("expected email token in %q", res.FilteredMessage)
	}
}

func TestContactFilterSocialHandles(t *testing.T) {
	cases := []string{
		"follow instagram aku",
		"DM ke IG aja",
		"ada telegram?",
		"cari di facebook atau fb",
		"twitter sama tiktok juga ada",
	}
	for _, msg := range cases {
		res := DefaultContactFilter.Filter(msg)
		if !res.ContainedContact {
			t.Fatalf("expected social handle detected in %q", msg)
		}
		if !strings.Contains(res.FilteredMessage, "*** sosial media disensor ***") {
			t.Fatalf("expected social token in %q", res.FilteredMessage)
		}
	}
}

func TestContactFilterWholeWordBoundaries(t *testing.T) {
	// "wa" dentro de "jawaban" o "ig" dentro de "tanding" no son contacto.
	cases := []string{
		"jawaban saya sudah benar",
		"sewaktu pagi tadi",
		"pertandingan besok sore",
		"harga paket digital",
	}
	for _, msg := range cases {
		res := DefaultContactFilter.Filter(msg)
		if res.ContainedContact {
			t.Fatalf("expected no detection in %q, got %q", msg, res.FilteredMessage)
		}
		if res.FilteredMessage != msg {
			t.Fatalf("expected identity on clean input, got %q", res.FilteredMessage)
		}
	}
}

func TestContactFilterCleanInputIdentity(t *testing.T) {
	msg := "Hubungi saya di chat ini ya"
	res := DefaultContactFilter.Filter(msg)
	if res.ContainedContact {
		t.Fatalf("expected clean message, got detection")
	}
	if res.FilteredMessage != msg {
		t.Fatalf("expected %q unchanged, got %q", msg, res.FilteredMessage)
	}
}

func TestContactFilterEmptyInput(t *testing.T) {
	res := DefaultContactFilter.Filter("")
	if res.ContainedContact || res.FilteredMessage != "" {
		t.Fatalf("expected empty identity, got %+v", res)
	}
}

func TestContactFilterMultipleFamilies(t *testing.T) {
	msg := "WA 081234567890 atau email budi@mail.com, ig budi_s"
	res := DefaultContactFilter.Filter(msg)
	if !res.ContainedContact {
		t.Fatalf("expected detection")
	}
	for _, token := range []string{
		"*** nomor telepon disensor ***",
		"*** platform chat disensor ***",
		"*** email disensor ***",
		"*** sosial media disensor ***",
	} {
		if !strings.Contains(res.FilteredMessage, token) {
			t.Fatalf("expected %q in %q", token, res.FilteredMessage)
		}
	}
}

func TestContactFilterIdempotence(t *testing.T) {
	cases := []string{
		"Hubungi saya di 081234567890 ya",
		"WA 0812-3456-7890 atau email budi@mail.com",
		"follow instagram aku",
		"pesan biasa tanpa kontak",
	}
	for _, msg := range cases {
		once := DefaultContactFilter.Filter(msg)
		twice := DefaultContactFilter.Filter(once.FilteredMessage)
		if twice.ContainedContact {
			t.Fatalf("redaction of %q re-triggered detection: %q", msg, twice.FilteredMessage)
		}
		if twice.FilteredMessage != once.FilteredMessage {
			t.Fatalf("expected stable output for %q", msg)
		}
	}
}

func TestContactFilterTokensDoNotRetrigger(t *testing.T) {
	for _, fam := range contactPatternFamilies {
		res := DefaultContactFilter.Filter(fam.token)
		if res.ContainedContact {
			t.Fatalf("token of family %q re-triggers detection", fam.name)
		}
	}
}
