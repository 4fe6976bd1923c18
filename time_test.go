package asn1

import (
	"bytes"
	"testing"
	"time"
)

func TestUTCTimeRoundTrip(t *testing.T) {
	in := NewUTCTime(time.Date(2026, 7, 31, 12, 30, 45, 0, time.UTC))
	enc, err := Marshal(in, WithRule(DER))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := append([]byte{0x17, 0x0D}, []byte("260731123045Z")...)
	if !bytes.Equal(enc, want) {
		t.Errorf("got % X, want % X", enc, want)
	}

	var out UTCTime
	if _, err := Unmarshal(enc, &out, WithRule(DER)); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !out.Time.Equal(in.Time) {
		t.Errorf("got %v, want %v", out.Time, in.Time)
	}
}

func TestUTCTimeCenturyDisambiguation(t *testing.T) {
	var pre50 UTCTime
	if _, err := Unmarshal(append([]byte{0x17, 0x0D}, []byte("490101000000Z")...), &pre50, WithRule(BER)); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if pre50.Time.Year() != 2049 {
		t.Errorf("got year %d, want 2049", pre50.Time.Year())
	}

	var post50 UTCTime
	if _, err := Unmarshal(append([]byte{0x17, 0x0D}, []byte("500101000000Z")...), &post50, WithRule(BER)); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if post50.Time.Year() != 1950 {
		t.Errorf("got year %d, want 1950", post50.Time.Year())
	}
}

func TestGeneralizedTimeRoundTrip(t *testing.T) {
	in := NewGeneralizedTime(time.Date(2026, 7, 31, 12, 30, 45, 0, time.UTC))
	enc, err := Marshal(in, WithRule(DER))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := append([]byte{0x18, 0x0F}, []byte("20260731123045Z")...)
	if !bytes.Equal(enc, want) {
		t.Errorf("got % X, want % X", enc, want)
	}

	var out GeneralizedTime
	if _, err := Unmarshal(enc, &out, WithRule(DER)); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !out.Time.Equal(in.Time) {
		t.Errorf("got %v, want %v", out.Time, in.Time)
	}
}

func TestGeneralizedTimeAcceptsMinutePrecisionUnderBER(t *testing.T) {
	data := append([]byte{0x18, 0x0D}, []byte("202607311230Z")...)
	var out GeneralizedTime
	if _, err := Unmarshal(data, &out, WithRule(BER)); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out.Time.Minute() != 30 || out.Time.Second() != 0 {
		t.Errorf("got %v", out.Time)
	}
}
