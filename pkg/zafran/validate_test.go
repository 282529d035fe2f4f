package zafran

import (
	"errors"
	"testing"
)

func TestCheckNCols(t *testing.T) {
	cases := []struct {
		n       int
		wantErr bool
	}{
		{-1, true},
		{0, true},
		{1, false},
		{DefaultNCols, false},
		{MaxBarWidth, false},
		{MaxBarWidth + 1, true},
	}
	for _, tc := range cases {
		err := CheckNCols(tc.n)
		if (err != nil) != tc.wantErr {
			t.Errorf("CheckNCols(%d) error = %v, wantErr %v", tc.n, err, tc.wantErr)
		}
		if err != nil && !errors.Is(err, ErrInvalidNCols) {
			t.Errorf("CheckNCols(%d): expected ErrInvalidNCols, got %v", tc.n, err)
		}
	}
}

func TestParseStyle(t *testing.T) {
	cases := []struct {
		name   string
		want   Style
		wantOK bool
	}{
		{"default", StyleDefault, true},
		{"download", StyleDownload, true},
		{"DOWNLOAD", StyleDefault, false},
		{" download", StyleDefault, false},
		{"", StyleDefault, false},
		{"fancy", StyleDefault, false},
	}
	for _, tc := range cases {
		got, ok := ParseStyle(tc.name)
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("ParseStyle(%q) = (%v, %v), want (%v, %v)", tc.name, got, ok, tc.want, tc.wantOK)
		}
		if err := CheckFormat(tc.name); (err == nil) != tc.wantOK {
			t.Errorf("CheckFormat(%q) = %v", tc.name, err)
		}
	}
	if StyleDownload.String() != "download" || StyleDefault.String() != "default" {
		t.Error("unexpected Style names")
	}
}

func TestValidate(t *testing.T) {
	bar, _, _ := newTestBar(t, 10)
	if err := bar.Validate(); err != nil {
		t.Fatalf("fresh bar: %v", err)
	}

	bar.SetFormat("fancy")
	bar.Update(11)
	err := bar.Validate()
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat in %v", err)
	}
	if !errors.Is(err, ErrOverrun) {
		t.Errorf("expected ErrOverrun in %v", err)
	}
	if errors.Is(err, ErrInvalidNCols) {
		t.Errorf("ncols is valid, got %v", err)
	}

	bar.SetFormat("download")
	bar.Update(10)
	if err := bar.Validate(); err != nil {
		t.Errorf("expected nil after fixing, got %v", err)
	}
}
